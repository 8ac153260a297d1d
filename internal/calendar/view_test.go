package calendar

import (
	"testing"
	"time"
)

func TestView_MonthNavigation(t *testing.T) {
	t.Parallel()

	v := NewView(time.Date(2026, time.January, 31, 15, 4, 0, 0, time.UTC))
	if got := v.Anchor; got.Day() != 1 || got.Month() != time.January || got.Hour() != 0 {
		t.Fatalf("expected anchor at first of month; got %v", got)
	}

	prev := v.PrevMonth()
	if prev.Anchor.Year() != 2025 || prev.Anchor.Month() != time.December || prev.Anchor.Day() != 1 {
		t.Fatalf("expected 2025-12-01; got %v", prev.Anchor)
	}
	next := v.NextMonth().NextMonth()
	if next.Anchor.Month() != time.March || next.Anchor.Day() != 1 {
		t.Fatalf("expected 2026-03-01; got %v", next.Anchor)
	}
	if v.Anchor.Month() != time.January {
		t.Fatalf("expected original view unchanged; got %v", v.Anchor)
	}
}

func TestView_SaveNoteRequiresSelection(t *testing.T) {
	t.Parallel()

	v := NewView(time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC))
	v2, notes, ok := v.SaveNote(Notes{}, "orphan", "09:00")
	if ok {
		t.Fatalf("expected no-op without a selected date")
	}
	if notes.Len() != 0 || v2.ModalOpen {
		t.Fatalf("expected nothing to change")
	}
}

func TestView_SelectAndSave(t *testing.T) {
	t.Parallel()

	v := NewView(time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC))
	day := time.Date(2026, time.October, 20, 18, 30, 0, 0, time.UTC)
	v = v.SelectDay(day)
	if !v.ModalOpen || v.Selected == nil {
		t.Fatalf("expected selection to open the modal")
	}
	if v.Selected.Hour() != 0 {
		t.Fatalf("expected selection truncated to the day; got %v", v.Selected)
	}

	var notes Notes
	v, notes, ok := v.SaveNote(notes, "planning", "14:00")
	if !ok {
		t.Fatalf("expected save")
	}
	if v.ModalOpen {
		t.Fatalf("expected modal closed after save")
	}
	got := notes.For("2026-10-20")
	if len(got) != 1 || got[0].Content != "planning" || got[0].Time != "14:00" {
		t.Fatalf("unexpected notes: %#v", got)
	}
	if v.Selected == nil {
		t.Fatalf("expected selection to survive save")
	}
}

func TestView_CloseModalKeepsSelection(t *testing.T) {
	t.Parallel()

	v := NewView(time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)).
		SelectDay(time.Date(2026, time.October, 3, 0, 0, 0, 0, time.UTC)).
		CloseModal()
	if v.ModalOpen {
		t.Fatalf("expected closed modal")
	}
	if v.Selected == nil || v.Selected.Day() != 3 {
		t.Fatalf("expected selection kept; got %v", v.Selected)
	}
}
