package calendar

import (
	"reflect"
	"testing"
	"time"

	"github.com/Skyhigh44/Productivity/internal/model"
)

func noteTimes(notes []model.MeetingNote) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Time)
	}
	return out
}

func TestNotesAdd_SortsByTimeRegardlessOfInsertionOrder(t *testing.T) {
	t.Parallel()

	key := DateKey("2026-10-16")
	var n Notes
	n = n.Add(key, NewNote("standup", "10:00"))
	n = n.Add(key, NewNote("coffee", "09:00"))
	n = n.Add(key, NewNote("review", "11:30"))

	want := []string{"09:00", "10:00", "11:30"}
	if got := noteTimes(n.For(key)); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
}

func TestNotesAdd_EqualTimesKeepInsertionOrder(t *testing.T) {
	t.Parallel()

	key := DateKey("2026-10-16")
	var n Notes
	n = n.Add(key, NewNote("first", "09:00"))
	n = n.Add(key, NewNote("early", "08:00"))
	n = n.Add(key, NewNote("second", "09:00"))

	got := n.For(key)
	if len(got) != 3 {
		t.Fatalf("expected 3 notes; got %d", len(got))
	}
	if got[1].Content != "first" || got[2].Content != "second" {
		t.Fatalf("expected stable order for equal times; got %#v", got)
	}
}

func TestNotesAdd_LeavesPreviousSnapshotUntouched(t *testing.T) {
	t.Parallel()

	key := DateKey("2026-10-16")
	before := Notes{}.Add(key, NewNote("a", "10:00"))
	after := before.Add(key, NewNote("b", "08:00"))
	_ = after.Add(DateKey("2026-10-17"), NewNote("c", "12:00"))

	if got := len(before.For(key)); got != 1 {
		t.Fatalf("expected previous snapshot to keep 1 note; got %d", got)
	}
	if before.Len() != 1 || after.Len() != 1 {
		t.Fatalf("expected one key in each snapshot; got before=%d after=%d", before.Len(), after.Len())
	}
	if got := noteTimes(after.For(key)); !reflect.DeepEqual(got, []string{"08:00", "10:00"}) {
		t.Fatalf("unexpected after snapshot: %v", got)
	}
}

func TestNotes_KeysOnlyForDaysWithNotes(t *testing.T) {
	t.Parallel()

	var n Notes
	if n.Len() != 0 || len(n.Keys()) != 0 {
		t.Fatalf("expected empty notes")
	}
	if got := n.For(DateKey("2026-10-16")); got != nil {
		t.Fatalf("expected nil for missing key; got %#v", got)
	}
	n = n.Add("2026-10-20", NewNote("x", "09:00"))
	n = n.Add("2026-10-02", NewNote("y", "09:00"))
	want := []DateKey{"2026-10-02", "2026-10-20"}
	if got := n.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected sorted keys %v; got %v", want, got)
	}
}

func TestNotes_DaysInFiltersByMonth(t *testing.T) {
	t.Parallel()

	var n Notes
	n = n.Add("2026-11-01", NewNote("x", "09:00"))
	n = n.Add("2026-10-20", NewNote("y", "09:00"))
	n = n.Add("2026-10-02", NewNote("z", "09:00"))
	n = n.Add("2026-10-02", NewNote("w", "10:00"))

	oct := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.Local)
	want := []DateKey{"2026-10-02", "2026-10-20"}
	if got := n.DaysIn(oct); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
	if got := n.DaysIn(oct.AddDate(0, 2, 0)); len(got) != 0 {
		t.Fatalf("expected no days in December; got %v", got)
	}
}

func TestNotes_ForReturnsCopy(t *testing.T) {
	t.Parallel()

	key := DateKey("2026-10-16")
	n := Notes{}.Add(key, NewNote("a", "10:00"))
	got := n.For(key)
	got[0].Content = "mutated"
	if n.For(key)[0].Content != "a" {
		t.Fatalf("expected For to return a copy")
	}
}

func TestNewNote_UniqueIDs(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		id := NewNote("x", "09:00").ID
		if id == "" || seen[id] {
			t.Fatalf("expected unique non-empty id; got %q", id)
		}
		seen[id] = true
	}
}

func TestKeyOf_UsesLocalCalendarDate(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+9", 9*60*60)
	d := time.Date(2026, time.October, 16, 0, 0, 0, 0, loc)
	if got := KeyOf(d); got != "2026-10-16" {
		t.Fatalf("expected 2026-10-16; got %s", got)
	}
}
