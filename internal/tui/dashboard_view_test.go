package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/Skyhigh44/Productivity/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDashboard_ShowsAllCards(t *testing.T) {
	m := signedIn(t)
	v := m.View()
	for _, want := range []string{
		"Schedule", "3 meetings today",
		"Projects", "2 due this week",
		"Team", "Tasks", "Progress", "Focus Time", "Breaks", "Next in 45m",
	} {
		if !strings.Contains(v, want) {
			t.Fatalf("expected %q in dashboard view", want)
		}
	}
}

func TestDashboard_NonInteractiveCardDoesNothing(t *testing.T) {
	m := signedIn(t)
	m = m.send(runes("l"))
	m = m.send(runes("l")) // Team
	m = m.send(tea.KeyMsg{Type: tea.KeyEnter})
	if m.dash.panels.Any() {
		t.Fatalf("expected no panel; got %+v", m.dash.panels)
	}
	if m.dash.focus != focusCards {
		t.Fatalf("expected focus to stay on cards")
	}
}

func TestDashboard_ScheduleTogglesClosed(t *testing.T) {
	m := signedIn(t)
	m = m.send(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.dash.panels.Calendar {
		t.Fatalf("expected calendar open")
	}
	m = m.send(tea.KeyMsg{Type: tea.KeyEsc}) // back to cards
	m = m.send(tea.KeyMsg{Type: tea.KeyEnter})
	if m.dash.panels.Any() {
		t.Fatalf("expected calendar closed; got %+v", m.dash.panels)
	}
}

func TestDashboard_CardCursorClamps(t *testing.T) {
	m := signedIn(t)
	m = m.send(runes("h"))
	m = m.send(runes("k"))
	if m.dash.cursor != 0 {
		t.Fatalf("expected cursor clamped at 0; got %d", m.dash.cursor)
	}
	for i := 0; i < 20; i++ {
		m = m.send(runes("l"))
	}
	if m.dash.cursor != len(m.dash.cards)-1 {
		t.Fatalf("expected cursor clamped at last card; got %d", m.dash.cursor)
	}
	m = m.send(runes("k"))
	if got, want := m.dash.cursor, len(m.dash.cards)-1-m.dash.columns(m.contentWidth()); got != want {
		t.Fatalf("expected up to move one row; got %d want %d", got, want)
	}
}

func TestDashboard_CompactCardsOnShortTerminal(t *testing.T) {
	d := newDashboardModel("alice", testNow, time.Second, false, logging.Component(nil, "test"))
	d.panels = d.panels.ToggleSchedule()
	v := d.view(100, 18)
	if lines := strings.Split(v, "\n"); len(lines) > 18 {
		t.Fatalf("expected view to fit 18 lines; got %d", len(lines))
	}
	if strings.Contains(v, "3 meetings today") {
		t.Fatalf("expected compact strip without card content")
	}
}

func TestDashboard_Clock24h(t *testing.T) {
	d := newDashboardModel("alice", testNow, time.Second, true, logging.Component(nil, "test"))
	if !strings.Contains(d.renderHeader(80), "14:05") {
		t.Fatalf("expected 24h clock in header")
	}
}

func TestClockTimer_StopDropsPendingTick(t *testing.T) {
	c := newClockTimer(0)
	if c.interval != time.Second {
		t.Fatalf("expected default interval; got %v", c.interval)
	}
	if cmd := c.start(); cmd == nil {
		t.Fatalf("expected tick command")
	}
	live := clockTickMsg{seq: c.seq}
	if _, ok := c.accept(live); !ok {
		t.Fatalf("expected live tick accepted")
	}
	c.stop()
	if cmd, ok := c.accept(live); ok || cmd != nil {
		t.Fatalf("expected tick dropped after stop")
	}
	// A restart opens a new chain; the old seq stays stale.
	c.start()
	if _, ok := c.accept(live); ok {
		t.Fatalf("expected old chain to stay dead")
	}
}
