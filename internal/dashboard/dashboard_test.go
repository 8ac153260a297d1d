package dashboard

import (
	"testing"

	"github.com/Skyhigh44/Productivity/internal/model"
)

func TestCards_SevenWithTwoInteractive(t *testing.T) {
	t.Parallel()

	cards := Cards()
	if len(cards) != 7 {
		t.Fatalf("expected 7 cards; got %d", len(cards))
	}
	var interactive []string
	for _, c := range cards {
		if c.Interactive() {
			interactive = append(interactive, c.Title)
		}
	}
	if len(interactive) != 2 || interactive[0] != "Schedule" || interactive[1] != "Projects" {
		t.Fatalf("expected Schedule and Projects to be interactive; got %v", interactive)
	}
	if cards[0].Content != "3 meetings today" || cards[1].Content != "2 due this week" {
		t.Fatalf("unexpected card text: %q / %q", cards[0].Content, cards[1].Content)
	}
}

func TestPanels_MutuallyExclusive(t *testing.T) {
	t.Parallel()

	var p Panels
	p = p.ToggleSchedule()
	if !p.Calendar || p.Projects {
		t.Fatalf("expected calendar open only; got %#v", p)
	}
	p = p.ToggleProjects()
	if p.Calendar || !p.Projects {
		t.Fatalf("expected projects open and schedule closed; got %#v", p)
	}
	p = p.ToggleSchedule()
	if !p.Calendar || p.Projects {
		t.Fatalf("expected schedule to force projects closed; got %#v", p)
	}
}

func TestPanels_ToggleTwiceCloses(t *testing.T) {
	t.Parallel()

	p := Panels{}.ToggleSchedule().ToggleSchedule()
	if p.Any() {
		t.Fatalf("expected all closed; got %#v", p)
	}
	p = Panels{}.ToggleProjects().ToggleProjects()
	if p.Any() {
		t.Fatalf("expected all closed; got %#v", p)
	}
}

func TestPanels_ActivateIgnoresStaticCards(t *testing.T) {
	t.Parallel()

	p := Panels{Calendar: true}
	if got := p.Activate(model.CardActionNone); got != p {
		t.Fatalf("expected no change; got %#v", got)
	}
	if got := p.Activate(model.CardActionProjects); got.Calendar || !got.Projects {
		t.Fatalf("expected projects panel; got %#v", got)
	}
}
