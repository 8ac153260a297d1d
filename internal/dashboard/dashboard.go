package dashboard

import "github.com/Skyhigh44/Productivity/internal/model"

// Cards returns the home tiles. The content strings are fixed display text;
// they are not derived from calendar notes or project tasks.
func Cards() []model.Card {
	return []model.Card{
		{Title: "Schedule", Icon: "calendar", Color: "purple", Content: "3 meetings today", Action: model.CardActionSchedule},
		{Title: "Projects", Icon: "briefcase", Color: "green", Content: "2 due this week", Action: model.CardActionProjects},
		{Title: "Team", Icon: "users", Color: "blue", Content: "5 active members"},
		{Title: "Tasks", Icon: "target", Color: "red", Content: "8 pending items"},
		{Title: "Progress", Icon: "chart", Color: "yellow", Content: "68% completed"},
		{Title: "Focus Time", Icon: "brain", Color: "indigo", Content: "2h 30m today"},
		{Title: "Breaks", Icon: "coffee", Color: "pink", Content: "Next in 45m"},
	}
}

// Panels tracks which sub-view is shown under the cards. At most one is open.
type Panels struct {
	Calendar bool
	Projects bool
}

func (p Panels) ToggleSchedule() Panels {
	return Panels{Calendar: !p.Calendar, Projects: false}
}

func (p Panels) ToggleProjects() Panels {
	return Panels{Calendar: false, Projects: !p.Projects}
}

func (p Panels) Any() bool { return p.Calendar || p.Projects }

// Activate applies a card's action. Non-interactive cards change nothing.
func (p Panels) Activate(action model.CardAction) Panels {
	switch action {
	case model.CardActionSchedule:
		return p.ToggleSchedule()
	case model.CardActionProjects:
		return p.ToggleProjects()
	default:
		return p
	}
}
