package model

// Session is the in-memory sign-in state. The zero value is signed out.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
}

// MeetingNote is a timed note attached to a calendar day.
// Time is "HH:MM" (24h, zero padded) so lexicographic order is chronological.
type MeetingNote struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Time    string `json:"time"`
}

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

// Toggled flips between pending and completed.
func (s TaskStatus) Toggled() TaskStatus {
	if s == TaskCompleted {
		return TaskPending
	}
	return TaskCompleted
}

type Task struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Status TaskStatus `json:"status"`
}

type Project struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Tasks    []Task `json:"tasks"`
	Expanded bool   `json:"isExpanded"`
}

type CardAction int

const (
	CardActionNone CardAction = iota
	CardActionSchedule
	CardActionProjects
)

// Card is a dashboard tile. Content is display text only.
type Card struct {
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Icon    string     `json:"icon"`
	Color   string     `json:"color"`
	Action  CardAction `json:"-"`
}

func (c Card) Interactive() bool { return c.Action != CardActionNone }
