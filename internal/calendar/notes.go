package calendar

import (
	"sort"
	"strings"
	"time"

	"github.com/Skyhigh44/Productivity/internal/model"

	"github.com/google/uuid"
)

// DateKey is a local calendar date formatted as YYYY-MM-DD.
type DateKey string

func KeyOf(t time.Time) DateKey {
	return DateKey(t.Format("2006-01-02"))
}

// newNoteID returns a time-ordered unique id (UUIDv7).
var newNoteID = func() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Notes maps date keys to time-sorted meeting notes.
//
// Notes is a value: Add returns a new Notes and leaves the receiver as it was,
// so a previously rendered snapshot never observes a half-applied insert.
type Notes struct {
	byDay map[DateKey][]model.MeetingNote
}

func (n Notes) Len() int { return len(n.byDay) }

// For returns a copy of the notes stored under key (nil when none).
func (n Notes) For(key DateKey) []model.MeetingNote {
	notes := n.byDay[key]
	if len(notes) == 0 {
		return nil
	}
	out := make([]model.MeetingNote, len(notes))
	copy(out, notes)
	return out
}

// Keys returns the date keys in ascending order.
func (n Notes) Keys() []DateKey {
	keys := make([]DateKey, 0, len(n.byDay))
	for k := range n.byDay {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// DaysIn returns the keys in anchor's month that hold notes, ascending.
func (n Notes) DaysIn(anchor time.Time) []DateKey {
	prefix := anchor.Format("2006-01-")
	var out []DateKey
	for _, k := range n.Keys() {
		if strings.HasPrefix(string(k), prefix) {
			out = append(out, k)
		}
	}
	return out
}

// Add appends note under key and re-sorts that day by Time. Equal times keep
// insertion order.
func (n Notes) Add(key DateKey, note model.MeetingNote) Notes {
	next := make(map[DateKey][]model.MeetingNote, len(n.byDay)+1)
	for k, v := range n.byDay {
		next[k] = v
	}
	prev := n.byDay[key]
	day := make([]model.MeetingNote, 0, len(prev)+1)
	day = append(day, prev...)
	day = append(day, note)
	sort.SliceStable(day, func(i, j int) bool { return day[i].Time < day[j].Time })
	next[key] = day
	return Notes{byDay: next}
}

// NewNote builds a note with a fresh id.
func NewNote(content, at string) model.MeetingNote {
	return model.MeetingNote{ID: newNoteID(), Content: content, Time: at}
}
