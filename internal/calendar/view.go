package calendar

import "time"

// View is the calendar's own state: displayed month, selected day and
// whether the note modal is open. Methods return updated copies.
type View struct {
	Anchor    time.Time
	Selected  *time.Time
	ModalOpen bool
}

func NewView(now time.Time) View {
	return View{Anchor: MonthStart(now)}
}

func (v View) PrevMonth() View {
	v.Anchor = time.Date(v.Anchor.Year(), v.Anchor.Month()-1, 1, 0, 0, 0, 0, v.Anchor.Location())
	return v
}

func (v View) NextMonth() View {
	v.Anchor = time.Date(v.Anchor.Year(), v.Anchor.Month()+1, 1, 0, 0, 0, 0, v.Anchor.Location())
	return v
}

// Grid is MonthGrid for the displayed month.
func (v View) Grid() []*time.Time {
	return MonthGrid(v.Anchor)
}

// SelectDay selects day and opens the note modal.
func (v View) SelectDay(day time.Time) View {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	v.Selected = &d
	v.ModalOpen = true
	return v
}

func (v View) CloseModal() View {
	v.ModalOpen = false
	return v
}

// SaveNote adds a note for the selected day and closes the modal. Without a
// selected day nothing changes and ok is false.
func (v View) SaveNote(notes Notes, content, at string) (View, Notes, bool) {
	if v.Selected == nil {
		return v, notes, false
	}
	notes = notes.Add(KeyOf(*v.Selected), NewNote(content, at))
	v.ModalOpen = false
	return v, notes, true
}
