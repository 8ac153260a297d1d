package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/Skyhigh44/Productivity/internal/calendar"
	"github.com/Skyhigh44/Productivity/internal/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// calendarPanel is the month grid with its day cursor, the notes and the
// note form.
type calendarPanel struct {
	state  calendar.View
	notes  calendar.Notes
	cursor time.Time
	form   noteForm
	log    *logrus.Entry
}

func newCalendarPanel(now time.Time, log *logrus.Entry) calendarPanel {
	return calendarPanel{
		state:  calendar.NewView(now),
		cursor: dayOf(now),
		form:   newNoteForm(),
		log:    log,
	}
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (p calendarPanel) capturesText() bool { return p.state.ModalOpen }

func (p *calendarPanel) moveCursor(days int) {
	p.cursor = p.cursor.AddDate(0, 0, days)
	if !calendar.SameDay(calendar.MonthStart(p.cursor), p.state.Anchor) {
		p.state.Anchor = calendar.MonthStart(p.cursor)
	}
}

// syncCursorToAnchor keeps the cursor's day-of-month when the displayed month
// changes, clamped to the new month's length.
func (p *calendarPanel) syncCursorToAnchor() {
	a := p.state.Anchor
	d := calendar.ClampDay(a.Year(), a.Month(), p.cursor.Day())
	p.cursor = time.Date(a.Year(), a.Month(), d, 0, 0, 0, 0, a.Location())
}

func (p *calendarPanel) update(msg tea.KeyMsg, now time.Time) tea.Cmd {
	if p.state.ModalOpen {
		cmd, action := p.form.update(msg)
		switch action {
		case noteActionSave:
			p.save()
		case noteActionCancel:
			p.state = p.state.CloseModal()
		}
		return cmd
	}

	switch {
	case key.Matches(msg, keys.Left):
		p.moveCursor(-1)
	case key.Matches(msg, keys.Right):
		p.moveCursor(1)
	case key.Matches(msg, keys.Up):
		p.moveCursor(-7)
	case key.Matches(msg, keys.Down):
		p.moveCursor(7)
	case key.Matches(msg, keys.PrevMonth):
		p.state = p.state.PrevMonth()
		p.syncCursorToAnchor()
	case key.Matches(msg, keys.NextMonth):
		p.state = p.state.NextMonth()
		p.syncCursorToAnchor()
	case key.Matches(msg, keys.Today):
		p.state.Anchor = calendar.MonthStart(now)
		p.cursor = dayOf(now)
	case key.Matches(msg, keys.Enter):
		p.state = p.state.SelectDay(p.cursor)
		return p.form.setFocus(p.form.focus)
	}
	return nil
}

func (p *calendarPanel) save() {
	content, at, ok := p.form.submit()
	if !ok {
		return
	}
	var saved bool
	p.state, p.notes, saved = p.state.SaveNote(p.notes, content, at)
	if saved && p.log != nil {
		p.log.WithFields(logrus.Fields{
			"date": string(calendar.KeyOf(*p.state.Selected)),
			"time": at,
			"days": p.notes.Len(),
		}).Info("meeting note added")
	}
}

func (p calendarPanel) modalView(width int) string {
	if !p.state.ModalOpen || p.state.Selected == nil {
		return ""
	}
	day := *p.state.Selected
	return p.form.view(width, day, p.notes.For(calendar.KeyOf(day)))
}

const (
	dayCellMinInnerW = 3
	dayCellMaxInnerH = 6
)

func (p calendarPanel) view(width, height int, now time.Time, focused bool) string {
	if width < 7*(dayCellMinInnerW+2) {
		width = 7 * (dayCellMinInnerW + 2)
	}
	cellW := width / 7
	innerW := cellW - 2

	prev := styleMuted().Render(glyphPrev())
	next := styleMuted().Render(glyphNext())
	title := lipgloss.JoinHorizontal(lipgloss.Top,
		prev, " ", styleHeading().Render(calendar.MonthTitle(p.state.Anchor)), " ", next,
	)
	if noted := len(p.notes.DaysIn(p.state.Anchor)); noted > 0 {
		label := " days with notes"
		if noted == 1 {
			label = " day with notes"
		}
		title += styleMuted().Render("  " + strconv.Itoa(noted) + label)
	}
	if focused {
		title = lipgloss.NewStyle().Foreground(colorAccent).Render("■ ") + title
	}

	var head strings.Builder
	for _, wd := range calendar.WeekdayNames {
		head.WriteString(lipgloss.PlaceHorizontal(cellW, lipgloss.Center, styleMuted().Render(wd)))
	}

	grid := p.state.Grid()
	rows := (len(grid) + 6) / 7
	innerH := 1
	if rows > 0 {
		innerH = (height-2)/rows - 2
	}
	innerH = clampInt(innerH, 1, dayCellMaxInnerH)

	out := []string{title, head.String()}
	for r := 0; r < rows; r++ {
		cells := make([]string, 0, 7)
		for c := 0; c < 7; c++ {
			i := r*7 + c
			var day *time.Time
			if i < len(grid) {
				day = grid[i]
			}
			cells = append(cells, p.renderDayCell(day, innerW, innerH, now, focused))
		}
		out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return joinLines(out...)
}

// renderDayCell draws one grid cell. A nil day is blank padding before the
// first of the month.
func (p calendarPanel) renderDayCell(day *time.Time, innerW, innerH int, now time.Time, focused bool) string {
	if day == nil {
		return normalizePane("", innerW+2, innerH+2)
	}
	isToday := calendar.SameDay(*day, now)
	isCursor := calendar.SameDay(*day, p.cursor)

	num := strconv.Itoa(day.Day())
	numStyle := lipgloss.NewStyle().Foreground(colorSurfaceFg)
	if isToday {
		numStyle = numStyle.Bold(true).Foreground(colorAccent)
	}
	lines := []string{numStyle.Render(num)}

	notes := p.notes.For(calendar.KeyOf(*day))
	chip := lipgloss.NewStyle().Foreground(colorNoteFg).Background(colorNoteBg)
	for _, n := range notes {
		if len(lines) >= innerH {
			break
		}
		lines = append(lines, chip.Render(truncateCells(noteLabel(n), innerW)))
	}

	border := lipgloss.NormalBorder()
	borderFg := colorCardBorder
	switch {
	case isCursor && focused:
		border = lipgloss.ThickBorder()
		borderFg = colorSelectedBorder
	case isToday:
		borderFg = colorAccent
	}
	if isCursor && isToday && focused {
		borderFg = colorAccent
	}

	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderFg).
		Render(normalizePane(joinLines(lines...), innerW, innerH))
}

func noteLabel(n model.MeetingNote) string {
	content := strings.Join(strings.Fields(n.Content), " ")
	return n.Time + ": " + content
}
