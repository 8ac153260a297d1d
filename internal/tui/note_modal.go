package tui

import (
	"strings"
	"time"

	"github.com/Skyhigh44/Productivity/internal/calendar"
	"github.com/Skyhigh44/Productivity/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultNoteTime = "09:00"

type noteFocus int

const (
	noteFocusTime noteFocus = iota
	noteFocusBody
	noteFocusSave
	noteFocusCancel
	noteFocusCount
)

// noteForm is the meeting note form. It lives as long as the calendar panel,
// so a cancelled draft is still there when the modal is reopened.
type noteForm struct {
	at    textinput.Model
	body  textarea.Model
	focus noteFocus
}

func newNoteForm() noteForm {
	at := textinput.New()
	at.Placeholder = "HH:MM"
	at.CharLimit = 5
	at.Width = 8
	at.Prompt = ""
	at.SetValue(defaultNoteTime)

	body := textarea.New()
	body.Placeholder = "Meeting notes…"
	body.CharLimit = 0
	body.ShowLineNumbers = false
	body.SetWidth(48)
	body.SetHeight(4)

	f := noteForm{at: at, body: body}
	f.setFocus(noteFocusBody)
	return f
}

func (f *noteForm) setFocus(fc noteFocus) tea.Cmd {
	f.focus = fc
	f.at.Blur()
	f.body.Blur()
	switch fc {
	case noteFocusTime:
		return f.at.Focus()
	case noteFocusBody:
		return f.body.Focus()
	}
	return nil
}

// submit returns the trimmed note and normalized time. When either is
// missing or malformed ok is false and the form is left as is; on success
// both fields are reset.
func (f *noteForm) submit() (content, at string, ok bool) {
	content = strings.TrimSpace(f.body.Value())
	if content == "" {
		return "", "", false
	}
	at, ok = calendar.NormalizeTime(f.at.Value())
	if !ok {
		return "", "", false
	}
	f.reset()
	return content, at, true
}

func (f *noteForm) reset() {
	f.body.Reset()
	f.at.SetValue(defaultNoteTime)
	f.setFocus(noteFocusBody)
}

type noteAction int

const (
	noteActionNone noteAction = iota
	noteActionSave
	noteActionCancel
)

// update handles a key while the modal is open and reports whether the key
// asked to save or cancel.
func (f *noteForm) update(msg tea.KeyMsg) (tea.Cmd, noteAction) {
	switch {
	case key.Matches(msg, keys.Back):
		return nil, noteActionCancel
	case key.Matches(msg, keys.Save):
		return nil, noteActionSave
	case key.Matches(msg, keys.Tab):
		return f.setFocus((f.focus + 1) % noteFocusCount), noteActionNone
	case key.Matches(msg, keys.ShiftTab):
		return f.setFocus((f.focus + noteFocusCount - 1) % noteFocusCount), noteActionNone
	}

	var cmd tea.Cmd
	switch f.focus {
	case noteFocusTime:
		if msg.Type == tea.KeyEnter {
			return f.setFocus(noteFocusBody), noteActionNone
		}
		f.at, cmd = f.at.Update(msg)
	case noteFocusBody:
		f.body, cmd = f.body.Update(msg)
	case noteFocusSave:
		if msg.Type == tea.KeyEnter {
			return nil, noteActionSave
		}
	case noteFocusCancel:
		if msg.Type == tea.KeyEnter {
			return nil, noteActionCancel
		}
	}
	return cmd, noteActionNone
}

func (f *noteForm) updateOther(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case noteFocusTime:
		f.at, cmd = f.at.Update(msg)
	case noteFocusBody:
		f.body, cmd = f.body.Update(msg)
	}
	return cmd
}

func (f noteForm) view(width int, day time.Time, existing []model.MeetingNote) string {
	bodyW := modalBodyWidth(width)
	f.body.SetWidth(bodyW)

	lines := []string{}
	if len(existing) > 0 {
		lines = append(lines, styleHeading().Render("Meetings"))
		for _, n := range existing {
			lines = append(lines, renderExistingNote(bodyW, n))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		renderField(bodyW, "Time", f.at.View(), f.focus == noteFocusTime),
		"",
	)

	lbl := lipgloss.NewStyle().Foreground(colorChromeMutedFg)
	if f.focus == noteFocusBody {
		lbl = lbl.Foreground(colorAccent).Bold(true)
	}
	lines = append(lines, lbl.Render("Note"), f.body.View(), "")

	active := -1
	switch f.focus {
	case noteFocusSave:
		active = 0
	case noteFocusCancel:
		active = 1
	}
	lines = append(lines, renderButtons([]string{"Save", "Cancel"}, active))

	return renderModalBox(width, calendar.LongDate(day), joinLines(lines...))
}

func renderExistingNote(bodyW int, n model.MeetingNote) string {
	at := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(n.Time)
	content := renderMarkdown(n.Content, bodyW-len(n.Time)-1)
	return lipgloss.JoinHorizontal(lipgloss.Top, at, " ", content)
}
