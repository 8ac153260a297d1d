package tui

import (
	"strings"

	"github.com/Skyhigh44/Productivity/internal/auth"
	"github.com/Skyhigh44/Productivity/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type authFocus int

const (
	authFocusUsername authFocus = iota
	authFocusPIN
	authFocusSubmit
	authFocusCount
)

type authModel struct {
	username textinput.Model
	pin      textinput.Model
	focus    authFocus
	err      string
}

func newAuthModel() authModel {
	u := textinput.New()
	u.Placeholder = "Username"
	u.CharLimit = 0
	u.Width = 30
	u.Prompt = ""

	p := textinput.New()
	p.Placeholder = "4-digit PIN"
	p.CharLimit = 4
	p.Width = 30
	p.Prompt = ""
	p.EchoMode = textinput.EchoPassword
	p.EchoCharacter = '•'

	m := authModel{username: u, pin: p}
	m.setFocus(authFocusUsername)
	return m
}

func (m *authModel) setFocus(f authFocus) tea.Cmd {
	m.focus = f
	m.username.Blur()
	m.pin.Blur()
	switch f {
	case authFocusUsername:
		return m.username.Focus()
	case authFocusPIN:
		return m.pin.Focus()
	}
	return nil
}

// submit validates the form. On success the PIN input is cleared and the
// new session is returned; on failure the message stays until a later
// submit succeeds.
func (m *authModel) submit(s model.Session) (model.Session, error) {
	next, err := auth.SignIn(s, m.username.Value(), m.pin.Value())
	if err != nil {
		m.err = err.Error()
		return s, err
	}
	m.err = ""
	m.pin.SetValue("")
	return next, nil
}

// update handles a key on the sign-in screen. submitted is true when the
// key asked for a submit; the caller runs it.
func (m *authModel) update(msg tea.KeyMsg) (cmd tea.Cmd, submitted bool) {
	switch {
	// Letter bindings (hjkl) would swallow typed text here; only tab and the
	// arrow keys move focus.
	case key.Matches(msg, keys.Tab), msg.Type == tea.KeyDown:
		return m.setFocus((m.focus + 1) % authFocusCount), false
	case key.Matches(msg, keys.ShiftTab), msg.Type == tea.KeyUp:
		return m.setFocus((m.focus + authFocusCount - 1) % authFocusCount), false
	case msg.Type == tea.KeyEnter:
		if m.focus == authFocusUsername {
			return m.setFocus(authFocusPIN), false
		}
		return nil, true
	}

	switch m.focus {
	case authFocusUsername:
		m.username, cmd = m.username.Update(msg)
	case authFocusPIN:
		m.pin, cmd = m.pin.Update(msg)
	}
	return cmd, false
}

func (m authModel) view(width, height int) string {
	bodyW := 36
	title := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render("Daily Dashboard")
	sub := styleMuted().Render("Sign in to continue")

	btn := renderButtons([]string{"Continue"}, -1)
	if m.focus == authFocusSubmit {
		btn = renderButtons([]string{"Continue"}, 0)
	}

	lines := []string{
		title,
		sub,
		"",
		renderField(bodyW, "Username", m.username.View(), m.focus == authFocusUsername),
		"",
		renderField(bodyW, "PIN", m.pin.View(), m.focus == authFocusPIN),
		"",
	}
	if strings.TrimSpace(m.err) != "" {
		lines = append(lines, styleError().Render(m.err), "")
	}
	lines = append(lines, btn)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Padding(1, 3).
		Render(joinLines(lines...))

	return overlayCenter(width, height, box)
}
