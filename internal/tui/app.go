package tui

import (
	"time"

	"github.com/Skyhigh44/Productivity/internal/clock"
	"github.com/Skyhigh44/Productivity/internal/config"
	"github.com/Skyhigh44/Productivity/internal/docs"
	"github.com/Skyhigh44/Productivity/internal/logging"
	"github.com/Skyhigh44/Productivity/internal/model"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// Options configures the interactive app.
type Options struct {
	Config config.Config
	Logger logrus.FieldLogger
	Clock  clock.Clock
}

// appModel owns the session and switches between the sign-in screen and the
// dashboard. The dashboard exists only after sign-in.
type appModel struct {
	cfg   config.Config
	clock clock.Clock
	log   *logrus.Entry

	session model.Session
	auth    authModel
	dash    *dashboardModel

	help     help.Model
	showHelp bool

	width  int
	height int
}

func newAppModel(opts Options) appModel {
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real{}
	}
	h := help.New()
	h.ShortSeparator = "  "
	return appModel{
		cfg:   opts.Config,
		clock: clk,
		log:   logging.Component(opts.Logger, "tui"),
		auth:  newAuthModel(),
		help:  h,
	}
}

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clockTickMsg:
		if m.dash == nil {
			return m, nil
		}
		return m, m.dash.onTick(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	// Cursor blink and other input-internal messages.
	var cmd tea.Cmd
	switch {
	case !m.session.Authenticated:
		switch m.auth.focus {
		case authFocusUsername:
			m.auth.username, cmd = m.auth.username.Update(msg)
		case authFocusPIN:
			m.auth.pin, cmd = m.auth.pin.Update(msg)
		}
	case m.dash != nil && m.dash.panels.Calendar && m.dash.cal.state.ModalOpen:
		cmd = m.dash.cal.form.updateOther(msg)
	case m.dash != nil && m.dash.panels.Projects && m.dash.proj.renaming:
		m.dash.proj.rename, cmd = m.dash.proj.rename.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.ForceQ) {
		return m.quit()
	}

	if m.showHelp {
		if key.Matches(msg, keys.Help, keys.Back, keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	if !m.session.Authenticated {
		cmd, submitted := m.auth.update(msg)
		if !submitted {
			return m, cmd
		}
		return m.signIn()
	}

	if !m.dash.capturesText() {
		switch {
		case key.Matches(msg, keys.Quit):
			return m.quit()
		case key.Matches(msg, keys.Help):
			m.showHelp = true
			return m, nil
		}
	}
	return m, m.dash.update(msg, m.contentWidth())
}

func (m appModel) signIn() (tea.Model, tea.Cmd) {
	next, err := m.auth.submit(m.session)
	if err != nil {
		m.log.WithField("error", err.Error()).Debug("sign-in rejected")
		return m, nil
	}
	m.session = next
	m.log.WithField("user", next.Username).Info("signed in")

	tick := m.cfg.Tick
	if tick <= 0 {
		tick = time.Second
	}
	d := newDashboardModel(next.Username, m.clock.Now(), tick, m.cfg.Clock24h, m.log)
	m.dash = &d
	return m, m.dash.mount()
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	if m.dash != nil {
		m.dash.teardown()
	}
	m.log.Debug("quit")
	return m, tea.Quit
}

func (m appModel) contentWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	return w
}

func (m appModel) contentHeight() int {
	h := m.height - 3
	if h < 10 {
		h = 10
	}
	return h
}

func (m appModel) View() string {
	if m.width == 0 {
		return ""
	}

	if m.showHelp {
		return overlayCenter(m.width, m.height, m.helpView())
	}

	if !m.session.Authenticated {
		return lipgloss.JoinVertical(lipgloss.Left,
			normalizePane(m.auth.view(m.width, m.height-1), m.width, m.height-1),
			m.footer(authHelp()),
		)
	}

	if modal := m.dash.modalView(m.width); modal != "" {
		return lipgloss.JoinVertical(lipgloss.Left,
			normalizePane(overlayCenter(m.width, m.height-1, modal), m.width, m.height-1),
			m.footer(m.dash.helpKeys()),
		)
	}

	body := m.dash.view(m.contentWidth(), m.contentHeight())
	body = lipgloss.NewStyle().Padding(1, 2, 0, 2).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left,
		normalizePane(body, m.width, m.height-1),
		m.footer(m.dash.helpKeys()),
	)
}

func (m appModel) footer(b bindings) string {
	return lipgloss.NewStyle().Padding(0, 2).Render(m.help.View(b))
}

func (m appModel) helpView() string {
	md, ok := docs.Get("keys")
	if !ok {
		md = "No help available."
	}
	return renderModalBox(m.width, "Help", renderMarkdown(md, modalBodyWidth(m.width)))
}
