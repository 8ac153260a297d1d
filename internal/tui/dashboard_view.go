package tui

import (
	"time"

	"github.com/Skyhigh44/Productivity/internal/clock"
	"github.com/Skyhigh44/Productivity/internal/dashboard"
	"github.com/Skyhigh44/Productivity/internal/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

type dashFocus int

const (
	focusCards dashFocus = iota
	focusPanel
)

const (
	cardMinW     = 24
	cardMaxCols  = 4
	cardHeight   = 4 // border + two content lines
	panelMinRows = 14
)

type dashboardModel struct {
	username string
	cards    []model.Card
	cursor   int
	panels   dashboard.Panels
	focus    dashFocus

	cal  calendarPanel
	proj projectsPanel

	timer  clockTimer
	now    time.Time
	hour24 bool

	log *logrus.Entry
}

func newDashboardModel(username string, now time.Time, tick time.Duration, hour24 bool, log *logrus.Entry) dashboardModel {
	return dashboardModel{
		username: username,
		cards:    dashboard.Cards(),
		cal:      newCalendarPanel(now, log.WithField("panel", "calendar")),
		proj:     newProjectsPanel(log.WithField("panel", "projects")),
		timer:    newClockTimer(tick),
		now:      now,
		hour24:   hour24,
		log:      log,
	}
}

// mount starts the header clock.
func (d *dashboardModel) mount() tea.Cmd {
	return d.timer.start()
}

// teardown stops the header clock; ticks already scheduled are ignored.
func (d *dashboardModel) teardown() {
	d.timer.stop()
}

func (d *dashboardModel) onTick(msg clockTickMsg) tea.Cmd {
	cmd, ok := d.timer.accept(msg)
	if !ok {
		return nil
	}
	d.now = msg.at
	return cmd
}

func (d dashboardModel) capturesText() bool {
	switch {
	case d.panels.Calendar:
		return d.cal.capturesText()
	case d.panels.Projects:
		return d.proj.capturesText()
	}
	return false
}

func (d dashboardModel) columns(width int) int {
	return clampInt(width/cardMinW, 1, cardMaxCols)
}

func (d *dashboardModel) update(msg tea.KeyMsg, width int) tea.Cmd {
	if d.focus == focusPanel && d.panels.Any() {
		if !d.capturesText() {
			switch {
			case key.Matches(msg, keys.Tab), key.Matches(msg, keys.Back):
				d.focus = focusCards
				return nil
			}
		}
		if d.panels.Calendar {
			return d.cal.update(msg, d.now)
		}
		return d.proj.update(msg)
	}

	cols := d.columns(width)
	switch {
	case key.Matches(msg, keys.Left):
		d.cursor--
	case key.Matches(msg, keys.Right):
		d.cursor++
	case key.Matches(msg, keys.Up):
		d.cursor -= cols
	case key.Matches(msg, keys.Down):
		d.cursor += cols
	case key.Matches(msg, keys.Tab):
		if d.panels.Any() {
			d.focus = focusPanel
		}
	case key.Matches(msg, keys.Enter):
		d.activate()
	}
	d.cursor = clampInt(d.cursor, 0, len(d.cards)-1)
	return nil
}

// activate runs the action of the card under the cursor. An opened panel
// takes focus.
func (d *dashboardModel) activate() {
	card := d.cards[d.cursor]
	if !card.Interactive() {
		return
	}
	d.panels = d.panels.Activate(card.Action)
	if d.panels.Any() {
		d.focus = focusPanel
	} else {
		d.focus = focusCards
	}
	d.log.WithFields(logrus.Fields{
		"card":     card.Title,
		"calendar": d.panels.Calendar,
		"projects": d.panels.Projects,
	}).Debug("card activated")
}

func (d dashboardModel) modalView(width int) string {
	switch {
	case d.panels.Calendar:
		return d.cal.modalView(width)
	case d.panels.Projects:
		return d.proj.renameView(width)
	}
	return ""
}

func (d dashboardModel) helpKeys() bindings {
	if d.focus == focusPanel {
		switch {
		case d.panels.Calendar && d.cal.capturesText():
			return noteFormHelp()
		case d.panels.Calendar:
			return calendarHelp()
		case d.panels.Projects && d.proj.capturesText():
			return renameHelp()
		case d.panels.Projects:
			return projectsHelp()
		}
	}
	return cardsHelp()
}

func (d dashboardModel) view(width, height int) string {
	header := d.renderHeader(width)

	compact := d.panels.Any() && height < cardHeight*d.cardRows(width)+panelMinRows
	var cards string
	if compact {
		cards = d.renderCardStrip(width)
	} else {
		cards = d.renderCardGrid(width)
	}

	parts := []string{header, "", cards}
	if d.panels.Any() {
		used := lipgloss.Height(header) + 1 + lipgloss.Height(cards) + 1
		panelH := height - used - 1
		if panelH < 3 {
			panelH = 3
		}
		var panel string
		focused := d.focus == focusPanel
		switch {
		case d.panels.Calendar:
			panel = d.cal.view(width, panelH, d.now, focused)
		case d.panels.Projects:
			panel = d.proj.view(width, panelH, focused)
		}
		parts = append(parts, "", normalizePane(panel, width, panelH))
	}
	return joinLines(parts...)
}

func (d dashboardModel) renderHeader(width int) string {
	welcome := styleHeading().Render("Welcome, " + d.username)
	clk := lipgloss.NewStyle().Foreground(colorChromeMutedFg).Render(glyphClock() + " " + clock.Format(d.now, d.hour24))
	gap := width - lipgloss.Width(welcome) - lipgloss.Width(clk)
	if gap < 1 {
		gap = 1
	}
	return welcome + lipgloss.NewStyle().Width(gap).Render("") + clk
}

func (d dashboardModel) cardRows(width int) int {
	cols := d.columns(width)
	return (len(d.cards) + cols - 1) / cols
}

func (d dashboardModel) renderCardGrid(width int) string {
	cols := d.columns(width)
	cardW := width/cols - 2
	var rows []string
	for start := 0; start < len(d.cards); start += cols {
		end := start + cols
		if end > len(d.cards) {
			end = len(d.cards)
		}
		row := make([]string, 0, cols)
		for i := start; i < end; i++ {
			row = append(row, d.renderCard(d.cards[i], cardW, i == d.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return joinLines(rows...)
}

func (d dashboardModel) renderCard(c model.Card, innerW int, selected bool) string {
	icon := lipgloss.NewStyle().
		Foreground(colorAccentFg).
		Background(cardColor(c.Color)).
		Padding(0, 1).
		Render(glyphCardIcon(c.Icon))
	title := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render(c.Title)
	body := styleMuted().Render(c.Content)

	border := lipgloss.RoundedBorder()
	borderFg := colorCardBorder
	if selected && d.focus == focusCards {
		border = lipgloss.ThickBorder()
		borderFg = colorSelectedBorder
	}
	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderFg).
		Render(normalizePane(icon+" "+title+"\n"+body, innerW, 2))
}

// renderCardStrip is the one-line card row used when a panel needs the room.
func (d dashboardModel) renderCardStrip(width int) string {
	var out string
	for i, c := range d.cards {
		label := " " + glyphCardIcon(c.Icon) + " " + c.Title + " "
		st := lipgloss.NewStyle().Foreground(colorSurfaceFg)
		if i == d.cursor && d.focus == focusCards {
			st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
		}
		out += st.Render(label)
	}
	return normalizePane(out, width, 1)
}
