package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type clockTickMsg struct {
	seq int
	at  time.Time
}

// clockTimer drives the header clock with tea.Tick. Each tick re-arms the
// next one. stop bumps seq so a tick already in flight is dropped and the
// chain ends.
type clockTimer struct {
	interval time.Duration
	seq      int
	running  bool
}

func newClockTimer(interval time.Duration) clockTimer {
	if interval <= 0 {
		interval = time.Second
	}
	return clockTimer{interval: interval}
}

func (c *clockTimer) start() tea.Cmd {
	c.seq++
	c.running = true
	return c.next()
}

func (c *clockTimer) stop() {
	c.seq++
	c.running = false
}

// accept reports whether msg belongs to the live chain and, if so, returns
// the command for the following tick.
func (c *clockTimer) accept(msg clockTickMsg) (tea.Cmd, bool) {
	if !c.running || msg.seq != c.seq {
		return nil, false
	}
	return c.next(), true
}

func (c *clockTimer) next() tea.Cmd {
	seq := c.seq
	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return clockTickMsg{seq: seq, at: t}
	})
}
