package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/Skyhigh44/Productivity/internal/calendar"
	"github.com/Skyhigh44/Productivity/internal/logging"

	"github.com/spf13/cobra"
)

type monthGrid struct {
	Month         string   `json:"month"`
	Title         string   `json:"title"`
	Weekdays      []string `json:"weekdays"`
	LeadingBlanks int      `json:"leadingBlanks"`
	DaysInMonth   int      `json:"daysInMonth"`
	// Cells holds day numbers in grid order; null marks padding before day 1.
	Cells []*int `json:"cells"`
	Today *int   `json:"today,omitempty"`
}

func newMonthGrid(anchor, now time.Time) monthGrid {
	g := monthGrid{
		Month:         anchor.Format("2006-01"),
		Title:         calendar.MonthTitle(anchor),
		Weekdays:      calendar.WeekdayNames[:],
		LeadingBlanks: calendar.LeadingBlanks(anchor),
		DaysInMonth:   calendar.DaysInMonth(anchor.Year(), anchor.Month()),
	}
	for _, d := range calendar.MonthGrid(anchor) {
		if d == nil {
			g.Cells = append(g.Cells, nil)
			continue
		}
		n := d.Day()
		g.Cells = append(g.Cells, &n)
		if calendar.SameDay(*d, now) {
			today := n
			g.Today = &today
		}
	}
	return g
}

// Text renders a 7-column grid; today is marked with '*'.
func (g monthGrid) Text() string {
	const colW = 4
	var b strings.Builder
	title := g.Title
	if pad := (7*colW - len(title)) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(title)
	b.WriteString("\n")
	for _, wd := range g.Weekdays {
		b.WriteString(padLeft(wd, colW))
	}
	for i, c := range g.Cells {
		if i%7 == 0 {
			b.WriteString("\n")
		}
		cell := ""
		if c != nil {
			cell = strconv.Itoa(*c)
			if g.Today != nil && *g.Today == *c {
				cell += "*"
			} else {
				cell += " "
			}
		}
		b.WriteString(padLeft(cell, colW))
	}
	return b.String()
}

func padLeft(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}

func newCalendarCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar [YYYY-MM]",
		Short: "Print a month grid (default: current month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.clock.Now()
			anchor := calendar.MonthStart(now)
			if len(args) == 1 {
				t, ok := calendar.ParseMonth(args[0], now.Location())
				if !ok {
					return writeErr(cmd, errUsage(args[0], "expected YYYY-MM"))
				}
				anchor = t
			}
			logging.Component(app.Logger, "calendar").WithField("month", anchor.Format("2006-01")).Debug("grid")
			return writeOut(cmd, app, newMonthGrid(anchor, now))
		},
	}
}
