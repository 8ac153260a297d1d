package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WeekdayNames is the grid header, Sunday first.
var WeekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func DaysInMonth(y int, m time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthStart returns local midnight on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// LeadingBlanks is the weekday index (0=Sunday) of the first day of the month.
func LeadingBlanks(anchor time.Time) int {
	return int(MonthStart(anchor).Weekday())
}

// MonthGrid lays out anchor's month for a 7-column grid: one nil per leading
// blank, then one entry per day. Recomputed on every call.
func MonthGrid(anchor time.Time) []*time.Time {
	first := MonthStart(anchor)
	n := DaysInMonth(first.Year(), first.Month())
	lead := int(first.Weekday())

	days := make([]*time.Time, 0, lead+n)
	for i := 0; i < lead; i++ {
		days = append(days, nil)
	}
	for d := 1; d <= n; d++ {
		day := time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, first.Location())
		days = append(days, &day)
	}
	return days
}

// SameDay compares calendar dates (year, month, day) only.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func ClampDay(y int, m time.Month, d int) int {
	if d < 1 {
		return 1
	}
	max := DaysInMonth(y, m)
	if d > max {
		return max
	}
	return d
}

// MonthTitle renders "October 2026".
func MonthTitle(anchor time.Time) string {
	return anchor.Format("January 2006")
}

// LongDate renders "October 16, 2026".
func LongDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// ParseMonth parses "YYYY-MM" into the first day of that month in loc.
func ParseMonth(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation("2006-01", s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// NormalizeTime accepts "H:MM" or "HH:MM" (24h) and returns the zero-padded form.
func NormalizeTime(s string) (string, bool) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return "", false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 || strings.ContainsAny(hh, "+-") {
		return "", false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 || strings.ContainsAny(mm, "+-") {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", h, m), true
}
