package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	modalMaxWidth = 64
	modalMinWidth = 24
)

// modalBodyWidth is the content width inside a modal for a terminal of the
// given width (border and padding excluded).
func modalBodyWidth(width int) int {
	w := width - 8
	if w > modalMaxWidth {
		w = modalMaxWidth
	}
	if w < modalMinWidth {
		w = modalMinWidth
	}
	return w
}

func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorSurfaceBg).
		Width(bodyW).
		Render(title)

	body := lipgloss.NewStyle().
		Foreground(colorSurfaceFg).
		Background(colorSurfaceBg).
		Width(bodyW).
		Render(content)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSelectedBorder).
		BorderBackground(colorSurfaceBg).
		Background(colorSurfaceBg).
		Padding(1, 2).
		Render(head + "\n\n" + body)
}

// renderButtons draws a row of buttons with the active one highlighted.
func renderButtons(labels []string, active int) string {
	// No borders: nested borders inside a colored modal leave artifacts on
	// some terminals.
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorAccentFg).
		Background(colorAccent).
		Bold(true)

	parts := make([]string, 0, len(labels)*2)
	sep := lipgloss.NewStyle().Background(colorSurfaceBg).Render(" ")
	for i, l := range labels {
		if i > 0 {
			parts = append(parts, sep)
		}
		if i == active {
			parts = append(parts, btnActive.Render(l))
		} else {
			parts = append(parts, btnBase.Render(l))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// overlayCenter places fg in the middle of a width x height screen. The
// background is not composited; the modal replaces the view while open.
func overlayCenter(width, height int, fg string) string {
	if width <= 0 || height <= 0 {
		return fg
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, fg)
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n")
}
