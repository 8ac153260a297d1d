package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine draws a single-line text input on an input-colored strip of
// exactly bodyW cells.
func renderInputLine(bodyW int, inputView string) string {
	if bodyW < 10 {
		bodyW = 10
	}

	// A newline in the view would wrap the strip and look like inserted lines.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Terminate styling so the cut doesn't bleed into the next cell.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}

// renderField renders a labeled input, highlighting the label when focused.
func renderField(bodyW int, label string, inputView string, focused bool) string {
	lbl := lipgloss.NewStyle().Foreground(colorChromeMutedFg)
	if focused {
		lbl = lbl.Foreground(colorAccent).Bold(true)
	}
	return lbl.Render(label) + "\n" + renderInputLine(bodyW, inputView)
}
