package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/Skyhigh44/Productivity/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds.
// We use lipgloss.AdaptiveColor everywhere and only apply "faint" styling on
// dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted = ac("240", "243")
	// Headings, labels and other secondary chrome.
	colorChromeMutedFg = ac("240", "245")

	colorSelectedBg     = ac("#e9e9e9", "#262626")
	colorSelectedFg     = ac("235", "255")
	colorSelectedBorder = ac("232", "255")
	colorCardBorder     = ac("250", "243")

	colorSurfaceBg = ac("255", "235")
	colorSurfaceFg = ac("235", "252")
	colorControlBg = ac("252", "235")
	colorInputBg   = ac("254", "234")

	colorAccent   = ac("27", "62")
	colorAccentFg = ac("255", "235")

	colorErrorFg = ac("160", "203")

	// Note chips inside calendar cells.
	colorNoteBg = ac("189", "17")
	colorNoteFg = ac("18", "153")

	colorDoneFg = ac("246", "241")
)

// cardColors maps dashboard card color names to icon backgrounds.
var cardColors = map[string]lipgloss.AdaptiveColor{
	"purple": ac("91", "135"),
	"green":  ac("28", "35"),
	"blue":   ac("25", "33"),
	"red":    ac("160", "167"),
	"yellow": ac("136", "178"),
	"indigo": ac("55", "63"),
	"pink":   ac("162", "205"),
}

func cardColor(name string) lipgloss.AdaptiveColor {
	if c, ok := cardColors[name]; ok {
		return c
	}
	return colorAccent
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorErrorFg)
}

func styleHeading() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which can disable
// colors in a TUI. We only honor NO_COLOR and otherwise follow the terminal.
func applyColorProfilePreference(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// If TERM/COLORTERM claim more than the detector reports, trust the env.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) configured theme light|dark
// 2) COLORFGBG heuristic ("fg;bg")
// 3) whatever Lip Gloss detects
func applyThemePreference(theme string) {
	switch theme {
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
		return
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
