package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/Skyhigh44/Productivity/internal/config"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdRendererMu sync.Mutex
	// Renderers are cached by style + wrap width. WithAutoStyle can block on
	// terminal background queries, so styles are always chosen explicitly.
	mdRenderers = map[string]*glamour.TermRenderer{}
	mdTheme     = config.ThemeAuto
)

func setMarkdownTheme(theme string) {
	mdRendererMu.Lock()
	mdTheme = theme
	mdRendererMu.Unlock()
}

// renderMarkdown renders md for the help overlay and the docs command. The
// document margin is dropped so output lines up with surrounding chrome.
func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	mdRendererMu.Lock()
	styleName := markdownStyleLocked()
	key := styleName + ":" + strconv.Itoa(width)
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		cfg := markdownStyleConfig(styleName)
		zero := uint(0)
		cfg.Document.Margin = &zero
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(cfg),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRendererMu.Lock()
		// Re-check in case a concurrent caller filled it.
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// RenderMarkdown is renderMarkdown for callers outside the TUI.
func RenderMarkdown(md string, width int, theme string) string {
	setMarkdownTheme(theme)
	return renderMarkdown(md, width)
}

func markdownStyleConfig(styleName string) ansi.StyleConfig {
	if styleName == "light" {
		cfg := styles.LightStyleConfig
		applyMarkdownPalette(&cfg, styleName)
		return cfg
	}
	cfg := styles.DarkStyleConfig
	applyMarkdownPalette(&cfg, "dark")
	return cfg
}

// markdownStyleLocked picks the glamour style. Callers hold mdRendererMu.
func markdownStyleLocked() string {
	switch mdTheme {
	case config.ThemeLight:
		return "light"
	case config.ThemeDark:
		return "dark"
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func applyMarkdownPalette(cfg *ansi.StyleConfig, styleName string) {
	if cfg == nil {
		return
	}

	headingColor := mdColor(colorSurfaceFg, styleName)
	cfg.Heading.Color = headingColor
	cfg.H1.Color = headingColor
	cfg.H2.Color = headingColor
	cfg.H3.Color = headingColor

	// Key names are written as inline code in the help pages.
	cfg.Code.Color = mdColor(colorAccent, styleName)
	cfg.CodeBlock.Color = mdColor(colorSurfaceFg, styleName)
	if cfg.CodeBlock.BackgroundColor == nil {
		cfg.CodeBlock.BackgroundColor = mdColor(colorControlBg, styleName)
	}

	cfg.Text.Color = mdColor(colorSurfaceFg, styleName)
	cfg.Strong.Color = nil
	cfg.Emph.Color = nil
	cfg.BlockQuote.Faint = mdBoolPtr(false)
}

func mdColor(c lipgloss.AdaptiveColor, styleName string) *string {
	if styleName == "light" {
		return mdStrPtr(c.Light)
	}
	return mdStrPtr(c.Dark)
}

func mdStrPtr(s string) *string { return &s }
func mdBoolPtr(b bool) *bool    { return &b }
