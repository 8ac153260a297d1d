package tui

import (
	"strings"
	"sync"

	"github.com/Skyhigh44/Productivity/internal/config"
)

// Terminal apps can't change the user's font. Instead we choose between
// Unicode and ASCII glyph sets for UI affordances (twisties, checkboxes, card
// icons) on terminals/fonts that don't render some glyphs cleanly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", config.GlyphsUnicode, "utf8":
		setGlyphs(glyphSetUnicode)
	case config.GlyphsASCII:
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphTwistyCollapsed() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "▸"
}

func glyphTwistyExpanded() string {
	if glyphs() == glyphSetASCII {
		return "v"
	}
	return "▾"
}

func glyphCheckbox(done bool) string {
	if glyphs() == glyphSetASCII {
		if done {
			return "[x]"
		}
		return "[ ]"
	}
	if done {
		return "☑"
	}
	return "☐"
}

func glyphTreeBranch() string {
	if glyphs() == glyphSetASCII {
		return "`-"
	}
	return "└─"
}

func glyphEllipsis() string {
	if glyphs() == glyphSetASCII {
		return "~"
	}
	return "…"
}

func glyphClock() string {
	if glyphs() == glyphSetASCII {
		return "@"
	}
	return "◷"
}

func glyphPrev() string {
	if glyphs() == glyphSetASCII {
		return "<"
	}
	return "‹"
}

func glyphNext() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "›"
}

var cardIconGlyphs = map[string][2]string{
	"calendar":  {"▦", "#"},
	"briefcase": {"▤", "="},
	"users":     {"●", "@"},
	"target":    {"◎", "o"},
	"chart":     {"▰", "%"},
	"brain":     {"◆", "*"},
	"coffee":    {"○", "~"},
}

func glyphCardIcon(icon string) string {
	g, ok := cardIconGlyphs[icon]
	if !ok {
		g = [2]string{"■", "+"}
	}
	if glyphs() == glyphSetASCII {
		return g[1]
	}
	return g[0]
}
