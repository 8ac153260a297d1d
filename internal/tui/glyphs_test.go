package tui

import "testing"

func TestGlyphs_FromConfig(t *testing.T) {
	setGlyphs(glyphSetUnicode)
	applyGlyphPreference("")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected unicode glyphs by default; got %v", got)
	}

	applyGlyphPreference("ascii")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected ascii glyphs; got %v", got)
	}
	if got := glyphCheckbox(true); got != "[x]" {
		t.Fatalf("expected ascii checkbox; got %q", got)
	}

	applyGlyphPreference("unicode")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected unicode glyphs; got %v", got)
	}

	// Unknown values should be ignored (keep current).
	setGlyphs(glyphSetASCII)
	applyGlyphPreference("bogus")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected unknown to be ignored; got %v", got)
	}
	setGlyphs(glyphSetUnicode)
}

func TestGlyphCardIcon_FallsBack(t *testing.T) {
	setGlyphs(glyphSetUnicode)
	if got := glyphCardIcon("calendar"); got != "▦" {
		t.Fatalf("expected calendar icon; got %q", got)
	}
	if got := glyphCardIcon("unknown"); got != "■" {
		t.Fatalf("expected fallback icon; got %q", got)
	}
}
