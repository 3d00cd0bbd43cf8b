package genset

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestShrinkPrompt_CompactsWhitespace(t *testing.T) {
	got := shrinkPrompt("a\n\n  b\t\tc  ", 0)
	if got != "a b c" {
		t.Errorf("shrinkPrompt = %q, want %q", got, "a b c")
	}
}

func TestShrinkPrompt_CapsOnRuneBoundary(t *testing.T) {
	// "só" repeated: every second byte is the middle of a two-byte rune,
	// so a byte-count cut can land mid-sequence.
	text := strings.Repeat("só", 40)

	for max := 1; max <= 12; max++ {
		got := shrinkPrompt(text, max)
		if !utf8.ValidString(got) {
			t.Fatalf("maxChars=%d produced invalid UTF-8: %q", max, got)
		}
		if len(got) > max {
			t.Fatalf("maxChars=%d kept %d bytes", max, len(got))
		}
	}
}

func TestShrinkPrompt_ShortTextUntouched(t *testing.T) {
	got := shrinkPrompt("¿quién?", 100)
	if got != "¿quién?" {
		t.Errorf("shrinkPrompt = %q, want input unchanged", got)
	}
}
