package genset

import (
	"errors"
	"strings"
	"testing"
)

func TestCleanContent_CodeFences(t *testing.T) {
	raw := "```json\n[{\"a\":1}]\n```"
	got := cleanContent(raw)
	if got != `[{"a":1}]` {
		t.Fatalf("cleanContent = %q", got)
	}
}

func TestCleanContent_ProseAroundArray(t *testing.T) {
	raw := "Here are your items:\n[{\"a\":1},{\"a\":2}]\nHope you like them!"
	got := cleanContent(raw)
	if got != `[{"a":1},{"a":2}]` {
		t.Fatalf("cleanContent = %q", got)
	}
}

func TestCleanContent_Empty(t *testing.T) {
	if got := cleanContent("  "); got != "[]" {
		t.Fatalf("cleanContent = %q, want []", got)
	}
}

func TestParseArray_TrailingCommaRepaired(t *testing.T) {
	elems, err := parseArray(`[{"a":1}, {"a":2}, ]`)
	if err != nil {
		t.Fatalf("expected repair to succeed, got %v", err)
	}
	if len(elems) != 2 {
		t.Fatalf("len = %d, want 2", len(elems))
	}
}

func TestParseArray_NotAnArray(t *testing.T) {
	_, err := parseArray(`{"a":1}`)
	if err == nil {
		t.Fatal("expected error for non-array")
	}
	var batchErr *ErrInvalidBatch
	if !errors.As(err, &batchErr) {
		t.Fatalf("expected *ErrInvalidBatch, got %T", err)
	}
	if batchErr.Position != 0 {
		t.Errorf("position = %d, want 0 for batch-level error", batchErr.Position)
	}
}

func TestParseCandidates_TooFewElements(t *testing.T) {
	_, err := ParseCandidates(`[{"a":1},{"a":2}]`)
	if err == nil {
		t.Fatal("expected error for short batch")
	}
	if !strings.Contains(err.Error(), "at least 20") {
		t.Errorf("error %q should mention the minimum", err)
	}
}

func TestParseCandidates_FencedAndWrapped(t *testing.T) {
	body := strings.TrimSuffix(strings.Repeat(`{"n":1},`, 20), ",")
	raw := "Sure! Here is the JSON:\n```json\n[" + body + "]\n```\n"
	elems, err := ParseCandidates(raw)
	if err != nil {
		t.Fatalf("ParseCandidates: %v", err)
	}
	if len(elems) != 20 {
		t.Fatalf("len = %d, want 20", len(elems))
	}
}
