package genset

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// trailingComma matches separators left dangling before a closing bracket,
// the most common damage in model-emitted JSON.
var trailingComma = regexp.MustCompile(`,\s*([\]}])`)

// cleanContent strips the wrapping models tend to add around the payload:
// markdown code fences and prose before/after the JSON array.
func cleanContent(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "[]"
	}

	if strings.HasPrefix(text, "```") {
		lines := strings.Split(text, "\n")
		if strings.HasPrefix(lines[0], "```") {
			lines = lines[1:]
		}
		if len(lines) > 0 && strings.HasPrefix(lines[len(lines)-1], "```") {
			lines = lines[:len(lines)-1]
		}
		text = strings.TrimSpace(strings.Join(lines, "\n"))
	}

	// Keep only the first array if the model wrote text around it.
	first := strings.Index(text, "[")
	last := strings.LastIndex(text, "]")
	if first != -1 && last > first {
		text = strings.TrimSpace(text[first : last+1])
	}

	return text
}

// parseArray parses cleaned content into raw array elements. A strict
// parse is tried first, then one repair pass removing trailing commas.
func parseArray(cleaned string) ([]json.RawMessage, error) {
	var elems []json.RawMessage
	err := json.Unmarshal([]byte(cleaned), &elems)
	if err == nil {
		return elems, nil
	}

	fixed := trailingComma.ReplaceAllString(cleaned, "$1")
	if jerr := json.Unmarshal([]byte(fixed), &elems); jerr == nil {
		return elems, nil
	}

	// Report the original error; the repair attempt already happened.
	return nil, &ErrInvalidBatch{
		Reason: "response is not a JSON array of objects",
		Err:    err,
	}
}

// ParseCandidates turns raw generator output into a batch of raw array
// elements, rejecting batches smaller than a full set.
func ParseCandidates(raw string) ([]json.RawMessage, error) {
	elems, err := parseArray(cleanContent(raw))
	if err != nil {
		return nil, err
	}
	if len(elems) < TotalItems {
		return nil, &ErrInvalidBatch{
			Reason: fmt.Sprintf("expected at least %d candidates, got %d", TotalItems, len(elems)),
		}
	}
	return elems, nil
}
