package genset

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const systemPrompt = `You are a strict generator of multiple-choice challenges. Your only output must be a valid JSON array, with no extra text and no comments.`

// DefaultTemplate is the built-in instruction template used when the
// store has no template for the tier.
const DefaultTemplate = `Generate a JSON array of at least 20 challenge objects for a quiz progression game.

Each object must have exactly these keys:
- "question": the challenge text
- "options": an array of exactly 4 answer strings
- "answer_index": the 1-based index (1..4) of the correct option
- "explanation": a short explanation of the correct answer
- "kind": one of "main", "random", "boss"
- "mentorName": the owning mentor's name for main/random, or null for boss

Questions should be varied in topic and difficulty. Boss challenges are the hardest and belong to no mentor.`

var whitespace = regexp.MustCompile(`\s+`)

// shrinkPrompt compacts whitespace and caps length without changing the
// template's content. The cut lands on a rune boundary so a multibyte
// character is never split.
func shrinkPrompt(text string, maxChars int) string {
	s := whitespace.ReplaceAllString(text, " ")
	if maxChars > 0 && len(s) > maxChars {
		cut := maxChars
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return strings.TrimSpace(s)
}

// buildUserMessage assembles the template body plus tier constraint hints.
func buildUserMessage(input GenerateInput, cfg Config) string {
	tpl := input.Template
	if tpl == "" {
		tpl = DefaultTemplate
	}

	var b strings.Builder
	b.WriteString(tpl)

	b.WriteString("\n\nConstraints (use only as guidance, not as JSON keys):")
	fmt.Fprintf(&b, "\n- Tier: %s", input.Tier)
	if input.Tier.Primary() {
		fmt.Fprintf(&b, "\n- Include at least %d \"boss\" challenges with \"mentorName\": null", BossCount)
		fmt.Fprintf(&b, "\n- For every mentor include at least %d \"main\" and %d \"random\" challenges",
			MainsPerMentor, RandomsPerMentor)
	}
	if len(input.Mentors) > 0 {
		fmt.Fprintf(&b, "\n- Valid mentor names: %s", strings.Join(input.Mentors, ", "))
	}

	return shrinkPrompt(b.String(), cfg.MaxPromptChars)
}
