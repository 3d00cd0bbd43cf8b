package genset

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxAttempts is how many times a full generate-validate-compose
	// cycle is tried before the last error is surfaced.
	MaxAttempts int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPromptChars caps the instruction template after whitespace
	// compaction to keep token usage bounded.
	MaxPromptChars int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    3,
		MaxTokens:      2500,
		Temperature:    0.4,
		MaxPromptChars: 15000,
	}
}
