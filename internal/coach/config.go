package coach

// Config controls the coach's use of the LLM provider. The call cap is
// held by the Coach instance, never in process-wide state.
type Config struct {
	// MaxCalls caps LLM calls over the Coach's lifetime. Once exhausted
	// the coach answers from its heuristic fallback. 0 = unlimited.
	MaxCalls int

	// CandidateCount is how many words a suggestion round returns.
	CandidateCount int

	// MaxTokens bounds each LLM response.
	MaxTokens int

	// Temperature for word suggestions. Slightly above zero so repeated
	// regeneration rounds produce fresh candidates.
	Temperature float64
}

// DefaultConfig returns the coach defaults.
func DefaultConfig() Config {
	return Config{
		MaxCalls:       40,
		CandidateCount: 6,
		MaxTokens:      1024,
		Temperature:    0.4,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.CandidateCount <= 0 {
		c.CandidateCount = d.CandidateCount
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = d.MaxTokens
	}
	if c.Temperature == 0 {
		c.Temperature = d.Temperature
	}
	return c
}
