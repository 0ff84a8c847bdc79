package llm

import "errors"

var (
	// ErrGenerationTimeout is returned when a provider did not answer
	// within the race deadline.
	ErrGenerationTimeout = errors.New("llm: generation timed out")

	// ErrGenerationMalformed is returned when a provider's output could
	// not be parsed even after one repair attempt.
	ErrGenerationMalformed = errors.New("llm: generation output malformed")

	// ErrAllProvidersFailed is returned when no provider produced a
	// usable candidate before the deadline.
	ErrAllProvidersFailed = errors.New("llm: all providers failed")
)
