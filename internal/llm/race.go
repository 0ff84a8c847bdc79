package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Swelo-ui/guvi-project-1/pkg/logging"
)

// Racer issues one prompt to every provider concurrently and picks a
// winner: early-accept on first-good-enough from the primary, best of
// all returned candidates otherwise.
type Racer struct {
	providers   []Provider
	primary     string
	earlyAccept time.Duration
	deadline    time.Duration
	lengthFloor int
	logger      *logging.Logger
}

// NewRacer wires the race policy. earlyAccept is the window in which a
// valid primary response short-circuits the race; deadline bounds the
// whole race.
func NewRacer(providers []Provider, primary string, earlyAccept, deadline time.Duration, lengthFloor int, logger *logging.Logger) *Racer {
	if logger == nil {
		logger = logging.Default()
	}
	return &Racer{
		providers:   providers,
		primary:     primary,
		earlyAccept: earlyAccept,
		deadline:    deadline,
		lengthFloor: lengthFloor,
		logger:      logger,
	}
}

// Race runs the prompt against all providers. It returns the winning
// candidate or ErrAllProvidersFailed; callers are expected to fall
// back to a canned reply on error, never to surface it.
func (r *Racer) Race(ctx context.Context, prompt Prompt) (Candidate, error) {
	if len(r.providers) == 0 {
		return Candidate{}, ErrAllProvidersFailed
	}

	genCtx, cancel := context.WithTimeout(ctx, r.deadline)
	defer cancel()

	results := make(chan Candidate, len(r.providers))
	for _, p := range r.providers {
		go func(p Provider) {
			results <- r.attempt(genCtx, p, prompt)
		}(p)
	}

	earlyTimer := time.NewTimer(r.earlyAccept)
	defer earlyTimer.Stop()
	deadlineTimer := time.NewTimer(r.deadline)
	defer deadlineTimer.Stop()

	var collected []Candidate
	earlyOpen := true
	for {
		select {
		case c := <-results:
			if c.Err != nil {
				r.logger.Warn("provider attempt failed", "provider", c.Provider, "error", c.Err)
			}
			if earlyOpen && c.Provider == r.primary && GoodEnough(c, r.lengthFloor) {
				r.logger.Debug("early accept", "provider", c.Provider)
				return c, nil
			}
			collected = append(collected, c)
			if len(collected) == len(r.providers) {
				return r.finish(collected)
			}
		case <-earlyTimer.C:
			earlyOpen = false
		case <-deadlineTimer.C:
			// Laggards keep running until genCtx expires; they hold no
			// session state so nothing observes their results.
			return r.finish(collected)
		case <-ctx.Done():
			return r.finish(collected)
		}
	}
}

// attempt runs one provider end to end: generate, parse, and on
// malformed output a single repair round-trip.
func (r *Racer) attempt(ctx context.Context, p Provider, prompt Prompt) Candidate {
	c := Candidate{Provider: p.Name(), Priority: p.Priority()}

	raw, err := p.Generate(ctx, prompt)
	if err != nil {
		c.Err = classifyErr(p.Name(), err)
		return c
	}
	c.Raw = raw

	thought, err := ParseThought(raw)
	if err == nil {
		c.Thought = thought
		return c
	}

	repaired, err := p.Generate(ctx, RepairPrompt(raw))
	if err != nil {
		c.Err = classifyErr(p.Name(), err)
		return c
	}
	thought, err = ParseThought(repaired)
	if err != nil {
		c.Err = fmt.Errorf("llm: %s output unrepairable: %w", p.Name(), ErrGenerationMalformed)
		return c
	}
	c.Raw = repaired
	c.Thought = thought
	return c
}

func classifyErr(provider string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("llm: %s: %w", provider, ErrGenerationTimeout)
	}
	return fmt.Errorf("llm: %s: %w", provider, err)
}

func (r *Racer) finish(collected []Candidate) (Candidate, error) {
	winner, ok := pickBest(collected, r.lengthFloor)
	if !ok {
		return Candidate{}, ErrAllProvidersFailed
	}
	r.logger.Debug("race winner", "provider", winner.Provider,
		"score", QualityScore(winner, r.lengthFloor), "candidates", len(collected))
	return winner, nil
}
