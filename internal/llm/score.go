package llm

import "strings"

// Candidate is one provider's finished generation attempt.
type Candidate struct {
	Provider string
	Priority int
	Thought  AgentThought
	Raw      string
	Err      error
}

// errorMarkers are phrases that betray a model talking about itself
// instead of staying in character.
var errorMarkers = []string{
	"as an ai", "language model", "i cannot", "i can't assist",
	"error:", "exception", "traceback",
}

// QualityScore ranks a candidate with fixed-weight bonuses. Ties are
// broken by provider priority in pickBest, not here.
func QualityScore(c Candidate, lengthFloor int) int {
	if c.Err != nil {
		return -1
	}
	score := 0
	reply := strings.TrimSpace(c.Thought.Response)
	if reply != "" {
		score += 40
	}
	if len(reply) >= lengthFloor {
		score += 20
	}
	if c.Thought.ScamType != "" && c.Thought.Strategy != "" {
		score += 10
	}
	lower := strings.ToLower(reply)
	clean := true
	for _, marker := range errorMarkers {
		if strings.Contains(lower, marker) {
			clean = false
			break
		}
	}
	if clean {
		score += 20
	}
	// Lower priority number means a more trusted provider.
	if bonus := 10 - c.Priority*2; bonus > 0 {
		score += bonus
	}
	return score
}

// GoodEnough is the early-accept predicate: a parsed payload with a
// non-trivial in-character reply.
func GoodEnough(c Candidate, lengthFloor int) bool {
	return QualityScore(c, lengthFloor) >= 80
}

func pickBest(candidates []Candidate, lengthFloor int) (Candidate, bool) {
	best := -1
	var winner Candidate
	for _, c := range candidates {
		if c.Err != nil {
			continue
		}
		s := QualityScore(c, lengthFloor)
		if s > best || (s == best && c.Priority < winner.Priority) {
			best = s
			winner = c
		}
	}
	return winner, best >= 0
}
