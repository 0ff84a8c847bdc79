package conversation

import (
	"fmt"
	"math/rand"
	"sync"
)

// ResponderConfig tunes the anti-repetition selector.
type ResponderConfig struct {
	// ExtractionAskCap bounds how often the same target is asked for.
	ExtractionAskCap int
	// FingerprintWindow is how many recent replies collide-check.
	FingerprintWindow int
	// PersonalizeChance is the probability of prefixing a remembered
	// claim.
	PersonalizeChance float64
	// UrgencyThreshold is the urgency level at which frustration
	// suffixes kick in.
	UrgencyThreshold int
}

// Responder picks response types and concrete templates under the
// never-repeat constraints. Safe for concurrent use; the RNG is the
// only shared state.
type Responder struct {
	cfg ResponderConfig

	mu  sync.Mutex
	rng *rand.Rand
}

// NewResponder creates a selector with the given tuning and RNG seed.
func NewResponder(cfg ResponderConfig, seed int64) *Responder {
	if cfg.ExtractionAskCap <= 0 {
		cfg.ExtractionAskCap = 2
	}
	if cfg.FingerprintWindow <= 0 {
		cfg.FingerprintWindow = 8
	}
	if cfg.UrgencyThreshold <= 0 {
		cfg.UrgencyThreshold = 3
	}
	return &Responder{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

func (r *Responder) intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

func (r *Responder) float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// ChooseResponseType draws a type from the phase's weight table,
// hard-excluding the previous turn's type.
func (r *Responder) ChooseResponseType(sess *Session, phase Phase) ResponseType {
	weights := phaseWeights[phase]
	if weights == nil {
		weights = phaseWeights[PhaseBuildingTrust]
	}

	total := 0
	for _, rtype := range responseTypes {
		if rtype == sess.LastResponseType {
			continue
		}
		total += weights[rtype]
	}
	if total <= 0 {
		// Degenerate weight table; fall back to the first non-repeating
		// type in fixed order.
		for _, rtype := range responseTypes {
			if rtype != sess.LastResponseType {
				return rtype
			}
		}
	}

	draw := r.intn(total)
	for _, rtype := range responseTypes {
		if rtype == sess.LastResponseType {
			continue
		}
		draw -= weights[rtype]
		if draw < 0 {
			return rtype
		}
	}
	return ResponsePureStall
}

// SelectTemplate picks an unused, non-colliding template from the
// (type, intent) pool. Exhausted pools fall back to the rotating
// generic list and bump the exhaustion counter.
func (r *Responder) SelectTemplate(rtype ResponseType, intent Intent, sess *Session) (string, string) {
	pool := poolFor(rtype, intent)

	available := make([]Template, 0, len(pool))
	for _, tpl := range pool {
		if sess.UsedTemplates[tpl.ID] {
			continue
		}
		if CollidesWith(sess.Fingerprints, tpl.Text) {
			continue
		}
		available = append(available, tpl)
	}

	if len(available) == 0 {
		sess.PoolExhaustions++
		return "", r.Fallback(sess)
	}

	tpl := available[r.intn(len(available))]
	return tpl.ID, tpl.Text
}

// Fallback returns the next entry of the generic rotating list. The
// cursor only grows and wraps on exhaustion, so consecutive fallbacks
// always differ.
func (r *Responder) Fallback(sess *Session) string {
	text := genericFallbacks[sess.FallbackCursor%len(genericFallbacks)]
	sess.FallbackCursor++
	return text
}

// NextExtractionTarget returns the first target category absent from
// memory and asked fewer than the configured cap times, or the "none"
// sentinel when exhausted.
func (r *Responder) NextExtractionTarget(sess *Session, phase Phase) string {
	for _, target := range extractionTargets {
		if sess.Memory.knownTarget(target) {
			continue
		}
		if sess.Memory.TargetAsks[target] >= r.cfg.ExtractionAskCap {
			continue
		}
		return target
	}
	return NoExtractionTarget
}

// RecordTargetAsk bumps the ask counter after a reverse-extraction
// reply actually went out.
func (r *Responder) RecordTargetAsk(sess *Session, target string) {
	if target == "" || target == NoExtractionTarget {
		return
	}
	sess.Memory.TargetAsks[target]++
}

// personalPrefixes render a remembered claim back at the scammer.
var personalPrefixes = []string{
	"Haan %s beta, I remember you. ",
	"You said you are from %s na? Acha. ",
	"%s ji, you only called before also? ",
}

// frustrationSuffixes escalate once the scammer keeps pushing and the
// pools have run dry.
var frustrationSuffixes = []string{
	" And beta, why you are shouting? I am trying only.",
	" You keep saying same thing again and again. My head is spinning.",
	" How many times I have to tell you, I am going as fast as I can!",
}

// Personalize optionally prefixes a remembered claimed fact and, once
// urgency has crossed the threshold with repeated pool exhaustion,
// appends an escalating-frustration suffix.
func (r *Responder) Personalize(text string, sess *Session) string {
	fact := firstClaim(sess.Memory)
	if fact != "" && r.float64() < r.cfg.PersonalizeChance {
		prefix := personalPrefixes[r.intn(len(personalPrefixes))]
		text = fmt.Sprintf(prefix, fact) + text
	}

	if sess.Memory.UrgencyLevel >= r.cfg.UrgencyThreshold && sess.PoolExhaustions >= 2 {
		text += frustrationSuffixes[sess.PoolExhaustions%len(frustrationSuffixes)]
	}
	return text
}

func firstClaim(mem ScammerMemory) string {
	switch {
	case mem.ClaimedName != "":
		return mem.ClaimedName
	case mem.ClaimedBank != "":
		return mem.ClaimedBank
	case mem.ClaimedDesignation != "":
		return mem.ClaimedDesignation
	default:
		return ""
	}
}
