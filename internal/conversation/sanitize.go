package conversation

import (
	"strings"

	"github.com/Swelo-ui/guvi-project-1/internal/persona"
)

// SanitizeConfig bounds reply shape.
type SanitizeConfig struct {
	MaxSentences int
	MaxChars     int
}

// aiPhraseReplacements swaps stock assistant phrasing for natural
// filler. Matching is case-insensitive.
var aiPhraseReplacements = []struct {
	phrase      string
	replacement string
}{
	{"as an ai language model, ", ""},
	{"as an ai language model", "arre"},
	{"as an ai, ", ""},
	{"i'm sorry, but i cannot", "sorry beta, I cannot"},
	{"i cannot assist with that", "I am not understanding all this"},
	{"i apologize", "sorry beta"},
	{"certainly!", "acha,"},
	{"of course!", "haan haan,"},
	{"i understand your concern", "haan ji, I am listening"},
	{"is there anything else i can help you with?", "what else you were saying?"},
}

// familyMarkers flag a sentence as a family tangent.
var familyMarkers = []string{
	"my son", "my daughter", "my grandson", "my granddaughter",
	"my husband", "my nephew",
}

// Sanitize runs the full pipeline over a generated reply. The second
// return is false when the reply must be discarded entirely, in which
// case the caller substitutes the contextual fallback.
func Sanitize(text string, sess *Session, p *persona.Persona, cfg SanitizeConfig) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	if cfg.MaxSentences <= 0 {
		cfg.MaxSentences = 4
	}
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = 480
	}

	// The sentence cap applies to the raw output. Replacing phrases
	// first could merge or shorten sentences and let extra ones slip
	// under the cap.
	raw := splitSentences(text)
	if len(raw) > cfg.MaxSentences {
		raw = raw[:cfg.MaxSentences]
	}

	sentences := raw[:0]
	for _, sentence := range raw {
		sentence = strings.TrimSpace(replaceAIPhrases(sentence))
		if sentence == "" {
			continue
		}
		sentences = append(sentences, sentence)
	}

	kept := sentences[:0]
	suppressFamily := sess.LastFamilyTurn > 0 && sess.TurnCount-sess.LastFamilyTurn <= 2
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		if reAsksKnownCategory(lower, sess.Memory) {
			continue
		}
		if conflictsWithPersona(lower, p) {
			continue
		}
		if suppressFamily && isFamilySentence(lower) && len(sentences) > 1 {
			continue
		}
		kept = append(kept, sentence)
	}
	if len(kept) == 0 {
		return "", false
	}

	result := strings.TrimSpace(strings.Join(kept, " "))
	if len(result) > cfg.MaxChars {
		result = strings.TrimSpace(result[:cfg.MaxChars])
		if idx := strings.LastIndex(result, " "); idx > 0 {
			result = result[:idx] + "..."
		}
	}

	if CollidesWith(sess.Fingerprints, result) {
		return "", false
	}
	return result, true
}

func replaceAIPhrases(text string) string {
	for _, r := range aiPhraseReplacements {
		text = replaceInsensitive(text, r.phrase, r.replacement)
	}
	return text
}

func replaceInsensitive(text, phrase, replacement string) string {
	lower := strings.ToLower(text)
	phrase = strings.ToLower(phrase)
	var b strings.Builder
	for {
		idx := strings.Index(lower, phrase)
		if idx < 0 {
			b.WriteString(text)
			return b.String()
		}
		b.WriteString(text[:idx])
		b.WriteString(replacement)
		text = text[idx+len(phrase):]
		lower = lower[idx+len(phrase):]
	}
}

// splitSentences breaks on terminal punctuation, keeping the
// punctuation with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// categoryAskMarkers map a "give me your X" phrasing to the memory
// field that would make the ask redundant.
var categoryAskMarkers = []struct {
	marker string
	known  func(ScammerMemory) bool
}{
	{"your upi", func(m ScammerMemory) bool { return m.ClaimedUPI != "" }},
	{"your account", func(m ScammerMemory) bool { return m.ClaimedAccount != "" }},
	{"your employee id", func(m ScammerMemory) bool { return m.ClaimedEmployeeID != "" }},
	{"your badge", func(m ScammerMemory) bool { return m.ClaimedEmployeeID != "" }},
	{"your phone", func(m ScammerMemory) bool { return m.ClaimedPhone != "" }},
	{"your number", func(m ScammerMemory) bool { return m.ClaimedPhone != "" }},
	{"your email", func(m ScammerMemory) bool { return m.ClaimedEmail != "" }},
	{"your ifsc", func(m ScammerMemory) bool { return m.ClaimedIFSC != "" }},
	{"your name", func(m ScammerMemory) bool { return m.ClaimedName != "" }},
	{"your branch", func(m ScammerMemory) bool { return m.ClaimedBranch != "" }},
	{"which bank", func(m ScammerMemory) bool { return m.ClaimedBank != "" }},
}

// reAsksKnownCategory drops sentences that ask the scammer for a
// detail they already gave; repeating the ask breaks the illusion of
// paying attention.
func reAsksKnownCategory(lowerSentence string, mem ScammerMemory) bool {
	for _, m := range categoryAskMarkers {
		if strings.Contains(lowerSentence, m.marker) && m.known(mem) {
			return true
		}
	}
	return false
}

// conflictsWithPersona drops sentences where the model asserts an
// identity attribute different from the fixed persona.
func conflictsWithPersona(lowerSentence string, p *persona.Persona) bool {
	if p == nil {
		return false
	}
	if idx := strings.Index(lowerSentence, "my name is "); idx >= 0 {
		rest := lowerSentence[idx+len("my name is "):]
		if !strings.HasPrefix(rest, strings.ToLower(p.FirstName)) {
			return true
		}
	}
	if strings.Contains(lowerSentence, "my account number is ") &&
		!strings.Contains(lowerSentence, p.Bank.AccountNumber) {
		return true
	}
	if strings.Contains(lowerSentence, "my upi is ") &&
		!strings.Contains(lowerSentence, strings.ToLower(p.UPI)) {
		return true
	}
	if strings.Contains(lowerSentence, "my bank is ") &&
		!strings.Contains(lowerSentence, strings.ToLower(p.Bank.Short)) &&
		!strings.Contains(lowerSentence, strings.ToLower(p.Bank.Name)) {
		return true
	}
	return false
}

func isFamilySentence(lowerSentence string) bool {
	for _, marker := range familyMarkers {
		if strings.Contains(lowerSentence, marker) {
			return true
		}
	}
	return false
}

// MentionsFamily reports whether the final reply contains a family
// reference, so the session can track tangent recency.
func MentionsFamily(text string) bool {
	return isFamilySentence(strings.ToLower(text))
}
