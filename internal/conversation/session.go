package conversation

import (
	"time"

	"github.com/Swelo-ui/guvi-project-1/internal/intel"
	"github.com/Swelo-ui/guvi-project-1/internal/persona"
)

// ScammerMemory records what the counterparty has claimed about
// themselves. Claim fields are set once under first-claim-wins and
// only overwritten when the message carries an explicit correction
// signal; counters only increase.
type ScammerMemory struct {
	ClaimedName        string `json:"claimedName,omitempty"`
	ClaimedBank        string `json:"claimedBank,omitempty"`
	ClaimedUPI         string `json:"claimedUpi,omitempty"`
	ClaimedPhone       string `json:"claimedPhone,omitempty"`
	ClaimedAccount     string `json:"claimedAccount,omitempty"`
	ClaimedEmployeeID  string `json:"claimedEmployeeId,omitempty"`
	ClaimedDesignation string `json:"claimedDesignation,omitempty"`
	ClaimedBranch      string `json:"claimedBranch,omitempty"`
	ClaimedEmail       string `json:"claimedEmail,omitempty"`
	ClaimedIFSC        string `json:"claimedIfsc,omitempty"`

	ThreatType   string `json:"threatType,omitempty"`
	UrgencyLevel int    `json:"urgencyLevel"`

	// IntentCounts tracks how often the scammer pushed each intent.
	IntentCounts map[Intent]int `json:"intentCounts,omitempty"`
	// TargetAsks tracks how often we asked the scammer for each
	// extraction target, bounding repeat asks.
	TargetAsks map[string]int `json:"targetAsks,omitempty"`

	SharedLinks   []string `json:"sharedLinks,omitempty"`
	MentionedApps []string `json:"mentionedApps,omitempty"`
}

// Session is the full engine state for one counterparty, restored at
// turn start and persisted best-effort at turn end.
type Session struct {
	ID        string             `json:"id"`
	TurnCount int                `json:"turnCount"`
	Phase     Phase              `json:"phase"`
	Memory    ScammerMemory      `json:"memory"`
	Persona   *persona.Persona   `json:"persona"`
	Intel     intel.Intelligence `json:"intel"`
	ScamType  string             `json:"scamType,omitempty"`

	UsedTemplates    map[string]bool `json:"usedTemplates,omitempty"`
	Fingerprints     []string        `json:"fingerprints,omitempty"`
	LastResponseType ResponseType    `json:"lastResponseType,omitempty"`
	FallbackCursor   int             `json:"fallbackCursor"`
	// PoolExhaustions counts turns that fell through to the generic
	// fallback list, feeding the escalating-frustration suffix.
	PoolExhaustions int `json:"poolExhaustions"`
	// LastFamilyTurn is the turn a family reference last appeared in
	// our reply, for the repeated-tangent suppressor.
	LastFamilyTurn int `json:"lastFamilyTurn"`

	// ReportedCategories holds intel categories already sent to the
	// reporting collaborator, enforcing at-most-once per category.
	ReportedCategories map[string]bool `json:"reportedCategories,omitempty"`

	AgentNotes string    `json:"agentNotes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewSession creates the lazily-initialized state for a session id,
// including its deterministic persona.
func NewSession(id string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:                 id,
		Phase:              PhaseInitialContact,
		Persona:            persona.Generate(id),
		Memory:             ScammerMemory{IntentCounts: map[Intent]int{}, TargetAsks: map[string]int{}},
		UsedTemplates:      map[string]bool{},
		ReportedCategories: map[string]bool{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// normalize repairs nil maps after a snapshot restore so callers can
// write without checking.
func (s *Session) normalize() {
	if s.Memory.IntentCounts == nil {
		s.Memory.IntentCounts = map[Intent]int{}
	}
	if s.Memory.TargetAsks == nil {
		s.Memory.TargetAsks = map[string]int{}
	}
	if s.UsedTemplates == nil {
		s.UsedTemplates = map[string]bool{}
	}
	if s.ReportedCategories == nil {
		s.ReportedCategories = map[string]bool{}
	}
	if s.Persona == nil {
		s.Persona = persona.Generate(s.ID)
	}
	if s.Phase == "" {
		s.Phase = PhaseInitialContact
	}
}
