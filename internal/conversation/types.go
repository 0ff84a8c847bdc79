// Package conversation implements the honeypot's per-session engine:
// scammer memory, intent and phase tracking, anti-repetition response
// selection, and the turn pipeline that ties extraction, generation
// and sanitization together.
package conversation

import (
	"github.com/Swelo-ui/guvi-project-1/internal/intel"
)

// Intent is what the scammer is currently asking for. A message may
// carry several at once.
type Intent string

const (
	IntentAskOTP          Intent = "ask_otp"
	IntentAskAccount      Intent = "ask_account"
	IntentAskUPI          Intent = "ask_upi"
	IntentAskMoney        Intent = "ask_money"
	IntentClickLink       Intent = "click_link"
	IntentInstallApp      Intent = "install_app"
	IntentAskPersonalInfo Intent = "ask_personal_info"
	IntentAskCard         Intent = "ask_card"
	IntentFearTactic      Intent = "fear_tactic"
	IntentUrgency         Intent = "urgency"
	IntentGreeting        Intent = "greeting"
	IntentUnknown         Intent = "unknown"
)

// Phase is where the scam conversation currently stands. It is
// recomputed every turn and may move backward under mixed signals.
type Phase string

const (
	PhaseInitialContact    Phase = "initial_contact"
	PhaseBuildingTrust     Phase = "building_trust"
	PhaseCreatingUrgency   Phase = "creating_urgency"
	PhaseExtractionAttempt Phase = "extraction_attempt"
	PhasePersistence       Phase = "persistence"
	PhaseFinalPush         Phase = "final_push"
)

// ResponseType is the reply strategy for one turn. The selector never
// repeats the previous turn's type.
type ResponseType string

const (
	ResponsePureStall         ResponseType = "pure_stall"
	ResponseFamilyTangent     ResponseType = "family_tangent"
	ResponseTechnicalIssue    ResponseType = "technical_issue"
	ResponseEmotional         ResponseType = "emotional"
	ResponseTopicConfusion    ResponseType = "topic_confusion"
	ResponseReverseExtraction ResponseType = "reverse_extraction"
)

// responseTypes lists every type in a fixed order for deterministic
// iteration.
var responseTypes = []ResponseType{
	ResponsePureStall,
	ResponseFamilyTangent,
	ResponseTechnicalIssue,
	ResponseEmotional,
	ResponseTopicConfusion,
	ResponseReverseExtraction,
}

// TurnMessage is one message of the inbound payload.
type TurnMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// TurnRequest is the inbound per-turn payload.
type TurnRequest struct {
	SessionID           string                 `json:"sessionId"`
	Message             TurnMessage            `json:"message"`
	ConversationHistory []TurnMessage          `json:"conversationHistory"`
	Metadata            map[string]interface{} `json:"metadata,omitempty"`
}

// EngagementMetrics summarizes how long the scammer has been kept
// busy. Duration is estimated from message count, not wall clock.
type EngagementMetrics struct {
	EngagementDurationSeconds int `json:"engagementDurationSeconds"`
	TotalMessagesExchanged    int `json:"totalMessagesExchanged"`
}

// TurnResponse is the outbound per-turn payload.
type TurnResponse struct {
	Status                string            `json:"status"`
	ScamDetected          bool              `json:"scamDetected"`
	EngagementMetrics     EngagementMetrics `json:"engagementMetrics"`
	ExtractedIntelligence intel.Intelligence `json:"extractedIntelligence"`
	AgentNotes            string            `json:"agentNotes"`
	Reply                 string            `json:"reply"`
}
