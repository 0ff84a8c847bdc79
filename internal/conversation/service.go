package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Swelo-ui/guvi-project-1/internal/intel"
	"github.com/Swelo-ui/guvi-project-1/internal/llm"
	"github.com/Swelo-ui/guvi-project-1/internal/observability/metrics"
	"github.com/Swelo-ui/guvi-project-1/internal/persona"
	"github.com/Swelo-ui/guvi-project-1/internal/report"
	"github.com/Swelo-ui/guvi-project-1/pkg/logging"
)

// secondsPerMessage is the engagement-duration estimate per exchanged
// message, matching the reporting endpoint's expectation.
const secondsPerMessage = 45

// Arbiter runs the generation race. It is an interface so tests can
// script outcomes without providers.
type Arbiter interface {
	Race(ctx context.Context, prompt llm.Prompt) (llm.Candidate, error)
}

// Reporter delivers case reports. Implemented by report.Client.
type Reporter interface {
	Send(ctx context.Context, r report.Report) error
}

// ServiceConfig tunes the turn pipeline.
type ServiceConfig struct {
	Phase          PhaseConfig
	Sanitize       SanitizeConfig
	HistoryCap     int
	GenMaxTokens   int32
	GenTemperature float32
	// FingerprintWindow is the rolling-window size in replies.
	FingerprintWindow int
	// ReportTimeout bounds the async callback delivery.
	ReportTimeout time.Duration
}

// Service runs the per-turn pipeline. Every stage failure degrades to
// a canned reply; ProcessTurn never errors.
type Service struct {
	cfg       ServiceConfig
	store     *SessionStore
	arbiter   Arbiter
	responder *Responder
	snapshots SnapshotStore
	archive   *ArchiveStore
	reporter  Reporter
	metrics   *metrics.EngineMetrics
	logger    *logging.Logger
}

// NewService wires the pipeline. snapshots, archive, reporter and
// engineMetrics may all be nil: persistence and reporting are
// best-effort collaborators, not requirements.
func NewService(
	cfg ServiceConfig,
	store *SessionStore,
	arbiter Arbiter,
	responder *Responder,
	snapshots SnapshotStore,
	archive *ArchiveStore,
	reporter Reporter,
	engineMetrics *metrics.EngineMetrics,
	logger *logging.Logger,
) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HistoryCap <= 0 {
		cfg.HistoryCap = 20
	}
	if cfg.FingerprintWindow <= 0 {
		cfg.FingerprintWindow = 8
	}
	if cfg.ReportTimeout <= 0 {
		cfg.ReportTimeout = 10 * time.Second
	}
	return &Service{
		cfg:       cfg,
		store:     store,
		arbiter:   arbiter,
		responder: responder,
		snapshots: snapshots,
		archive:   archive,
		reporter:  reporter,
		metrics:   engineMetrics,
		logger:    logger,
	}
}

// ProcessTurn runs one full turn. It always returns a usable
// response; internal failures are logged and absorbed.
func (s *Service) ProcessTurn(ctx context.Context, req TurnRequest) TurnResponse {
	start := time.Now()

	sess, created, release := s.store.Acquire(req.SessionID)
	defer release()

	if created {
		sess = s.restoreOrKeep(ctx, sess)
	}
	sess.normalize()
	sess.TurnCount++
	sess.UpdatedAt = time.Now().UTC()

	// Stage order matters: sanitizers that avoid re-asking known facts
	// must observe memory as updated by this turn's own extraction.
	extracted := intel.ExtractAll(req.Message.Text)
	for _, msg := range req.ConversationHistory {
		if isScammerSender(msg.Sender) {
			extracted = intel.Merge(extracted, intel.ExtractAll(msg.Text))
		}
	}
	s.observeIntel(extracted)

	intents := ClassifyIntents(req.Message.Text)
	UpdateMemory(&sess.Memory, req.Message.Text, extracted, intents)
	sess.Intel = intel.Merge(sess.Intel, extracted)

	phase := ComputePhase(s.cfg.Phase, sess.TurnCount, intents, sess.Memory)
	sess.Phase = phase

	rtype := s.responder.ChooseResponseType(sess, phase)
	intent := primaryIntent(intents)
	tplID, canned := s.responder.SelectTemplate(rtype, intent, sess)
	target := s.responder.NextExtractionTarget(sess, phase)

	reply, notes, fromFallback := s.generate(ctx, sess, req, rtype, intent, target, canned)
	if fromFallback {
		s.metrics.ObserveFallback()
	}
	reply = s.responder.Personalize(reply, sess)

	// Book-keeping for the anti-repetition machinery. The template id
	// is retired permanently: on a fallback turn it went out verbatim,
	// and on a generated turn it was offered to the model, so either
	// way re-selecting it risks an echo long after its fingerprints
	// roll off the window.
	sess.Fingerprints = RememberFingerprints(sess.Fingerprints, reply, s.cfg.FingerprintWindow)
	if tplID != "" {
		sess.UsedTemplates[tplID] = true
	}
	sess.LastResponseType = rtype
	if MentionsFamily(reply) {
		sess.LastFamilyTurn = sess.TurnCount
	}
	if rtype == ResponseReverseExtraction {
		s.responder.RecordTargetAsk(sess, target)
	}
	if notes != "" {
		sess.AgentNotes = notes
	} else if sess.AgentNotes == "" {
		sess.AgentNotes = autoNotes(sess, intents)
	}

	scamDetected := sess.Intel.HasActionable() || len(sess.Intel.SuspiciousKeywords) >= 2

	s.maybeReport(sess, scamDetected)
	s.persist(ctx, sess, req.Message.Text, reply)

	totalMessages := len(req.ConversationHistory) + 1
	s.metrics.ObserveTurn(string(phase), scamDetected, time.Since(start).Seconds())
	s.metrics.SetActiveSessions(s.store.Len())

	s.logger.Info("turn processed",
		"session_id", sess.ID,
		"turn", sess.TurnCount,
		"phase", phase,
		"response_type", rtype,
		"scam_detected", scamDetected,
		"fallback", fromFallback,
	)

	return TurnResponse{
		Status:       "success",
		ScamDetected: scamDetected,
		EngagementMetrics: EngagementMetrics{
			EngagementDurationSeconds: totalMessages * secondsPerMessage,
			TotalMessagesExchanged:    totalMessages,
		},
		ExtractedIntelligence: sess.Intel.Clone(),
		AgentNotes:            sess.AgentNotes,
		Reply:                 reply,
	}
}

// Results exposes the archive for the admin endpoint.
func (s *Service) Results(ctx context.Context, limit int) ([]SessionResult, error) {
	return s.archive.ListResults(ctx, limit)
}

// restoreOrKeep tries the snapshot store for a freshly created
// session. A corrupt snapshot resets the session rather than failing
// the turn.
func (s *Service) restoreOrKeep(ctx context.Context, fresh *Session) *Session {
	if s.snapshots == nil {
		return fresh
	}
	restored, err := s.snapshots.Load(ctx, fresh.ID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSnapshotNotFound):
		case errors.Is(err, ErrSnapshotCorrupt):
			s.logger.Warn("snapshot corrupt, resetting session", "session_id", fresh.ID)
			s.metrics.ObserveSnapshotError("load_corrupt")
		default:
			s.logger.Warn("snapshot load failed", "session_id", fresh.ID, "error", err)
			s.metrics.ObserveSnapshotError("load")
		}
		return fresh
	}
	s.store.Replace(restored)
	return restored
}

// generate runs the race and sanitize stages, falling back to the
// pre-selected canned reply on any failure.
func (s *Service) generate(ctx context.Context, sess *Session, req TurnRequest, rtype ResponseType, intent Intent, target, canned string) (reply, notes string, fromFallback bool) {
	if s.arbiter == nil {
		return canned, "", true
	}

	prompt := s.buildPrompt(sess, req, rtype, intent, target, canned)
	candidate, err := s.arbiter.Race(ctx, prompt)
	if err != nil {
		s.logger.Warn("generation race failed, using fallback", "session_id", sess.ID, "error", err)
		s.metrics.ObserveRace("none", "failed")
		return canned, "", true
	}
	s.metrics.ObserveRace(candidate.Provider, "win")

	thought := candidate.Thought
	sess.Intel = intel.Merge(sess.Intel, intel.Intelligence{
		BankAccounts:       thought.Intelligence.BankAccounts,
		UPIIDs:             thought.Intelligence.UPIIDs,
		PhishingLinks:      thought.Intelligence.PhishingLinks,
		PhoneNumbers:       thought.Intelligence.PhoneNumbers,
		SuspiciousKeywords: thought.Intelligence.SuspiciousKeywords,
	})
	if sess.ScamType == "" && thought.ScamType != "" {
		sess.ScamType = thought.ScamType
	}

	sanitized, ok := Sanitize(thought.Response, sess, sess.Persona, s.cfg.Sanitize)
	if !ok {
		s.logger.Debug("sanitizer discarded reply", "session_id", sess.ID, "provider", candidate.Provider)
		return canned, thought.AgentNotes, true
	}
	return sanitized, thought.AgentNotes, false
}

// buildPrompt assembles system persona, capped history, the current
// message, and the structured-output contract.
func (s *Service) buildPrompt(sess *Session, req TurnRequest, rtype ResponseType, intent Intent, target, canned string) llm.Prompt {
	history := req.ConversationHistory
	if len(history) > s.cfg.HistoryCap {
		history = history[len(history)-s.cfg.HistoryCap:]
	}

	messages := make([]llm.ChatMessage, 0, len(history)+1)
	for _, msg := range history {
		role := llm.ChatRoleAssistant
		if isScammerSender(msg.Sender) {
			role = llm.ChatRoleUser
		}
		messages = append(messages, llm.ChatMessage{Role: role, Content: msg.Text})
	}

	var instruction strings.Builder
	fmt.Fprintf(&instruction, "Scammer says: %q\n\n", req.Message.Text)
	fmt.Fprintf(&instruction, "Conversation phase: %s. Respond in the %q style", sess.Phase, rtype)
	if intent != IntentUnknown {
		fmt.Fprintf(&instruction, " to their %q push", intent)
	}
	instruction.WriteString(".\n")
	if target != NoExtractionTarget {
		fmt.Fprintf(&instruction, "If it fits naturally, nudge them to reveal their %s.\n", strings.ReplaceAll(target, "_", " "))
	}
	fmt.Fprintf(&instruction, "A canned reply you may improve on: %q\n\n", canned)
	instruction.WriteString(persona.ExtractionPrompt())
	instruction.WriteString("\n\n")
	instruction.WriteString(llm.ResponseFormat)

	messages = append(messages, llm.ChatMessage{Role: llm.ChatRoleUser, Content: instruction.String()})

	return llm.Prompt{
		System:      sess.Persona.SystemPrompt(),
		Messages:    messages,
		MaxTokens:   s.cfg.GenMaxTokens,
		Temperature: s.cfg.GenTemperature,
	}
}

// maybeReport fires the callback when actionable intel exists and a
// category is newly discovered. At most one report per category per
// session; delivery failures are swallowed.
func (s *Service) maybeReport(sess *Session, scamDetected bool) {
	if s.reporter == nil || !sess.Intel.HasActionable() {
		return
	}
	var newCategories []string
	for _, cat := range sess.Intel.Categories() {
		if !sess.ReportedCategories[cat] {
			newCategories = append(newCategories, cat)
			sess.ReportedCategories[cat] = true
		}
	}
	if len(newCategories) == 0 {
		return
	}

	payload := report.Report{
		SessionID:             sess.ID,
		ScamDetected:          scamDetected,
		TotalMessages:         sess.TurnCount * 2,
		ExtractedIntelligence: sess.Intel.Clone(),
		AgentNotes:            sess.AgentNotes,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ReportTimeout)
		defer cancel()
		if err := s.reporter.Send(ctx, payload); err != nil {
			s.metrics.ObserveReport("failed")
			return
		}
		s.metrics.ObserveReport("sent")
	}()
}

// persist writes the snapshot and archive rows best-effort.
func (s *Service) persist(ctx context.Context, sess *Session, scammerText, reply string) {
	if s.snapshots != nil {
		if err := s.snapshots.Save(ctx, sess); err != nil {
			s.logger.Warn("snapshot save failed", "session_id", sess.ID, "error", err)
			s.metrics.ObserveSnapshotError("save")
		}
	}
	if err := s.archive.SaveTurn(ctx, sess, scammerText, reply); err != nil {
		s.logger.Warn("archive save failed", "session_id", sess.ID, "error", err)
	}
}

func (s *Service) observeIntel(extracted intel.Intelligence) {
	s.metrics.ObserveIntel("upiIds", len(extracted.UPIIDs))
	s.metrics.ObserveIntel("bankAccounts", len(extracted.BankAccounts))
	s.metrics.ObserveIntel("ifscCodes", len(extracted.IFSCCodes))
	s.metrics.ObserveIntel("phoneNumbers", len(extracted.PhoneNumbers))
	s.metrics.ObserveIntel("phishingLinks", len(extracted.PhishingLinks))
	s.metrics.ObserveIntel("aadhaarNumbers", len(extracted.AadhaarNumbers))
	s.metrics.ObserveIntel("panNumbers", len(extracted.PANNumbers))
}

func isScammerSender(sender string) bool {
	switch strings.ToLower(sender) {
	case "scammer", "caller", "attacker":
		return true
	default:
		return false
	}
}

func autoNotes(sess *Session, intents []Intent) string {
	tags := make([]string, 0, len(intents))
	for _, in := range intents {
		tags = append(tags, string(in))
	}
	base := fmt.Sprintf("Phase %s; scammer pushing %s.", sess.Phase, strings.Join(tags, ", "))
	if sess.Memory.ThreatType != "" {
		base += fmt.Sprintf(" Threat style: %s.", sess.Memory.ThreatType)
	}
	return base
}
