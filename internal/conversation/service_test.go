package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Swelo-ui/guvi-project-1/internal/llm"
	"github.com/Swelo-ui/guvi-project-1/internal/report"
)

type scriptedArbiter struct {
	candidate llm.Candidate
	err       error
	prompts   []llm.Prompt
}

func (a *scriptedArbiter) Race(_ context.Context, p llm.Prompt) (llm.Candidate, error) {
	a.prompts = append(a.prompts, p)
	return a.candidate, a.err
}

type capturingReporter struct {
	reports chan report.Report
}

func (r *capturingReporter) Send(_ context.Context, rep report.Report) error {
	r.reports <- rep
	return nil
}

func newTestService(arbiter Arbiter, reporter Reporter) *Service {
	cfg := ServiceConfig{
		Phase:      PhaseConfig{InitialTurns: 2, PersistTurns: 8, FinalTurns: 12},
		HistoryCap: 20,
	}
	responder := NewResponder(ResponderConfig{}, 99)
	return NewService(cfg, NewSessionStore(time.Hour), arbiter, responder, nil, nil, reporter, nil, nil)
}

func TestProcessTurnFallbackOnArbiterFailure(t *testing.T) {
	svc := newTestService(&scriptedArbiter{err: llm.ErrAllProvidersFailed}, nil)

	resp := svc.ProcessTurn(context.Background(), TurnRequest{
		SessionID: "svc-1",
		Message:   TurnMessage{Sender: "scammer", Text: "Your SBI account is blocked, send OTP now"},
	})

	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.Reply)
	assert.True(t, resp.ScamDetected)
	assert.Contains(t, resp.ExtractedIntelligence.MentionedBanks, "sbi")
	assert.Contains(t, resp.ExtractedIntelligence.SuspiciousKeywords, "blocked")
	assert.Contains(t, resp.ExtractedIntelligence.SuspiciousKeywords, "otp")
	assert.Equal(t, 1, resp.EngagementMetrics.TotalMessagesExchanged)
	assert.Equal(t, 45, resp.EngagementMetrics.EngagementDurationSeconds)
}

func TestProcessTurnBenignMessage(t *testing.T) {
	svc := newTestService(&scriptedArbiter{err: llm.ErrAllProvidersFailed}, nil)

	resp := svc.ProcessTurn(context.Background(), TurnRequest{
		SessionID: "svc-benign",
		Message:   TurnMessage{Sender: "scammer", Text: "Hello, how are you today?"},
	})

	assert.Equal(t, "success", resp.Status)
	assert.False(t, resp.ScamDetected)
	assert.NotEmpty(t, resp.Reply)
}

func TestProcessTurnUsesGeneratedReply(t *testing.T) {
	arbiter := &scriptedArbiter{candidate: llm.Candidate{
		Provider: "gemini",
		Thought: llm.AgentThought{
			ScamDetected: true,
			ScamType:     "digital_arrest",
			Intelligence: llm.ThoughtIntel{UPIIDs: []string{"fraud@ybl"}},
			AgentNotes:   "claims to be cyber cell",
			Response:     "Arre beta, which police station you are calling from?",
		},
	}}
	svc := newTestService(arbiter, nil)

	resp := svc.ProcessTurn(context.Background(), TurnRequest{
		SessionID: "svc-2",
		Message:   TurnMessage{Sender: "scammer", Text: "This is cyber police, pay the fine or be arrested"},
	})

	assert.Equal(t, "Arre beta, which police station you are calling from?", resp.Reply)
	assert.Contains(t, resp.ExtractedIntelligence.UPIIDs, "fraud@ybl")
	assert.True(t, resp.ScamDetected)
	assert.Equal(t, "claims to be cyber cell", resp.AgentNotes)
	require.Len(t, arbiter.prompts, 1)
	assert.NotEmpty(t, arbiter.prompts[0].System)
}

func TestProcessTurnFallbackOnRejectedReply(t *testing.T) {
	arbiter := &scriptedArbiter{candidate: llm.Candidate{
		Provider: "gemini",
		Thought:  llm.AgentThought{Response: "   "},
	}}
	svc := newTestService(arbiter, nil)

	resp := svc.ProcessTurn(context.Background(), TurnRequest{
		SessionID: "svc-3",
		Message:   TurnMessage{Sender: "scammer", Text: "share otp"},
	})

	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.Reply)
}

func TestProcessTurnVariesResponseType(t *testing.T) {
	svc := newTestService(&scriptedArbiter{err: llm.ErrAllProvidersFailed}, nil)

	var last ResponseType
	for i := 0; i < 10; i++ {
		svc.ProcessTurn(context.Background(), TurnRequest{
			SessionID: "svc-4",
			Message:   TurnMessage{Sender: "scammer", Text: "send the otp immediately"},
		})

		sess, _, release := svc.store.Acquire("svc-4")
		current := sess.LastResponseType
		release()

		if i > 0 && current == last {
			t.Fatalf("turn %d repeated response type %q", i, current)
		}
		last = current
	}
}

func TestProcessTurnAccumulatesAcrossTurns(t *testing.T) {
	svc := newTestService(&scriptedArbiter{err: llm.ErrAllProvidersFailed}, nil)
	ctx := context.Background()

	svc.ProcessTurn(ctx, TurnRequest{
		SessionID: "svc-5",
		Message:   TurnMessage{Sender: "scammer", Text: "My name is Rajesh Kumar. Pay to rajesh@ybl today."},
	})
	resp := svc.ProcessTurn(ctx, TurnRequest{
		SessionID: "svc-5",
		Message:   TurnMessage{Sender: "scammer", Text: "Also our account 12345678901 is for the deposit"},
	})

	assert.Contains(t, resp.ExtractedIntelligence.UPIIDs, "rajesh@ybl")
	assert.Contains(t, resp.ExtractedIntelligence.BankAccounts, "12345678901")

	sess, _, release := svc.store.Acquire("svc-5")
	defer release()
	assert.Equal(t, 2, sess.TurnCount)
	assert.Equal(t, "rajesh kumar", sess.Memory.ClaimedName)
	assert.Equal(t, "rajesh@ybl", sess.Memory.ClaimedUPI)
}

func TestProcessTurnReportsActionableIntel(t *testing.T) {
	reporter := &capturingReporter{reports: make(chan report.Report, 4)}
	svc := newTestService(&scriptedArbiter{err: llm.ErrAllProvidersFailed}, reporter)

	svc.ProcessTurn(context.Background(), TurnRequest{
		SessionID: "svc-6",
		Message:   TurnMessage{Sender: "scammer", Text: "Transfer the fine to fraud@ybl immediately"},
	})

	select {
	case rep := <-reporter.reports:
		assert.Equal(t, "svc-6", rep.SessionID)
		assert.True(t, rep.ScamDetected)
		assert.Contains(t, rep.ExtractedIntelligence.UPIIDs, "fraud@ybl")
	case <-time.After(2 * time.Second):
		t.Fatal("expected a report to be sent")
	}

	// Same category again: no second report.
	svc.ProcessTurn(context.Background(), TurnRequest{
		SessionID: "svc-6",
		Message:   TurnMessage{Sender: "scammer", Text: "I said pay fraud@ybl now"},
	})
	select {
	case rep := <-reporter.reports:
		t.Fatalf("unexpected duplicate report: %+v", rep)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestProcessTurnRetiresTemplatesPermanently(t *testing.T) {
	svc := newTestService(&scriptedArbiter{err: llm.ErrAllProvidersFailed}, nil)

	generic := map[string]bool{}
	for _, text := range genericFallbacks {
		generic[text] = true
	}

	// Far more turns than the fingerprint window covers: once a
	// template's fingerprints roll off, only the used-template set
	// keeps it from going out a second time.
	templated := 0
	seen := map[string]int{}
	for i := 0; i < 80; i++ {
		resp := svc.ProcessTurn(context.Background(), TurnRequest{
			SessionID: "svc-8",
			Message:   TurnMessage{Sender: "scammer", Text: "share the otp"},
		})
		require.NotEmpty(t, resp.Reply)
		if generic[resp.Reply] {
			continue
		}
		templated++
		if prev, ok := seen[resp.Reply]; ok {
			t.Fatalf("turn %d repeated turn %d reply %q", i, prev, resp.Reply)
		}
		seen[resp.Reply] = i
	}

	sess, _, release := svc.store.Acquire("svc-8")
	defer release()
	assert.Equal(t, templated, len(sess.UsedTemplates))
}

func TestProcessTurnExtractsFromHistory(t *testing.T) {
	svc := newTestService(&scriptedArbiter{err: llm.ErrAllProvidersFailed}, nil)

	resp := svc.ProcessTurn(context.Background(), TurnRequest{
		SessionID: "svc-7",
		Message:   TurnMessage{Sender: "scammer", Text: "did you send it?"},
		ConversationHistory: []TurnMessage{
			{Sender: "scammer", Text: "pay to collect@paytm before noon"},
			{Sender: "user", Text: "which app beta?"},
		},
	})

	assert.Contains(t, resp.ExtractedIntelligence.UPIIDs, "collect@paytm")
}
