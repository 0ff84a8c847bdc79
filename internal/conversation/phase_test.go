package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPhaseConfig() PhaseConfig {
	return PhaseConfig{InitialTurns: 2, PersistTurns: 8, FinalTurns: 12}
}

func TestComputePhase(t *testing.T) {
	cfg := testPhaseConfig()
	emptyMem := ScammerMemory{IntentCounts: map[Intent]int{}}

	tests := []struct {
		name    string
		turn    int
		intents []Intent
		mem     ScammerMemory
		want    Phase
	}{
		{"first turn", 1, []Intent{IntentGreeting}, emptyMem, PhaseInitialContact},
		{"second turn even with otp ask", 2, []Intent{IntentAskOTP}, emptyMem, PhaseInitialContact},
		{"early extraction intent", 3, []Intent{IntentAskOTP}, emptyMem, PhaseExtractionAttempt},
		{"late extraction intent", 9, []Intent{IntentAskUPI}, emptyMem, PhasePersistence},
		{"endgame extraction intent", 13, []Intent{IntentAskAccount}, emptyMem, PhaseFinalPush},
		{"fear tactic", 4, []Intent{IntentFearTactic}, emptyMem, PhaseCreatingUrgency},
		{"early urgency", 5, []Intent{IntentUrgency}, emptyMem, PhaseCreatingUrgency},
		{"late urgency", 10, []Intent{IntentUrgency}, emptyMem, PhasePersistence},
		{"quiet mid conversation", 5, []Intent{IntentUnknown}, emptyMem, PhaseBuildingTrust},
		{"quiet grind", 10, []Intent{IntentUnknown}, emptyMem, PhasePersistence},
		{"quiet endgame", 14, []Intent{IntentUnknown}, emptyMem, PhaseFinalPush},
		{
			"repeated credential pulls carry over",
			4, []Intent{IntentUnknown},
			ScammerMemory{IntentCounts: map[Intent]int{IntentAskOTP: 2}},
			PhaseExtractionAttempt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputePhase(cfg, tt.turn, tt.intents, tt.mem))
		})
	}
}

func TestComputePhaseNotMonotonic(t *testing.T) {
	cfg := testPhaseConfig()
	mem := ScammerMemory{IntentCounts: map[Intent]int{}}

	p1 := ComputePhase(cfg, 5, []Intent{IntentAskOTP}, mem)
	assert.Equal(t, PhaseExtractionAttempt, p1)

	// The scammer backing off drops the phase back.
	p2 := ComputePhase(cfg, 6, []Intent{IntentUnknown}, mem)
	assert.Equal(t, PhaseBuildingTrust, p2)
}
