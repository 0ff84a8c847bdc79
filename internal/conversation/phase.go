package conversation

// PhaseConfig holds the turn-count thresholds for phase computation.
// They come from configuration, not constants, so operators can tune
// pacing per deployment.
type PhaseConfig struct {
	InitialTurns int
	PersistTurns int
	FinalTurns   int
}

// ComputePhase derives the conversation phase from turn count, the
// current message's intents, and accumulated memory. It is recomputed
// every turn and intentionally not monotonic: a scammer who calms
// down after threats drops the phase back.
func ComputePhase(cfg PhaseConfig, turnCount int, intents []Intent, mem ScammerMemory) Phase {
	if turnCount <= cfg.InitialTurns {
		return PhaseInitialContact
	}

	// Repeated credential pulls count as an active extraction attempt
	// even when the current message is quiet about it.
	repeatPulls := mem.IntentCounts[IntentAskOTP]+mem.IntentCounts[IntentAskAccount] >= 2

	if hasExtractionIntent(intents) || repeatPulls {
		switch {
		case turnCount > cfg.FinalTurns:
			return PhaseFinalPush
		case turnCount > cfg.PersistTurns:
			return PhasePersistence
		default:
			return PhaseExtractionAttempt
		}
	}

	if hasIntent(intents, IntentFearTactic) {
		return PhaseCreatingUrgency
	}
	if hasIntent(intents, IntentUrgency) {
		if turnCount <= cfg.PersistTurns {
			return PhaseCreatingUrgency
		}
		return PhasePersistence
	}

	// A long conversation yielding nothing new means the scammer is
	// grinding; reflect that even without explicit signals.
	switch {
	case turnCount > cfg.FinalTurns:
		return PhaseFinalPush
	case turnCount > cfg.PersistTurns:
		return PhasePersistence
	}
	return PhaseBuildingTrust
}
