package runner

// Phase is the top-level mode of the simulation. Exactly one is active.
type Phase int

const (
	PhaseIdle      Phase = iota // Menu; nothing ticks
	PhaseRunning                // Endless run over obstacles
	PhaseBossFight              // Boss encounter after the distance threshold
	PhaseRunEnded               // Obstacle hit; last frame stays visible
	PhaseBossWon                // Boss defeated; returns to Idle after a delay
	PhaseBossLost               // Player health depleted in the boss fight
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseBossFight:
		return "boss-fight"
	case PhaseRunEnded:
		return "run-ended"
	case PhaseBossWon:
		return "boss-won"
	case PhaseBossLost:
		return "boss-lost"
	default:
		return "unknown"
	}
}

// Active reports whether the ticker drives this phase.
func (p Phase) Active() bool {
	return p == PhaseRunning || p == PhaseBossFight
}

// Terminal reports whether the phase is an end state of a run or fight.
func (p Phase) Terminal() bool {
	return p == PhaseRunEnded || p == PhaseBossWon || p == PhaseBossLost
}

// canStart reports whether a start signal is legal in the phase.
func (p Phase) canStart() bool {
	return p == PhaseIdle || p == PhaseRunEnded || p == PhaseBossLost
}

// canReturnToMenu reports whether a manual navigation to Idle is legal.
func (p Phase) canReturnToMenu() bool {
	return p == PhaseBossFight || p.Terminal()
}

// PhaseChange describes a single transition, published to subscribers.
type PhaseChange struct {
	From Phase
	To   Phase
}
