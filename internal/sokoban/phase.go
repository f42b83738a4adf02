package sokoban

// Phase is the lifecycle state of the engine.
//
//	Idle -> Playing        on load
//	Playing -> Won         when no uncovered target remains after a move
//	Playing -> Failed      when an enforced move limit is exhausted
//	Won -> Finished        when advancing past the last level
//
// Won, Failed and Finished are left only through a load or reset.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseWon
	PhaseFailed
	PhaseFinished
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseFailed:
		return "failed"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase accepts no further moves.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseFailed || p == PhaseFinished
}
