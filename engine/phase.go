package engine

// Phase is the top-level lifecycle state of the simulation loop
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// validTransitions is the lifecycle graph; restart is GameOver -> Playing
var validTransitions = map[Phase][]Phase{
	PhaseSetup:    {PhasePlaying},
	PhasePlaying:  {PhaseGameOver, PhaseQuit},
	PhaseGameOver: {PhasePlaying, PhaseQuit},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
