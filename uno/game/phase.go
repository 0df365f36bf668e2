package game

type Phase int

const (
	PhaseSetup Phase = iota
	PhaseAwaitingPlay
	PhaseAwaitingColour
	PhaseChallengePending
	PhaseTurnComplete
	PhaseRoundOver
)

var phaseNames = map[Phase]string{
	PhaseSetup:            "setup",
	PhaseAwaitingPlay:     "awaiting_play",
	PhaseAwaitingColour:   "awaiting_colour",
	PhaseChallengePending: "challenge_pending",
	PhaseTurnComplete:     "turn_complete",
	PhaseRoundOver:        "round_over",
}

func (p Phase) String() string {
	return phaseNames[p]
}
