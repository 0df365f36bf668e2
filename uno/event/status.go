package event

import "fmt"

// Status is the user-facing outcome of the last transition. Exactly one is
// reported per notification.
type Status int

const (
	StatusStandard Status = iota
	StatusPlayableCard
	StatusInvalidCard
	StatusChallengePending
	StatusChallengeInnocent
	StatusChallengeGuilty
	StatusCannotSkipTurn
	StatusTurnFinished
	StatusWinner
)

var statusTexts = map[Status]string{
	StatusStandard:          " ",
	StatusPlayableCard:      "YOU HAVE PLAYABLE CARD",
	StatusInvalidCard:       "THE CARD YOU PLACED DOES NOT MATCH THE TOP CARD. TRY AGAIN",
	StatusChallengePending:  "THE NEXT PLAYER HAS THE OPTION TO CHALLENGE",
	StatusChallengeInnocent: "INNOCENT: NEXT PLAYER DRAWS 4 CARDS",
	StatusChallengeGuilty:   "GUILTY: YOU DRAW 2 CARDS",
	StatusCannotSkipTurn:    "CANNOT SKIP A TURN, EITHER PLAY A CARD FROM THE HAND OR DRAW FROM THE DECK",
	StatusTurnFinished:      "YOUR TURN IS FINISHED, PRESS NEXT PLAYER",
	StatusWinner:            "WINNER",
}

func (s Status) String() string {
	if text, ok := statusTexts[s]; ok {
		return text
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// WinnerText is the status text announcing the winner of a round.
func WinnerText(playerName string) string {
	return fmt.Sprintf("WINNER: %s HAS WON!", playerName)
}
