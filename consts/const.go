package consts

import (
	"time"
)

const (
	MinPlayers = 2
	MaxPlayers = 4

	StartingHandSize = 7
	MaxHandSize      = 20

	// DrawCardIndex is the card index a player submits to draw instead of
	// playing from the hand.
	DrawCardIndex = -1

	DrawOneAmount          = 1
	WildDrawTwoAmount      = 2
	ChallengeInnocentDraws = 4
	ChallengeGuiltyDraws   = 2

	// MaxRejectedMoves bounds how many rejected moves in a row the round
	// driver accepts from one agent.
	MaxRejectedMoves = 16
	MaxTurns         = 2000

	ConsoleDelay = 1 * time.Second
)

// Player kinds accepted by the match configuration.
const (
	PlayerKindHuman = "human"
	PlayerKindGood  = "good"
	PlayerKindNaive = "naive"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsInputInvalid       = NewErr(1, false, "Input invalid. ")
	ErrorsGamePlayersInvalid = NewErr(1, false, "Game players invalid. ")
	ErrorsPlayerNameInvalid  = NewErr(1, false, "Player name invalid. ")
	ErrorsGameStarted        = NewErr(2, false, "Game already started. ")
	ErrorsGameNotStarted     = NewErr(2, false, "Game not started. ")
	ErrorsRoundOver          = NewErr(2, false, "Round is over. ")
	ErrorsCardIndexInvalid   = NewErr(2, false, "Card index invalid. ")
	ErrorsPhaseInvalid       = NewErr(2, false, "Operation not allowed in this phase. ")
	ErrorsTurnLimitReached   = NewErr(2, true, "Turn limit reached. ")
	ErrorsDeckExhausted      = NewErr(3, true, "No cards left in deck or discard pile. ")
	ErrorsConfigInvalid      = NewErr(4, true, "Config invalid. ")
)
