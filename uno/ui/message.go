package ui

import (
	"github.com/ratel-online/unoflip/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card string) {
	Printfln("First card is %s", card)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) {
	Printfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerTurnStarted(playerName string, topCard string) {
	Printfln("%s is up, top card %s", playerName, topCard)
}

func (m MessageWriter) StatusChanged(playerName string, text string) {
	Printfln("%s: %s", playerName, text)
}

func (m MessageWriter) Welcome() {
	Printfln(
		"WELCOME TO %s%s%s %s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
		color.Green.Paint("FLIP"),
	)
}

func (m MessageWriter) WinnerFound(text string, score int) {
	Printfln("%s (%d points)", text, score)
}
