package player

import (
	"fmt"

	"github.com/ratel-online/unoflip/uno/card/color"
	"github.com/ratel-online/unoflip/uno/game"
	"github.com/ratel-online/unoflip/uno/ui"
)

type humanPlayer struct {
	basicPlayer
}

func NewHumanPlayer(name string) game.Agent {
	return humanPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p humanPlayer) PickColor(gameView game.View) color.Color {
	return ui.PromptColor()
}

func (p humanPlayer) Play(gameView game.View) int {
	ui.Message.HumanPlayerTurnStarted(p.name)
	ui.Println(gameView)
	return ui.PromptCardSelection(gameView.Hand)
}

func (p humanPlayer) Challenge(gameView game.View) bool {
	ui.Println(gameView)
	return ui.PromptYesNo(fmt.Sprintf("%s, %s played a wild draw two. Challenge?", p.name, gameView.CurrentPlayer))
}
