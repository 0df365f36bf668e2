package player

import (
	"math/rand"

	"github.com/ratel-online/unoflip/consts"
	"github.com/ratel-online/unoflip/uno/card/color"
	"github.com/ratel-online/unoflip/uno/game"
)

type naivePlayer struct {
	basicPlayer
}

func NewNaivePlayer(name string) game.Agent {
	return naivePlayer{basicPlayer: basicPlayer{name: name}}
}

func (p naivePlayer) PickColor(gameView game.View) color.Color {
	randomIndex := rand.Intn(len(color.All))
	return color.All[randomIndex]
}

func (p naivePlayer) Play(gameView game.View) int {
	playable := gameView.PlayableIndexes()
	if len(playable) == 0 {
		return consts.DrawCardIndex
	}
	return playable[0]
}

func (p naivePlayer) Challenge(gameView game.View) bool {
	return false
}
