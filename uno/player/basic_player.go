package player

import (
	"github.com/ratel-online/unoflip/uno/game"
)

type basicPlayer struct {
	name string
}

func (p basicPlayer) Name() string {
	return p.name
}

// accusedHandSize is how many cards the player who just played a wild
// draw two is holding.
func accusedHandSize(gameView game.View) int {
	return gameView.HandCounts[gameView.CurrentPlayer]
}
