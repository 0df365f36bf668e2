package game

import (
	"github.com/ratel-online/unoflip/uno/card"
	"github.com/ratel-online/unoflip/uno/card/color"
)

// Table holds the criteria a card has to match to be played.
type Table struct {
	Color color.Color
	Rank  card.Rank
}

func Playable(candidateCard card.Card, table Table) bool {
	switch candidateCard.Rank() {
	case card.Wild, card.WildDrawTwo:
		return true
	case card.SelfDraw:
		return false
	}
	return candidateCard.Color() == table.Color || candidateCard.Rank() == table.Rank
}
