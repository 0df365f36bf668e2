package player

import (
	"github.com/ratel-online/unoflip/consts"
	"github.com/ratel-online/unoflip/uno/card/color"
	"github.com/ratel-online/unoflip/uno/game"
)

// challengeThreshold is the accused hand size from which a good player
// bets the accused still held the old colour.
const challengeThreshold = 4

type goodPlayer struct {
	basicPlayer
}

func NewGoodPlayer(name string) game.Agent {
	return goodPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p goodPlayer) PickColor(gameView game.View) color.Color {
	if len(gameView.Hand) == 0 {
		return color.Blue
	}

	colorCounts := make(map[color.Color]int)
	for _, card := range gameView.Hand {
		if card.Color() == color.None {
			for _, availableColor := range color.All {
				colorCounts[availableColor]++
			}
		} else {
			colorCounts[card.Color()]++
		}
	}

	var (
		mostFrequentColor       = color.Blue
		mostFrequentColorAmount int
	)
	for _, availableColor := range color.All {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}

	return mostFrequentColor
}

// Play picks the playable card after which most of the hand stays playable.
func (p goodPlayer) Play(gameView game.View) int {
	playableIndexes := gameView.PlayableIndexes()
	if len(playableIndexes) == 0 {
		return consts.DrawCardIndex
	}

	mostDiscardableCardIndex := playableIndexes[0]
	maxSpareCards := 0

	for _, cardIndex := range playableIndexes {
		playableCard := gameView.Hand[cardIndex]
		table := game.Table{Color: playableCard.Color(), Rank: playableCard.Rank()}
		if table.Color == color.None {
			table.Color = p.PickColor(gameView)
		}
		spareCards := 0
		for handIndex, handCard := range gameView.Hand {
			if handIndex != cardIndex && game.Playable(handCard, table) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return mostDiscardableCardIndex
}

func (p goodPlayer) Challenge(gameView game.View) bool {
	return accusedHandSize(gameView) >= challengeThreshold
}
