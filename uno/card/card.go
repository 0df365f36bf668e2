package card

import (
	"github.com/ratel-online/unoflip/uno/card/color"
)

// Card is an immutable (rank, colour) pair. No physical card ever carries
// the SelfDraw rank.
type Card interface {
	Rank() Rank
	Color() color.Color
	Score() int
	Equal(other Card) bool
	String() string
}

// Score returns the point value of a set of cards.
func Score(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Score()
	}
	return total
}
