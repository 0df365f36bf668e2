package card

import (
	"fmt"

	"github.com/ratel-online/unoflip/uno/card/color"
)

// ColoredCard is a wild card after its player picked a colour for it.
type ColoredCard struct {
	card  Card
	color color.Color
}

func NewColoredCard(card Card, color color.Color) ColoredCard {
	return ColoredCard{
		card:  card,
		color: color,
	}
}

func (c ColoredCard) Rank() Rank {
	return c.card.Rank()
}

func (c ColoredCard) Color() color.Color {
	return c.color
}

func (c ColoredCard) Equal(other Card) bool {
	return c.card.Equal(other)
}

func (c ColoredCard) Score() int {
	return c.card.Score()
}

// Uncolored returns the wild card as it was dealt.
func (c ColoredCard) Uncolored() Card {
	return c.card
}

func (c ColoredCard) String() string {
	return c.color.Paint(c.card.String()) + fmt.Sprintf("(%s)", c.color.Name())
}
