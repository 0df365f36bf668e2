package card

import (
	"github.com/ratel-online/unoflip/uno/card/color"
)

// ActionCard is a coloured DrawOne, Reverse or Skip.
type ActionCard struct {
	rank  Rank
	color color.Color
}

func NewDrawOneCard(color color.Color) ActionCard {
	return ActionCard{rank: DrawOne, color: color}
}

func NewReverseCard(color color.Color) ActionCard {
	return ActionCard{rank: Reverse, color: color}
}

func NewSkipCard(color color.Color) ActionCard {
	return ActionCard{rank: Skip, color: color}
}

func (c ActionCard) Rank() Rank {
	return c.rank
}

func (c ActionCard) Color() color.Color {
	return c.color
}

func (c ActionCard) Equal(other Card) bool {
	otherAction, typeMatched := other.(ActionCard)
	return typeMatched && c == otherAction
}

func (c ActionCard) Score() int {
	return c.rank.Points()
}

func (c ActionCard) String() string {
	if c.rank == DrawOne {
		return c.color.Paint("+1!")
	}
	return c.color.Paint(c.rank.String())
}
