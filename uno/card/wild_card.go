package card

import (
	"github.com/ratel-online/unoflip/uno/card/color"
)

// WildCard is dealt without a colour. Once played it is wrapped in a
// ColoredCard carrying the chosen one.
type WildCard struct {
	rank Rank
}

func NewWildCard() WildCard {
	return WildCard{rank: Wild}
}

func NewWildDrawTwoCard() WildCard {
	return WildCard{rank: WildDrawTwo}
}

func (c WildCard) Rank() Rank {
	return c.rank
}

func (c WildCard) Color() color.Color {
	return color.None
}

func (c WildCard) Equal(other Card) bool {
	otherWild, typeMatched := other.(WildCard)
	return typeMatched && c.rank == otherWild.rank
}

func (c WildCard) Score() int {
	return c.rank.Points()
}

func (c WildCard) String() string {
	return c.rank.String()
}
