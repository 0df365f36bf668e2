package card

import "fmt"

type Rank int

const (
	Zero Rank = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	DrawOne
	Reverse
	Skip
	Wild
	WildDrawTwo
	// SelfDraw is never dealt. It stands for the draw action of a player
	// who holds nothing that matches the top card.
	SelfDraw
)

const (
	drawOnePoints     = 10
	actionPoints      = 20
	wildPoints        = 40
	wildDrawTwoPoints = 50
)

func NumberRank(number int) (Rank, error) {
	if number < 0 || number > 9 {
		return 0, fmt.Errorf("invalid card number %d", number)
	}
	return Rank(number), nil
}

func (r Rank) IsNumber() bool {
	return r >= Zero && r <= Nine
}

func (r Rank) IsAction() bool {
	return r == DrawOne || r == Reverse || r == Skip
}

func (r Rank) IsWild() bool {
	return r == Wild || r == WildDrawTwo
}

// Points is the value a card of this rank adds to the winner's score.
func (r Rank) Points() int {
	switch {
	case r.IsNumber():
		return int(r)
	case r == DrawOne:
		return drawOnePoints
	case r == Reverse, r == Skip:
		return actionPoints
	case r == Wild:
		return wildPoints
	case r == WildDrawTwo:
		return wildDrawTwoPoints
	default:
		return 0
	}
}

func (r Rank) String() string {
	switch {
	case r.IsNumber():
		return fmt.Sprintf("%d", int(r))
	case r == DrawOne:
		return "+1"
	case r == Reverse:
		return "<=>"
	case r == Skip:
		return "(/)"
	case r == Wild:
		return "(*)"
	case r == WildDrawTwo:
		return "+2!"
	case r == SelfDraw:
		return "draw"
	default:
		return fmt.Sprintf("rank(%d)", int(r))
	}
}
