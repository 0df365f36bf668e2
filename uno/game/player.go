package game

import (
	"fmt"

	"github.com/ratel-online/unoflip/uno/card"
)

type Player struct {
	name  string
	hand  *Hand
	score int
}

func NewPlayer(name string) *Player {
	return &Player{
		name: name,
		hand: NewHand(),
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Hand() *Hand {
	return p.hand
}

func (p *Player) Score() int {
	return p.score
}

// Draw moves amount cards from the deck into the hand.
func (p *Player) Draw(amount int, deck *Deck) ([]card.Card, error) {
	cards, err := deck.Draw(amount)
	if err != nil {
		return nil, err
	}
	p.hand.AddCards(cards)
	return cards, nil
}

func (p *Player) String() string {
	return fmt.Sprintf("%s %v", p.name, p.hand.Cards())
}
