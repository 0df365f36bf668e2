package game

import (
	"sync"

	"github.com/ratel-online/unoflip/uno/card"
)

// Pile is the discard pile. Its top card is the one in play.
type Pile struct {
	sync.Mutex
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) ReplaceTop(card card.Card) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	if len(p.cards) == 0 {
		p.cards = append(p.cards, card)
		return
	}
	p.cards[len(p.cards)-1] = card
}

func (p *Pile) restore(cards []card.Card) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	p.cards = cards
}

func (p *Pile) Top() card.Card {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	pileSize := len(p.cards)
	if pileSize == 0 {
		return nil
	}
	return p.cards[pileSize-1]
}

// TakeUnder removes and returns every card below the top one.
func (p *Pile) TakeUnder() []card.Card {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	if len(p.cards) <= 1 {
		return nil
	}
	under := make([]card.Card, len(p.cards)-1)
	copy(under, p.cards[:len(p.cards)-1])
	p.cards = []card.Card{p.cards[len(p.cards)-1]}
	return under
}

func (p *Pile) Size() int {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	return len(p.cards)
}
