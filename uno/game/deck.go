package game

import (
	"math/rand"
	"sync"

	"github.com/ratel-online/unoflip/consts"
	"github.com/ratel-online/unoflip/uno/card"
	"github.com/ratel-online/unoflip/uno/card/color"
)

// Deck is the draw pile. When it runs dry it reshuffles everything under
// the top of its discard pile back in.
type Deck struct {
	sync.Mutex
	cards []card.Card
	pile  *Pile
	rng   *rand.Rand
}

// NewDeck returns a shuffled light-side deck of 104 cards.
func NewDeck(rng *rand.Rand) *Deck {
	deck := NewDeckFromCards(createCards(), rng)
	deck.shuffle(deck.cards)
	return deck
}

// NewDeckFromCards returns a deck that deals cards in the given order.
func NewDeckFromCards(cards []card.Card, rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	deckCards := make([]card.Card, len(cards))
	copy(deckCards, cards)
	return &Deck{
		cards: deckCards,
		pile:  NewPile(),
		rng:   rng,
	}
}

func (d *Deck) Pile() *Pile {
	return d.pile
}

func (d *Deck) Size() int {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	return len(d.cards)
}

func (d *Deck) TakeCard() (card.Card, error) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	return d.take()
}

// Draw takes amount cards. On failure the deck and the discard pile are
// left as they were, even if the pile had been recycled.
func (d *Deck) Draw(amount int) ([]card.Card, error) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	deckBefore := make([]card.Card, len(d.cards))
	copy(deckBefore, d.cards)
	pileBefore := d.pile.Cards()

	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		taken, err := d.take()
		if err != nil {
			d.cards = deckBefore
			d.pile.restore(pileBefore)
			return nil, err
		}
		cards = append(cards, taken)
	}
	return cards, nil
}

// PutCard returns a card to the bottom of the deck.
func (d *Deck) PutCard(c card.Card) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	d.cards = append(d.cards, c)
}

func (d *Deck) take() (card.Card, error) {
	if len(d.cards) == 0 {
		d.recycle()
	}
	if len(d.cards) == 0 {
		return nil, consts.ErrorsDeckExhausted
	}
	taken := d.cards[0]
	d.cards = d.cards[1:]
	return taken, nil
}

func (d *Deck) recycle() {
	under := d.pile.TakeUnder()
	for i, discarded := range under {
		if colored, ok := discarded.(card.ColoredCard); ok {
			under[i] = colored.Uncolored()
		}
	}
	d.shuffle(under)
	d.cards = append(d.cards, under...)
}

func (d *Deck) shuffle(cards []card.Card) {
	d.rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

func createCards() []card.Card {
	cards := make([]card.Card, 0, 104)
	for _, cardColor := range color.All {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createBlackCards()...)
	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	drawOneCard := card.NewDrawOneCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	skipCard := card.NewSkipCard(cardColor)

	cards := []card.Card{
		drawOneCard, drawOneCard,
		reverseCard, reverseCard,
		skipCard, skipCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawTwoCard := card.NewWildDrawTwoCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawTwoCard, wildDrawTwoCard, wildDrawTwoCard, wildDrawTwoCard,
	}
}
