package game

import (
	"github.com/ratel-online/unoflip/consts"
	"github.com/ratel-online/unoflip/uno/card"
	"github.com/ratel-online/unoflip/uno/card/color"
)

// Hand keeps cards in display order.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.StartingHandSize)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Card(index int) (card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return nil, consts.ErrorsCardIndexInvalid
	}
	return h.cards[index], nil
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// Matches reports whether any card shares the colour or the rank.
func (h *Hand) Matches(c color.Color, rank card.Rank) bool {
	for _, cardInHand := range h.cards {
		if cardInHand.Color() == c || cardInHand.Rank() == rank {
			return true
		}
	}
	return false
}

func (h *Hand) HasColor(c color.Color) bool {
	for _, cardInHand := range h.cards {
		if cardInHand.Color() == c {
			return true
		}
	}
	return false
}

func (h *Hand) PlayableCards(table Table) []int {
	var playable []int
	for index, candidateCard := range h.cards {
		if Playable(candidateCard, table) {
			playable = append(playable, index)
		}
	}
	return playable
}

// Play removes the card at index and returns it.
func (h *Hand) Play(index int) (card.Card, error) {
	played, err := h.Card(index)
	if err != nil {
		return nil, err
	}
	h.cards = append(h.cards[:index:index], h.cards[index+1:]...)
	return played, nil
}

func (h *Hand) Score() int {
	return card.Score(h.cards)
}

func (h *Hand) Size() int {
	return len(h.cards)
}
