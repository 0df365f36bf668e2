package game

import (
	"fmt"

	"github.com/ratel-online/unoflip/uno/card"
)

// NewStackedGame seats one player per hand, puts top in play and leaves
// deckCards to be drawn in order. Players are named player1, player2...
func NewStackedGame(top card.Card, deckCards []card.Card, hands ...[]card.Card) *Game {
	g := New(NewDeckFromCards(deckCards, nil))
	for i, hand := range hands {
		player, err := g.AddPlayer(fmt.Sprintf("player%d", i+1))
		if err != nil {
			panic(err)
		}
		player.Hand().AddCards(hand)
	}
	g.players = newPlayerIterator(g.seats)
	g.pile.Add(top)
	g.place(top)
	g.phase = PhaseAwaitingPlay
	return g
}
