package game

import (
	"fmt"

	"github.com/ratel-online/unoflip/consts"
	"github.com/ratel-online/unoflip/uno/card"
)

// Handler validates and applies the effect of one family of ranks.
// Validate only reads the table it is given; Apply is the only place a
// card changes the game.
type Handler interface {
	Validate(candidate card.Card, table Table) bool
	Apply(g *Game, played card.Card) error
	sealed()
}

type matchingHandler struct{}

func (matchingHandler) Validate(candidate card.Card, table Table) bool {
	return Playable(candidate, table)
}

func (matchingHandler) sealed() {}

type alwaysValidHandler struct{}

func (alwaysValidHandler) Validate(card.Card, Table) bool {
	return true
}

func (alwaysValidHandler) sealed() {}

type numberHandler struct{ matchingHandler }

func (numberHandler) Apply(g *Game, played card.Card) error {
	g.place(played)
	return nil
}

type drawOneHandler struct{ matchingHandler }

func (drawOneHandler) Apply(g *Game, played card.Card) error {
	g.place(played)
	if err := g.drawFor(g.players.NextIndex(), consts.DrawOneAmount); err != nil {
		return err
	}
	g.skip(g.players.NextIndex())
	return nil
}

type reverseHandler struct{ matchingHandler }

func (reverseHandler) Apply(g *Game, played card.Card) error {
	g.place(played)
	g.players.Reverse()
	g.advance()
	return nil
}

type skipHandler struct{ matchingHandler }

func (skipHandler) Apply(g *Game, played card.Card) error {
	g.place(played)
	g.skip(g.players.NextIndex())
	return nil
}

type wildHandler struct{ alwaysValidHandler }

func (wildHandler) Apply(g *Game, played card.Card) error {
	g.placeWild(played)
	return nil
}

type wildDrawTwoHandler struct{ alwaysValidHandler }

func (wildDrawTwoHandler) Apply(g *Game, played card.Card) error {
	g.accusedGuilty = g.players.Current().Hand().HasColor(g.currentColour)
	g.placeWild(played)
	g.pendingChallenge = true
	return nil
}

// selfDrawHandler is invoked by the game for the draw action; its
// precondition (no matching card in hand) is checked by the caller.
type selfDrawHandler struct{ alwaysValidHandler }

func (selfDrawHandler) Apply(g *Game, _ card.Card) error {
	return g.drawFor(g.players.CurrentIndex(), 1)
}

func handlerFor(rank card.Rank) Handler {
	switch {
	case rank.IsNumber():
		return numberHandler{}
	case rank == card.DrawOne:
		return drawOneHandler{}
	case rank == card.Reverse:
		return reverseHandler{}
	case rank == card.Skip:
		return skipHandler{}
	case rank == card.Wild:
		return wildHandler{}
	case rank == card.WildDrawTwo:
		return wildDrawTwoHandler{}
	case rank == card.SelfDraw:
		return selfDrawHandler{}
	default:
		panic(fmt.Sprintf("no handler for rank %d", int(rank)))
	}
}
