package game

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/unoflip/consts"
	"github.com/ratel-online/unoflip/uno/event"
)

// Run drives a started game with one agent per seat until a player wins.
func Run(g *Game, agents []Agent, maxTurns int) (*Player, error) {
	if len(agents) != len(g.seats) {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	turns, rejected := 0, 0
	for {
		var (
			notification event.Notification
			err          error
		)
		switch g.Phase() {
		case PhaseRoundOver:
			return g.Winner(), nil
		case PhaseAwaitingPlay:
			seat := g.CurrentTurn()
			notification, err = g.PlayCard(agents[seat].Play(g.View(seat)))
			if err == consts.ErrorsCardIndexInvalid {
				notification, err = g.Notification(), nil
				notification.Status = event.StatusInvalidCard
			}
		case PhaseAwaitingColour:
			seat := g.CurrentTurn()
			notification, err = g.ChooseColour(agents[seat].PickColor(g.View(seat)))
		case PhaseChallengePending:
			seat := g.NextPlayerIndex()
			notification, err = g.ResolveChallenge(agents[seat].Challenge(g.View(seat)))
		case PhaseTurnComplete:
			turns++
			if turns > maxTurns {
				return nil, consts.ErrorsTurnLimitReached
			}
			notification, err = g.NextTurn()
		default:
			return nil, consts.ErrorsPhaseInvalid
		}
		if err != nil {
			log.Error(err)
			return nil, err
		}

		switch notification.Status {
		case event.StatusInvalidCard, event.StatusPlayableCard:
			rejected++
			if rejected > consts.MaxRejectedMoves {
				log.Errorf("[Run] %s keeps submitting rejected moves\n", g.CurrentPlayer().Name())
				return nil, consts.ErrorsInputInvalid
			}
		default:
			rejected = 0
		}
	}
}
