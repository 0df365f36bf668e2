package game_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/unoflip/consts"
	"github.com/ratel-online/unoflip/uno/card"
	"github.com/ratel-online/unoflip/uno/card/color"
	"github.com/ratel-online/unoflip/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedAgent struct {
	name      string
	challenge bool
}

func (a *scriptedAgent) Name() string {
	return a.name
}

func (a *scriptedAgent) Play(view game.View) int {
	if playable := view.PlayableIndexes(); len(playable) > 0 {
		return playable[0]
	}
	return consts.DrawCardIndex
}

func (a *scriptedAgent) PickColor(view game.View) color.Color {
	for _, cardInHand := range view.Hand {
		if cardInHand.Color() != color.None {
			return cardInHand.Color()
		}
	}
	return color.Red
}

func (a *scriptedAgent) Challenge(game.View) bool {
	return a.challenge
}

type stubbornAgent struct {
	scriptedAgent
}

func (a *stubbornAgent) Play(game.View) int {
	return 99
}

func TestRun(t *testing.T) {
	for players := consts.MinPlayers; players <= consts.MaxPlayers; players++ {
		g := game.New(game.NewDeck(rand.New(rand.NewSource(int64(players)))))
		agents := make([]game.Agent, 0, players)
		for i := 0; i < players; i++ {
			agent := &scriptedAgent{name: string(rune('a' + i)), challenge: i%2 == 0}
			_, err := g.AddPlayer(agent.Name())
			require.NoError(t, err)
			agents = append(agents, agent)
		}
		_, err := g.Start(consts.StartingHandSize)
		require.NoError(t, err)

		winner, err := game.Run(g, agents, consts.MaxTurns)
		require.NoError(t, err)
		require.NotNil(t, winner)

		assert.Equal(t, game.PhaseRoundOver, g.Phase())
		assert.True(t, winner.Hand().Empty())
		expected := 0
		for _, player := range g.Players() {
			if player != winner {
				expected += player.Hand().Score()
			}
		}
		assert.Equal(t, expected, winner.Score())
	}
}

func TestRunStopsStubbornAgents(t *testing.T) {
	g := game.NewStackedGame(redFive, nil,
		[]card.Card{redOne},
		[]card.Card{greenThree},
	)
	agents := []game.Agent{&stubbornAgent{}, &stubbornAgent{}}

	_, err := game.Run(g, agents, consts.MaxTurns)
	require.Equal(t, consts.ErrorsInputInvalid, err)
	assert.Equal(t, 1, handSize(t, g, 0))
}

func TestRunNeedsOneAgentPerSeat(t *testing.T) {
	g := game.NewStackedGame(redFive, nil, []card.Card{redOne}, []card.Card{greenThree})
	_, err := game.Run(g, []game.Agent{&scriptedAgent{}}, consts.MaxTurns)
	require.Equal(t, consts.ErrorsGamePlayersInvalid, err)
}

func TestRunTurnLimit(t *testing.T) {
	g := game.NewStackedGame(redFive, nil,
		[]card.Card{redOne, redNine},
		[]card.Card{card.NewNumberCard(color.Red, 3), greenThree},
	)
	agents := []game.Agent{&scriptedAgent{name: "a"}, &scriptedAgent{name: "b"}}

	_, err := game.Run(g, agents, 1)
	require.Equal(t, consts.ErrorsTurnLimitReached, err)
}
