package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/unoflip/uno/card"
	"github.com/ratel-online/unoflip/uno/card/color"
)

// View is what one seat is allowed to see of the game.
type View struct {
	Seat           int
	TopCard        card.Card
	Color          color.Color
	Rank           card.Rank
	Phase          Phase
	Hand           []card.Card
	PlayerSequence []string
	HandCounts     map[string]int
	CurrentPlayer  string
	NextPlayer     string
	Clockwise      bool
}

func (g *Game) View(seat int) View {
	view := View{
		Seat:       seat,
		TopCard:    g.topCard,
		Color:      g.currentColour,
		Rank:       g.currentRank,
		Phase:      g.phase,
		HandCounts: make(map[string]int, len(g.seats)),
		Clockwise:  g.Clockwise(),
	}
	for index, player := range g.seats {
		view.PlayerSequence = append(view.PlayerSequence, player.Name())
		view.HandCounts[player.Name()] = player.Hand().Size()
		if index == seat {
			view.Hand = player.Hand().Cards()
		}
	}
	if g.players != nil {
		view.CurrentPlayer = g.players.Current().Name()
		view.NextPlayer = g.players.Get(g.players.NextIndex()).Name()
	}
	return view
}

func (v View) Table() Table {
	return Table{Color: v.Color, Rank: v.Rank}
}

// PlayableIndexes lists the hand indexes that may be played right now.
func (v View) PlayableIndexes() []int {
	var indexes []int
	for index, candidate := range v.Hand {
		if Playable(candidate, v.Table()) {
			indexes = append(indexes, index)
		}
	}
	return indexes
}

func (v View) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s (colour %s)", v.TopCard, v.Color.Name()))

	var playerStatuses []string
	for _, playerName := range v.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, v.HandCounts[playerName])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	direction := "clockwise"
	if !v.Clockwise {
		direction = "counterclockwise"
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", direction, strings.Join(playerStatuses, ", ")))

	lines = append(lines, fmt.Sprintf("Your hand: %s", v.Hand))

	return strings.Join(lines, "\n")
}
