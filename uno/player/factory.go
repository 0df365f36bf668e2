package player

import (
	"math/rand"

	"github.com/ratel-online/unoflip/consts"
	"github.com/ratel-online/unoflip/uno/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// CreatePlayers seats one human followed by good bots.
func CreatePlayers(numberOfPlayers int, humanPlayerName string) []game.Agent {
	players := make([]game.Agent, 0, numberOfPlayers)
	players = append(players, NewHumanPlayer(humanPlayerName))
	players = append(players, generateBots(numberOfPlayers-1, humanPlayerName)...)
	return players
}

func generateBots(amount int, takenName string) []game.Agent {
	if amount <= 0 {
		return nil
	}
	names := make([]string, 0, len(botNames))
	for _, botName := range botNames {
		if botName != takenName {
			names = append(names, botName)
		}
	}
	rand.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })
	if amount > len(names) {
		amount = len(names)
	}
	bots := make([]game.Agent, 0, amount)
	for _, botName := range names[:amount] {
		bots = append(bots, NewGoodPlayer(botName))
	}
	return bots
}

// NewAgent builds the agent for a configured player kind.
func NewAgent(kind string, name string) (game.Agent, error) {
	switch kind {
	case consts.PlayerKindHuman:
		return NewHumanPlayer(name), nil
	case consts.PlayerKindGood:
		return NewGoodPlayer(name), nil
	case consts.PlayerKindNaive:
		return NewNaivePlayer(name), nil
	default:
		return nil, consts.ErrorsConfigInvalid
	}
}
