package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/unoflip/config"
	"github.com/ratel-online/unoflip/consts"
	"github.com/ratel-online/unoflip/network"
	"github.com/ratel-online/unoflip/uno/event"
	"github.com/ratel-online/unoflip/uno/game"
	"github.com/ratel-online/unoflip/uno/player"
	"github.com/ratel-online/unoflip/uno/ui"
)

var (
	configPath = flag.String("config", "", "YAML match file")
	prompt     = flag.Bool("prompt", false, "ask for your name and the number of players")
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Error(err)
			return
		}
		cfg = loaded
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rand.Seed(seed)
	ui.Delay = cfg.ConsoleDelay
	ui.Message.Welcome()

	agents, err := seatAgents(cfg)
	if err != nil {
		log.Error(err)
		return
	}
	g := game.New(game.NewDeck(rand.New(rand.NewSource(seed))))
	for _, agent := range agents {
		if _, err := g.AddPlayer(agent.Name()); err != nil {
			log.Error(err)
			return
		}
	}

	g.Subscribe(ui.NewConsole())
	if cfg.Spectator.Enabled {
		feed := network.NewFeed()
		g.Subscribe(feed)
		server := network.NewWebsocketServer(cfg.Spectator.Addr, feed)
		async.Async(func() {
			log.Error(server.Serve())
		})
	}

	if _, err := g.Start(cfg.HandSize); err != nil {
		log.Error(err)
		return
	}
	winner, err := game.Run(g, agents, cfg.MaxTurns)
	if err != nil {
		log.Error(err)
		return
	}
	ui.Message.WinnerFound(event.WinnerText(winner.Name()), winner.Score())
}

func seatAgents(cfg *config.Config) ([]game.Agent, error) {
	if *prompt {
		name := ui.PromptString("What's your name?")
		if name == "" {
			name = cfg.Players[0].Name
		}
		numberOfPlayers := ui.PromptIntegerInRange(consts.MinPlayers, consts.MaxPlayers, "How many players?")
		return player.CreatePlayers(numberOfPlayers, name), nil
	}
	agents := make([]game.Agent, 0, len(cfg.Players))
	for _, playerConfig := range cfg.Players {
		agent, err := player.NewAgent(playerConfig.Kind, playerConfig.Name)
		if err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}
	return agents, nil
}
