package config

import (
	"os"
	"time"

	"github.com/ratel-online/unoflip/consts"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Players      []PlayerConfig  `yaml:"players"`
	HandSize     int             `yaml:"hand_size"`
	Seed         int64           `yaml:"seed"`
	MaxTurns     int             `yaml:"max_turns"`
	ConsoleDelay time.Duration   `yaml:"console_delay"`
	Spectator    SpectatorConfig `yaml:"spectator"`
}

type PlayerConfig struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

type SpectatorConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Default seats one human against three good bots.
func Default() *Config {
	return &Config{
		Players: []PlayerConfig{
			{Name: "You", Kind: consts.PlayerKindHuman},
			{Name: "Annie", Kind: consts.PlayerKindGood},
			{Name: "Braum", Kind: consts.PlayerKindGood},
			{Name: "Caitlyn", Kind: consts.PlayerKindGood},
		},
		HandSize:     consts.StartingHandSize,
		MaxTurns:     consts.MaxTurns,
		ConsoleDelay: consts.ConsoleDelay,
		Spectator:    SpectatorConfig{Addr: ":9998"},
	}
}

// Load reads a YAML match file. Missing fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	cfg.Players = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Players) < consts.MinPlayers || len(c.Players) > consts.MaxPlayers {
		return consts.ErrorsConfigInvalid
	}
	names := make(map[string]bool, len(c.Players))
	for _, player := range c.Players {
		if player.Name == "" || names[player.Name] {
			return consts.ErrorsConfigInvalid
		}
		names[player.Name] = true
		switch player.Kind {
		case consts.PlayerKindHuman, consts.PlayerKindGood, consts.PlayerKindNaive:
		default:
			return consts.ErrorsConfigInvalid
		}
	}
	if c.HandSize < 1 || c.HandSize > consts.MaxHandSize {
		return consts.ErrorsConfigInvalid
	}
	if c.MaxTurns < 1 || c.ConsoleDelay < 0 {
		return consts.ErrorsConfigInvalid
	}
	if c.Spectator.Enabled && c.Spectator.Addr == "" {
		return consts.ErrorsConfigInvalid
	}
	return nil
}
