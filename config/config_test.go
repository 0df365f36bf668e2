package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ratel-online/unoflip/config"
	"github.com/ratel-online/unoflip/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "match.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Players, 4)
	assert.Equal(t, consts.StartingHandSize, cfg.HandSize)
	assert.False(t, cfg.Spectator.Enabled)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
players:
  - name: alice
    kind: human
  - name: bot
    kind: naive
hand_size: 5
seed: 42
console_delay: 250ms
spectator:
  enabled: true
  addr: ":8080"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []config.PlayerConfig{
		{Name: "alice", Kind: consts.PlayerKindHuman},
		{Name: "bot", Kind: consts.PlayerKindNaive},
	}, cfg.Players)
	assert.Equal(t, 5, cfg.HandSize)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, consts.MaxTurns, cfg.MaxTurns)
	assert.Equal(t, 250*time.Millisecond, cfg.ConsoleDelay)
	assert.True(t, cfg.Spectator.Enabled)
	assert.Equal(t, ":8080", cfg.Spectator.Addr)
}

func TestLoadInvalid(t *testing.T) {
	scenarios := []struct {
		description string
		content     string
	}{
		{"single_player", "players:\n  - {name: alice, kind: human}\n"},
		{"duplicate_names", "players:\n  - {name: alice, kind: good}\n  - {name: alice, kind: naive}\n"},
		{"unknown_kind", "players:\n  - {name: alice, kind: good}\n  - {name: bob, kind: robot}\n"},
		{"oversized_hand", "players:\n  - {name: alice, kind: good}\n  - {name: bob, kind: naive}\nhand_size: 30\n"},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, scenario.content))
			require.Equal(t, consts.ErrorsConfigInvalid, err)
		})
	}

	t.Run("missing_file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed_yaml", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "players: [\n"))
		assert.Error(t, err)
	})
}
