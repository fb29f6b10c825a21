package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 8, cfg.Game.MaxPlayersPerRoom)
	assert.Equal(t, 2, cfg.Game.MinPlayersToStart)
	assert.Equal(t, 10, cfg.Game.TotalRounds)
	assert.Equal(t, 20, cfg.Game.InputTime)
	assert.Equal(t, 40, cfg.Game.GuessTime)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ServerConfig)
	}{
		{"empty port", func(c *ServerConfig) { c.Server.Port = "" }},
		{"empty host", func(c *ServerConfig) { c.Server.Host = "" }},
		{"room smaller than a game", func(c *ServerConfig) { c.Game.MaxPlayersPerRoom = 1 }},
		{"solo start", func(c *ServerConfig) { c.Game.MinPlayersToStart = 1 }},
		{"min above max", func(c *ServerConfig) { c.Game.MinPlayersToStart = 9 }},
		{"zero rounds", func(c *ServerConfig) { c.Game.TotalRounds = 0 }},
		{"zero input time", func(c *ServerConfig) { c.Game.InputTime = 0 }},
		{"zero guess time", func(c *ServerConfig) { c.Game.GuessTime = 0 }},
		{"zero room timeout", func(c *ServerConfig) { c.Game.RoomTimeout = 0 }},
		{"zero sweep interval", func(c *ServerConfig) { c.Game.SweepInterval = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Game.RevealDelay)
	assert.Equal(t, 2*time.Hour, cfg.Game.RoomTimeout)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.yaml")
	raw := `
server:
  port: "9999"
game:
  totalRounds: 5
  revealDelay: 3s
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Game.TotalRounds)
	assert.Equal(t, 3*time.Second, cfg.Game.RevealDelay)
	// Untouched settings keep their defaults.
	assert.Equal(t, 8, cfg.Game.MaxPlayersPerRoom)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("PORT", "7777")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "7777", cfg.Server.Port)
}
