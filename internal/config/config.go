package config

import (
	"fmt"
	"time"
)

// This file defines the configuration structures; loading is handled
// by viper in viper_config.go.

// ServerConfig is the full server configuration.
type ServerConfig struct {
	Server ServerSettings `yaml:"server"`
	Game   GameSettings   `yaml:"game"`
}

// ServerSettings contains transport-level settings.
type ServerSettings struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`

	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"` // 0 for SSE support
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	RequestTimeout  time.Duration `yaml:"requestTimeout"`

	// Rate limiting (golang.org/x/time/rate)
	RateLimit      float64 `yaml:"rateLimit"` // requests per second per IP
	RateLimitBurst int     `yaml:"rateLimitBurst"`

	MaxRequestSize int64 `yaml:"maxRequestSize"`
}

// GameSettings contains the gameplay parameters applied to new rooms.
type GameSettings struct {
	MaxPlayersPerRoom int `yaml:"maxPlayersPerRoom"`
	MinPlayersToStart int `yaml:"minPlayersToStart"`
	TotalRounds       int `yaml:"totalRounds"`
	InputTime         int `yaml:"inputTime"` // seconds
	GuessTime         int `yaml:"guessTime"` // seconds

	RevealDelay   time.Duration `yaml:"revealDelay"`   // pause on the reveal screen
	RoomTimeout   time.Duration `yaml:"roomTimeout"`   // idle rooms older than this are reclaimed
	SweepInterval time.Duration `yaml:"sweepInterval"` // how often the janitor runs
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		Server: ServerSettings{
			Host:            "0.0.0.0",
			Port:            "5000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    0, // SSE responses stream indefinitely
			IdleTimeout:     0,
			ShutdownTimeout: 30 * time.Second,
			RequestTimeout:  60 * time.Second,
			RateLimit:       10,
			RateLimitBurst:  20,
			MaxRequestSize:  1 << 20,
		},
		Game: GameSettings{
			MaxPlayersPerRoom: 8,
			MinPlayersToStart: 2,
			TotalRounds:       10,
			InputTime:         20,
			GuessTime:         40,
			RevealDelay:       10 * time.Second,
			RoomTimeout:       2 * time.Hour,
			SweepInterval:     time.Minute,
		},
	}
}

// Validate checks the configuration for values the server cannot run with.
func (c *ServerConfig) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port must be set")
	}
	if c.Server.Host == "" {
		return fmt.Errorf("server host must be set")
	}
	if c.Game.MaxPlayersPerRoom < 2 {
		return fmt.Errorf("maxPlayersPerRoom must be at least 2")
	}
	if c.Game.MinPlayersToStart < 2 {
		return fmt.Errorf("minPlayersToStart must be at least 2")
	}
	if c.Game.MinPlayersToStart > c.Game.MaxPlayersPerRoom {
		return fmt.Errorf("minPlayersToStart cannot exceed maxPlayersPerRoom")
	}
	if c.Game.TotalRounds < 1 {
		return fmt.Errorf("totalRounds must be at least 1")
	}
	if c.Game.InputTime < 1 || c.Game.GuessTime < 1 {
		return fmt.Errorf("inputTime and guessTime must be at least 1 second")
	}
	if c.Game.RoomTimeout <= 0 {
		return fmt.Errorf("roomTimeout must be positive")
	}
	if c.Game.SweepInterval <= 0 {
		return fmt.Errorf("sweepInterval must be positive")
	}
	return nil
}
