package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Bot holds the Discord settings
type Bot struct {
	Token         string `env:"DISCORD_TOKEN,required"`
	ApplicationID string `env:"APPLICATION_ID"`

	// GuildID registers commands on one guild instead of globally
	GuildID string `env:"GUILD_ID"`

	// GMRoleID marks members who act as game masters
	GMRoleID string `env:"GM_ROLE_ID"`

	// NoticeChannelID receives every notice when set, otherwise the channel
	// the participant last used
	NoticeChannelID string `env:"NOTICE_CHANNEL_ID"`

	// Tone is "neutral" or "funny"
	Tone string `env:"MESSAGE_TONE" envDefault:"funny"`
}

// Redis holds the connection settings
type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Log holds the logger settings
type Log struct {
	Development bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
}

// Rules are the table settings
type Rules struct {
	HandSize          int           `env:"HERO_HAND_SIZE" envDefault:"3"`
	FixedDraw         bool          `env:"HERO_FIXED_DRAW" envDefault:"false"`
	FixedCount        int           `env:"HERO_FIXED_COUNT" envDefault:"3"`
	UseCost           int           `env:"HERO_USE_COST" envDefault:"1"`
	DefaultDeckName   string        `env:"HERO_DEFAULT_DECK_NAME" envDefault:"Hero Actions"`
	BuiltinDeckID     string        `env:"HERO_BUILTIN_DECK_ID" envDefault:"builtin"`
	PresenceTTL       time.Duration `env:"HERO_PRESENCE_TTL" envDefault:"30s"`
	HeartbeatInterval time.Duration `env:"HERO_HEARTBEAT_INTERVAL" envDefault:"10s"`
}

// Config is everything the bot reads from its environment
type Config struct {
	Bot   Bot
	Redis Redis
	Log   Log
	Rules Rules
}

// LoadDotEnv loads .env style files into the environment. Missing files are
// ignored and variables already set win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// Load reads .env and parses the full bot configuration
func Load() (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func LoadRedis() (Redis, error) {
	var cfg Redis
	err := env.Parse(&cfg)
	return cfg, err
}

func LoadLog() (Log, error) {
	var cfg Log
	err := env.Parse(&cfg)
	return cfg, err
}

func LoadRules() (Rules, error) {
	var cfg Rules
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings no table can play with
func (r Rules) Validate() error {
	switch {
	case r.HandSize < 0:
		return errors.New("HERO_HAND_SIZE cannot be negative")
	case r.FixedCount < 0:
		return errors.New("HERO_FIXED_COUNT cannot be negative")
	case r.UseCost < 0:
		return errors.New("HERO_USE_COST cannot be negative")
	case r.PresenceTTL <= r.HeartbeatInterval:
		return errors.New("HERO_PRESENCE_TTL must be longer than HERO_HEARTBEAT_INTERVAL")
	}
	return nil
}
