// Package config loads lowbid settings from a YAML file, an optional .env
// file and environment variables, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config is the full application configuration
type Config struct {
	Game      GameConfig      `yaml:"game"`
	Simulator SimulatorConfig `yaml:"simulator"`
	Redis     RedisConfig     `yaml:"redis"`
	Discord   DiscordConfig   `yaml:"discord"`
	Log       LogConfig       `yaml:"log"`
}

// GameConfig holds the auction rules
type GameConfig struct {
	TotalSlots  int     `yaml:"total_slots"`
	CostPerPlay float64 `yaml:"cost_per_play"`
	DailyLimit  int     `yaml:"daily_limit"`
	PoolShare   float64 `yaml:"pool_share"`

	// RoundLengthSeconds fixes the round duration. Zero ends each round at midnight in Timezone.
	RoundLengthSeconds int    `yaml:"round_length_seconds"`
	Timezone           string `yaml:"timezone"`
}

// SimulatorConfig controls the bot traffic driver
type SimulatorConfig struct {
	Disabled           bool    `yaml:"disabled"`
	BidIntervalMillis  int     `yaml:"bid_interval_ms"`
	PrefillProbability float64 `yaml:"prefill_probability"`
	PrefillMaxBids     int     `yaml:"prefill_max_bids"`
	BotWallets         int     `yaml:"bot_wallets"`
	Seed               int64   `yaml:"seed"`
}

// RedisConfig holds the Redis connection. An empty Addr starts an in-process server.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// DiscordConfig holds the bot credentials
type DiscordConfig struct {
	Token           string `yaml:"token"`
	ApplicationID   string `yaml:"application_id"`
	GuildID         string `yaml:"guild_id"`
	NotifyChannelID string `yaml:"notify_channel_id"`
}

// LogConfig controls the log format and level
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load reads the YAML file at path, then the .env file if present, then
// environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
			}
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	setDefaults(&cfg)

	return &cfg, nil
}

// Default returns the configuration with every default applied
func Default() *Config {
	var cfg Config
	setDefaults(&cfg)
	return &cfg
}

// Validate checks that the configured values are usable
func (c *Config) Validate() error {
	if c.Game.TotalSlots <= 0 {
		return fmt.Errorf("game.total_slots must be positive, got %d", c.Game.TotalSlots)
	}
	if c.Game.CostPerPlay <= 0 {
		return fmt.Errorf("game.cost_per_play must be positive, got %v", c.Game.CostPerPlay)
	}
	if c.Game.DailyLimit <= 0 {
		return fmt.Errorf("game.daily_limit must be positive, got %d", c.Game.DailyLimit)
	}
	if c.Game.PoolShare <= 0 || c.Game.PoolShare > 1 {
		return fmt.Errorf("game.pool_share must be in (0, 1], got %v", c.Game.PoolShare)
	}
	if c.Game.RoundLengthSeconds < 0 {
		return fmt.Errorf("game.round_length_seconds cannot be negative")
	}
	if _, err := time.LoadLocation(c.Game.Timezone); err != nil {
		return fmt.Errorf("game.timezone %q: %w", c.Game.Timezone, err)
	}
	if c.Simulator.PrefillProbability < 0 || c.Simulator.PrefillProbability > 1 {
		return fmt.Errorf("simulator.prefill_probability must be in [0, 1], got %v", c.Simulator.PrefillProbability)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q is not one of text, json", c.Log.Format)
	}
	return nil
}

// UnitAmount returns CostPerPlay as an exact decimal
func (g GameConfig) UnitAmount() decimal.Decimal {
	return decimal.NewFromFloat(g.CostPerPlay)
}

// PoolShareDecimal returns PoolShare as an exact decimal
func (g GameConfig) PoolShareDecimal() decimal.Decimal {
	return decimal.NewFromFloat(g.PoolShare)
}

// RoundLength returns the fixed round duration, zero meaning end of day
func (g GameConfig) RoundLength() time.Duration {
	return time.Duration(g.RoundLengthSeconds) * time.Second
}

// Location returns the timezone rounds are scheduled in
func (g GameConfig) Location() *time.Location {
	loc, err := time.LoadLocation(g.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// BidInterval returns the bot bid period as a time.Duration
func (s SimulatorConfig) BidInterval() time.Duration {
	return time.Duration(s.BidIntervalMillis) * time.Millisecond
}

// applyEnvOverrides replaces values with environment variables when present
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("DISCORD_TOKEN"); v != "" {
		cfg.Discord.Token = v
	}
	if v := os.Getenv("APPLICATION_ID"); v != "" {
		cfg.Discord.ApplicationID = v
	}
	if v := os.Getenv("GUILD_ID"); v != "" {
		cfg.Discord.GuildID = v
	}
	if v := os.Getenv("LOWBID_NOTIFY_CHANNEL_ID"); v != "" {
		cfg.Discord.NotifyChannelID = v
	}
	if v := os.Getenv("LOWBID_TIMEZONE"); v != "" {
		cfg.Game.Timezone = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"LOWBID_TOTAL_SLOTS", &cfg.Game.TotalSlots},
		{"LOWBID_DAILY_LIMIT", &cfg.Game.DailyLimit},
		{"LOWBID_ROUND_LENGTH_SECONDS", &cfg.Game.RoundLengthSeconds},
		{"LOWBID_BOT_INTERVAL_MS", &cfg.Simulator.BidIntervalMillis},
	}
	for _, o := range ints {
		v := os.Getenv(o.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config.Load: %s: %w", o.key, err)
		}
		*o.dst = n
	}

	if v := os.Getenv("LOWBID_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config.Load: LOWBID_SEED: %w", err)
		}
		cfg.Simulator.Seed = n
	}
	if v := os.Getenv("LOWBID_SIMULATOR_DISABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config.Load: LOWBID_SIMULATOR_DISABLED: %w", err)
		}
		cfg.Simulator.Disabled = b
	}

	return nil
}

// setDefaults fills every unset value
func setDefaults(cfg *Config) {
	if cfg.Game.TotalSlots <= 0 {
		cfg.Game.TotalSlots = 1441
	}
	if cfg.Game.CostPerPlay <= 0 {
		cfg.Game.CostPerPlay = 0.01
	}
	if cfg.Game.DailyLimit <= 0 {
		cfg.Game.DailyLimit = 100
	}
	if cfg.Game.PoolShare <= 0 {
		cfg.Game.PoolShare = 0.90
	}
	if cfg.Game.Timezone == "" {
		cfg.Game.Timezone = "UTC"
	}
	if cfg.Simulator.BidIntervalMillis <= 0 {
		cfg.Simulator.BidIntervalMillis = 3500
	}
	if cfg.Simulator.PrefillProbability == 0 {
		cfg.Simulator.PrefillProbability = 0.30
	}
	if cfg.Simulator.PrefillMaxBids <= 0 {
		cfg.Simulator.PrefillMaxBids = 5
	}
	if cfg.Simulator.BotWallets <= 0 {
		cfg.Simulator.BotWallets = 25
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
