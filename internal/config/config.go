package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the application configuration, bound from the environment with
// an optional .env file. Everything has a workable default: the app must
// start with zero configuration.
type Config struct {
	Env                string        `mapstructure:"ENV"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	SeedPatientCount   int           `mapstructure:"SEED_PATIENT_COUNT"`
	SeedRandom         int64         `mapstructure:"SEED_RANDOM"`
	LoginDelay         time.Duration `mapstructure:"LOGIN_DELAY"`
	SessionTTL         time.Duration `mapstructure:"SESSION_TTL"`
	IdleReplayInterval time.Duration `mapstructure:"IDLE_REPLAY_INTERVAL"`
	ClockTickInterval  time.Duration `mapstructure:"CLOCK_TICK_INTERVAL"`
	SundownStartHour   int           `mapstructure:"SUNDOWN_START_HOUR"`
	SundownEndHour     int           `mapstructure:"SUNDOWN_END_HOUR"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEED_PATIENT_COUNT", 3)
	v.SetDefault("SEED_RANDOM", 0)
	v.SetDefault("LOGIN_DELAY", "1s")
	v.SetDefault("SESSION_TTL", "12h")
	v.SetDefault("IDLE_REPLAY_INTERVAL", "5m")
	v.SetDefault("CLOCK_TICK_INTERVAL", "1m")
	v.SetDefault("SUNDOWN_START_HOUR", 16)
	v.SetDefault("SUNDOWN_END_HOUR", 19)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("SEED_PATIENT_COUNT")
	v.BindEnv("SEED_RANDOM")
	v.BindEnv("LOGIN_DELAY")
	v.BindEnv("SESSION_TTL")
	v.BindEnv("IDLE_REPLAY_INTERVAL")
	v.BindEnv("CLOCK_TICK_INTERVAL")
	v.BindEnv("SUNDOWN_START_HOUR")
	v.BindEnv("SUNDOWN_END_HOUR")

	// Try reading .env, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.SeedPatientCount < 1 {
		return nil, fmt.Errorf("SEED_PATIENT_COUNT must be at least 1")
	}
	if cfg.SundownStartHour < 0 || cfg.SundownStartHour > 23 ||
		cfg.SundownEndHour < 0 || cfg.SundownEndHour > 23 ||
		cfg.SundownEndHour < cfg.SundownStartHour {
		return nil, fmt.Errorf("invalid sundowning window: %d-%d",
			cfg.SundownStartHour, cfg.SundownEndHour)
	}

	return cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *Config) IsDev() bool { return c.Env == "development" }
