// Package config loads server settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/Rhymond/go-money"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr           string        `yaml:"addr"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	PeriodsPerYear int           `yaml:"periods_per_year"`
	Currency       string        `yaml:"currency"`

	RateLimit RateLimit `yaml:"rate_limit"`
	Redis     Redis     `yaml:"redis"`
}

type RateLimit struct {
	Capacity int           `yaml:"capacity"`
	Window   time.Duration `yaml:"window"`
}

// Redis is disabled when Addr is empty; history and caches then live in memory.
type Redis struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

func Default() Config {
	return Config{
		Addr:           ":8080",
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		PeriodsPerYear: 12,
		Currency:       "USD",
		RateLimit: RateLimit{
			Capacity: 5,
			Window:   time.Minute,
		},
		Redis: Redis{
			Prefix: "toolbox:",
		},
	}
}

// Load reads path (a missing file is not an error), then applies
// TOOLBOX_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %q: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("TOOLBOX_ADDR"); ok {
		cfg.Addr = v
	}
	if v, ok := lookup("TOOLBOX_CURRENCY"); ok {
		cfg.Currency = v
	}
	if v, ok := lookup("TOOLBOX_REDIS_ADDR"); ok {
		cfg.Redis.Addr = v
	}
	if v, ok := lookup("TOOLBOX_REDIS_PASSWORD"); ok {
		cfg.Redis.Password = v
	}

	ints := map[string]*int{
		"TOOLBOX_RATE_LIMIT":       &cfg.RateLimit.Capacity,
		"TOOLBOX_REDIS_DB":         &cfg.Redis.DB,
		"TOOLBOX_PERIODS_PER_YEAR": &cfg.PeriodsPerYear,
	}
	for name, dst := range ints {
		if v, ok := lookup(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*dst = n
		}
	}

	durations := map[string]*time.Duration{
		"TOOLBOX_RATE_WINDOW": &cfg.RateLimit.Window,
		"TOOLBOX_REDIS_TTL":   &cfg.Redis.TTL,
	}
	for name, dst := range durations {
		if v, ok := lookup(name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*dst = d
		}
	}
	return nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr is required")
	}
	if c.PeriodsPerYear <= 0 {
		return fmt.Errorf("config: periods_per_year must be positive, got %d", c.PeriodsPerYear)
	}
	if c.RateLimit.Capacity <= 0 || c.RateLimit.Window <= 0 {
		return errors.New("config: rate_limit needs a positive capacity and window")
	}
	if c.Redis.TTL < 0 {
		return errors.New("config: redis ttl cannot be negative")
	}
	if c.Currency != "" && money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("config: unknown currency %q", c.Currency)
	}
	return nil
}
