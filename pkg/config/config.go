package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Token  string
	Prefix string

	// IdleTimeout is the per-match inactivity window before the
	// watchdog force-ends it.
	IdleTimeout time.Duration

	// StatusAddr enables the diagnostics HTTP endpoint when set
	// (exp: ":8099"). Empty means off.
	StatusAddr string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Token:       os.Getenv("DISCORD_BOT_TOKEN"),
		Prefix:      firstNonEmpty(os.Getenv("COMMAND_PREFIX"), "/"),
		IdleTimeout: 5 * time.Minute,
		StatusAddr:  os.Getenv("STATUS_ADDR"),
	}

	if raw := os.Getenv("MATCH_IDLE_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("bad MATCH_IDLE_TIMEOUT %q", raw)
		}
		cfg.IdleTimeout = d
	}

	if cfg.Token == "" {
		return nil, errors.New("missing DISCORD_BOT_TOKEN")
	}

	return cfg, nil
}

func firstNonEmpty(v, d string) string {
	if v == "" {
		return d
	}
	return v
}

func (c *Config) Redacted() string {
	tok := "[set]"
	if c.Token == "" {
		tok = "[empty]"
	}
	return fmt.Sprintf(
		"prefix=%q idleTimeout=%s statusAddr=%q token=%s",
		c.Prefix, c.IdleTimeout, c.StatusAddr, tok,
	)
}
