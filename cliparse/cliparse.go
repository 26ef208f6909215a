// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultFlavors is the cookie catalog used when FLAVORS is not set.
var DefaultFlavors = []string{
	"Pistacho", "Rocher", "Sweet", "Velvet", "Kinder", "Rasta",
	"Cadbury", "Milka", "Blackblock", "Coco", "Doublechocolate",
}

type Config struct {
	Port         int      `env:"PORT" envDefault:"3318"`
	DatabasePath string   `env:"DATABASE_PATH" envDefault:"cookies_orders.db"`
	Flavors      []string `env:"FLAVORS" envSeparator:","`
}

// ParseFlags builds the configuration: environment first, then CLI
// flags override.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	fs := flag.NewFlagSet("orderdesk", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "Path to the sqlite database file")
	flavorsFlag := fs.String("flavors", "", "Comma-separated flavor catalog (overrides FLAVORS)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *flavorsFlag != "" {
		cfg.Flavors = splitFlavors(*flavorsFlag)
	}
	if len(cfg.Flavors) == 0 {
		cfg.Flavors = DefaultFlavors
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, errors.New("port must be between 1 and 65535")
	}
	if cfg.DatabasePath == "" {
		return Config{}, errors.New("database path required (use -d or DATABASE_PATH env)")
	}

	return cfg, nil
}

// ValidFlavor reports whether name is part of the configured catalog.
func (c Config) ValidFlavor(name string) bool {
	for _, flavor := range c.Flavors {
		if flavor == name {
			return true
		}
	}
	return false
}

func splitFlavors(raw string) []string {
	parts := strings.Split(raw, ",")
	flavors := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			flavors = append(flavors, trimmed)
		}
	}
	return flavors
}
