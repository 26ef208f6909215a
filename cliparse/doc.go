// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Environment variables are read first (via env struct tags), then CLI
flags override them.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabasePath: sqlite database file (default: cookies_orders.db)
  - Flavors: the flavor catalog orders are validated against

# CLI Flags

	-p        Server port
	-d        Database file path
	-flavors  Comma-separated flavor catalog

# Environment Variables

	PORT          → -p
	DATABASE_PATH → -d
	FLAVORS       → -flavors

# Flavor Catalog

When neither FLAVORS nor -flavors is given, DefaultFlavors applies.
ValidFlavor checks membership:

	if !cfg.ValidFlavor(item.Flavor) {
		// reject
	}
*/
package cliparse
