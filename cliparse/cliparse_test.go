// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "cookies_orders.db" {
		t.Errorf("expected default database path, got %q", cfg.DatabasePath)
	}
	if len(cfg.Flavors) != len(DefaultFlavors) {
		t.Errorf("expected default flavor catalog, got %v", cfg.Flavors)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_PATH", "pedidos.db")
	t.Setenv("FLAVORS", "Coco,Pistacho")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "pedidos.db" {
		t.Errorf("expected database path 'pedidos.db', got %q", cfg.DatabasePath)
	}
	if len(cfg.Flavors) != 2 {
		t.Errorf("expected 2 flavors, got %v", cfg.Flavors)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("FLAVORS", "Coco")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "test.db", "-flavors", "Kinder, Velvet"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabasePath != "test.db" {
		t.Errorf("expected database path 'test.db', got %q", cfg.DatabasePath)
	}
	if len(cfg.Flavors) != 2 || cfg.Flavors[0] != "Kinder" || cfg.Flavors[1] != "Velvet" {
		t.Errorf("expected trimmed CLI flavors, got %v", cfg.Flavors)
	}
}

func TestParseFlags_InvalidPort(t *testing.T) {
	if _, err := ParseFlags([]string{"-p", "0"}); err == nil {
		t.Error("expected error for port 0")
	}
	if _, err := ParseFlags([]string{"-p", "70000"}); err == nil {
		t.Error("expected error for out-of-range port")
	}
}

func TestValidFlavor(t *testing.T) {
	cfg := Config{Flavors: []string{"Coco", "Pistacho"}}

	if !cfg.ValidFlavor("Coco") {
		t.Error("expected Coco to be valid")
	}
	if cfg.ValidFlavor("Vanilla") {
		t.Error("expected Vanilla to be invalid")
	}
	if cfg.ValidFlavor("") {
		t.Error("expected empty flavor to be invalid")
	}
}
