package config

import (
	"log/slog"
	"testing"
	"time"
)

//nolint:paralleltest // mutates process env
func TestParseEnv_Defaults(t *testing.T) {
	cfg := new(Simulation)

	err := ParseEnv(cfg)
	if err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}

	if cfg.ArcadeName != "GameCo Arcade" {
		t.Fatalf("ArcadeName default: got %q", cfg.ArcadeName)
	}

	if cfg.GamesFile != "games.txt" || cfg.CustomersFile != "customers.txt" || cfg.TransactionsFile != "transactions.txt" {
		t.Fatalf("file defaults: %q %q %q", cfg.GamesFile, cfg.CustomersFile, cfg.TransactionsFile)
	}

	if cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("LogLevel default: got %v", cfg.LogLevel)
	}

	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("ShutdownTimeout default: got %v", cfg.ShutdownTimeout)
	}
}

//nolint:paralleltest // mutates process env
func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("ARCADE_NAME", "Seafront Amusements")
	t.Setenv("GAMES_FILE", "/data/games.txt")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "250ms")

	cfg := new(Simulation)

	err := ParseEnv(cfg)
	if err != nil {
		t.Fatalf("ParseEnv: %v", err)
	}

	if cfg.ArcadeName != "Seafront Amusements" {
		t.Fatalf("ArcadeName: got %q", cfg.ArcadeName)
	}

	if cfg.GamesFile != "/data/games.txt" {
		t.Fatalf("GamesFile: got %q", cfg.GamesFile)
	}

	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("LogLevel: got %v", cfg.LogLevel)
	}

	if cfg.ShutdownTimeout != 250*time.Millisecond {
		t.Fatalf("ShutdownTimeout: got %v", cfg.ShutdownTimeout)
	}
}
