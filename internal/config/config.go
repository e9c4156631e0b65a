// Package config holds the env-tagged configuration structs for the arcade
// binaries.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Simulation configures the transaction-replay binary.
type Simulation struct {
	ArcadeName       string        `env:"ARCADE_NAME" envDefault:"GameCo Arcade"`
	GamesFile        string        `env:"GAMES_FILE" envDefault:"games.txt"`
	CustomersFile    string        `env:"CUSTOMERS_FILE" envDefault:"customers.txt"`
	TransactionsFile string        `env:"TRANSACTIONS_FILE" envDefault:"transactions.txt"`
	LogLevel         slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"text"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	err := env.Parse(target)
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}
