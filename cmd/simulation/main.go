package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/haydenjns/gamesco-arcade/internal/arcade"
	"github.com/haydenjns/gamesco-arcade/internal/config"
	"github.com/haydenjns/gamesco-arcade/internal/infra/logging"
	"github.com/haydenjns/gamesco-arcade/internal/simulation"
	"github.com/haydenjns/gamesco-arcade/pkg/shutdownqueue"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running simulation: %v\n", err)
		//nolint:gocritic
		os.Exit(1)
	}
}

func run(ctx context.Context) (retErr error) {
	cfg := new(config.Simulation)

	err := config.ParseEnv(cfg)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	if cfg.LogFormat == "json" {
		logging.SetupJSON(cfg.LogLevel)
	} else {
		logging.SetupText(cfg.LogLevel)
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		serr := shutdownqueue.Shutdown(shutdownCtx)
		if serr != nil {
			retErr = errors.Join(retErr, serr)
		}
	}()

	// Outcomes and the report go through one buffered writer so partial
	// output still lands on an interrupt.
	out := bufio.NewWriter(os.Stdout)

	shutdownqueue.Add(func(context.Context) error {
		ferr := out.Flush()
		if ferr != nil {
			return fmt.Errorf("flush output: %w", ferr)
		}

		return nil
	})

	proc := simulation.NewProcessor(arcade.New(cfg.ArcadeName))

	// Run the replay in a goroutine so an interrupt is honored between
	// records; the driver stops after the current record and still writes
	// the aggregate report.
	errCh := make(chan error, 1)

	go func() {
		errCh <- replay(ctx, proc, cfg, out)
	}()

	slog.Info("simulation started", "arcade", cfg.ArcadeName)

	select {
	case <-ctx.Done():
		return <-errCh
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("replay: %w", err)
		}

		return nil
	}
}

// replay runs the three record streams in their required order: games,
// then customers, then transactions.
func replay(ctx context.Context, proc *simulation.Processor, cfg *config.Simulation, out io.Writer) error {
	gameRecords, err := loadRecords(cfg.GamesFile, simulation.GameSeparator)
	if err != nil {
		return err
	}

	err = simulation.WriteOutcomes(out, proc.LoadGames(gameRecords))
	if err != nil {
		return err
	}

	customerRecords, err := loadRecords(cfg.CustomersFile, simulation.CustomerSeparator)
	if err != nil {
		return err
	}

	err = simulation.WriteOutcomes(out, proc.LoadCustomers(customerRecords))
	if err != nil {
		return err
	}

	transactionRecords, err := loadRecords(cfg.TransactionsFile, simulation.TransactionSeparator)
	if err != nil {
		return err
	}

	err = simulation.WriteOutcomes(out, proc.Replay(ctx, transactionRecords))
	if err != nil {
		return err
	}

	return proc.WriteReport(out)
}

func loadRecords(path string, sep rune) (records [][]string, retErr error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}

	defer func() {
		cerr := f.Close()
		if cerr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("close records: %w", cerr))
		}
	}()

	records, err = simulation.Records(f, sep)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return records, nil
}
