// SPDX-License-Identifier: MIT

// Command matbench runs the parallel matrix multiplication benchmark sweep
// and appends every timing to a timestamped log file.
//
// Configuration is read from the environment (see config). Example:
//
//	MATBENCH_SIZES=128,256 MATBENCH_WORKERS=1,2,4 MATBENCH_ECHO=true matbench
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/IngvarV8/matrix-mul/logsink"
	"github.com/IngvarV8/matrix-mul/matrix"
	"github.com/IngvarV8/matrix-mul/sweep"
)

type config struct {
	LogLevel      string        `env:"MATBENCH_LOG_LEVEL"      envDefault:"info"`
	LogDir        string        `env:"MATBENCH_LOG_DIR"        envDefault:"logs"`
	Echo          bool          `env:"MATBENCH_ECHO"           envDefault:"false"`
	Sizes         []int         `env:"MATBENCH_SIZES"          envDefault:"250,500,1000,2000" envSeparator:","`
	Workers       []int         `env:"MATBENCH_WORKERS"        envDefault:"4,6"               envSeparator:","`
	Kinds         []matrix.Kind `env:"MATBENCH_KINDS"          envDefault:"int32,float32"     envSeparator:","`
	Seed          int64         `env:"MATBENCH_SEED"           envDefault:"0"`
	Sequential    bool          `env:"MATBENCH_SEQUENTIAL"     envDefault:"false"`
	SharedInputs  bool          `env:"MATBENCH_SHARED_INPUTS"  envDefault:"false"`
	StrictLogging bool          `env:"MATBENCH_STRICT_LOGGING" envDefault:"false"`
	Preview       bool          `env:"MATBENCH_PREVIEW"        envDefault:"false"`
}

// sweepConfig maps the environment onto a sweep; a zero seed means "pick one".
func (c config) sweepConfig(now time.Time) sweep.Config {
	seed := c.Seed
	if seed == 0 {
		seed = now.UnixNano()
	}

	return sweep.Config{
		Sizes:         c.Sizes,
		Workers:       c.Workers,
		Kinds:         c.Kinds,
		Seed:          seed,
		Sequential:    c.Sequential,
		SharedInputs:  c.SharedInputs,
		StrictLogging: c.StrictLogging,
		Preview:       c.Preview,
	}
}

func main() {
	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load configuration : %s", err.Error())
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		log.Fatalf("failed to parse log level: %s", err.Error())
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("benchmark failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger *slog.Logger) error {
	now := time.Now()
	file, err := logsink.Create(cfg.LogDir, now)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer file.Close()

	var sink logsink.Sink = file
	if cfg.Echo {
		stdout, werr := logsink.NewWriter(os.Stdout)
		if werr != nil {
			return werr
		}
		sink = logsink.Multi(file, stdout)
	}

	scfg := cfg.sweepConfig(now)
	logger.Info("writing results", slog.String("path", file.Path()), slog.Int64("seed", scfg.Seed))

	sum, err := sweep.Run(ctx, scfg, sink, logger)
	for _, r := range sum.Results {
		logger.Debug("result",
			slog.Int("size", r.Size),
			slog.String("kind", r.Kind.String()),
			slog.Int("workers", r.Workers),
			slog.Duration("total", r.Total))
	}
	if sum.Dropped > 0 {
		logger.Warn("some log lines were not written",
			slog.Int("dropped", sum.Dropped), slog.Any("error", sum.SinkErr))
	}
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("sweep interrupted", slog.Int("results", len(sum.Results)))
		return nil
	case err != nil:
		return err
	}
	logger.Info("sweep complete",
		slog.Int("results", len(sum.Results)),
		slog.Int("skipped", sum.Skipped),
		slog.String("path", file.Path()))

	return nil
}
