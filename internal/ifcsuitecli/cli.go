// Package ifcsuitecli wires the command line surface: a one-time setup
// command that writes the .env file and a run command that serves the
// audit-checklist web app.
package ifcsuitecli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/ifclabs/ifcsuite/internal/envutil"
	"github.com/ifclabs/ifcsuite/internal/webapp"
)

var ErrUsage = errors.New("usage")

func Execute(args []string) error {
	if len(args) < 1 {
		return usageError()
	}

	switch args[0] {
	case "setup":
		return runSetup(args[1:])
	case "run":
		return runServe(args[1:])
	default:
		return usageError()
	}
}

func usageError() error {
	return fmt.Errorf("%w: ifcsuite <setup|run> [...]", ErrUsage)
}

func runSetup(args []string) error {
	fs := flag.NewFlagSet("setup", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "directory for the JSON stores and audit exports")
	addr := fs.String("addr", ":8501", "listen address")
	envPath := fs.String("env-file", ".env", "path to .env file")
	force := fs.Bool("force", false, "overwrite existing env file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	values := map[string]string{
		"DATA_DIR":    *dataDir,
		"ADDR":        *addr,
		"SESSION_TTL": "8h",
	}

	if err := envutil.WriteDotEnv(*envPath, values, *force); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", *envPath)
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	envPath := fs.String("env-file", ".env", "path to .env file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := envutil.LoadDotEnv(*envPath); err != nil {
		return fmt.Errorf("load %s: %w", *envPath, err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := webapp.DefaultConfigFromEnv()
	if err := webapp.Run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
