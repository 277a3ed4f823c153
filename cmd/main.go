package main

import (
	"context"
	"file-roster/internal"
	"file-roster/runtime"
	"file-roster/services"
	"file-roster/sink"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the roster console and returns instead of exiting so that
// deferred cleanups always execute.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Roster service, diagnostics go to stderr
	notifier := sink.NewConsoleNotifier(os.Stderr, config.Colours)
	service := services.NewRosterService(log, notifier, config.Label)

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Console loop on stdin
	session := runtime.NewSession(log, service, notifier, os.Stdin, os.Stdout)
	log.Info("Roster console started", "roster_id", service.Roster().ID, "label", service.Roster().Label())
	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("Program stopped cleanly")
	return nil
}
