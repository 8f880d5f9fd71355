// main is the entry point of the student records console.
//
// STARTUP SEQUENCE:
//  1. Load configuration (file if given, otherwise environment + defaults)
//  2. Initialise the logger (full logs to log_path; without one, only
//     warnings and errors reach stderr)
//  3. Create the record collection (memory or in-memory SQLite)
//  4. Run the menu loop in a separate goroutine
//  5. Block until the loop ends or an OS signal (Ctrl+C / kill) arrives
//
// RUNNING:
//
//	go run ./cmd/student-records --config=config/local.yaml
//
// or with no configuration at all:
//
//	go run ./cmd/student-records
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aanand-mishra/student-records/internal/config"
	"github.com/aanand-mishra/student-records/internal/console"
	"github.com/aanand-mishra/student-records/internal/storage"
)

func main() {
	// MustLoad exits on a bad config or after printing -h help.
	cfg := config.MustLoad()

	// The loop blocks on console reads, so it runs in its own goroutine and
	// main waits for whichever comes first: the loop ending or a signal.
	finished := make(chan error, 1)
	go func() {
		finished <- run(os.Stdin, os.Stdout, os.Stderr, cfg)
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-finished:
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case <-done:
		// run is still blocked on a read, so its deferred Close calls never
		// run. Nothing is lost: slog handlers write through without
		// buffering, and both storage backends are in-memory and die with
		// the process.
		fmt.Fprintln(os.Stdout, "\nInterrupted. Goodbye!")
	}
}

// run wires logger, storage and console, and returns when the console loop
// ends. It is separate from main so it can be tested with in-memory readers
// and writers.
func run(in io.Reader, out, errOut io.Writer, cfg *config.Config) error {
	logOut := errOut
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	// stderr usually ends up on the same screen as the menu (a terminal, or
	// 2>&1), so without a log file only warnings and errors are written.
	log := setupLogger(cfg.Env, logOut, cfg.LogPath == "")

	log.Info("starting student-records",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("version", "1.0.0"),
	)

	store, err := storage.New(cfg)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		return err
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}

	c := console.New(in, out, store, log, console.Options{
		ClearScreen: !cfg.Console.NoClear,
	})
	if err := c.Run(); err != nil {
		return err
	}

	log.Info("student-records stopped")
	return nil
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
//
// quiet raises the level to WARN whatever the environment.
func setupLogger(env string, w io.Writer, quiet bool) *slog.Logger {
	level := func(l slog.Level) slog.Level {
		if quiet && l < slog.LevelWarn {
			return slog.LevelWarn
		}
		return l
	}

	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: level(slog.LevelInfo),
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: level(slog.LevelDebug),
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{
				Level: level(slog.LevelDebug),
			}),
		)
	}
}
