package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"premrishi/fitterm/internal/config"
	"premrishi/fitterm/internal/contact"
	"premrishi/fitterm/internal/views"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup happens before exit.
func run(args []string) int {
	flags := pflag.NewFlagSet("fitterm", pflag.ExitOnError)
	config.RegisterFlags(flags)
	_ = flags.Parse(args)

	cfg, err := config.LoadSiteConfig(flags)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return 1
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		return 1
	}
	defer closeLog()

	client, err := contact.NewClient(cfg.ToContactConfig())
	if err != nil {
		fmt.Printf("Error initializing contact client: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := views.NewAppModel(views.Options{
		Submitter:       client,
		Logger:          logger,
		ScrollThreshold: cfg.UI.ScrollThreshold,
		Context:         ctx,
	})
	defer app.Shutdown()

	logger.Info("starting", "endpoint", client.Endpoint(), "timeout", cfg.API.Timeout)

	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	_, err = p.Run()
	code := exitCode(err)
	if code != 0 {
		logger.Error("program exited", "error", err)
		fmt.Printf("Error running application: %v\n", err)
	} else if err != nil {
		logger.Info("stopped by signal")
	}
	return code
}

// exitCode maps the program result to a process exit code. Cancellation
// through the signal context is a normal shutdown.
func exitCode(err error) int {
	if err == nil || errors.Is(err, tea.ErrProgramKilled) {
		return 0
	}
	return 1
}

// newLogger writes to the configured log file when logging is enabled. The
// terminal belongs to the UI, so nothing is ever logged to stderr.
func newLogger(cfg *config.SiteConfig) (*slog.Logger, func(), error) {
	if !cfg.LoggingEnabled() {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := tea.LogToFile(cfg.LogPath(), "fitterm")
	if err != nil {
		return nil, nil, err
	}

	level := slog.LevelInfo
	if cfg.Log.Debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}
