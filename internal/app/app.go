package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/sectreg/discovery"
	"github.com/vk/sectreg/internal/ctxlog"
	"github.com/vk/sectreg/manifest"
	"github.com/vk/sectreg/registry"
	"github.com/vk/sectreg/section"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	scanner *discovery.Scanner
	config  *Config
}

// NewApp is the constructor for the main application. Results are written to
// outW and log lines to errW, so structured output stays machine-readable.
// A nil scanner defaults to scanning the running image against the default
// registry.
func NewApp(outW, errW io.Writer, cfg *Config, scanner *discovery.Scanner) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	if scanner == nil {
		scanner = discovery.NewScanner(section.Default(), registry.Default())
	}

	return &App{
		outW:    outW,
		logger:  logger,
		scanner: scanner,
		config:  cfg,
	}
}

// Inspect scans the image and renders the discovered registry in the
// configured output format.
func (a *App) Inspect(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	snap, err := a.scanner.Scan(ctx)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}
	a.logger.Debug("Image scanned.", "modules", len(snap.Modules), "services", len(snap.Services))

	return a.render(snap)
}

// Verify scans the image and checks the snapshot against the configured
// manifest.
func (a *App) Verify(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	if a.config.ManifestPath == "" {
		return fmt.Errorf("a manifest path is required for verification")
	}

	m, err := manifest.Load(ctx, a.config.ManifestPath)
	if err != nil {
		return err
	}

	snap, err := a.scanner.Scan(ctx)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	if err := manifest.Verify(ctx, snap, m, a.config.Strict); err != nil {
		return err
	}

	a.logger.Info("Manifest verification passed.", "modules", len(m.Modules), "services", len(m.Services))
	fmt.Fprintln(a.outW, "OK")
	return nil
}
