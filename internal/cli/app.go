// SPDX-License-Identifier: MIT

// Package cli provides the gridpatrol command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpatrol/internal/config"
	"github.com/katalvlaran/gridpatrol/internal/logging"
	"github.com/katalvlaran/gridpatrol/internal/telemetry"
	"github.com/katalvlaran/gridpatrol/search"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	global  globalOptions
	cfg     config.Config
	logger  *bolt.Logger
	metrics *telemetry.Metrics
	flush   func(context.Context) error
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: logging.Nop(),
	}

	app.root = &cobra.Command{
		Use:   "gridpatrol",
		Short: "Simulate a grid patrol and count loop-inducing obstacles",
		Long: `gridpatrol walks an agent across a rectangular grid: it moves forward,
turns clockwise in front of obstacles and stops when it leaves the grid.

It reports how many distinct cells the agent visits and how many single
new obstacles would trap it in an endless loop instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
	}

	pf := app.root.PersistentFlags()
	pf.StringVarP(&app.global.configPath, "config", "c", "", "Path to a YAML or JSON config file")
	pf.StringVar(&app.global.logLevel, "log-level", "", "Log level: trace, debug, info, warn or error (overrides config)")
	pf.StringVar(&app.global.logFormat, "log-format", "", "Log format: console or json (overrides config)")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newSolveCmd(),
		app.newTraceCmd(),
		app.newGenerateCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err := a.root.ExecuteContext(ctx)
	if a.flush != nil {
		err = errors.Join(err, a.flush(context.WithoutCancel(ctx)))
		a.flush = nil
	}
	return err
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// setup resolves configuration, then builds the logger and, when enabled,
// the metrics pipeline. Flags override the config file and environment.
func (a *App) setup() error {
	cfg, err := config.Resolve(a.global.configPath)
	if err != nil {
		return err
	}
	if a.global.logLevel != "" {
		cfg.Log.Level = a.global.logLevel
	}
	if a.global.logFormat != "" {
		cfg.Log.Format = a.global.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Log.Output = a.stderr
	a.cfg = cfg
	a.logger = logging.New(cfg.Log)

	if !cfg.Metrics.Enabled {
		return nil
	}
	provider, err := telemetry.NewWriterProvider(a.stderr, Version)
	if err != nil {
		return err
	}
	m, err := telemetry.New(telemetry.Config{
		MeterName:    cfg.Metrics.Meter,
		MeterVersion: Version,
		Provider:     provider,
	})
	if err != nil {
		return errors.Join(err, provider.Shutdown(context.Background()))
	}
	a.metrics = m
	a.flush = provider.Shutdown
	return nil
}

// searchOptions maps the resolved config onto search options. workers > 0
// overrides the configured worker count.
func (a *App) searchOptions(workers int) []search.Option {
	if workers <= 0 {
		workers = a.cfg.Search.Workers
	}
	opts := []search.Option{
		search.WithWorkers(workers),
		search.WithLogger(a.logger),
	}
	if a.metrics != nil {
		opts = append(opts, search.WithMetrics(a.metrics))
	}
	return opts
}

// newVersionCmd creates the version command.
func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "gridpatrol version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}
