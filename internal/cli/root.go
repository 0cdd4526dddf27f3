package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promodeck/internal/catalog"
	"promodeck/internal/config"
	"promodeck/internal/domain"
	"promodeck/internal/eventbus"
	"promodeck/internal/logging"
	"promodeck/internal/ui"
)

// readyEnv makes the app print readySentinel once the UI is about to start
const (
	readyEnv      = "PROMODECK_E2E_TEST"
	readySentinel = "__READY__"
)

// Options holds the command line flags
type Options struct {
	ConfigPath  string
	CatalogPath string
	Query       string
	Layout      string
	LogFile     string
	Verbose     bool
	NoWatch     bool
}

// NewRootCommand builds the promodeck command
func NewRootCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "promodeck [catalog]",
		Short: "Browse and filter a catalog of promotions in the terminal",
		Long: `promodeck lists promotional activities from a TOML, JSON or YAML catalog.

The list is filtered by status, keyword and date range, paginated, and its
filter state is kept as a shareable query string such as
"status=active&keyword=sale&page=2".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.CatalogPath = args[0]
			}
			return run(cmd, opts)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the TOML config file")
	flags.StringVar(&opts.CatalogPath, "catalog", "", "Catalog file or directory (defaults to the built-in catalog)")
	flags.StringVarP(&opts.Query, "query", "q", "", `Initial filter query, e.g. "status=active&page=2"`)
	flags.StringVar(&opts.Layout, "layout", "", "List layout: card or compact")
	flags.StringVar(&opts.LogFile, "log-file", "", "Log file path")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&opts.NoWatch, "no-watch", false, "Do not reload the catalog when it changes on disk")
	return cmd
}

// Execute runs the root command and exits on error
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// ApplyFlags overrides config values with the flags the user set
func ApplyFlags(cmd *cobra.Command, cfg *config.Config, opts *Options) {
	flags := cmd.Flags()
	if flags.Changed("catalog") || opts.CatalogPath != "" {
		cfg.CatalogPath = opts.CatalogPath
	}
	if flags.Changed("layout") {
		cfg.UISettings.Layout = opts.Layout
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.LogFile
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.Verbose
	}
	if flags.Changed("no-watch") {
		cfg.WatchCatalog = !opts.NoWatch
	}
}

func run(cmd *cobra.Command, opts *Options) error {
	configSvc := config.NewConfigService(opts.ConfigPath)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ApplyFlags(cmd, cfg, opts)
	cfg.Normalize()

	logger, err := logging.New(logging.Options{File: cfg.LogFile, Verbose: cfg.Verbose})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("Starting promodeck", zap.String("config", configSvc.Path()))

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New(logger.Named("eventbus"))
	defer bus.Close()

	activities, source, err := loadCatalog(cfg.CatalogPath)
	if err != nil && !errors.Is(err, catalog.ErrInvalidRecord) {
		logger.Error("Failed to load catalog", zap.String("source", source), zap.Error(err))
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if err != nil {
		logger.Warn("Skipped invalid catalog records", zap.Error(err))
	}
	store := catalog.NewMemoryStore(activities...)
	logger.Info("Catalog loaded", zap.String("source", source), zap.Int("count", store.Len()))

	reload := func() error { return reloadDefault(store, bus) }
	if cfg.CatalogPath != "" {
		info, err := os.Stat(cfg.CatalogPath)
		if err != nil {
			return fmt.Errorf("failed to stat catalog: %w", err)
		}
		watcher, err := catalog.NewWatcher(cfg.CatalogPath, info.IsDir(), store, bus, logger, catalog.DefaultReloadDelay)
		if err != nil {
			return err
		}
		defer watcher.Stop()
		reload = watcher.Reload

		if cfg.WatchCatalog {
			if err := watcher.Start(ctx); err != nil {
				// Manual reload with r still works
				logger.Warn("Catalog watching disabled", zap.Error(err))
			}
		}
	}

	model := ui.NewModel(bus, cfg, store, logger.Named("ui"),
		ui.WithInitialQuery(ui.ResolveInitialQuery(opts.Query, cfg)),
		ui.WithReloader(reload),
		ui.WithCatalogSource(source),
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward domain events into the update loop
	forward := func(e eventbus.DomainEvent) { p.Send(ui.EventMsg{Event: e}) }
	for _, t := range []eventbus.EventType{
		eventbus.EventCatalogLoaded,
		eventbus.EventCatalogReloaded,
		eventbus.EventActivityDeleted,
		eventbus.EventError,
	} {
		unsubscribe := bus.Subscribe(t, forward)
		defer unsubscribe()
	}
	bus.Publish(eventbus.CatalogLoadedEvent{Source: source, Count: store.Len()})

	if os.Getenv(readyEnv) != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), readySentinel)
	}

	_, runErr := p.Run()
	model.Close()
	if err := configSvc.Save(model.Config()); err != nil {
		logger.Warn("Failed to save config", zap.Error(err))
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		logger.Error("Error running program", zap.Error(runErr))
		return fmt.Errorf("error running program: %w", runErr)
	}
	logger.Info("UI exited normally")
	return nil
}

// loadCatalog reads the catalog at path, or the built-in one when path is empty.
// It also returns the name shown as the catalog source.
func loadCatalog(path string) ([]domain.Activity, string, error) {
	if path == "" {
		activities, err := catalog.LoadDefault()
		return activities, catalog.DefaultSource, err
	}
	activities, err := catalog.Load(path)
	return activities, path, err
}

// reloadDefault re-reads the built-in catalog. Deleted activities come back.
func reloadDefault(store catalog.Store, bus eventbus.EventBus) error {
	activities, err := catalog.LoadDefault()
	if err != nil {
		return err
	}
	store.Replace(activities)
	bus.Publish(eventbus.CatalogReloadedEvent{Source: catalog.DefaultSource, Count: len(activities)})
	return nil
}
