package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/extdeck/internal/catalog"
	"github.com/alexisbeaulieu97/extdeck/internal/config"
	"github.com/alexisbeaulieu97/extdeck/internal/kvstore"
	"github.com/alexisbeaulieu97/extdeck/internal/logger"
	"github.com/alexisbeaulieu97/extdeck/internal/preferences"
)

// appContext bundles long-lived services created at startup.
type appContext struct {
	Config  *config.Config
	Log     *logger.Logger
	Themes  *preferences.Store
	Catalog *catalog.Catalog

	closers []io.Closer
}

// openApp loads configuration and opens the preference store and catalog.
// The dashboard logs to the configured file; other commands log to stderr.
func openApp(cmd *cobra.Command, flags *rootFlags, operation string, logToFile bool) (*appContext, error) {
	dir, err := defaultConfigDir()
	if err != nil {
		return nil, newCommandError(operation, "determining config directory", err, "Ensure your HOME directory is set correctly.")
	}

	configPath := flags.configPath
	if configPath == "" {
		if configPath, err = defaultConfigPath(); err != nil {
			return nil, newCommandError(operation, "determining config path", err, "Ensure your HOME directory is set correctly.")
		}
	}

	cfg, err := config.Load(configPath, dir)
	if err != nil {
		return nil, newCommandError(operation, "loading configuration", err, "Fix the config file or EXTDECK_* environment variables and try again.")
	}

	app := &appContext{Config: cfg}

	if err := app.openLogger(cmd, flags, logToFile); err != nil {
		return nil, newCommandError(operation, "opening log", err, "Check log_file in your config and its directory permissions.")
	}

	backend, err := kvstore.Open(cfg.Preferences.Backend, cfg.Preferences.Path, app.Log)
	if err != nil {
		_ = app.Close()
		return nil, newCommandError(operation, "opening preference store", err, "Check preferences.path permissions or switch preferences.backend.")
	}
	app.Themes = preferences.NewStore(backend, app.Log)
	app.closers = append(app.closers, app.Themes)

	items := catalog.Defaults()
	if cfg.CatalogFile != "" {
		if items, err = catalog.LoadFile(cfg.CatalogFile); err != nil {
			_ = app.Close()
			return nil, newCommandError(operation, "loading catalog", err, "Fix the catalog file or remove catalog_file from your config.")
		}
	}
	app.Catalog = catalog.New(items)

	app.Log.WithFields(map[string]any{
		"config":     configPath,
		"backend":    cfg.Preferences.Backend,
		"extensions": app.Catalog.Len(),
	}).Debug("application ready")

	return app, nil
}

func (a *appContext) openLogger(cmd *cobra.Command, flags *rootFlags, logToFile bool) error {
	if logToFile {
		level := a.Config.LogLevel
		if flags.verbose {
			level = "debug"
		}
		log, closer, err := logger.OpenFile(a.Config.LogFile, level)
		if err != nil {
			return err
		}
		a.Log = log
		a.closers = append(a.closers, closer)
		return nil
	}

	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	a.Log = log
	return nil
}

// Close releases resources in reverse order of acquisition.
func (a *appContext) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
