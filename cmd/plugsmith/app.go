// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/plugsmith/plugsmith/internal/config"
	"github.com/plugsmith/plugsmith/internal/issue"
	"github.com/plugsmith/plugsmith/internal/state"
	"github.com/plugsmith/plugsmith/internal/store"
	"github.com/plugsmith/plugsmith/pkg/ident"
	"github.com/plugsmith/plugsmith/pkg/plugin"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer: every Cobra handler receives an App and reaches config,
	// storage and the Store through it.
	App struct {
		Config  ConfigProvider
		Storage StorageFactory
		IDs     ident.Generator
		stdout  io.Writer
		stderr  io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config  ConfigProvider
		Storage StorageFactory
		IDs     ident.Generator
		Stdout  io.Writer
		Stderr  io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// StorageFactory opens the state storage for a directory.
	StorageFactory func(dir string) state.Storage

	// session is the per-invocation view of the App: resolved config, logger,
	// restored model and the Store that persists through its observer.
	session struct {
		cfg      *config.Config
		stateDir string
		storage  state.Storage
		store    *store.Store
		status   state.RestoreStatus
		logger   *log.Logger
		verbose  bool
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Storage == nil {
		deps.Storage = func(dir string) state.Storage { return state.NewFileStorage(dir) }
	}
	if deps.IDs == nil {
		deps.IDs = ident.Default()
	}

	return &App{
		Config:  deps.Config,
		Storage: deps.Storage,
		IDs:     deps.IDs,
		stdout:  deps.Stdout,
		stderr:  deps.Stderr,
	}
}

// loadConfig loads configuration honoring --config, folds ui.verbose into
// the verbose flag and keeps the result for error rendering.
func (a *App) loadConfig(ctx context.Context, flags *rootFlagValues) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		return nil, err
	}
	if cfg.UI.Verbose {
		flags.verbose = true
	}
	flags.cfg = cfg
	return cfg, nil
}

// newLogger builds the component logger. --verbose forces debug.
func (a *App) newLogger(cfg *config.Config, verbose bool) *log.Logger {
	level := cfg.Log.Level.Level()
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(a.stderr, log.Options{
		Prefix: "plugsmith",
		Level:  level,
	})
}

// open loads config, restores the model and builds a Store that saves every
// committed change.
func (a *App) open(ctx context.Context, flags *rootFlagValues) (*session, error) {
	cfg, err := a.loadConfig(ctx, flags)
	if err != nil {
		return nil, err
	}
	logger := a.newLogger(cfg, flags.verbose)

	stateDir := cfg.StateDir.String()
	if flags.stateDir != "" {
		stateDir = flags.stateDir
	}
	storage := a.Storage(stateDir)

	model, status := state.Restore(ctx, storage, a.IDs, logger.WithPrefix("state"))
	switch status {
	case state.RestoredFromCorrupt:
		a.renderIssue(cfg, flags.verbose, issue.StateCorruptId)
	case state.RestoredAfterError:
		a.renderIssue(cfg, flags.verbose, issue.StateUnavailableId)
	}

	persist := state.Persister(ctx, storage)
	// Ids printed by this invocation must resolve in the next one, so a
	// freshly built default model is saved right away. An unreadable
	// document is left in place.
	if status == state.RestoredDefault || status == state.RestoredFromCorrupt {
		if err := persist(model); err != nil {
			logger.Warn("could not save restored model", "err", err)
			a.renderIssue(cfg, flags.verbose, issue.StateSaveFailedId)
		}
	}

	s := store.New(model,
		store.WithIDGenerator(a.IDs),
		store.WithLogger(logger.WithPrefix("store")),
		store.WithObserver(func(m plugin.Model) error {
			err := persist(m)
			if err != nil {
				a.renderIssue(cfg, flags.verbose, issue.StateSaveFailedId)
			}
			return err
		}),
	)

	return &session{
		cfg:      cfg,
		stateDir: stateDir,
		storage:  storage,
		store:    s,
		status:   status,
		logger:   logger,
		verbose:  flags.verbose,
	}, nil
}

// mutate applies one Store operation and reports the resulting selection.
// An operation the Store treated as a no-op is reported as such.
func (a *App) mutate(ctx context.Context, flags *rootFlagValues, op func(*store.Store) plugin.Model) error {
	sess, err := a.open(ctx, flags)
	if err != nil {
		return err
	}

	before := sess.store.Revision()
	after := op(sess.store)
	if sess.store.Revision() == before {
		a.warnf("Nothing changed.")
		a.renderIssue(sess.cfg, sess.verbose, issue.ReferenceNotFoundId)
		return nil
	}

	printSelection(a.stdout, after)
	return nil
}

// renderIssue prints a catalog entry in verbose mode.
func (a *App) renderIssue(cfg *config.Config, verbose bool, id issue.Id) {
	if !verbose {
		return
	}
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render(glamourStyle(cfg))
	if err != nil {
		return
	}
	_, _ = io.WriteString(a.stderr, rendered)
}

func (a *App) warnf(msg string) {
	_, _ = io.WriteString(a.stderr, WarningStyle.Render("! ")+msg+"\n")
}

// glamourStyle maps the color scheme onto a glamour standard style.
func glamourStyle(cfg *config.Config) string {
	if cfg == nil {
		return "auto"
	}
	return cfg.UI.ColorScheme.String()
}
