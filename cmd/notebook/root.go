// ABOUTME: Root command wiring config, logging, storage and the repository.
// ABOUTME: Every subcommand runs against the repository opened here.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harper/notebook/internal/charm"
	"github.com/harper/notebook/internal/config"
	"github.com/harper/notebook/internal/db"
	"github.com/harper/notebook/internal/logging"
	"github.com/harper/notebook/internal/models"
	"github.com/harper/notebook/internal/notes"
	"github.com/harper/notebook/internal/store"
	"github.com/harper/notebook/internal/ui"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	logger   *log.Logger
	appStore *store.Adapter
	repo     *notes.Repository
)

var rootCmd = &cobra.Command{
	Use:   "notebook",
	Short: "Notes with categories, trash and version history",
	Long: `notebook keeps categorized notes with pinning, favorites, a 7-day trash
and the last three versions of every note's title and description.`,
	Version:       fmt.Sprintf("%s (%s, %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setup(cmd); err != nil {
			return err
		}
		return openRepository()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeRepository()
	},
}

// setup loads configuration, applies global flags and builds the logger.
func setup(cmd *cobra.Command) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("backend") {
		loaded.Backend, _ = cmd.Flags().GetString("backend")
	}
	if cmd.Flags().Changed("data-dir") {
		loaded.DataDir, _ = cmd.Flags().GetString("data-dir")
	}
	if cmd.Flags().Changed("log-level") {
		loaded.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	cfg = loaded
	logger = logging.New(os.Stderr, cfg.LogLevel)
	return nil
}

func openBackend(c *config.Config, l *log.Logger) (store.Backend, error) {
	switch c.Backend {
	case config.BackendSQLite:
		s, err := db.Open(db.DefaultPath(c.DataDir))
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendCharm:
		return newCharmClient(c, l), nil
	case config.BackendMemory:
		b, err := store.OpenBadgerInMemory()
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		b, err := store.OpenBadger(filepath.Join(c.DataDir, "badger"), l)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
}

func newCharmClient(c *config.Config, l *log.Logger) *charm.Client {
	return charm.NewClient(
		charm.WithHost(c.CharmHost),
		charm.WithAutoSync(c.AutoSync),
		charm.WithStaleThreshold(5*time.Minute),
		charm.WithLogger(l),
	)
}

func openRepository() error {
	backend, err := openBackend(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Backend, err)
	}
	appStore = store.NewAdapter(backend, store.WithSlot(cfg.Slot), store.WithLogger(logger))
	repo = notes.Open(appStore,
		notes.WithTrashExpiry(cfg.TrashExpiry()),
		notes.WithAutosaveDelay(time.Duration(cfg.AutosaveDelay)),
		notes.WithLogger(logger),
	)
	return nil
}

func closeRepository() error {
	if appStore == nil {
		return nil
	}
	err := appStore.Close()
	appStore = nil
	return err
}

// resolve looks up a note by id prefix.
func resolve(prefix string) (models.Note, error) {
	note, err := repo.ResolvePrefix(prefix)
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		_ = closeRepository()
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("backend", "", "storage backend (badger|sqlite|charm|memory)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory for local databases")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")
}
