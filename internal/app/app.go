package app

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mfarouk/teller/internal/config"
	"github.com/mfarouk/teller/internal/service"
	"github.com/mfarouk/teller/internal/store"
)

type App struct {
	Service *service.Service
	Store   *store.Store
	Log     *slog.Logger
}

// NewApp initializes logging, database and core logic, then returns the App
// entity plus a cleanup function.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	logger := newLogger(cfg.Log.Level)

	dbPath := cfg.Database.Path
	if dbPath == "" {
		appDir, _ := getAppDataDir()
		dbPath = filepath.Join(appDir, "teller.db")
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	svc, err := service.New(dbStore, cfg, logger)
	if err != nil {
		dbStore.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			logger.Error("failed to close database", "err", err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Log:     logger,
	}, cleanup, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".teller"), nil
	}

	return filepath.Join(configDir, "teller"), nil
}
