package app

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/cardcore/internal/config"
	"github.com/hance08/cardcore/internal/logger"
	"github.com/hance08/cardcore/internal/service"
	"github.com/hance08/cardcore/internal/store"
)

const (
	appDirName = "cardcore"
	dbFileName = "cardcore.db"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *slog.Logger
	// DBPath is empty for the memory driver.
	DBPath string
}

// NewApp initialize logger, store and services, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(cfg.Log, nil)
	if err != nil {
		return nil, nil, err
	}

	var (
		repo   store.Repository
		dbPath string
	)

	switch cfg.Database.Driver {
	case config.DriverMemory:
		repo = store.NewMemoryStore()
	default:
		dbPath, err = ResolveDBPath(cfg.Database.Path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create database directory: %w", err)
		}

		repo, err = store.NewStore(dbPath, migrationFS, store.Options{
			BusyTimeout:  cfg.Database.BusyTimeout,
			MaxOpenConns: cfg.Database.MaxOpenConns,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	svc := service.NewService(repo, cfg, log)

	cleanup := func() {
		if err := repo.Close(); err != nil {
			log.Error("failed to close store", "err", err)
		}
	}

	return &App{
		Service: svc,
		Store:   repo,
		Logger:  log,
		DBPath:  dbPath,
	}, cleanup, nil
}

// ResolveDBPath expands "~" and falls back to the app data directory.
func ResolveDBPath(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		dir, err := DataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, dbFileName), nil
	}
	return ExpandPath(raw)
}

// DataDir is where the config file and default database live.
func DataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+appDirName), nil
	}

	return filepath.Join(configDir, appDirName), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
