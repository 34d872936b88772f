// Package prefs provides the key-value backends the session flag is stored in.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/jask/signinsample/internal/config"
	"github.com/jask/signinsample/internal/database"
)

// ErrCorruptValue marks a stored value that does not parse as a boolean.
var ErrCorruptValue = errors.New("prefs: corrupt value")

// Backend is a boolean key-value store that can be closed.
type Backend interface {
	GetBoolean(ctx context.Context, key string, def bool) (bool, error)
	PutBoolean(ctx context.Context, key string, value bool) error
	io.Closer
}

// Open builds the backend selected by cfg.
func Open(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	logger.Info("opening preferences backend", "backend", backend)

	switch backend {
	case config.BackendSQLite:
		db, err := database.Open(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open db: %w", err)
		}
		if err := database.RunMigrations(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return NewSQLite(db), nil
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  cfg.Redis.Timeout,
			ReadTimeout:  cfg.Redis.Timeout,
			WriteTimeout: cfg.Redis.Timeout,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
		}
		return NewRedis(client, cfg.Redis.KeyPrefix), nil
	case config.BackendFile:
		return NewFile(cfg.FilePath), nil
	case config.BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
