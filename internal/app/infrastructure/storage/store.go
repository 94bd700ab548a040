package storage

import (
	"context"
	"countdown/internal/app/infrastructure/config"
	"countdown/internal/app/ports"
	"fmt"
)

func Open(ctx context.Context, cfg *config.Storage) (ports.KVPort, error) {
	switch cfg.Driver {
	case config.DriverFile, "":
		return NewFileKV(cfg.FilePath)
	case config.DriverRedis:
		return NewRedisKV(ctx, cfg.Redis)
	case config.DriverPostgres:
		return NewPostgresKV(ctx, cfg.Postgres.DSN)
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
