package config

import (
	"errors"
	"fmt"
	"time"
)

func (m *Manager) validate(cfg *Config) error {
	return Validate(cfg)
}

func Validate(cfg *Config) error {
	// app
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if cfg.App.LogLevel != "" && !validLevels[cfg.App.LogLevel] {
		return fmt.Errorf("app.log_level must be one of trace, debug, info, warn, error; got %s", cfg.App.LogLevel)
	}
	if cfg.App.GinMode != "" && cfg.App.GinMode != "debug" && cfg.App.GinMode != "release" && cfg.App.GinMode != "test" {
		return fmt.Errorf("app.gin_mode must be debug, release or test; got %s", cfg.App.GinMode)
	}
	if cfg.App.Addr == "" {
		return errors.New("app.addr is required")
	}

	// countdown
	if _, err := cfg.Countdown.TargetInstant(); err != nil {
		return err
	}
	if cfg.Countdown.TickInterval <= 0 {
		cfg.Countdown.TickInterval = time.Second
	}
	if cfg.Countdown.TickInterval > time.Minute {
		return errors.New("countdown.tick_interval must be <= 1m")
	}

	// guestbook
	if cfg.Guestbook.StorageKey == "" {
		return errors.New("guestbook.storage_key is required")
	}
	if cfg.Guestbook.PreviewSize < 1 {
		return errors.New("guestbook.preview_size must be >= 1")
	}
	if (cfg.Guestbook.Limiter.Requests != 0 && cfg.Guestbook.Limiter.Per == 0) || (cfg.Guestbook.Limiter.Requests == 0 && cfg.Guestbook.Limiter.Per != 0) {
		return errors.New("guestbook.limiter.requests and guestbook.limiter.per must both be set or both be zero")
	}
	if cfg.Guestbook.Limiter.Requests < 0 || cfg.Guestbook.Limiter.Per < 0 {
		return errors.New("guestbook.limiter values must be >= 0")
	}

	// storage
	switch cfg.Storage.Driver {
	case DriverFile:
		if cfg.Storage.FilePath == "" {
			return errors.New("storage.file_path is required for file driver")
		}
	case DriverRedis:
		if cfg.Storage.Redis == nil || cfg.Storage.Redis.Address == "" {
			return errors.New("storage.redis.address is required for redis driver")
		}
	case DriverPostgres:
		if cfg.Storage.Postgres == nil || cfg.Storage.Postgres.DSN == "" {
			return errors.New("storage.postgres.dsn is required for postgres driver")
		}
	default:
		return fmt.Errorf("storage.driver must be file, redis or postgres; got %q", cfg.Storage.Driver)
	}

	return nil
}
