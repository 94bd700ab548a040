package app

import (
	"context"
	"countdown/internal/app/adapters/celebration"
	"countdown/internal/app/adapters/hub"
	router "countdown/internal/app/adapters/http"
	"countdown/internal/app/adapters/loop"
	"countdown/internal/app/adapters/metrics"
	"countdown/internal/app/adapters/persistence"
	"countdown/internal/app/domain/countdown"
	"countdown/internal/app/domain/screen"
	"countdown/internal/app/infrastructure/config"
	"countdown/internal/app/infrastructure/storage"
	"countdown/pkg/logger"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

const configPath = "config.json"

func New() error {
	path := configPath
	if p := os.Getenv("COUNTDOWN_CONFIG"); p != "" {
		path = p
	}

	manager, err := config.New(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg := manager.Get()
	log := logger.New(cfg.App.LogFile)
	log.SetLogLevel(cfg.App.LogLevel)
	gin.SetMode(cfg.App.GinMode)

	prometheus.MustRegister(metrics.SaveDuration)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	target, err := cfg.Countdown.TargetInstant()
	if err != nil {
		return err
	}

	kv, err := storage.Open(ctx, &cfg.Storage)
	if err != nil {
		log.Error("Error opening storage", err, "driver", cfg.Storage.Driver)
		return err
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.Error("Error closing storage", err)
		}
	}()

	displays := hub.New(logger.NewPrefixedLogger(log, "hub"), cfg.Guestbook.PreviewSize)
	defer displays.Close()

	cel := celebration.New(logger.NewPrefixedLogger(log, "celebration"), displays, celebration.Options{
		Text:          cfg.Countdown.FinishedText,
		AssetsDir:     cfg.Countdown.AssetsDir,
		SoundFile:     cfg.Countdown.SoundFile,
		AnimationFile: cfg.Countdown.AnimationFile,
	})
	defer cel.Wait()

	store := persistence.New(logger.NewPrefixedLogger(log, "storage"), kv, cfg.Guestbook.StorageKey)
	screenLoop := loop.New(
		logger.NewPrefixedLogger(log, "screen"),
		screen.NewReducer(countdown.New(target)),
		store, cel, displays,
		cfg.Countdown.TickInterval,
	)

	log.Info("Countdown started", "target", target.String(), "storage", cfg.Storage.Driver)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := screenLoop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Screen loop stopped", err)
		}
	}()

	r := router.NewRouter(logger.NewPrefixedLogger(log, "http"), manager, screenLoop, displays, cel)
	err = r.Run(ctx)

	stop()
	wg.Wait()
	log.Info("Countdown stopped")
	return err
}
