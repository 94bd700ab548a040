package http

import (
	"context"
	"countdown/internal/app/adapters/celebration"
	"countdown/internal/app/adapters/http/handlers"
	"countdown/internal/app/adapters/http/middlewares"
	"countdown/internal/app/infrastructure/config"
	"countdown/internal/app/ports"
	"countdown/pkg/logger"
	"errors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"time"
)

type Router struct {
	router      *gin.Engine
	handlers    *handlers.Handlers
	middlewares *middlewares.Middlewares

	log     logger.Logger
	manager *config.Manager
}

func NewRouter(log logger.Logger, manager *config.Manager, screen ports.ScreenPort, displays handlers.DisplayServer, cel *celebration.Celebration) *Router {
	r := &Router{
		router:      gin.Default(),
		handlers:    handlers.New(log, manager, screen, displays, cel),
		middlewares: middlewares.New(log),
		log:         log,
		manager:     manager,
	}
	cfg := manager.Get()

	r.router.SetHTMLTemplate(handlers.IndexTemplate())

	if cfg.App.AdminPasswordHash != "" {
		admin := r.router.Group("/", r.middlewares.AdminAuth(cfg.App.AdminUser, cfg.App.AdminPasswordHash))
		pprof.Register(admin)
		admin.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Warn("app.admin_password_hash is empty, /metrics and pprof are disabled")
	}

	r.router.GET("/", r.handlers.IndexHandler)
	r.router.GET("/ws", r.handlers.DisplayHandler)
	r.router.Static(celebration.AssetsRoute, cfg.Countdown.AssetsDir)

	api := r.router.Group("/api")
	api.GET("/state", r.handlers.StateHandler)
	api.GET("/status", r.handlers.StatusHandler)
	api.POST("/messages", r.middlewares.RateLimit(cfg.Guestbook.Limiter.Requests, cfg.Guestbook.Limiter.Per), r.handlers.SubmitHandler)
	api.POST("/messages/toggle", r.handlers.ToggleHandler)

	return r
}

func (r *Router) Handler() http.Handler {
	return r.router
}

// Run слушает app.addr до отмены ctx.
func (r *Router) Run(ctx context.Context) error {
	srv := r.newServer(r.manager.Get().App.Addr, r.router)

	errc := make(chan error, 1)
	go func() {
		r.log.Info("HTTP server started", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (r *Router) newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}
}
