package handlers

import (
	"countdown/internal/app/adapters/celebration"
	"countdown/internal/app/infrastructure/config"
	"countdown/internal/app/ports"
	"countdown/pkg/logger"
	"net/http"
	"time"
)

type DisplayServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request) error
}

type Handlers struct {
	log         logger.Logger
	manager     *config.Manager
	screen      ports.ScreenPort
	displays    DisplayServer
	celebration *celebration.Celebration
	startApp    time.Time
}

func New(log logger.Logger, manager *config.Manager, screen ports.ScreenPort, displays DisplayServer, celebration *celebration.Celebration) *Handlers {
	return &Handlers{
		log:         log,
		manager:     manager,
		screen:      screen,
		displays:    displays,
		celebration: celebration,
		startApp:    time.Now(),
	}
}

func (h *Handlers) previewSize() int {
	return h.manager.Get().Guestbook.PreviewSize
}
