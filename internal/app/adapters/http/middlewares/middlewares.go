package middlewares

import (
	"countdown/pkg/logger"
	"github.com/maypok86/otter/v2"
	"golang.org/x/time/rate"
	"sync"
	"time"
)

type Middlewares struct {
	log logger.Logger

	mu       sync.Mutex
	limiters *otter.Cache[string, *rate.Limiter]
}

func New(log logger.Logger) *Middlewares {
	return &Middlewares{
		log: log,
		limiters: otter.Must(&otter.Options[string, *rate.Limiter]{
			MaximumSize:      10_000,
			ExpiryCalculator: otter.ExpiryAccessing[string, *rate.Limiter](10 * time.Minute),
		}),
	}
}
