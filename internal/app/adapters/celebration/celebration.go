package celebration

import (
	"countdown/internal/app/adapters/metrics"
	"countdown/internal/app/ports"
	"countdown/pkg/logger"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sync"
)

const AssetsRoute = "/assets"

type Options struct {
	Text          string
	AssetsDir     string
	SoundFile     string
	AnimationFile string
}

// Celebration - разовый эффект по окончании отсчета: звук и анимация на всех экранах.
type Celebration struct {
	log     logger.Logger
	display ports.DisplayPort
	opts    Options

	// пути к файлам проверяются один раз при создании
	soundURL     string
	animationURL string

	wg sync.WaitGroup
}

func New(log logger.Logger, display ports.DisplayPort, opts Options) *Celebration {
	c := &Celebration{
		log:     log,
		display: display,
		opts:    opts,
	}
	c.soundURL = c.assetURL(opts.SoundFile, "sound")
	c.animationURL = c.assetURL(opts.AnimationFile, "animation")

	return c
}

// Celebrate не ждет доставки, любые ошибки только логируются.
func (c *Celebration) Celebrate() {
	metrics.Celebrations.Inc()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				c.log.Error("Celebration panicked", fmt.Errorf("%v", r))
			}
		}()

		c.display.PublishCelebration(c.Payload())
		c.log.Info("Countdown finished, celebration started")
	}()
}

// Wait нужен при остановке и в тестах.
func (c *Celebration) Wait() {
	c.wg.Wait()
}

func (c *Celebration) Payload() ports.Celebration {
	return ports.Celebration{
		Text:         c.opts.Text,
		SoundURL:     c.soundURL,
		AnimationURL: c.animationURL,
	}
}

// AnimationURL пуст, если файла анимации нет.
func (c *Celebration) AnimationURL() string {
	return c.animationURL
}

func (c *Celebration) assetURL(file, kind string) string {
	if file == "" {
		return ""
	}

	if _, err := os.Stat(filepath.Join(c.opts.AssetsDir, file)); err != nil {
		c.log.Warn("Celebration asset unavailable", "kind", kind, "file", file, "error", err.Error())
		return ""
	}

	return path.Join(AssetsRoute, filepath.ToSlash(file))
}
