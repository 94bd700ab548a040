package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CountdownRemaining - сколько секунд осталось до цели.
	CountdownRemaining = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "countdown_remaining_seconds",
		Help: "Seconds left until the countdown target",
	})

	// CountdownFinished - закончился ли отсчет.
	CountdownFinished = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "countdown_finished",
		Help: "Whether the countdown has finished (1) or not (0)",
	})

	// Celebrations - сколько раз запускался салют.
	Celebrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "countdown_celebrations_total",
		Help: "Total number of celebration effects requested",
	})

	// GuestbookMessages - размер гостевой книги.
	GuestbookMessages = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "guestbook_messages",
		Help: "Current number of guestbook messages",
	})

	// GuestbookSubmissions - отправки формы по результату.
	GuestbookSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guestbook_submissions_total",
			Help: "Total number of guestbook submissions per result",
		},
		[]string{"result"},
	)

	// StorageErrors - ошибки чтения/записи хранилища.
	StorageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guestbook_storage_errors_total",
			Help: "Total number of storage failures per operation",
		},
		[]string{"op"},
	)

	// DisplayClients - подключенные по websocket экраны.
	DisplayClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "display_clients",
		Help: "Number of connected display websocket clients",
	})

	// SaveDuration - время записи списка в хранилище.
	SaveDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "guestbook_save_milliseconds",
			Help:    "Time to persist the guestbook",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 16),
		},
	)
)

func BoolGauge(v bool) float64 {
	return map[bool]float64{true: 1, false: 0}[v]
}
