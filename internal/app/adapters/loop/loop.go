package loop

import (
	"context"
	"countdown/internal/app/adapters/metrics"
	"countdown/internal/app/domain/guestbook"
	"countdown/internal/app/domain/screen"
	"countdown/internal/app/ports"
	"countdown/pkg/logger"
	"errors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"sync/atomic"
	"time"
)

var ErrStopped = errors.New("screen loop stopped")

type request struct {
	ev    screen.Event
	reply chan result
}

type result struct {
	state screen.State
	err   error
}

// Loop владеет состоянием экрана: тики таймера и запросы формы обрабатываются одной горутиной.
type Loop struct {
	log         logger.Logger
	reducer     *screen.Reducer
	store       ports.GuestbookStorePort
	celebration ports.CelebrationPort
	display     ports.DisplayPort

	interval time.Duration
	now      func() time.Time
	newID    func() string

	state    atomic.Pointer[screen.State]
	requests chan request
	done     chan struct{}
}

type Option func(l *Loop)

func WithClock(now func() time.Time) Option {
	return func(l *Loop) { l.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(l *Loop) { l.newID = newID }
}

func New(log logger.Logger, reducer *screen.Reducer, store ports.GuestbookStorePort, celebration ports.CelebrationPort, display ports.DisplayPort, interval time.Duration, opts ...Option) *Loop {
	l := &Loop{
		log:         log,
		reducer:     reducer,
		store:       store,
		celebration: celebration,
		display:     display,
		interval:    interval,
		now:         time.Now,
		newID:       uuid.NewString,
		requests:    make(chan request),
		done:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}

	initial := screen.State{Messages: []guestbook.Message{}}
	l.state.Store(&initial)
	return l
}

func (l *Loop) Snapshot() screen.State {
	return *l.state.Load()
}

// Run загружает гостевую книгу, сразу делает первый тик и обрабатывает события до отмены ctx.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	l.apply(ctx, screen.Loaded{Messages: l.store.Load(ctx)})
	l.apply(ctx, screen.Tick{Now: l.now()})

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	tickC := ticker.C
	if l.Snapshot().Finished {
		ticker.Stop()
		tickC = nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tickC:
			st, _ := l.apply(ctx, screen.Tick{Now: l.now()})
			if st.Finished {
				ticker.Stop()
				tickC = nil
				l.log.Debug("Timer stopped")
			}
		case req := <-l.requests:
			st, err := l.apply(ctx, req.ev)
			req.reply <- result{state: st, err: err}
		}
	}
}

// Submit возвращает ошибку guestbook.ErrEmpty* без изменения состояния, если поле пустое.
func (l *Loop) Submit(ctx context.Context, name, message string) (guestbook.Message, screen.State, error) {
	st, err := l.do(ctx, screen.Submit{ID: l.newID(), Name: name, Message: message})
	if err != nil {
		return guestbook.Message{}, st, err
	}

	return st.Messages[0], st, nil
}

func (l *Loop) Toggle(ctx context.Context) (screen.State, error) {
	return l.do(ctx, screen.Toggle{})
}

func (l *Loop) do(ctx context.Context, ev screen.Event) (screen.State, error) {
	req := request{ev: ev, reply: make(chan result, 1)}

	select {
	case l.requests <- req:
	case <-ctx.Done():
		return l.Snapshot(), ctx.Err()
	case <-l.done:
		return l.Snapshot(), ErrStopped
	}

	// ответ приходит всегда: Run не выходит посреди обработки запроса
	res := <-req.reply
	return res.state, res.err
}

func (l *Loop) apply(ctx context.Context, ev screen.Event) (screen.State, error) {
	prev := l.Snapshot()
	next, effects := l.reducer.Reduce(prev, ev)
	l.state.Store(&next)

	var (
		err       error
		celebrate bool
	)
	for _, e := range effects {
		switch eff := e.(type) {
		case screen.Persist:
			l.store.Save(ctx, eff.Messages)
		case screen.Celebrate:
			celebrate = true
		case screen.Alert:
			err = eff.Err
		}
	}

	if _, ok := ev.(screen.Submit); ok {
		res := "ok"
		if err != nil {
			res = "invalid"
		}
		metrics.GuestbookSubmissions.With(prometheus.Labels{"result": res}).Inc()
	}

	metrics.CountdownRemaining.Set(float64(next.Remaining.TotalSeconds()))
	metrics.CountdownFinished.Set(metrics.BoolGauge(next.Finished))
	metrics.GuestbookMessages.Set(float64(len(next.Messages)))

	if err == nil {
		l.display.PublishState(next)
	}
	// экраны должны получить finished раньше, чем событие празднования
	if celebrate {
		l.celebration.Celebrate()
	}
	return next, err
}
