package screen

import (
	"countdown/internal/app/domain/countdown"
	"countdown/internal/app/domain/guestbook"
)

type Reducer struct {
	countdown *countdown.Countdown
}

func NewReducer(c *countdown.Countdown) *Reducer {
	return &Reducer{countdown: c}
}

// Reduce - чистая функция (state, event) -> (state, effects).
func (r *Reducer) Reduce(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case Tick:
		return r.tick(s, e)
	case Submit:
		return submit(s, e)
	case Toggle:
		s.ShowAll = !s.ShowAll
		return s, nil
	case Loaded:
		s.Messages = guestbook.Clone(e.Messages)
		return s, nil
	}

	return s, nil
}

func (r *Reducer) tick(s State, e Tick) (State, []Effect) {
	if s.Finished {
		return s, nil
	}

	remaining, done := r.countdown.Remaining(e.Now)
	s.Remaining = remaining
	if !done {
		return s, nil
	}

	s.Finished = true
	return s, []Effect{Celebrate{}}
}

func submit(s State, e Submit) (State, []Effect) {
	msg, err := guestbook.NewMessage(e.ID, e.Name, e.Message)
	if err != nil {
		return s, []Effect{Alert{Err: err}}
	}

	s.Messages = guestbook.Prepend(s.Messages, msg)
	return s, []Effect{Persist{Messages: s.Messages}}
}
