package view

import (
	"countdown/internal/app/domain/countdown"
	"countdown/internal/app/domain/guestbook"
	"countdown/internal/app/domain/screen"
)

// State - то, что видит экран: остаток, флаг окончания и видимая часть списка.
type State struct {
	Remaining countdown.TimeRemaining `json:"remaining"`
	Countdown string                  `json:"countdown"`
	Finished  bool                    `json:"finished"`
	Messages  []guestbook.Message     `json:"messages"`
	Total     int                     `json:"total"`
	ShowAll   bool                    `json:"show_all"`
	CanToggle bool                    `json:"can_toggle"`
}

func FromState(s screen.State, limit int) State {
	return State{
		Remaining: s.Remaining,
		Countdown: s.Remaining.String(),
		Finished:  s.Finished,
		Messages:  guestbook.Clone(s.Visible(limit)),
		Total:     len(s.Messages),
		ShowAll:   s.ShowAll,
		CanToggle: s.CanToggle(limit),
	}
}

const (
	TypeState     = "state"
	TypeCelebrate = "celebrate"
)

type Envelope struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}
