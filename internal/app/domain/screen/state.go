package screen

import (
	"countdown/internal/app/domain/countdown"
	"countdown/internal/app/domain/guestbook"
	"time"
)

// State - снимок экрана. Переходы создают новый снимок, старый не меняется.
type State struct {
	Remaining countdown.TimeRemaining
	Finished  bool
	Messages  []guestbook.Message
	ShowAll   bool
}

func (s State) Visible(limit int) []guestbook.Message {
	return guestbook.Visible(s.Messages, s.ShowAll, limit)
}

func (s State) CanToggle(limit int) bool {
	return guestbook.CanToggle(s.Messages, limit)
}

type Event interface {
	isEvent()
}

type Tick struct {
	Now time.Time
}

type Submit struct {
	ID      string
	Name    string
	Message string
}

type Toggle struct{}

// Loaded - список, прочитанный из хранилища при старте.
type Loaded struct {
	Messages []guestbook.Message
}

func (Tick) isEvent()   {}
func (Submit) isEvent() {}
func (Toggle) isEvent() {}
func (Loaded) isEvent() {}

type Effect interface {
	isEffect()
}

// Celebrate запрашивается один раз, при переходе в Finished.
type Celebrate struct{}

// Persist несет полный новый список для перезаписи хранилища.
type Persist struct {
	Messages []guestbook.Message
}

// Alert - ошибка валидации формы, показывается пользователю.
type Alert struct {
	Err error
}

func (Celebrate) isEffect() {}
func (Persist) isEffect()   {}
func (Alert) isEffect()     {}
