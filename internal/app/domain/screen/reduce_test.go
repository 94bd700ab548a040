package screen

import (
	"countdown/internal/app/domain/countdown"
	"countdown/internal/app/domain/guestbook"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

var target = time.Date(2024, 12, 20, 3, 0, 0, 0, time.UTC)

func newReducer() *Reducer {
	return NewReducer(countdown.New(target))
}

func TestReducer_TickFinishesExactlyOnce(t *testing.T) {
	r := newReducer()
	s := State{}

	celebrations := 0
	prev := int64(1 << 62)
	start := target.Add(-5 * time.Second)

	for i := 0; i <= 10; i++ {
		var effects []Effect
		s, effects = r.Reduce(s, Tick{Now: start.Add(time.Duration(i) * time.Second)})

		for _, e := range effects {
			if _, ok := e.(Celebrate); ok {
				celebrations++
			}
		}

		if i < 5 {
			assert.False(t, s.Finished)
			assert.Less(t, s.Remaining.TotalSeconds(), prev)
			prev = s.Remaining.TotalSeconds()
			continue
		}

		assert.True(t, s.Finished)
		assert.True(t, s.Remaining.IsZero())
	}

	assert.Equal(t, 1, celebrations)
}

func TestReducer_TickAfterFinishIsNoop(t *testing.T) {
	r := newReducer()
	s := State{Finished: true}

	next, effects := r.Reduce(s, Tick{Now: target.Add(-time.Hour)})
	assert.Equal(t, s, next)
	assert.Empty(t, effects)
}

func TestReducer_SubmitInvalid(t *testing.T) {
	r := newReducer()
	s := State{Messages: []guestbook.Message{{ID: "x", Name: "a", Message: "b"}}}

	tests := []struct {
		name    string
		ev      Submit
		wantErr error
	}{
		{name: "empty_name", ev: Submit{ID: "1", Name: "", Message: "oi"}, wantErr: guestbook.ErrEmptyName},
		{name: "blank_name", ev: Submit{ID: "1", Name: "   ", Message: "oi"}, wantErr: guestbook.ErrEmptyName},
		{name: "blank_message", ev: Submit{ID: "1", Name: "Ana", Message: "\t"}, wantErr: guestbook.ErrEmptyMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, effects := r.Reduce(s, tt.ev)

			assert.Equal(t, s, next)
			require.Len(t, effects, 1)
			alert, ok := effects[0].(Alert)
			require.True(t, ok)
			assert.ErrorIs(t, alert.Err, tt.wantErr)
		})
	}
}

func TestReducer_SubmitValid(t *testing.T) {
	r := newReducer()
	s := State{}

	for i := 0; i < 7; i++ {
		before := s
		var effects []Effect
		s, effects = r.Reduce(s, Submit{ID: fmt.Sprint(i), Name: "Ana", Message: fmt.Sprint("msg ", i)})

		require.Len(t, s.Messages, len(before.Messages)+1)
		assert.Equal(t, fmt.Sprint(i), s.Messages[0].ID)
		assert.Equal(t, guestbook.Clone(before.Messages), s.Messages[1:])

		require.Len(t, effects, 1)
		persist, ok := effects[0].(Persist)
		require.True(t, ok)
		assert.Equal(t, s.Messages, persist.Messages)
	}
}

func TestReducer_SubmitKeepsOldSnapshot(t *testing.T) {
	r := newReducer()
	old := State{Messages: []guestbook.Message{{ID: "b"}}}

	_, _ = r.Reduce(old, Submit{ID: "a", Name: "Ana", Message: "oi"})
	assert.Equal(t, []guestbook.Message{{ID: "b"}}, old.Messages)
}

func TestReducer_Toggle(t *testing.T) {
	r := newReducer()
	list := make([]guestbook.Message, 6)
	for i := range list {
		list[i] = guestbook.Message{ID: string(rune('A' + i))}
	}

	s, _ := r.Reduce(State{}, Loaded{Messages: list})
	assert.Len(t, s.Visible(5), 5)
	assert.True(t, s.CanToggle(5))

	s, effects := r.Reduce(s, Toggle{})
	assert.Empty(t, effects)
	assert.True(t, s.ShowAll)
	assert.Len(t, s.Visible(5), 6)

	s, _ = r.Reduce(s, Toggle{})
	assert.False(t, s.ShowAll)
	assert.Equal(t, list[:5], s.Visible(5))
}

func TestReducer_LoadedNil(t *testing.T) {
	s, effects := newReducer().Reduce(State{}, Loaded{})
	assert.NotNil(t, s.Messages)
	assert.Empty(t, s.Messages)
	assert.Empty(t, effects)
}
