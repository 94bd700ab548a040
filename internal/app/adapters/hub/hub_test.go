package hub

import (
	"countdown/internal/app/adapters/view"
	"countdown/internal/app/domain/countdown"
	"countdown/internal/app/domain/guestbook"
	"countdown/internal/app/domain/screen"
	"countdown/internal/app/ports"
	"countdown/pkg/logger"
	"encoding/json"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func newServer(t *testing.T, h *Hub) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = h.ServeWS(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) envelope {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var env envelope
	require.NoError(t, conn.ReadJSON(&env))
	return env
}

func TestHub_PublishState(t *testing.T) {
	h := New(logger.Discard(), 5)
	conn := dial(t, newServer(t, h))

	require.Eventually(t, func() bool { return h.Len() == 1 }, time.Second, 5*time.Millisecond)

	h.PublishState(screen.State{
		Remaining: countdown.TimeRemaining{Minutes: 1},
		Messages:  []guestbook.Message{{ID: "1", Name: "Ana", Message: "oi"}},
	})

	env := read(t, conn)
	assert.Equal(t, view.TypeState, env.Type)

	var st view.State
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.Equal(t, 1, st.Total)
	assert.Equal(t, "0d 0h 1m 0s", st.Countdown)
}

func TestHub_SendsLastStateOnConnect(t *testing.T) {
	h := New(logger.Discard(), 5)
	h.PublishState(screen.State{Finished: true})

	conn := dial(t, newServer(t, h))

	env := read(t, conn)
	assert.Equal(t, view.TypeState, env.Type)

	var st view.State
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.True(t, st.Finished)
}

func TestHub_PublishCelebration(t *testing.T) {
	h := New(logger.Discard(), 5)
	conn := dial(t, newServer(t, h))
	require.Eventually(t, func() bool { return h.Len() == 1 }, time.Second, 5*time.Millisecond)

	h.PublishCelebration(ports.Celebration{Text: "Boas férias", SoundURL: "/assets/fireworks.mp3"})

	env := read(t, conn)
	assert.Equal(t, view.TypeCelebrate, env.Type)

	var c ports.Celebration
	require.NoError(t, json.Unmarshal(env.Data, &c))
	assert.Equal(t, "/assets/fireworks.mp3", c.SoundURL)
}

func TestHub_ClientDisconnect(t *testing.T) {
	h := New(logger.Discard(), 5)
	conn := dial(t, newServer(t, h))
	require.Eventually(t, func() bool { return h.Len() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return h.Len() == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestHub_Close(t *testing.T) {
	h := New(logger.Discard(), 5)
	dial(t, newServer(t, h))
	dial(t, newServer(t, h))
	require.Eventually(t, func() bool { return h.Len() == 2 }, time.Second, 5*time.Millisecond)

	h.Close()
	assert.Equal(t, 0, h.Len())

	assert.NotPanics(t, func() { h.PublishState(screen.State{}) })
}
