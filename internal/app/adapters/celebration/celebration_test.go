package celebration

import (
	"bytes"
	"countdown/internal/app/domain/screen"
	"countdown/internal/app/ports"
	"countdown/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

type fakeDisplay struct {
	mu           sync.Mutex
	celebrations []ports.Celebration
	panic        bool
}

func (f *fakeDisplay) PublishState(screen.State) {}

func (f *fakeDisplay) PublishCelebration(c ports.Celebration) {
	if f.panic {
		panic("speaker unplugged")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.celebrations = append(f.celebrations, c)
}

func TestCelebration_Celebrate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fireworks.mp3"), []byte("ID3"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fireworks.json"), []byte("{}"), 0600))

	d := &fakeDisplay{}
	c := New(logger.Discard(), d, Options{
		Text:          "Boas férias!",
		AssetsDir:     dir,
		SoundFile:     "fireworks.mp3",
		AnimationFile: "fireworks.json",
	})

	c.Celebrate()
	c.Wait()

	require.Len(t, d.celebrations, 1)
	assert.Equal(t, ports.Celebration{
		Text:         "Boas férias!",
		SoundURL:     "/assets/fireworks.mp3",
		AnimationURL: "/assets/fireworks.json",
	}, d.celebrations[0])
}

func TestCelebration_MissingSoundIsSwallowed(t *testing.T) {
	var buf bytes.Buffer
	d := &fakeDisplay{}
	c := New(logger.NewWriter(&buf), d, Options{
		Text:      "fim",
		AssetsDir: t.TempDir(),
		SoundFile: "fireworks.mp3",
	})

	c.Celebrate()
	c.Wait()

	require.Len(t, d.celebrations, 1)
	assert.Empty(t, d.celebrations[0].SoundURL)
	assert.Equal(t, "fim", d.celebrations[0].Text)
	assert.Contains(t, buf.String(), "Celebration asset unavailable")
}

func TestCelebration_AssetsResolvedOnce(t *testing.T) {
	var buf bytes.Buffer
	c := New(logger.NewWriter(&buf), &fakeDisplay{}, Options{
		AssetsDir:     t.TempDir(),
		AnimationFile: "fireworks.json",
	})

	for i := 0; i < 3; i++ {
		assert.Empty(t, c.AnimationURL())
		assert.Empty(t, c.Payload().AnimationURL)
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "Celebration asset unavailable"))
}

func TestCelebration_PanicIsSwallowed(t *testing.T) {
	c := New(logger.Discard(), &fakeDisplay{panic: true}, Options{})

	assert.NotPanics(t, func() {
		c.Celebrate()
		c.Wait()
	})
}
