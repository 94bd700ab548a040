package ports

import "countdown/internal/app/domain/screen"

type Celebration struct {
	Text         string `json:"text"`
	SoundURL     string `json:"sound_url,omitempty"`
	AnimationURL string `json:"animation_url,omitempty"`
}

// DisplayPort - подключенные экраны.
type DisplayPort interface {
	PublishState(s screen.State)
	PublishCelebration(c Celebration)
}

type CelebrationPort interface {
	Celebrate()
}
