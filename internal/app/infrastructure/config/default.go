package config

import "time"

func (m *Manager) GetDefault() *Config {
	return Default()
}

func Default() *Config {
	return &Config{
		App: App{
			LogLevel:  "info",
			LogFile:   "logs/main.log",
			GinMode:   "release",
			Addr:      ":8080",
			AdminUser: "admin",
		},
		Countdown: Countdown{
			Target:        "2024-12-20T00:00:00-03:00",
			OffsetMinutes: 0,
			TickInterval:  time.Second,
			Heading:       "Férias começam em:",
			FinishedText:  "Boas férias, um Natal cheio de alegria e um excelente final de ano! Até 2025, no nosso último ano de escola!",
			AssetsDir:     "assets",
			SoundFile:     "fireworks.mp3",
			AnimationFile: "fireworks.json",
		},
		Guestbook: Guestbook{
			StorageKey:  "messages",
			PreviewSize: 5,
			AlertText:   "Por favor, insira um nome e uma mensagem.",
			Limiter: Limiter{
				Requests: 3,
				Per:      30 * time.Second,
			},
		},
		Storage: Storage{
			Driver:   DriverFile,
			FilePath: "cache/storage.json",
		},
	}
}
