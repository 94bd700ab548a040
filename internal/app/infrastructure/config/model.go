package config

import (
	"fmt"
	"time"
)

type Config struct {
	App       App       `json:"app"`
	Countdown Countdown `json:"countdown"`
	Guestbook Guestbook `json:"guestbook"`
	Storage   Storage   `json:"storage"`
}

type App struct {
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`
	GinMode  string `json:"gin_mode"`
	Addr     string `json:"addr"`

	// доступ к /metrics и pprof, пароль хранится как bcrypt-хэш (cmd/hashpass)
	AdminUser         string `json:"admin_user"`
	AdminPasswordHash string `json:"admin_password_hash"`
}

type Countdown struct {
	Target        string        `json:"target"`         // RFC3339
	OffsetMinutes int           `json:"offset_minutes"` // поправка, прибавляется к target
	TickInterval  time.Duration `json:"tick_interval"`
	Heading       string        `json:"heading"`
	FinishedText  string        `json:"finished_text"`
	AssetsDir     string        `json:"assets_dir"`
	SoundFile     string        `json:"sound_file"`
	AnimationFile string        `json:"animation_file"`
}

// TargetInstant - момент окончания отсчета с учетом поправки.
func (c *Countdown) TargetInstant() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, c.Target)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse countdown.target: %w", err)
	}

	return t.Add(time.Duration(c.OffsetMinutes) * time.Minute), nil
}

type Guestbook struct {
	StorageKey  string  `json:"storage_key"`
	PreviewSize int     `json:"preview_size"`
	AlertText   string  `json:"alert_text"`
	Limiter     Limiter `json:"limiter"`
}

type Limiter struct {
	Requests int           `json:"requests"`
	Per      time.Duration `json:"per"`
}

const (
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

type Storage struct {
	Driver   string    `json:"driver"`
	FilePath string    `json:"file_path"`
	Redis    *Redis    `json:"redis,omitempty"`
	Postgres *Postgres `json:"postgres,omitempty"`
}

type Redis struct {
	Address      string        `json:"address"`
	Port         int           `json:"port"`
	Password     string        `json:"password"`
	Database     int           `json:"database"`
	Prefix       string        `json:"prefix"`
	DialTimeout  time.Duration `json:"dial_timeout"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
}

type Postgres struct {
	DSN string `json:"dsn"`
}
