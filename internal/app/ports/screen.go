package ports

import (
	"context"
	"countdown/internal/app/domain/guestbook"
	"countdown/internal/app/domain/screen"
)

type ScreenPort interface {
	Snapshot() screen.State
	Submit(ctx context.Context, name, message string) (guestbook.Message, screen.State, error)
	Toggle(ctx context.Context) (screen.State, error)
}
