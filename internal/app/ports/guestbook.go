package ports

import (
	"context"
	"countdown/internal/app/domain/guestbook"
)

// GuestbookStorePort не возвращает ошибок: сбои чтения/записи логируются внутри.
type GuestbookStorePort interface {
	Load(ctx context.Context) []guestbook.Message
	Save(ctx context.Context, list []guestbook.Message)
}
