package ports

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// KVPort - локальное key-value хранилище строк.
type KVPort interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
