package persistence

import (
	"context"
	"countdown/internal/app/adapters/metrics"
	"countdown/internal/app/domain/guestbook"
	"countdown/internal/app/ports"
	"countdown/pkg/logger"
	"encoding/json"
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"time"
)

// Store хранит всю гостевую книгу одним JSON-массивом под одним ключом.
type Store struct {
	log logger.Logger
	kv  ports.KVPort
	key string
}

func New(log logger.Logger, kv ports.KVPort, key string) *Store {
	return &Store{
		log: log,
		kv:  kv,
		key: key,
	}
}

// Load возвращает пустой список, если ключа нет или чтение не удалось.
func (s *Store) Load(ctx context.Context) []guestbook.Message {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, ports.ErrNotFound) {
		s.log.Debug("No saved messages", "key", s.key)
		return []guestbook.Message{}
	}
	if err != nil {
		s.log.Error("Error loading messages", err, "key", s.key)
		metrics.StorageErrors.With(prometheus.Labels{"op": "load"}).Inc()
		return []guestbook.Message{}
	}

	list, err := Decode(raw)
	if err != nil {
		s.log.Error("Error decoding messages", err, "key", s.key)
		metrics.StorageErrors.With(prometheus.Labels{"op": "decode"}).Inc()
		return []guestbook.Message{}
	}

	s.log.Info("Messages loaded", "count", len(list))
	return list
}

// Save перезаписывает весь список. Ошибка только логируется, повторов нет.
func (s *Store) Save(ctx context.Context, list []guestbook.Message) {
	start := time.Now()
	defer func() {
		metrics.SaveDuration.Observe(float64(time.Since(start).Microseconds()) / 1000)
	}()

	raw, err := Encode(list)
	if err != nil {
		s.log.Error("Error encoding messages", err)
		metrics.StorageErrors.With(prometheus.Labels{"op": "encode"}).Inc()
		return
	}

	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		s.log.Error("Error saving messages", err, "key", s.key, "count", len(list))
		metrics.StorageErrors.With(prometheus.Labels{"op": "save"}).Inc()
		return
	}

	s.log.Debug("Messages saved", "count", len(list))
}

func Encode(list []guestbook.Message) (string, error) {
	if list == nil {
		list = []guestbook.Message{}
	}

	data, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func Decode(raw string) ([]guestbook.Message, error) {
	var list []guestbook.Message
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []guestbook.Message{}
	}
	return list, nil
}
