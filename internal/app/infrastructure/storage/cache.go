package storage

import (
	"context"
	"countdown/internal/app/ports"
	"countdown/pkg/atomicfile"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/maypok86/otter/v2"
	"os"
	"path/filepath"
	"sync"
)

// FileKV держит значения в otter и после каждой записи целиком сбрасывает их в JSON-файл.
type FileKV struct {
	mu    sync.Mutex
	outer *otter.Cache[string, string]

	filePath string
	// ошибка чтения файла при открытии, отдается на Get до первой успешной записи
	loadErr error
}

func NewFileKV(filePath string) (*FileKV, error) {
	if filePath == "" {
		return nil, errors.New("no storage file path provided")
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	c := &FileKV{
		filePath: filePath,
		outer: otter.Must(&otter.Options[string, string]{
			InitialCapacity: 16,
		}),
	}

	if err := c.loadFromDisk(); err != nil && !errors.Is(err, os.ErrNotExist) {
		c.loadErr = err
	}

	return c, nil
}

func (c *FileKV) Get(_ context.Context, key string) (string, error) {
	if v, ok := c.outer.GetIfPresent(key); ok {
		return v, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loadErr != nil {
		return "", c.loadErr
	}
	return "", ports.ErrNotFound
}

func (c *FileKV) Set(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev, existed := c.outer.GetIfPresent(key)
	c.outer.Set(key, value)

	if err := c.flushLocked(); err != nil {
		// память и файл должны совпадать, поэтому откатываем
		if existed {
			c.outer.Set(key, prev)
		} else {
			c.outer.Invalidate(key)
		}
		return err
	}

	c.loadErr = nil
	return nil
}

func (c *FileKV) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return nil
}

func (c *FileKV) flushLocked() error {
	cacheData := make(map[string]string)
	for k, v := range c.outer.All() {
		cacheData[k] = v
	}

	data, err := json.MarshalIndent(cacheData, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal storage: %w", err)
	}

	return atomicfile.WriteFile(c.filePath, data, 0600)
}

func (c *FileKV) loadFromDisk() error {
	data, err := os.ReadFile(c.filePath)
	if err != nil {
		return err
	}

	var items map[string]string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("parse storage file: %w", err)
	}

	for k, v := range items {
		c.outer.Set(k, v)
	}

	return nil
}
