package main

import (
	"context"
	"countdown/internal/app/adapters/persistence"
	"countdown/internal/app/infrastructure/config"
	"countdown/internal/app/infrastructure/storage"
	"countdown/pkg/logger"
	"encoding/json"
	"log"
	"os"
)

// Печатает сохраненную гостевую книгу в stdout.
func main() {
	manager, err := config.New("config.json")
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	cfg := manager.Get()

	ctx := context.Background()
	kv, err := storage.Open(ctx, &cfg.Storage)
	if err != nil {
		log.Fatal("Error opening storage: ", err)
	}
	defer kv.Close()

	list := persistence.New(logger.NewWriter(os.Stderr), kv, cfg.Guestbook.StorageKey).Load(ctx)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		log.Fatal("Error encoding messages: ", err)
	}
}
