package main

import (
	"countdown/internal/app/infrastructure/config"
	"fmt"
	"golang.org/x/crypto/bcrypt"
	"log"
	"os"
)

// hashpass <password> - записывает bcrypt-хэш пароля администратора в config.json.
func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: hashpass <password>")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error hashing password: ", err)
	}

	manager, err := config.New("config.json")
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	if err := manager.Update(func(cfg *config.Config) {
		cfg.App.AdminPasswordHash = string(hash)
	}); err != nil {
		log.Fatal("Error saving config: ", err)
	}

	fmt.Println("admin password updated")
}
