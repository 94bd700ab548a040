package main

import (
	"countdown/internal/pkg/app"
	"log"
)

func main() {
	if err := app.New(); err != nil {
		log.Fatal(err)
	}
}
