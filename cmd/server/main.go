package main

import (
	"context"
	"log"

	"github.com/praxora/praxis-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application failed: %v", err)
	}
}
