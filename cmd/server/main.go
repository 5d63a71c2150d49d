// Command server runs the beerlog HTTP API.
//
// Configuration is read from a YAML file (CONFIG_PATH) with environment
// variable overrides. The process shuts down gracefully on SIGINT/SIGTERM.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/wojtowpj/beerlog-backend/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
