package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fpl-data-collector/cmd/fpldata/commands"
)

func main() {
	if os.Getenv("SKIP_RUN") == "1" {
		return
	}

	// Optional .env for local runs; the scheduled runner sets real env vars.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	commands.ExecuteContext(ctx)
}
