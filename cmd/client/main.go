package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/rizkyamal/nusaview/internal/client/cli"
	"github.com/rizkyamal/nusaview/internal/client/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
