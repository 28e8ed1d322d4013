//go:build !ebiten

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Watrick117/Tribute-To-Conway/internal/app"
)

// Without the ebiten tag the run is headless: frames and video only.
func main() {
	log.SetFlags(0)
	cfg, err := app.Parse(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
