//go:build ebiten

package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Watrick117/Tribute-To-Conway/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	cfg, err := app.Parse(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	console := app.NewConsole(os.Stdout, !cfg.NoColor)
	session, err := app.NewSession(context.Background(), cfg, console)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		session.Simulator().RequestStop()
	}()

	ebiten.SetWindowTitle("Tribute to John Horton Conway's Game of Life")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	runErr := ebiten.RunGame(app.New(session, cfg.Scale, cfg.Rate))
	stop()
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Printf("window: %v", runErr)
	}

	if err := session.Close(context.Background()); err != nil {
		log.Fatal(err)
	}
}
