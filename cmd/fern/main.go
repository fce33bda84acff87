//go:build ebiten

package main

import (
	"errors"
	"os"

	"fernpond/internal/app"
	"fernpond/internal/logging"
	"fernpond/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(pflag.CommandLine)
	cfg.BindViewer(pflag.CommandLine)
	pflag.Parse()

	log := logging.Setup(cfg.LogLevel)

	params := cfg.Params()
	if err := params.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid fern parameters")
	}

	comp := scene.NewCompositor(scene.WithLogger(log), scene.WithWorkers(cfg.Workers))
	sc := scene.New(cfg.Scene(), comp)
	game := app.New(sc, cfg.Scale, cfg.HUDWidth, log)

	ebiten.SetWindowTitle("fernpond: " + sc.Name())
	ebiten.SetWindowSize(cfg.Width*cfg.Scale+max(cfg.HUDWidth, 0), cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("viewer stopped")
		os.Exit(1)
	}
}
