//go:build ebiten

package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"porestate/internal/app"
	"porestate/internal/config"
	"porestate/internal/observability"
	_ "porestate/internal/props"
	"porestate/internal/simcase"
)

func main() {
	configPath := flag.String("config", "", "TOML case file (defaults when empty)")
	scale := flag.Int("scale", 8, "pixel scale multiplier")
	flag.Parse()

	log := observability.InitLogger("stateview", false)

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load case")
		}
		cfg = loaded
	}
	c, err := simcase.Build(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build case")
	}
	if err := app.CheckViewable(c.Grid); err != nil {
		log.Fatal().Err(err).Msg("build case")
	}
	c.Seed()

	game := app.New(c.State, c.Init, c.Grid, c.Model, c.Cells(), *scale, log)

	ebiten.SetWindowTitle("stateview — " + c.Model.Name())
	ebiten.SetWindowSize(c.Grid.W*(*scale), c.Grid.H*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("viewer stopped")
	}
}
