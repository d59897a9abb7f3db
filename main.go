package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/mandelbrot-explorer/internal/config"
	"github.com/iburimskiy/mandelbrot-explorer/internal/game"
	"github.com/iburimskiy/mandelbrot-explorer/internal/i18n"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	cfg := config.Defaults()
	if err := run(cfg); err != nil {
		log.Printf("run: %v", err)
		// The window may never have opened, so surface the error in a
		// native dialog as well.
		_ = zenity.Error(err.Error(), zenity.Title(i18n.Get("APP.TITLE")))
		os.Exit(1)
	}
}

func run(cfg config.Settings) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log.Printf("starting: xmin=%v xmax=%v ymin=%v ymax=%v maxiter=%d dpi=%d cmap=%s gamma=%v zoomfactor=%v",
		cfg.XMin, cfg.XMax, cfg.YMin, cfg.YMax, cfg.MaxIter, cfg.DPI, cfg.Cmap, cfg.Gamma, cfg.ZoomFactor)

	ebiten.SetWindowSize(cfg.PixelWidth(), cfg.PixelHeight()+game.StatusBarHeight)
	ebiten.SetWindowTitle(i18n.Get("APP.TITLE"))

	if err := ebiten.RunGame(game.New(cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
