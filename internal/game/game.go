// Package game is the ebiten front end of the explorer: it owns the
// viewport controller, translates mouse and key events into navigation
// requests, and renders each completed sample pass through the palette.
package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/mandelbrot-explorer/internal/config"
	"github.com/iburimskiy/mandelbrot-explorer/internal/i18n"
	"github.com/iburimskiy/mandelbrot-explorer/internal/mandel"
	"github.com/iburimskiy/mandelbrot-explorer/internal/palette"
	"github.com/iburimskiy/mandelbrot-explorer/internal/viewport"
)

// StatusBarHeight is the height in pixels of the text area below the canvas.
const StatusBarHeight = 100

// Game implements ebiten.Game. Its Update method runs on the one goroutine
// that is allowed to touch the controller.
type Game struct {
	cfg  config.Settings
	ctrl *viewport.Controller
	pal  palette.Palette

	fractal *ebiten.Image
	pix     []byte

	status string
}

// New builds the game around a validated configuration and dispatches the
// initial sample pass.
func New(cfg config.Settings) *Game {
	ctrl := viewport.NewController(viewport.Config{
		Bounds:      mandel.Region{Xmin: cfg.XMin, Ymin: cfg.YMin, Xmax: cfg.XMax, Ymax: cfg.YMax},
		PixelWidth:  cfg.PixelWidth(),
		PixelHeight: cfg.PixelHeight(),
		MaxIter:     cfg.MaxIter,
		ZoomFactor:  cfg.ZoomFactor,
	})
	g := &Game{
		cfg:     cfg,
		ctrl:    ctrl,
		pal:     palette.ByName(cfg.Cmap),
		fractal: ebiten.NewImage(cfg.PixelWidth(), cfg.PixelHeight()),
		status:  i18n.Get("STATUS.PROCESSING"),
	}
	ctrl.ResetView()
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) || inpututil.IsKeyJustReleased(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.handleNavigation()
	g.pollResult()
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.PixelWidth(), g.cfg.PixelHeight() + StatusBarHeight
}

func (g *Game) handleNavigation() {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if g.insideCanvas(mx, my) {
			g.debugf("mouse 1 released at %d,%d", mx, my)
			// Screen rows count downward; the plane transform counts
			// upward from the Ymin row.
			g.request(func() { g.ctrl.NavigateTo(float64(mx), float64(g.cfg.PixelHeight()-my)) })
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.debugf("mouse 3 released")
		g.request(g.ctrl.ResetView)
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		if dy > 0 {
			g.debugf("mouse scrolled up")
			g.request(g.ctrl.ZoomOut)
		} else {
			g.debugf("mouse scrolled down")
			g.request(g.ctrl.ZoomIn)
		}
	}

	if inpututil.IsKeyJustReleased(ebiten.KeyEqual) || inpututil.IsKeyJustReleased(ebiten.KeyKPAdd) {
		g.request(g.ctrl.ZoomIn)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyMinus) || inpututil.IsKeyJustReleased(ebiten.KeyKPSubtract) {
		g.request(g.ctrl.ZoomOut)
	}
}

// request forwards a navigation call and flips the status line to
// "processing" when the controller accepted it. Rejected requests (a pass
// already in flight) leave the status untouched.
func (g *Game) request(op func()) {
	wasProcessing := g.ctrl.Processing()
	op()
	if !wasProcessing && g.ctrl.Processing() {
		g.status = i18n.Get("STATUS.PROCESSING")
	}
}

// pollResult drains at most one completion per frame, keeping all controller
// mutation on the update goroutine.
func (g *Game) pollResult() {
	select {
	case res := <-g.ctrl.Results():
		g.ctrl.Complete(res)
		if res.Err != nil {
			g.status = fmt.Sprintf(i18n.Get("STATUS.FAILED"), res.Err)
			return
		}
		g.pix = palette.Render(res.Grid, g.pal, g.cfg.Gamma, g.pix)
		g.fractal.WritePixels(g.pix)
		g.status = fmt.Sprintf(i18n.Get("STATUS.PROCESSING_DONE"), res.Elapsed().Seconds())
	default:
	}
}

func (g *Game) insideCanvas(x, y int) bool {
	return x >= 0 && x < g.cfg.PixelWidth() && y >= 0 && y < g.cfg.PixelHeight()
}

func (g *Game) debugf(format string, args ...any) {
	if g.cfg.Debug {
		log.Printf(format, args...)
	}
}
