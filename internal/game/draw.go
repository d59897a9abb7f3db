package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/mandelbrot-explorer/internal/i18n"
	"github.com/iburimskiy/mandelbrot-explorer/internal/mandel"
	"github.com/iburimskiy/mandelbrot-explorer/internal/viewport"
)

var (
	axisColor     = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	statusBgColor = color.RGBA{R: 20, G: 25, B: 35, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.fractal, nil)
	if g.cfg.ShowAxes {
		g.drawAxes(screen)
	}
	g.drawStatusBar(screen)
}

// drawAxes overlays tick marks and coordinate labels every 3*dpi pixels,
// labeled from the current viewport (or from the original bounds when
// ShowOrigAxes is set) through the same transform the navigation uses.
func (g *Game) drawAxes(screen *ebiten.Image) {
	region := g.ctrl.Current()
	if g.cfg.ShowOrigAxes {
		region = mandel.Region{Xmin: g.cfg.XMin, Ymin: g.cfg.YMin, Xmax: g.cfg.XMax, Ymax: g.cfg.YMax}
	}
	pw, ph := g.cfg.PixelWidth(), g.cfg.PixelHeight()
	step := 3 * g.cfg.DPI
	if step <= 0 {
		return
	}

	for px := 0; px < pw; px += step {
		x, _ := viewport.ToPlane(region, float64(px), 0, pw, ph)
		vector.StrokeLine(screen, float32(px), float32(ph-8), float32(px), float32(ph), 1, axisColor, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.4f", x), px+2, ph-22)
	}
	for py := 0; py < ph; py += step {
		// The image is displayed origin-lower, so screen row py shows
		// plane row ph-py.
		_, y := viewport.ToPlane(region, 0, float64(ph-py), pw, ph)
		vector.StrokeLine(screen, 0, float32(py), 8, float32(py), 1, axisColor, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.4f", y), 10, py+2)
	}
}

// drawStatusBar fills the strip below the canvas with the zoom level, the
// control help, and the last status message.
func (g *Game) drawStatusBar(screen *ebiten.Image) {
	pw, ph := g.cfg.PixelWidth(), g.cfg.PixelHeight()
	vector.DrawFilledRect(screen, 0, float32(ph), float32(pw), StatusBarHeight, statusBgColor, false)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(i18n.Get("APP.CURRZOOMLVL"), g.ctrl.ZoomLevel()), 12, ph+12)
	ebitenutil.DebugPrintAt(screen, i18n.Get("APP.HELP"), 12, ph+32)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(i18n.Get("APP.STATUS"), g.status), 12, ph+52)
}
