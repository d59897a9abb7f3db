// Package palette turns an iteration-count grid into RGBA pixels: a named
// colormap plus power-law (gamma) normalization, matching the look of the
// renderer this explorer derives from.
package palette

import (
	"image/color"
	"math"

	"github.com/iburimskiy/mandelbrot-explorer/internal/mandel"
)

// Default is the colormap used when the configured name is unknown.
const Default = "hot"

// Palette maps a normalized intensity in [0, 1] to a color.
type Palette func(t float64) color.RGBA

// ByName resolves a colormap by its configuration name. Unknown names fall
// back to the "hot" map.
func ByName(name string) Palette {
	switch name {
	case "hot":
		return Hot
	case "gray":
		return Gray
	case "hsv":
		return HSV
	default:
		return Hot
	}
}

// Hot ramps black -> red -> yellow -> white, the classic "hot" colormap.
// The channel breakpoints are the matplotlib ones.
func Hot(t float64) color.RGBA {
	t = clamp01(t)
	var r, g, b float64
	switch {
	case t < 0.365079:
		r = t / 0.365079
	case t < 0.746032:
		r = 1
		g = (t - 0.365079) / (0.746032 - 0.365079)
	default:
		r = 1
		g = 1
		b = (t - 0.746032) / (1 - 0.746032)
	}
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 0xff}
}

// Gray is the linear grayscale map.
func Gray(t float64) color.RGBA {
	v := channel(clamp01(t))
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// HSV walks the full hue circle at full saturation and value.
func HSV(t float64) color.RGBA {
	r, g, b := hsvToRgb(clamp01(t)*360, 1, 1)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Normalize maps a count onto [0, 1] with power-law normalization
// (matplotlib's PowerNorm): (n/max)^gamma. A non-positive max yields 0.
func Normalize(n, max int, gamma float64) float64 {
	if max <= 0 || n <= 0 {
		return 0
	}
	return math.Pow(float64(n)/float64(max), gamma)
}

// Render fills dst with RGBA pixels for the grid, 4 bytes per pixel, rows
// top to bottom with the y axis flipped so Ymin ends up at the bottom of the
// image (the origin-lower orientation the explorer displays in). dst is
// reused when large enough, otherwise reallocated; the possibly grown buffer
// is returned.
//
// Counts are normalized against the grid's own maximum, so each pass uses
// the full palette range. Bounded cells carry count 0 and land on the
// palette floor.
func Render(g *mandel.Grid, pal Palette, gamma float64, dst []byte) []byte {
	need := g.Width * g.Height * 4
	if cap(dst) < need {
		dst = make([]byte, need)
	}
	dst = dst[:need]

	max := g.Max()
	for j := 0; j < g.Height; j++ {
		base := (g.Height - 1 - j) * g.Width * 4
		for i := 0; i < g.Width; i++ {
			c := pal(Normalize(g.At(i, j), max, gamma))
			p := base + i*4
			dst[p] = c.R
			dst[p+1] = c.G
			dst[p+2] = c.B
			dst[p+3] = c.A
		}
	}
	return dst
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func channel(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}
