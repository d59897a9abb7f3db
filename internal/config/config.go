// Package config holds the startup configuration of the explorer. All
// values are fixed for the lifetime of the process.
package config

import "fmt"

// Settings mirrors the knobs of the original renderer: plane bounds, the
// figure size in display units times DPI gives the pixel resolution, and the
// display options are passed through to the rendering layer.
type Settings struct {
	// Initial and reset bounds of the viewport in plane coordinates.
	XMin, XMax float64
	YMin, YMax float64

	// Width and Height are the plane-rectangle size in display units;
	// multiplied by DPI they give the sample resolution in pixels.
	Width, Height float64
	DPI           int

	// MaxIter caps the escape-time iteration per point.
	MaxIter int

	// Cmap names the colormap, Gamma the power-law normalization exponent.
	Cmap  string
	Gamma float64

	// ZoomFactor is the fraction the viewport shrinks by per zoom-in step,
	// strictly between 0 and 1.
	ZoomFactor float64

	// ShowAxes overlays coordinate tick labels; ShowOrigAxes keeps the
	// labels pinned to the original bounds instead of the current viewport.
	// ShowOrigAxes only applies while ShowAxes is set.
	ShowAxes     bool
	ShowOrigAxes bool

	// Debug enables per-event logging.
	Debug bool
}

// Defaults returns the stock settings: the full set at 750x750 pixels.
func Defaults() Settings {
	return Settings{
		XMin:       -2.0,
		XMax:       0.5,
		YMin:       -1.25,
		YMax:       1.25,
		Width:      10,
		Height:     10,
		DPI:        75,
		MaxIter:    128,
		Cmap:       "hot",
		Gamma:      0.3,
		ZoomFactor: 0.7,
	}
}

// PixelWidth returns the horizontal sample resolution, dpi * width.
func (s Settings) PixelWidth() int { return int(float64(s.DPI) * s.Width) }

// PixelHeight returns the vertical sample resolution, dpi * height.
func (s Settings) PixelHeight() int { return int(float64(s.DPI) * s.Height) }

// Validate reports the first configuration error. A degenerate pixel grid or
// an out-of-range zoom factor is a startup error, never a per-pass one.
func (s Settings) Validate() error {
	if s.XMin >= s.XMax {
		return fmt.Errorf("config: xmin (%v) must be less than xmax (%v)", s.XMin, s.XMax)
	}
	if s.YMin >= s.YMax {
		return fmt.Errorf("config: ymin (%v) must be less than ymax (%v)", s.YMin, s.YMax)
	}
	if s.PixelWidth() <= 0 || s.PixelHeight() <= 0 {
		return fmt.Errorf("config: pixel resolution %dx%d must be positive (dpi=%d, width=%v, height=%v)",
			s.PixelWidth(), s.PixelHeight(), s.DPI, s.Width, s.Height)
	}
	if s.MaxIter < 1 {
		return fmt.Errorf("config: maxiter (%d) must be at least 1", s.MaxIter)
	}
	if s.Gamma <= 0 {
		return fmt.Errorf("config: gamma (%v) must be positive", s.Gamma)
	}
	if s.ZoomFactor <= 0 || s.ZoomFactor >= 1 {
		return fmt.Errorf("config: zoomfactor (%v) must be in (0, 1)", s.ZoomFactor)
	}
	return nil
}
