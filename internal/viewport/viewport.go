// Package viewport tracks the region of the complex plane currently on
// screen and turns navigation requests (recenter, zoom, reset) into
// asynchronous sample passes over that region.
//
// A Controller is owned by a single goroutine, the display loop. All
// navigation methods and Complete must be called from that goroutine; the
// background worker started by a request only ever touches its own snapshot
// of the inputs and reports back through the Results channel.
package viewport

import (
	"fmt"
	"log"
	"time"

	"github.com/iburimskiy/mandelbrot-explorer/internal/mandel"
)

// Config is the fixed part of a Controller, set once at construction.
type Config struct {
	// Bounds is the initial viewport, restored by ResetView.
	Bounds mandel.Region

	// PixelWidth and PixelHeight fix the resolution of every sample pass.
	PixelWidth, PixelHeight int

	MaxIter int

	// ZoomFactor is the fraction the viewport shrinks by per zoom-in step,
	// strictly between 0 and 1. Zooming out grows by its reciprocal.
	ZoomFactor float64

	// Horizon is the escape radius; 0 means mandel.DefaultHorizon.
	Horizon float64

	// Seeding picks the kernel's orbit start; the zero value is the
	// historical SeedC mode.
	Seeding mandel.Seeding
}

// Result is the outcome of one sample pass. Exactly one Result is delivered
// per dispatched pass; Grid is nil when Err is set.
type Result struct {
	Grid       *mandel.Grid
	Start, End time.Time
	Err        error
}

// Elapsed returns the wall time the pass took.
func (r Result) Elapsed() time.Duration { return r.End.Sub(r.Start) }

// Controller holds the mutable viewport state. The display goroutine is the
// single writer; see the package comment for the ownership rules.
type Controller struct {
	cfg           Config
	horizon       float64
	zoomFactorIn  float64
	zoomFactorOut float64

	current    mandel.Region
	zoomLevel  int
	processing bool

	results chan Result
}

// NewController returns an idle controller over cfg.Bounds. cfg is assumed
// validated (positive pixel dimensions, ZoomFactor in (0,1), Xmin < Xmax,
// Ymin < Ymax); see the config package.
func NewController(cfg Config) *Controller {
	horizon := cfg.Horizon
	if horizon == 0 {
		horizon = mandel.DefaultHorizon
	}
	return &Controller{
		cfg:           cfg,
		horizon:       horizon,
		zoomFactorIn:  cfg.ZoomFactor,
		zoomFactorOut: 1 / cfg.ZoomFactor,
		current:       cfg.Bounds,
		results:       make(chan Result, 1),
	}
}

// Current returns the viewport that the last accepted request selected.
func (c *Controller) Current() mandel.Region { return c.current }

// ZoomLevel returns the signed number of zoom steps from the original view.
// Informational only; it feeds no arithmetic.
func (c *Controller) ZoomLevel() int { return c.zoomLevel }

// Processing reports whether a sample pass is in flight.
func (c *Controller) Processing() bool { return c.processing }

// Results delivers one Result per dispatched pass. The receiver must pass
// each Result to Complete to return the controller to idle.
func (c *Controller) Results() <-chan Result { return c.results }

// ToPlane converts a screen pixel coordinate under the current viewport.
func (c *Controller) ToPlane(px, py float64) (x, y float64) {
	return ToPlane(c.current, px, py, c.cfg.PixelWidth, c.cfg.PixelHeight)
}

// ToPlane maps a pixel coordinate in a pixelW x pixelH screen rectangle onto
// r. py is measured upward from the row showing Ymin, i.e. the same
// orientation the grid is displayed in. The map is a plain linear rescale of
// both axes; it does not correct for differing aspect ratios.
func ToPlane(r mandel.Region, px, py float64, pixelW, pixelH int) (x, y float64) {
	x = px/float64(pixelW)*r.Width() + r.Xmin
	y = py/float64(pixelH)*r.Height() + r.Ymin
	return x, y
}

// NavigateTo recenters the viewport, keeping its size, on the plane point
// under the given screen pixel, and starts a sample pass. Ignored while a
// pass is in flight.
func (c *Controller) NavigateTo(px, py float64) {
	if !c.begin("navigate") {
		return
	}
	x, y := c.ToPlane(px, py)
	w, h := c.current.Width(), c.current.Height()
	xmin := x - w/2
	ymin := y - h/2
	c.current = mandel.Region{
		Xmin: xmin,
		Ymin: ymin,
		Xmax: xmin + w,
		Ymax: ymin + h,
	}
	c.dispatch()
}

// ResetView restores the original bounds and zoom level 0, then starts a
// sample pass. Ignored while a pass is in flight.
func (c *Controller) ResetView() {
	if !c.begin("reset") {
		return
	}
	c.current = c.cfg.Bounds
	c.zoomLevel = 0
	c.dispatch()
}

// ZoomIn shrinks the viewport around its center by the zoom factor and
// starts a sample pass. Ignored while a pass is in flight.
func (c *Controller) ZoomIn() {
	if !c.begin("zoom in") {
		return
	}
	c.scaleAboutCenter(c.zoomFactorIn)
	c.zoomLevel++
	c.dispatch()
}

// ZoomOut grows the viewport around its center by the reciprocal factor and
// starts a sample pass. Ignored while a pass is in flight.
func (c *Controller) ZoomOut() {
	if !c.begin("zoom out") {
		return
	}
	c.scaleAboutCenter(c.zoomFactorOut)
	c.zoomLevel--
	c.dispatch()
}

// Complete acknowledges a Result received from Results. It is the only point
// that clears the in-flight flag and must run on the owning goroutine.
func (c *Controller) Complete(res Result) {
	c.processing = false
	if res.Err != nil {
		log.Printf("sample pass failed: %v", res.Err)
		return
	}
	log.Printf("sampled %dx%d at zoom level %d in %.4f seconds",
		res.Grid.Width, res.Grid.Height, c.zoomLevel, res.Elapsed().Seconds())
}

func (c *Controller) begin(op string) bool {
	if c.processing {
		log.Printf("%s ignored: already processing", op)
		return false
	}
	c.processing = true
	return true
}

func (c *Controller) scaleAboutCenter(factor float64) {
	cx, cy := c.current.Center()
	hw := c.current.Width() / 2 * factor
	hh := c.current.Height() / 2 * factor
	c.current = mandel.Region{
		Xmin: cx - hw,
		Ymin: cy - hh,
		Xmax: cx + hw,
		Ymax: cy + hh,
	}
}

// dispatch starts the worker for the pass that begin already admitted. The
// worker owns its snapshot of the inputs; a panic inside the sampler is
// turned into an error Result rather than lost.
func (c *Controller) dispatch() {
	region := c.current
	pixelW, pixelH := c.cfg.PixelWidth, c.cfg.PixelHeight
	maxIter := c.cfg.MaxIter
	horizon := c.horizon
	seeding := c.cfg.Seeding

	go func() {
		res := Result{Start: time.Now()}
		defer func() {
			if r := recover(); r != nil {
				res.Grid = nil
				res.Err = fmt.Errorf("sample pass panicked: %v", r)
				res.End = time.Now()
			}
			c.results <- res
		}()
		res.Grid = mandel.SampleRegion(region, pixelW, pixelH, maxIter, horizon, seeding)
		res.End = time.Now()
	}()
}
