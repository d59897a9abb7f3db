package viewport

import (
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/mandelbrot-explorer/internal/mandel"
)

func testConfig() Config {
	return Config{
		Bounds:      mandel.Region{Xmin: -2.0, Ymin: -1.25, Xmax: 0.5, Ymax: 1.25},
		PixelWidth:  16,
		PixelHeight: 16,
		MaxIter:     32,
		ZoomFactor:  0.7,
	}
}

func waitResult(t *testing.T, c *Controller) Result {
	t.Helper()
	select {
	case res := <-c.Results():
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("no sample result within 5s")
		return Result{}
	}
}

// finish waits for the in-flight pass and returns the controller to idle.
func finish(t *testing.T, c *Controller) Result {
	t.Helper()
	res := waitResult(t, c)
	c.Complete(res)
	return res
}

func regionNear(a, b mandel.Region, tol float64) bool {
	near := func(x, y float64) bool {
		d := math.Abs(x - y)
		return d <= tol || d <= tol*math.Max(math.Abs(x), math.Abs(y))
	}
	return near(a.Xmin, b.Xmin) && near(a.Ymin, b.Ymin) &&
		near(a.Xmax, b.Xmax) && near(a.Ymax, b.Ymax)
}

func TestToPlaneCorners(t *testing.T) {
	r := mandel.Region{Xmin: -2.0, Ymin: -1.25, Xmax: 0.5, Ymax: 1.25}
	cases := []struct {
		px, py float64
		x, y   float64
	}{
		{0, 0, -2.0, -1.25},
		{750, 750, 0.5, 1.25},
		{375, 375, -0.75, 0},
		{750, 0, 0.5, -1.25},
	}
	for _, tc := range cases {
		x, y := ToPlane(r, tc.px, tc.py, 750, 750)
		if math.Abs(x-tc.x) > 1e-12 || math.Abs(y-tc.y) > 1e-12 {
			t.Errorf("ToPlane(%v, %v) = (%v, %v), want (%v, %v)",
				tc.px, tc.py, x, y, tc.x, tc.y)
		}
	}
}

func TestNavigateToRecenters(t *testing.T) {
	cfg := testConfig()
	c := NewController(cfg)

	// Click on the pixel showing (Xmax, Ymax): same-size viewport centered
	// there.
	c.NavigateTo(float64(cfg.PixelWidth), float64(cfg.PixelHeight))
	finish(t, c)

	want := mandel.Region{Xmin: -0.75, Ymin: 0, Xmax: 1.75, Ymax: 2.5}
	if !regionNear(c.Current(), want, 1e-12) {
		t.Errorf("viewport = %+v, want %+v", c.Current(), want)
	}
	if c.Current().Width() != cfg.Bounds.Width() || c.Current().Height() != cfg.Bounds.Height() {
		t.Errorf("navigate changed the viewport size: %+v", c.Current())
	}
}

func TestNavigateToCenterIsStable(t *testing.T) {
	cfg := testConfig()
	c := NewController(cfg)

	c.NavigateTo(float64(cfg.PixelWidth)/2, float64(cfg.PixelHeight)/2)
	finish(t, c)

	if !regionNear(c.Current(), cfg.Bounds, 1e-12) {
		t.Errorf("clicking the center moved the viewport: %+v", c.Current())
	}
}

func TestZoomInConcreteScenario(t *testing.T) {
	c := NewController(testConfig())

	c.ZoomIn()
	finish(t, c)

	// Half extents 1.25 * 0.7 = 0.875 about center (-0.75, 0).
	want := mandel.Region{Xmin: -1.625, Ymin: -0.875, Xmax: 0.125, Ymax: 0.875}
	if !regionNear(c.Current(), want, 1e-12) {
		t.Errorf("viewport = %+v, want %+v", c.Current(), want)
	}
	if c.ZoomLevel() != 1 {
		t.Errorf("zoom level = %d, want 1", c.ZoomLevel())
	}
}

func TestZoomRoundTrip(t *testing.T) {
	cfg := testConfig()
	c := NewController(cfg)

	c.ZoomIn()
	finish(t, c)
	c.ZoomOut()
	finish(t, c)

	if !regionNear(c.Current(), cfg.Bounds, 1e-9) {
		t.Errorf("zoom in + out drifted: %+v, want %+v", c.Current(), cfg.Bounds)
	}
	if c.ZoomLevel() != 0 {
		t.Errorf("zoom level = %d, want 0", c.ZoomLevel())
	}
}

func TestResetAfterHistory(t *testing.T) {
	cfg := testConfig()
	c := NewController(cfg)

	c.ZoomIn()
	finish(t, c)
	c.NavigateTo(3, 11)
	finish(t, c)
	c.ZoomOut()
	finish(t, c)
	c.ZoomOut()
	finish(t, c)

	c.ResetView()
	finish(t, c)

	if c.Current() != cfg.Bounds {
		t.Errorf("reset viewport = %+v, want exactly %+v", c.Current(), cfg.Bounds)
	}
	if c.ZoomLevel() != 0 {
		t.Errorf("reset zoom level = %d, want 0", c.ZoomLevel())
	}
}

func TestViewportInvariantHolds(t *testing.T) {
	cfg := testConfig()
	c := NewController(cfg)

	ops := []func(){
		c.ZoomIn,
		c.ZoomIn,
		func() { c.NavigateTo(0, 0) },
		c.ZoomOut,
		func() { c.NavigateTo(15, 2) },
		c.ResetView,
		c.ZoomOut,
		func() { c.NavigateTo(8, 8) },
	}
	for i, op := range ops {
		op()
		finish(t, c)
		r := c.Current()
		if r.Xmin >= r.Xmax || r.Ymin >= r.Ymax {
			t.Fatalf("after op %d: degenerate viewport %+v", i, r)
		}
	}
}

func TestRequestsDroppedWhileProcessing(t *testing.T) {
	cfg := testConfig()
	c := NewController(cfg)

	c.ZoomIn()
	if !c.Processing() {
		t.Fatal("controller not processing after accepted request")
	}
	during := c.Current()
	level := c.ZoomLevel()

	// All of these arrive mid-pass and must change nothing.
	c.ZoomIn()
	c.ZoomOut()
	c.NavigateTo(1, 1)
	c.ResetView()

	if c.Current() != during {
		t.Errorf("dropped request changed viewport: %+v -> %+v", during, c.Current())
	}
	if c.ZoomLevel() != level {
		t.Errorf("dropped request changed zoom level: %d -> %d", level, c.ZoomLevel())
	}

	res := waitResult(t, c)
	c.Complete(res)
	if c.Processing() {
		t.Error("controller still processing after Complete")
	}

	// Exactly one pass ran: nothing else may arrive.
	select {
	case extra := <-c.Results():
		t.Errorf("unexpected second result: %+v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestResultCarriesGridAndTiming(t *testing.T) {
	cfg := testConfig()
	c := NewController(cfg)

	c.ResetView()
	res := finish(t, c)

	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Grid == nil || res.Grid.Width != cfg.PixelWidth || res.Grid.Height != cfg.PixelHeight {
		t.Fatalf("grid = %+v, want %dx%d", res.Grid, cfg.PixelWidth, cfg.PixelHeight)
	}
	if res.End.Before(res.Start) || res.Elapsed() < 0 {
		t.Errorf("bad timing: start %v end %v", res.Start, res.End)
	}
}

func TestWorkerPanicBecomesErrorResult(t *testing.T) {
	// A degenerate resolution slips past the controller (validation lives at
	// startup) and panics inside the sampler; the pass must still complete
	// with an error instead of vanishing.
	cfg := testConfig()
	cfg.PixelWidth = -4
	c := NewController(cfg)

	c.ResetView()
	res := waitResult(t, c)
	if res.Err == nil {
		t.Fatal("want error result from panicking pass")
	}
	if res.Grid != nil {
		t.Errorf("error result carries a grid: %+v", res.Grid)
	}

	c.Complete(res)
	if c.Processing() {
		t.Error("controller stuck processing after error result")
	}

	// The controller recovered: a fresh request runs normally.
	cfgOK := testConfig()
	c2 := NewController(cfgOK)
	c2.ResetView()
	if res := finish(t, c2); res.Err != nil {
		t.Errorf("follow-up pass failed: %v", res.Err)
	}
}
