package mandel

// Region is a rectangle in the complex plane: x is the real axis, y the
// imaginary one. Valid regions have Xmin < Xmax and Ymin < Ymax.
type Region struct {
	Xmin, Ymin float64
	Xmax, Ymax float64
}

func (r Region) Width() float64  { return r.Xmax - r.Xmin }
func (r Region) Height() float64 { return r.Ymax - r.Ymin }

// Center returns the midpoint of the region.
func (r Region) Center() (x, y float64) {
	return r.Xmin + r.Width()/2, r.Ymin + r.Height()/2
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// FullSet covers the whole set with a bit of margin; the set is
	// entirely contained in -2.5 <= x <= 0.5, -1.25 <= y <= 1.25.
	FullSet = Region{
		Xmin: -2.0,
		Xmax: 0.5,
		Ymin: -1.25,
		Ymax: 1.25,
	}

	// SeahorseValley – dense filaments and repeating seahorse curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// ElephantValley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// SpiralMinibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// TripleSpiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}
)
