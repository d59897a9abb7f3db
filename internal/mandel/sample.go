package mandel

import (
	"runtime"
	"sync"
)

// Grid holds the iteration counts of one sample pass. At(i, j) addresses the
// i-th sample along the x axis and the j-th along the y axis, so j = 0 is the
// row at Ymin. A grid is filled once by SampleRegion and read-only afterward.
type Grid struct {
	Width, Height int
	counts        []int
}

// NewGrid allocates a zeroed Width x Height grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		counts: make([]int, width*height),
	}
}

// At returns the iteration count at x index i, y index j.
func (g *Grid) At(i, j int) int { return g.counts[j*g.Width+i] }

// Max returns the largest count in the grid, 0 for an empty grid.
func (g *Grid) Max() int {
	max := 0
	for _, n := range g.counts {
		if n > max {
			max = n
		}
	}
	return max
}

// Linspace returns n samples evenly spaced over [lo, hi], inclusive of both
// endpoints. n must be at least 1; with n == 1 the single sample is lo.
func Linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}

// SampleRegion evaluates the escape-time kernel over region on a
// pixelW x pixelH grid and returns a freshly allocated Grid. The x axis is
// sampled over [Xmin, Xmax] and the y axis over [Ymin, Ymax], both endpoints
// included.
//
// Every cell is independent, so rows are spread across GOMAXPROCS worker
// goroutines; the grid is complete when SampleRegion returns. The region is
// not mutated and no state is shared with the caller.
func SampleRegion(region Region, pixelW, pixelH, maxIter int, horizon float64, seeding Seeding) *Grid {
	xs := Linspace(region.Xmin, region.Xmax, pixelW)
	ys := Linspace(region.Ymin, region.Ymax, pixelH)
	grid := NewGrid(pixelW, pixelH)

	workers := runtime.GOMAXPROCS(0)
	if workers > pixelH {
		workers = pixelH
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for j := start; j < pixelH; j += workers {
				y := ys[j]
				row := grid.counts[j*pixelW : (j+1)*pixelW]
				for i, x := range xs {
					row[i] = Escape(complex(x, y), maxIter, horizon, seeding)
				}
			}
		}(w)
	}
	wg.Wait()

	return grid
}
