// Package mandel computes escape-time data for the Mandelbrot set: a
// per-point kernel and a sampler that fills an iteration-count grid over a
// rectangular region of the complex plane.
package mandel

// DefaultHorizon is the escape radius used when no explicit horizon is given.
const DefaultHorizon = 2.0

// Seeding selects the starting point of the orbit iterated by Escape.
type Seeding int

const (
	// SeedC starts the orbit at z0 = c and encodes bounded points as 0.
	// This matches the renderer this explorer derives from; under this
	// encoding a point that escapes at iteration 0 and a point that never
	// escapes are indistinguishable.
	SeedC Seeding = iota

	// SeedZero starts the orbit at z0 = 0 and returns maxIter for bounded
	// points (the textbook definition).
	SeedZero
)

// Escape returns the 0-indexed iteration at which the orbit of c under
// z <- z*z + c first satisfies |z| > horizon. If the orbit stays within the
// horizon for maxIter iterations, the return value depends on the seeding:
// 0 for SeedC, maxIter for SeedZero.
//
// The loop is the hot path of every sample pass and runs on scalar real
// pairs with no allocation.
func Escape(c complex128, maxIter int, horizon float64, seeding Seeding) int {
	h2 := horizon * horizon
	cr, ci := real(c), imag(c)
	zr, zi := cr, ci
	if seeding == SeedZero {
		zr, zi = 0, 0
	}
	for n := 0; n < maxIter; n++ {
		if zr*zr+zi*zi > h2 {
			return n
		}
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
	}
	if seeding == SeedZero {
		return maxIter
	}
	return 0
}

// EscapeDefault runs Escape with the default horizon and SeedC seeding.
func EscapeDefault(c complex128, maxIter int) int {
	return Escape(c, maxIter, DefaultHorizon, SeedC)
}
