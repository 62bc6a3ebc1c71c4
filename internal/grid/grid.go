// Package grid implements a single-channel float64 raster used to carry
// illumination maps through the enhancement pipeline.
package grid

import (
	"math"
)

// Grid is a dense height*width plane of float64 samples in row-major order.
type Grid struct {
	w, h   int
	values []float64
}

// New returns a zeroed Grid of the given dimensions.
func New(w, h int) *Grid {
	return &Grid{
		w:      w,
		h:      h,
		values: make([]float64, w*h),
	}
}

func (g *Grid) Dx() int { return g.w }
func (g *Grid) Dy() int { return g.h }

func (g *Grid) At(x, y int) float64     { return g.values[y*g.w+x] }
func (g *Grid) Set(x, y int, v float64) { g.values[y*g.w+x] = v }

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	out := New(g.w, g.h)
	copy(out.values, g.values)
	return out
}

// Clamp constrains every sample to [lo, hi] in place and returns g.
func (g *Grid) Clamp(lo, hi float64) *Grid {
	for i, v := range g.values {
		if v < lo {
			g.values[i] = lo
		} else if v > hi {
			g.values[i] = hi
		}
	}
	return g
}

// MinMax returns the smallest and largest sample values.
func (g *Grid) MinMax() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range g.values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// GaussianBlur5 applies a separable 5-tap Gaussian with the given sigma,
// replicating edge samples at the borders. Sigma <= 0 returns a plain copy.
func (g *Grid) GaussianBlur5(sigma float64) *Grid {
	if sigma <= 0 {
		return g.Clone()
	}
	k := gaussKernel5(sigma)

	tmp := New(g.w, g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			var acc float64
			for t := -2; t <= 2; t++ {
				acc += k[t+2] * g.At(clampIdx(x+t, g.w), y)
			}
			tmp.Set(x, y, acc)
		}
	}

	out := New(g.w, g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			var acc float64
			for t := -2; t <= 2; t++ {
				acc += k[t+2] * tmp.At(x, clampIdx(y+t, g.h))
			}
			out.Set(x, y, acc)
		}
	}
	return out
}

// BoxMean returns the mean over the (2r+1)^2 window centered on each sample,
// with windows clipped at the borders and divided by their actual area.
// Computed with a summed-area table so the cost is independent of r.
func (g *Grid) BoxMean(r int) *Grid {
	if r <= 0 {
		return g.Clone()
	}
	w, h := g.w, g.h

	// Summed-area table with a one-sample apron of zeros.
	sat := make([]float64, (w+1)*(h+1))
	for y := 0; y < h; y++ {
		rowSum := 0.0
		for x := 0; x < w; x++ {
			rowSum += g.At(x, y)
			sat[(y+1)*(w+1)+(x+1)] = sat[y*(w+1)+(x+1)] + rowSum
		}
	}

	out := New(w, h)
	for y := 0; y < h; y++ {
		y0, y1 := max(0, y-r), min(h-1, y+r)
		for x := 0; x < w; x++ {
			x0, x1 := max(0, x-r), min(w-1, x+r)
			sum := sat[(y1+1)*(w+1)+(x1+1)] -
				sat[y0*(w+1)+(x1+1)] -
				sat[(y1+1)*(w+1)+x0] +
				sat[y0*(w+1)+x0]
			out.Set(x, y, sum/float64((y1-y0+1)*(x1-x0+1)))
		}
	}
	return out
}

// MulGrid returns the elementwise product of g and o.
func (g *Grid) MulGrid(o *Grid) *Grid {
	out := New(g.w, g.h)
	for i := range g.values {
		out.values[i] = g.values[i] * o.values[i]
	}
	return out
}

func gaussKernel5(sigma float64) [5]float64 {
	var k [5]float64
	sum := 0.0
	for t := -2; t <= 2; t++ {
		v := math.Exp(-float64(t*t) / (2 * sigma * sigma))
		k[t+2] = v
		sum += v
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
