package lime

import (
	"image"

	"github.com/tuhin92/Image-Enhancement/internal/grid"
	"github.com/tuhin92/Image-Enhancement/internal/hsv"
)

// Illumination estimates reach at most this low before clamping, keeping the
// later division away from near-zero divisors.
const (
	illumFloor = 0.1
	illumCeil  = 1.0
)

// EstimateIllumination derives a single-channel brightness map from src using
// the given method, smooths it with a 5-tap Gaussian when sigma > 0, and
// clamps the result to [0.1, 1.0].
func EstimateIllumination(src *image.RGBA, method Method, sigma float64) (*grid.Grid, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	m := grid.New(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := src.RGBAAt(b.Min.X+x, b.Min.Y+y)
			var v float64
			switch method {
			case MethodMaxRGB:
				v = float64(max(p.R, max(p.G, p.B))) / 255.0
			case MethodLuminosity:
				v = hsv.Value(p.R, p.G, p.B)
			case MethodGray:
				v = (0.299*float64(p.R) + 0.587*float64(p.G) + 0.114*float64(p.B)) / 255.0
			default:
				return nil, &InvalidParameterError{
					Name:   "method",
					Value:  string(method),
					Reason: "unknown illumination estimation method",
				}
			}
			m.Set(x, y, v)
		}
	}

	if sigma > 0 {
		m = m.GaussianBlur5(sigma)
	}
	return m.Clamp(illumFloor, illumCeil), nil
}
