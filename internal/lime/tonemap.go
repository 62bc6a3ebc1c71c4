package lime

import (
	"context"
	"image"
	"math"
	"runtime"

	"github.com/disintegration/gift"
	"golang.org/x/sync/errgroup"

	"github.com/tuhin92/Image-Enhancement/internal/grid"
)

// sharpenKernel is the fixed 3x3 unsharp-style kernel applied after the
// illumination division to counter its softening.
var sharpenKernel = []float32{
	-1, -1, -1,
	-1, 9, -1,
	-1, -1, -1,
}

// ToneMap divides every channel by the refined illumination value, applies
// the gamma curve, rescales to 8-bit, and sharpens. Rows are striped across
// workers; each worker writes disjoint rows, so the result is identical to a
// sequential pass.
func ToneMap(ctx context.Context, src *image.RGBA, illum *grid.Grid, gamma float64) (*image.RGBA, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))

	workers := runtime.GOMAXPROCS(0)
	if workers > h {
		workers = h
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (h + workers - 1) / workers

	g, _ := errgroup.WithContext(ctx)
	for y0 := 0; y0 < h; y0 += chunk {
		y0, y1 := y0, min(y0+chunk, h)
		g.Go(func() error {
			mapRows(src, illum, out, gamma, y0, y1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sharpen(out), nil
}

func mapRows(src *image.RGBA, illum *grid.Grid, out *image.RGBA, gamma float64, y0, y1 int) {
	b := src.Bounds()
	for y := y0; y < y1; y++ {
		for x := 0; x < b.Dx(); x++ {
			p := src.RGBAAt(b.Min.X+x, b.Min.Y+y)
			l := illum.At(x, y)
			i := out.PixOffset(x, y)
			out.Pix[i+0] = mapChannel(p.R, l, gamma)
			out.Pix[i+1] = mapChannel(p.G, l, gamma)
			out.Pix[i+2] = mapChannel(p.B, l, gamma)
			out.Pix[i+3] = p.A
		}
	}
}

func mapChannel(v uint8, illum, gamma float64) uint8 {
	e := math.Pow(float64(v)/255.0/illum, gamma)*255.0 + 0.5
	if e >= 255 {
		return 255
	}
	if e < 0 {
		return 0
	}
	return uint8(e)
}

func sharpen(img *image.RGBA) *image.RGBA {
	g := gift.New(gift.Convolution(sharpenKernel, false, false, false, 0))
	dst := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}
