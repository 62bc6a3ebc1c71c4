package lime

import (
	"image"

	"github.com/tuhin92/Image-Enhancement/internal/hsv"
)

// AdjustSaturation rescales the saturation channel of every pixel by scale,
// leaving hue and value untouched. Scale 1.0 returns img untouched.
func AdjustSaturation(img *image.RGBA, scale float64) *image.RGBA {
	if scale == 1.0 {
		return img
	}

	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := img.RGBAAt(x, y)
			h, s, v := hsv.FromRGB8(p.R, p.G, p.B)
			s *= scale
			if s > 1 {
				s = 1
			}
			r, g, bl := hsv.ToRGB8(h, s, v)
			i := out.PixOffset(x-b.Min.X, y-b.Min.Y)
			out.Pix[i+0] = r
			out.Pix[i+1] = g
			out.Pix[i+2] = bl
			out.Pix[i+3] = p.A
		}
	}
	return out
}
