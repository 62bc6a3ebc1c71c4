package lime

import "image"

// Blend weights: most of the processed result, a fraction of the source to
// suppress over-processing artifacts. Tunable constants, not user parameters.
const (
	blendProcessed = 0.8
	blendOriginal  = 0.2
)

// Blend mixes the processed image with the original pixelwise and clamps to
// the 8-bit range. Both images must share dimensions.
func Blend(processed, original *image.RGBA) *image.RGBA {
	b := processed.Bounds()
	ob := original.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := processed.RGBAAt(b.Min.X+x, b.Min.Y+y)
			o := original.RGBAAt(ob.Min.X+x, ob.Min.Y+y)
			i := out.PixOffset(x, y)
			out.Pix[i+0] = mixChannel(p.R, o.R)
			out.Pix[i+1] = mixChannel(p.G, o.G)
			out.Pix[i+2] = mixChannel(p.B, o.B)
			out.Pix[i+3] = p.A
		}
	}
	return out
}

func mixChannel(p, o uint8) uint8 {
	v := blendProcessed*float64(p) + blendOriginal*float64(o) + 0.5
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
