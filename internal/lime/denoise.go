package lime

import (
	"image"

	"github.com/mdouchement/bilateral"
)

// Denoise suppresses the noise amplified by the illumination division.
// Strength <= 0 returns img untouched.
//
// This is the fast variant of the stage: a bilateral filter with its spatial
// extent capped at 9, trading some fidelity against a non-local-means
// denoiser for a much lower latency.
func Denoise(img *image.RGBA, strength int) *image.RGBA {
	if strength <= 0 {
		return img
	}

	space := float64(min(strength, 9))
	rng := float64(2*strength) / 255.0

	fb := bilateral.New(img, space, rng)
	fb.Execute()
	return toRGBA(fb.ResultImage())
}
