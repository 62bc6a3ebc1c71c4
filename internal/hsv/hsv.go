// Package hsv converts 8-bit RGB samples to and from hue/saturation/value.
package hsv

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// FromRGB8 converts an 8-bit RGB triple to HSV.
// Hue is in [0, 360), saturation and value in [0, 1].
func FromRGB8(r, g, b uint8) (h, s, v float64) {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	return c.Hsv()
}

// ToRGB8 converts an HSV triple back to 8-bit RGB.
func ToRGB8(h, s, v float64) (r, g, b uint8) {
	return colorful.Hsv(h, s, v).RGB255()
}

// Value returns the HSV value channel of an 8-bit RGB triple, in [0, 1].
// In HSV the value channel is the largest of the three components.
func Value(r, g, b uint8) float64 {
	m := r
	if g > m {
		m = g
	}
	if b > m {
		m = b
	}
	return float64(m) / 255.0
}
