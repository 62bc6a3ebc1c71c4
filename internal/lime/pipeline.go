// Package lime implements a low-light image enhancement pipeline: it
// estimates a spatially-varying illumination field, refines it with an
// edge-preserving filter, inverts it with a gamma tone curve, and finishes
// with optional denoising, saturation correction, and a blend against the
// source image.
package lime

import (
	"context"
	"fmt"
	"image"
	"image/draw"
)

// Enhance runs the full pipeline over src. It is a pure function of
// (src, cfg): repeated invocation with the same inputs yields identical
// output. Configuration is validated before any stage runs, and any stage
// fault is converted into a single error with no partial output.
func Enhance(ctx context.Context, src image.Image, cfg Config) (out *image.RGBA, err error) {
	if src == nil {
		return nil, ErrDecode
	}
	if verr := cfg.Validate(); verr != nil {
		return nil, verr
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = &StageFaultError{Stage: "pipeline", Cause: fmt.Errorf("%v", r)}
		}
	}()

	orig := toRGBA(src)

	illum, err := EstimateIllumination(orig, cfg.Method, cfg.Sigma)
	if err != nil {
		return nil, err
	}
	illum.Clamp(1/cfg.MaxGain, 1.0)

	// Both filter branches are re-clamped identically so downstream gain is
	// bounded the same way regardless of which one ran.
	refined := NewStructureFilter(cfg).Refine(illum).Clamp(1/cfg.MaxGain, 1.0)

	enhanced, err := ToneMap(ctx, orig, refined, cfg.Gamma)
	if err != nil {
		return nil, &StageFaultError{Stage: "tonemap", Cause: err}
	}

	enhanced = Denoise(enhanced, cfg.DenoiseStrength)
	enhanced = AdjustSaturation(enhanced, cfg.SaturationScale)

	return Blend(enhanced, orig), nil
}

// toRGBA normalizes any decoded image to a zero-origin RGBA raster so the
// whole pipeline runs on one channel convention.
func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	return out
}
