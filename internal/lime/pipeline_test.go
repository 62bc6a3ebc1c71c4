package lime

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

// deterministicConfig disables the two optional stages so output bytes are a
// pure function of (image, config).
func deterministicConfig() Config {
	cfg := DefaultConfig()
	cfg.Gamma = 1.0
	cfg.Sigma = 0
	cfg.DenoiseStrength = 0
	cfg.SaturationScale = 1.0
	return cfg
}

func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x + y) * 127 / (w + h)),
				A: 255,
			})
		}
	}
	return img
}

func TestEnhance_Deterministic(t *testing.T) {
	img := gradientImage(40, 30)
	cfg := deterministicConfig()

	a, err := Enhance(context.Background(), img, cfg)
	require.NoError(t, err)
	b, err := Enhance(context.Background(), img, cfg)
	require.NoError(t, err)

	require.True(t, bytes.Equal(a.Pix, b.Pix), "repeated invocation must be byte-identical")
}

func TestEnhance_PreservesDimensions(t *testing.T) {
	img := gradientImage(37, 23)

	out, err := Enhance(context.Background(), img, deterministicConfig())
	require.NoError(t, err)
	require.Equal(t, 37, out.Bounds().Dx())
	require.Equal(t, 23, out.Bounds().Dy())
}

// A uniform mid-gray image has a constant illumination map, so the division
// lifts every channel to the maximum uniformly and the blend pulls it back
// toward the source by the fixed weight. The point is uniformity: no spatial
// structure may be invented.
func TestEnhance_UniformMidGray(t *testing.T) {
	img := uniformImage(64, 64, color.RGBA{R: 128, G: 128, B: 128, A: 255})

	out, err := Enhance(context.Background(), img, deterministicConfig())
	require.NoError(t, err)

	want := mixChannel(255, 128)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			p := out.RGBAAt(x, y)
			require.Equal(t, want, p.R, "pixel (%d,%d)", x, y)
			require.Equal(t, want, p.G, "pixel (%d,%d)", x, y)
			require.Equal(t, want, p.B, "pixel (%d,%d)", x, y)
		}
	}
}

// An all-black image clamps the illumination map to 1/max_gain everywhere;
// zero divided by anything stays zero, so the output is still black and in
// particular never saturates to white.
func TestEnhance_AllBlack(t *testing.T) {
	img := uniformImage(32, 32, color.RGBA{A: 255})

	out, err := Enhance(context.Background(), img, deterministicConfig())
	require.NoError(t, err)

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			p := out.RGBAAt(x, y)
			require.Equal(t, uint8(0), p.R, "pixel (%d,%d)", x, y)
			require.Equal(t, uint8(0), p.G, "pixel (%d,%d)", x, y)
			require.Equal(t, uint8(0), p.B, "pixel (%d,%d)", x, y)
		}
	}
}

// A uniformly dim image is brightened by roughly max_gain before the blend.
func TestEnhance_UniformDimGain(t *testing.T) {
	img := uniformImage(32, 32, color.RGBA{R: 10, G: 10, B: 10, A: 255})
	cfg := deterministicConfig()
	cfg.MaxGain = 5

	out, err := Enhance(context.Background(), img, cfg)
	require.NoError(t, err)

	// Tone map lifts 10 to ~10*max_gain = 50, blend gives ~0.8*50 + 0.2*10.
	p := out.RGBAAt(16, 16)
	require.InDelta(t, 42, float64(p.R), 2)
	require.InDelta(t, 42, float64(p.G), 2)
	require.InDelta(t, 42, float64(p.B), 2)
}

func TestEnhance_InvalidGamma(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gamma = 0

	_, err := Enhance(context.Background(), gradientImage(8, 8), cfg)
	var perr *InvalidParameterError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "gamma", perr.Name)
}

func TestEnhance_UnknownMethod(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Method = "clahe"

	_, err := Enhance(context.Background(), gradientImage(8, 8), cfg)
	var perr *InvalidParameterError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "method", perr.Name)
}

func TestEnhance_NilImage(t *testing.T) {
	_, err := Enhance(context.Background(), nil, DefaultConfig())
	require.ErrorIs(t, err, ErrDecode)
}

func TestEnhance_FallbackBranchStillWorks(t *testing.T) {
	orig := guidedSupported
	guidedSupported = func() bool { return false }
	defer func() { guidedSupported = orig }()

	out, err := Enhance(context.Background(), gradientImage(24, 24), deterministicConfig())
	require.NoError(t, err)
	require.Equal(t, 24, out.Bounds().Dx())
	require.Equal(t, 24, out.Bounds().Dy())
}

func TestConfigValidate_Ranges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"sigma", func(c *Config) { c.Sigma = -1 }},
		{"radius", func(c *Config) { c.Radius = 0 }},
		{"eps", func(c *Config) { c.Eps = 0 }},
		{"max_gain", func(c *Config) { c.MaxGain = 1 }},
		{"denoise_strength", func(c *Config) { c.DenoiseStrength = -1 }},
		{"saturation_scale", func(c *Config) { c.SaturationScale = -0.5 }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		err := cfg.Validate()
		var perr *InvalidParameterError
		require.ErrorAs(t, err, &perr, tc.name)
		require.Equal(t, tc.name, perr.Name)
	}

	require.NoError(t, DefaultConfig().Validate())
}
