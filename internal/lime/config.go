package lime

import "fmt"

// Method selects how the illumination map is estimated from the source image.
type Method string

const (
	// MethodMaxRGB takes the per-pixel maximum over the three color channels.
	MethodMaxRGB Method = "max_rgb"
	// MethodLuminosity takes the value channel of the HSV representation.
	MethodLuminosity Method = "luminosity"
	// MethodGray takes the standard luma conversion.
	MethodGray Method = "gray"
)

// Config is the immutable parameter bundle threaded through the pipeline.
type Config struct {
	Method Method

	// Gamma is the tone curve exponent applied after illumination inversion.
	Gamma float64

	// Sigma is the Gaussian pre-smoothing strength for the illumination
	// estimate. Zero disables the blur.
	Sigma float64

	// Radius and Eps parameterize the guided illumination refinement.
	Radius int
	Eps    float64

	// MaxGain caps the brightening factor for any pixel by bounding the
	// illumination map below at 1/MaxGain.
	MaxGain float64

	// DenoiseStrength controls the post-enhancement denoiser. Zero disables it.
	DenoiseStrength int

	// SaturationScale rescales chroma after enhancement. 1.0 is a no-op.
	SaturationScale float64
}

// DefaultConfig returns the parameter set the CLI ships with.
func DefaultConfig() Config {
	return Config{
		Method:          MethodMaxRGB,
		Gamma:           0.85,
		Sigma:           3,
		Radius:          15,
		Eps:             1e-3,
		MaxGain:         5,
		DenoiseStrength: 10,
		SaturationScale: 1,
	}
}

// Validate reports the first invalid parameter, if any.
func (c Config) Validate() error {
	switch c.Method {
	case MethodMaxRGB, MethodLuminosity, MethodGray:
	default:
		return &InvalidParameterError{
			Name:   "method",
			Value:  string(c.Method),
			Reason: fmt.Sprintf("must be one of %q, %q, %q", MethodMaxRGB, MethodLuminosity, MethodGray),
		}
	}
	if c.Gamma <= 0 {
		return &InvalidParameterError{Name: "gamma", Value: fmt.Sprint(c.Gamma), Reason: "must be > 0"}
	}
	if c.Sigma < 0 {
		return &InvalidParameterError{Name: "sigma", Value: fmt.Sprint(c.Sigma), Reason: "must be >= 0"}
	}
	if c.Radius <= 0 {
		return &InvalidParameterError{Name: "radius", Value: fmt.Sprint(c.Radius), Reason: "must be > 0"}
	}
	if c.Eps <= 0 {
		return &InvalidParameterError{Name: "eps", Value: fmt.Sprint(c.Eps), Reason: "must be > 0"}
	}
	if c.MaxGain <= 1 {
		return &InvalidParameterError{Name: "max_gain", Value: fmt.Sprint(c.MaxGain), Reason: "must be > 1"}
	}
	if c.DenoiseStrength < 0 {
		return &InvalidParameterError{Name: "denoise_strength", Value: fmt.Sprint(c.DenoiseStrength), Reason: "must be >= 0"}
	}
	if c.SaturationScale < 0 {
		return &InvalidParameterError{Name: "saturation_scale", Value: fmt.Sprint(c.SaturationScale), Reason: "must be >= 0"}
	}
	return nil
}
