package lime

import (
	"errors"
	"fmt"
)

// ErrDecode marks input bytes that do not form a valid raster image.
var ErrDecode = errors.New("cannot decode image")

// InvalidParameterError reports a configuration value rejected before any
// pipeline stage runs.
type InvalidParameterError struct {
	Name   string
	Value  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%s: %s", e.Name, e.Value, e.Reason)
}

// StageFaultError wraps an unexpected fault raised inside a pipeline stage.
type StageFaultError struct {
	Stage string
	Cause error
}

func (e *StageFaultError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Cause)
}

func (e *StageFaultError) Unwrap() error { return e.Cause }
