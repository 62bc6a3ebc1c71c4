package lime

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuhin92/Image-Enhancement/internal/grid"
)

func rampMap(w, h int) *grid.Grid {
	m := grid.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, 0.2+0.8*float64(x)/float64(w-1))
		}
	}
	return m
}

func TestGuidedFilter_ConstantMapUnchanged(t *testing.T) {
	m := grid.New(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			m.Set(x, y, 0.35)
		}
	}

	f := &GuidedFilter{Radius: 4, Eps: 1e-3}
	out := f.Refine(m)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			require.InDelta(t, 0.35, out.At(x, y), 1e-9)
		}
	}
}

func TestGuidedFilter_PreservesDimensions(t *testing.T) {
	m := rampMap(20, 9)
	out := (&GuidedFilter{Radius: 3, Eps: 1e-3}).Refine(m)
	require.Equal(t, 20, out.Dx())
	require.Equal(t, 9, out.Dy())
}

func TestNewStructureFilter_PrefersGuided(t *testing.T) {
	f := NewStructureFilter(DefaultConfig())
	require.IsType(t, &GuidedFilter{}, f)
	require.Equal(t, "guided", f.Name())
}

func TestNewStructureFilter_FallsBackToBilateral(t *testing.T) {
	orig := guidedSupported
	guidedSupported = func() bool { return false }
	defer func() { guidedSupported = orig }()

	f := NewStructureFilter(DefaultConfig())
	require.IsType(t, &BilateralFilter{}, f)
	require.Equal(t, "bilateral", f.Name())
}

// The map range invariant must hold whichever filter branch ran.
func TestRefinement_RangeInvariantBothBranches(t *testing.T) {
	const maxGain = 5.0

	for _, f := range []StructureFilter{
		&GuidedFilter{Radius: 4, Eps: 1e-3},
		&BilateralFilter{SigmaSpace: fallbackSigmaSpace, SigmaRange: fallbackSigmaRange},
	} {
		m := rampMap(24, 24).Clamp(1/maxGain, 1.0)
		out := f.Refine(m).Clamp(1/maxGain, 1.0)

		require.Equal(t, m.Dx(), out.Dx(), f.Name())
		require.Equal(t, m.Dy(), out.Dy(), f.Name())

		lo, hi := out.MinMax()
		require.GreaterOrEqual(t, lo, 1/maxGain, f.Name())
		require.LessOrEqual(t, hi, 1.0, f.Name())
	}
}
