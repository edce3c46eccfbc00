package siatec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpattern/point"
	"github.com/katalvlaran/lvpattern/siatec"
)

// TestNewTEC_Validation covers every rejection path of NewTEC.
func TestNewTEC_Validation(t *testing.T) {
	zero := point.MustNew(0, 0)
	p := point.MustNew(1, 1)

	cases := []struct {
		name        string
		pattern     []point.Point
		translators []point.Point
		err         error
	}{
		{"EmptyPattern", nil, []point.Point{zero}, siatec.ErrInvalidTEC},
		{"NoTranslators", []point.Point{p}, nil, siatec.ErrInvalidTEC},
		{"MissingZero", []point.Point{p}, []point.Point{point.MustNew(1, 0)}, siatec.ErrInvalidTEC},
		{"MixedPatternDims", []point.Point{p, point.MustNew(1)}, []point.Point{zero}, point.ErrDimensionMismatch},
		{"TranslatorDims", []point.Point{p}, []point.Point{point.MustNew(0, 0, 0)}, point.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := siatec.NewTEC(tc.pattern, tc.translators)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestTEC_EqualIgnoresOrder: identity is set equality of both components.
func TestTEC_EqualIgnoresOrder(t *testing.T) {
	a := tec(t, [][2]float64{{0, 0}, {1, 0}}, [][2]float64{{0, 0}, {5, 5}})
	b := tec(t, [][2]float64{{1, 0}, {0, 0}, {1, 0}}, [][2]float64{{5, 5}, {0, 0}})
	c := tec(t, [][2]float64{{0, 0}, {1, 0}}, [][2]float64{{0, 0}, {5, 6}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

// TestTEC_CompressionRatio checks |P|·|T|/(|P|+|T|).
func TestTEC_CompressionRatio(t *testing.T) {
	sq := tec(t, [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, [][2]float64{{0, 0}, {5, 5}})
	assert.InDelta(t, 8.0/6.0, sq.CompressionRatio(), 1e-12)

	one := tec(t, [][2]float64{{0, 0}}, [][2]float64{{0, 0}})
	assert.InDelta(t, 0.5, one.CompressionRatio(), 1e-12)
}

// TestTEC_OccurrencesAndCovered maps the TEC back onto the dataset.
func TestTEC_OccurrencesAndCovered(t *testing.T) {
	tc := tec(t, [][2]float64{{0, 0}, {1, 0}}, [][2]float64{{0, 0}, {0, 1}, {1, 1}})

	occ := tc.Occurrences()
	require.Len(t, occ, 3)
	assert.True(t, occ[0][0].Equal(point.MustNew(0, 0)))
	assert.True(t, occ[1][1].Equal(point.MustNew(1, 1)))
	assert.True(t, occ[2][1].Equal(point.MustNew(2, 1)))

	cov := tc.Covered()
	// (0,0) (1,0) (0,1) (1,1) (2,1): (1,1) is shared by two occurrences.
	assert.Equal(t, 5, cov.Len())
}

// TestTEC_Verify accepts an engine TEC and rejects a forged translator.
func TestTEC_Verify(t *testing.T) {
	d := sixPoints(t)
	good := tec(t, [][2]float64{{2, 1}, {2, 2}}, [][2]float64{{0, 0}, {0, 1}})
	assert.NoError(t, good.Verify(d))

	bad := tec(t, [][2]float64{{2, 1}, {2, 2}}, [][2]float64{{0, 0}, {1, 1}})
	assert.ErrorIs(t, bad.Verify(d), siatec.ErrInvalidTranslator)

	assert.ErrorIs(t, good.Verify(nil), siatec.ErrNilSet)
}

// TestTEC_String renders both sets.
func TestTEC_String(t *testing.T) {
	tc := tec(t, [][2]float64{{0, 0}}, [][2]float64{{0, 0}, {5, 5}})
	assert.Equal(t, "TEC(pattern={(0, 0)}, translators={(0, 0) (5, 5)})", tc.String())
}
