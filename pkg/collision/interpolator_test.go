package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/equib/prEQUIB/pkg/atomdata"
)

func TestNewRejectsNilOrShortTable(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)

	short := atomdata.NewOmegaTable([]float64{5000}, 0)
	_, err = New(short)
	require.Error(t, err)
}

func TestInterpolatorPermutationInvariance(t *testing.T) {
	om := atomdata.NewOmegaTable([]float64{5000, 10000, 20000}, 0)
	require.NoError(t, om.Set(1, 2, []float64{1.0, 1.2, 1.5}))

	ip, err := New(om)
	require.NoError(t, err)

	fwd, err := ip.Omega(1, 2, 10000)
	require.NoError(t, err)
	rev, err := ip.Omega(2, 1, 10000)
	require.NoError(t, err)
	require.Equal(t, fwd, rev)
	require.InDelta(t, 1.2, fwd, 1e-9)
}

func TestInterpolatorUnlistedPairIsZero(t *testing.T) {
	om := atomdata.NewOmegaTable([]float64{5000, 10000, 20000}, 0)
	require.NoError(t, om.Set(1, 2, []float64{1.0, 1.2, 1.5}))

	ip, err := New(om)
	require.NoError(t, err)

	w, err := ip.Omega(1, 3, 10000)
	require.NoError(t, err)
	require.Equal(t, 0.0, w)
}

func TestInterpolatorCachesAcrossCalls(t *testing.T) {
	om := atomdata.NewOmegaTable([]float64{5000, 10000, 20000}, 0)
	require.NoError(t, om.Set(1, 2, []float64{1.0, 1.2, 1.5}))

	ip, err := New(om)
	require.NoError(t, err)

	first, err := ip.Omega(1, 2, 12000)
	require.NoError(t, err)
	second, err := ip.Omega(1, 2, 12000)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestInterpolatorRejectsNonPositiveTemperature(t *testing.T) {
	om := atomdata.NewOmegaTable([]float64{5000, 10000}, 0)
	require.NoError(t, om.Set(1, 2, []float64{1.0, 1.2}))
	ip, err := New(om)
	require.NoError(t, err)

	_, err = ip.Omega(1, 2, 0)
	require.Error(t, err)
}
