package torus_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lowdanie/tfhe/torus"
)

func TestRoundTrip(t *testing.T) {
	for m := int32(-4); m <= 3; m++ {
		require.Equal(t, m, torus.Decode(torus.Encode(m)), "m=%d", m)
	}
}

func TestDecodeBoundary(t *testing.T) {
	require.Equal(t, int32(-4), torus.Decode(math.MaxInt32))
}

func TestEncodeBool(t *testing.T) {
	require.Equal(t, torus.Encode(0), torus.EncodeBool(false))
	require.Equal(t, torus.Encode(2), torus.EncodeBool(true))
	require.True(t, torus.DecodeBool(torus.EncodeBool(true)))
	require.False(t, torus.DecodeBool(torus.EncodeBool(false)))
}
