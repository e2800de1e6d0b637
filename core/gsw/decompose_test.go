package gsw_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/lowdanie/tfhe/core/gsw"
	"github.com/lowdanie/tfhe/ring"
	"github.com/lowdanie/tfhe/utils"
)

func TestDecomposeRoundTrip(t *testing.T) {
	inputs := []int32{0, 1, -1, 127, -128, 1 << 20, -(1 << 20), 1<<31 - 1, -1 << 31, 0x5a5a5a5a, -0x5a5a5a5a}
	for _, logP := range []int{1, 2, 4, 8, 16} {
		half := int32(1) << uint(logP-1)
		for _, x := range inputs {
			digits := gsw.DecomposeInt32(x, logP)
			require.Equal(t, 32/logP, len(digits))
			for i, d := range digits {
				require.LessOrEqual(t, utils.Abs(int64(d)), int64(half),
					"logP=%d x=%d digit %d=%d out of [-p/2, p/2)", logP, x, i, d)
				require.GreaterOrEqual(t, d, -half)
				require.Less(t, d, half)
			}
			require.Equal(t, x, gsw.RecombineInt32(digits, logP), "logP=%d x=%d", logP, x)
		}
	}
}

func TestDecomposeExhaustiveLowBits(t *testing.T) {
	// Every 16-bit value, both signs, at the canonical base.
	for x := int32(-1 << 15); x < 1<<15; x++ {
		require.Equal(t, x, gsw.RecombineInt32(gsw.DecomposeInt32(x, 8), 8))
	}
}

func TestDecomposePolynomial(t *testing.T) {
	p := ring.NewFromCoeffs([]int32{3, -7, 1 << 24, -1 << 30})
	levels := gsw.DecomposePolynomial(p, 8)
	require.Equal(t, 4, len(levels))

	for i, c := range p.Coeffs {
		digits := gsw.DecomposeInt32(c, 8)
		for lvl := range levels {
			require.Equal(t, digits[lvl], levels[lvl].Coeffs[i])
		}
	}

	// Recombining level-wise reproduces p.
	got := ring.New(p.N)
	var pk int32 = 1
	for _, lvl := range levels {
		got = ring.Add(got, ring.ConstantMultiply(pk, lvl))
		pk *= 1 << 8
	}
	require.Empty(t, cmp.Diff(p.Coeffs, got.Coeffs))
}
