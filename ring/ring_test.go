package ring_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/lowdanie/tfhe/ring"
)

func TestAddSubtract(t *testing.T) {
	p := ring.NewFromCoeffs([]int32{1, 2, 3, 4})
	q := ring.NewFromCoeffs([]int32{0, 1, 0, 2})

	sum := ring.Add(p, q)
	require.Empty(t, cmp.Diff([]int32{1, 3, 3, 6}, sum.Coeffs))

	diff := ring.Subtract(p, q)
	require.Empty(t, cmp.Diff([]int32{1, 1, 3, 2}, diff.Coeffs))
}

// E1: polynomial_multiply([1,2,3,4], [0,1,0,2]) = [-8,-5,-6,5].
func TestMultiplyE1(t *testing.T) {
	p := ring.NewFromCoeffs([]int32{1, 2, 3, 4})
	q := ring.NewFromCoeffs([]int32{0, 1, 0, 2})

	got := ring.Multiply(p, q)
	require.Empty(t, cmp.Diff([]int32{-8, -5, -6, 5}, got.Coeffs))
}

func TestMultiplyNegacyclic(t *testing.T) {
	const N = 8
	for k := 0; k < N; k++ {
		xN := ring.Monomial(1, N, N)
		xk := ring.Monomial(1, k, N)
		got := ring.Multiply(xN, xk)
		want := ring.Monomial(-1, k, N)
		require.Empty(t, cmp.Diff(want.Coeffs, got.Coeffs), "k=%d", k)
	}
}

func TestMonomial(t *testing.T) {
	got := ring.Monomial(3, 15, 4)
	require.Empty(t, cmp.Diff([]int32{0, 0, 0, -3}, got.Coeffs))
}

func TestMonomialNegativeExponent(t *testing.T) {
	// X^-1 = -X^3 in R_4, since X^4 = -1.
	got := ring.Monomial(1, -1, 4)
	require.Empty(t, cmp.Diff([]int32{0, 0, 0, -1}, got.Coeffs))
}

func TestMonomialLargeExponent(t *testing.T) {
	// X^(2N+k) = X^k, since X^N = -1 is squared away.
	const N = 16
	for k := 0; k < N; k++ {
		require.Empty(t, cmp.Diff(ring.Monomial(1, k, N).Coeffs, ring.Monomial(1, 2*N+k, N).Coeffs))
	}
}
