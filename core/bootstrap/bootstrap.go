// Package bootstrap composes the blind rotation, sample extraction and
// test-polynomial machinery into the noise-refreshing bootstrap
// operation. Bootstrapping homomorphically evaluates a step function of
// an LWE ciphertext's phase by rotating a test polynomial with the
// encrypted phase as the exponent, then extracting the constant
// coefficient; the output noise depends only on the bootstrap key's
// parameters, not on the input ciphertext's noise.
package bootstrap

import (
	"fmt"
	"math"

	"github.com/lowdanie/tfhe/core/gsw"
	"github.com/lowdanie/tfhe/core/lwe"
	"github.com/lowdanie/tfhe/core/rlwe"
	"github.com/lowdanie/tfhe/ring"
	"github.com/lowdanie/tfhe/sampling"
)

// Key is a bootstrap key: row j is a GSW encryption of the j-th bit of
// the LWE secret, under the RLWE key obtained by reinterpreting that same
// LWE secret as a polynomial. A Key exclusively owns its GSW rows.
type Key struct {
	LWEConfig lwe.Config
	GSWConfig gsw.Config
	Rows      []*gsw.Ciphertext
}

// GenerateKey builds the bootstrap key for lweKey: one GSW row per key
// bit. The GSW ring degree must equal the LWE dimension, so that the
// ciphertext extracted after a blind rotation decrypts under lweKey
// itself.
func GenerateKey(lweKey *lwe.Key, lweCfg lwe.Config, gswCfg gsw.Config, prng sampling.PRNG) *Key {
	n := lweCfg.Dimension
	N := gswCfg.RLWEConfig.Degree
	if n != N {
		panic(fmt.Sprintf("bootstrap: lwe dimension %d does not match rlwe degree %d", n, N))
	}

	rlweKey := rlwe.ConvertLWEKeyToRLWEKey(lweKey, gswCfg.RLWEConfig)

	rows := make([]*gsw.Ciphertext, n)
	for j, bit := range lweKey.S {
		m := ring.New(N)
		m.Coeffs[0] = bit
		rows[j] = gsw.Encrypt(m, rlweKey, gswCfg, prng)
	}
	return &Key{LWEConfig: lweCfg, GSWConfig: gswCfg, Rows: rows}
}

// OutputLWEConfig returns the configuration of the LWE ciphertexts a
// bootstrap with this key produces: dimension N, with the RLWE noise
// level.
func (k *Key) OutputLWEConfig() lwe.Config {
	return lwe.Config{
		Dimension: k.GSWConfig.RLWEConfig.Degree,
		NoiseStd:  k.GSWConfig.RLWEConfig.NoiseStd,
	}
}

// scaleToRing rounds x * N / 2^31 to the nearest integer. The divisor is
// 2^31, not 2^32: the exponent range [-N, N] covers the full set of
// distinct monomials in R_N (X^{k+N} = -X^k), so the phase is mapped onto
// 2N rotation positions rather than N.
func scaleToRing(x int32, N int) int {
	return int(math.Round(float64(x) * float64(N) / float64(int64(1)<<31)))
}

// BlindRotate homomorphically computes X^phase * acc, where phase is the
// scaled phase b - <a,s> of the LWE ciphertext ct: it first rotates acc
// by the public b, then uses one CMUX per key bit to conditionally
// unrotate by a_j exactly when s_j = 1. Iteration j consumes the
// ciphertext produced by iteration j-1.
func BlindRotate(ct *lwe.Ciphertext, acc *rlwe.Ciphertext, key *Key) *rlwe.Ciphertext {
	n := key.LWEConfig.Dimension
	if len(ct.A) != n {
		panic(fmt.Sprintf("bootstrap: ciphertext dimension %d does not match key dimension %d", len(ct.A), n))
	}
	N := key.GSWConfig.RLWEConfig.Degree

	c := rlwe.PlaintextMultiply(ring.Monomial(1, scaleToRing(ct.B, N), N), acc)
	for j := 0; j < n; j++ {
		rotated := rlwe.PlaintextMultiply(ring.Monomial(1, -scaleToRing(ct.A[j], N), N), c)
		c = gsw.CMux(key.Rows[j], c, rotated)
	}
	return c
}

// ExtractSample collapses an RLWE ciphertext at coefficient index i into
// an LWE ciphertext of dimension N encrypting the i-th coefficient of the
// RLWE message, under the LWE key whose bits are the RLWE key's
// coefficients. The a vector is the i-th negacyclic convolution row of
// the RLWE mask.
func ExtractSample(i int, ct *rlwe.Ciphertext) *lwe.Ciphertext {
	N := ct.A.N
	if i < 0 || i >= N {
		panic(fmt.Sprintf("bootstrap: extraction index %d out of range [0, %d)", i, N))
	}

	a := make([]int32, N)
	for k := 0; k <= i; k++ {
		a[k] = ct.A.Coeffs[i-k]
	}
	for k := i + 1; k < N; k++ {
		a[k] = -ct.A.Coeffs[N+i-k]
	}
	return &lwe.Ciphertext{A: a, B: ct.B.Coeffs[i]}
}

// testPolynomial builds the negacyclic step polynomial
// (scale/2) * (-1 - X - ... - X^{N/2-1} + X^{N/2} + ... + X^{N-1}).
// The positive half sits on the upper coefficient indices; together with
// the scale/2 offset added after extraction this fixes the output
// polarity of the step. Do not flip the signs for symmetry.
func testPolynomial(scale int32, N int) *ring.Polynomial {
	half := scale / 2
	p := ring.New(N)
	for j := 0; j < N/2; j++ {
		p.Coeffs[j] = -half
	}
	for j := N / 2; j < N; j++ {
		p.Coeffs[j] = half
	}
	return p
}

// Bootstrap refreshes ct into a ciphertext whose noise is independent of
// ct's: it blind-rotates the step test polynomial by ct's phase, extracts
// the constant coefficient, and recenters by scale/2. The result encrypts
// scale when the phase lies in roughly (1/4, 3/4] of the torus (octants
// 3 through 6; octants 2 and 6 sit on the step boundaries) and 0
// otherwise.
func Bootstrap(ct *lwe.Ciphertext, key *Key, scale int32) *lwe.Ciphertext {
	rlweCfg := key.GSWConfig.RLWEConfig

	acc := rlwe.Trivial(testPolynomial(scale, rlweCfg.Degree), rlweCfg)
	rotated := BlindRotate(ct, acc, key)
	extracted := ExtractSample(0, rotated)
	return lwe.Add(extracted, lwe.Trivial(scale/2, key.OutputLWEConfig()))
}
