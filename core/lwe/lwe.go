// Package lwe implements scalar LWE ciphertexts over the 32-bit torus:
// configuration, key generation, encryption/decryption, and the additive
// homomorphism (add, subtract, scalar multiply, trivial encryption).
package lwe

import (
	"fmt"

	"github.com/lowdanie/tfhe/sampling"
	"github.com/lowdanie/tfhe/torus"
)

// Config fixes an LWE instance's dimension and noise level.
type Config struct {
	Dimension int
	NoiseStd  float64
}

// Key is a uniformly sampled {0,1}^n secret; immutable after creation.
type Key struct {
	S []int32
}

// NewKey samples a fresh LWE key of cfg.Dimension bits.
func NewKey(cfg Config, prng sampling.PRNG) *Key {
	return &Key{S: uniformBits(prng, cfg.Dimension)}
}

// Plaintext is a single encoded signed 32-bit integer.
type Plaintext = int32

// Ciphertext is an LWE sample (a, b) with b - <a,s> ~= message + noise.
type Ciphertext struct {
	A []int32
	B int32
}

// Encode maps m in {-4,...,3} to its torus representative.
func Encode(m int32) int32 { return torus.Encode(m) }

// Decode recovers the integer in {-4,...,3} nearest x's torus value.
func Decode(x int32) int32 { return torus.Decode(x) }

// EncodeBool encodes a boolean as encode(2) (true) or encode(0) (false).
func EncodeBool(b bool) int32 { return torus.EncodeBool(b) }

// DecodeBool reports whether x decodes to true.
func DecodeBool(x int32) bool { return torus.DecodeBool(x) }

// Encrypt draws a uniform a, Gaussian noise e, and returns (a, <a,s>+m+e).
func Encrypt(m int32, key *Key, cfg Config, prng sampling.PRNG) *Ciphertext {
	a := sampling.UniformInt32(prng, cfg.Dimension)
	e := sampling.GaussianInt32(prng, cfg.NoiseStd, 1)[0]
	return &Ciphertext{A: a, B: dot(a, key.S) + m + e}
}

// Decrypt returns b - <a,s>, the noisy encoded message.
func Decrypt(ct *Ciphertext, key *Key) int32 {
	checkDimension(ct, len(key.S))
	return ct.B - dot(ct.A, key.S)
}

// Trivial returns the noiseless encryption (0, m) of m, decryptable under
// any key.
func Trivial(m int32, cfg Config) *Ciphertext {
	return &Ciphertext{A: make([]int32, cfg.Dimension), B: m}
}

// Add returns the component-wise sum of two ciphertexts of equal
// dimension.
func Add(c1, c2 *Ciphertext) *Ciphertext {
	checkSameDimension(c1, c2)
	out := &Ciphertext{A: make([]int32, len(c1.A)), B: c1.B + c2.B}
	for i := range out.A {
		out.A[i] = c1.A[i] + c2.A[i]
	}
	return out
}

// Subtract returns the component-wise difference of two ciphertexts of
// equal dimension.
func Subtract(c1, c2 *Ciphertext) *Ciphertext {
	checkSameDimension(c1, c2)
	out := &Ciphertext{A: make([]int32, len(c1.A)), B: c1.B - c2.B}
	for i := range out.A {
		out.A[i] = c1.A[i] - c2.A[i]
	}
	return out
}

// ScalarMultiply returns c*ct, component-wise.
func ScalarMultiply(c int32, ct *Ciphertext) *Ciphertext {
	out := &Ciphertext{A: make([]int32, len(ct.A)), B: c * ct.B}
	for i, v := range ct.A {
		out.A[i] = c * v
	}
	return out
}

func dot(a, s []int32) int32 {
	var acc int32
	for i := range a {
		acc += a[i] * s[i]
	}
	return acc
}

func checkDimension(ct *Ciphertext, n int) {
	if len(ct.A) != n {
		panic(fmt.Sprintf("lwe: dimension mismatch (%d != %d)", len(ct.A), n))
	}
}

func checkSameDimension(c1, c2 *Ciphertext) {
	if len(c1.A) != len(c2.A) {
		panic(fmt.Sprintf("lwe: dimension mismatch (%d != %d)", len(c1.A), len(c2.A)))
	}
}

// uniformBits draws n independent uniform bits from prng, as int32 0/1.
func uniformBits(prng sampling.PRNG, n int) []int32 {
	buf := make([]byte, n)
	if _, err := readFull(prng, buf); err != nil {
		panic(err)
	}
	out := make([]int32, n)
	for i, b := range buf {
		out[i] = int32(b & 1)
	}
	return out
}

func readFull(prng sampling.PRNG, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := prng.Read(buf[total:])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
