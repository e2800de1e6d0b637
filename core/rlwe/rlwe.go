// Package rlwe implements Ring-LWE ciphertexts over R_N = Z[X]/(X^N+1):
// configuration, key generation, encryption/decryption, the additive
// homomorphism, plaintext-polynomial multiplication, and conversion of an
// LWE key into the RLWE key it doubles as: an RLWE key and a GSW key are
// the same object viewed differently.
package rlwe

import (
	"fmt"

	"github.com/lowdanie/tfhe/core/lwe"
	"github.com/lowdanie/tfhe/ring"
	"github.com/lowdanie/tfhe/sampling"
	"github.com/lowdanie/tfhe/torus"
)

// Config fixes an RLWE instance's ring degree and noise level.
type Config struct {
	Degree   int
	NoiseStd float64
}

// Key is a polynomial with {0,1} coefficients; immutable after creation.
// It doubles as a GSW key: gsw.Encrypt takes the same type.
type Key struct {
	S *ring.Polynomial
}

// NewKey samples a fresh RLWE key of cfg.Degree bits.
func NewKey(cfg Config, prng sampling.PRNG) *Key {
	buf := make([]byte, cfg.Degree)
	if _, err := readFull(prng, buf); err != nil {
		panic(err)
	}
	coeffs := make([]int32, cfg.Degree)
	for i, b := range buf {
		coeffs[i] = int32(b & 1)
	}
	return &Key{S: ring.NewFromCoeffs(coeffs)}
}

// ConvertLWEKeyToRLWEKey reinterprets an LWE key's n-bit vector as the
// coefficient list of a degree-n polynomial. cfg.Degree must equal the LWE
// key's dimension.
func ConvertLWEKeyToRLWEKey(key *lwe.Key, cfg Config) *Key {
	if len(key.S) != cfg.Degree {
		panic(fmt.Sprintf("rlwe: lwe key dimension %d does not match rlwe degree %d", len(key.S), cfg.Degree))
	}
	return &Key{S: ring.NewFromCoeffs(key.S)}
}

// Plaintext is a polynomial in R_N.
type Plaintext = ring.Polynomial

// Ciphertext is an RLWE sample (a, b) with b - a*s ~= message + noise.
type Ciphertext struct {
	A *ring.Polynomial
	B *ring.Polynomial
}

// Encode torus-encodes p coefficient-wise.
func Encode(p *ring.Polynomial) *ring.Polynomial {
	out := ring.New(p.N)
	for i, c := range p.Coeffs {
		out.Coeffs[i] = torus.Encode(c)
	}
	return out
}

// Decode recovers the coefficient-wise decoded integer polynomial of p.
func Decode(p *ring.Polynomial) *ring.Polynomial {
	out := ring.New(p.N)
	for i, c := range p.Coeffs {
		out.Coeffs[i] = torus.Decode(c)
	}
	return out
}

// Encrypt draws a uniform a, Gaussian noise e, and returns (a, a*s+m+e).
func Encrypt(m *ring.Polynomial, key *Key, cfg Config, prng sampling.PRNG) *Ciphertext {
	checkDegree(m, cfg.Degree)
	a := ring.NewFromCoeffs(sampling.UniformInt32(prng, cfg.Degree))
	e := ring.NewFromCoeffs(sampling.GaussianInt32(prng, cfg.NoiseStd, cfg.Degree))
	b := ring.Add(ring.Add(ring.Multiply(a, key.S), m), e)
	return &Ciphertext{A: a, B: b}
}

// Decrypt returns b - a*s, the noisy encoded message polynomial.
func Decrypt(ct *Ciphertext, key *Key) *ring.Polynomial {
	checkDegree(ct.A, key.S.N)
	return ring.Subtract(ct.B, ring.Multiply(ct.A, key.S))
}

// Trivial returns the noiseless encryption (0, f) of f.
func Trivial(f *ring.Polynomial, cfg Config) *Ciphertext {
	checkDegree(f, cfg.Degree)
	return &Ciphertext{A: ring.Zero(cfg.Degree), B: f.Clone()}
}

// Add returns the coefficient-wise sum of two ciphertexts.
func Add(c1, c2 *Ciphertext) *Ciphertext {
	return &Ciphertext{A: ring.Add(c1.A, c2.A), B: ring.Add(c1.B, c2.B)}
}

// Subtract returns the coefficient-wise difference of two ciphertexts.
func Subtract(c1, c2 *Ciphertext) *Ciphertext {
	return &Ciphertext{A: ring.Subtract(c1.A, c2.A), B: ring.Subtract(c1.B, c2.B)}
}

// PlaintextMultiply returns (p*a, p*b): the encryption of p*u when ct
// encrypts u, where p is treated as a plaintext polynomial (not
// torus-encoded), used chiefly to apply monomial rotations.
func PlaintextMultiply(p *ring.Polynomial, ct *Ciphertext) *Ciphertext {
	return &Ciphertext{A: ring.Multiply(p, ct.A), B: ring.Multiply(p, ct.B)}
}

func checkDegree(p *ring.Polynomial, N int) {
	if p.N != N {
		panic(fmt.Sprintf("rlwe: degree mismatch (%d != %d)", p.N, N))
	}
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
