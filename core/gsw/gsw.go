// Package gsw implements GSW ciphertexts over the RLWE ring: signed
// base-p digit decomposition, encryption as a gadget-shifted stack of
// RLWE rows, the external product (GSW x RLWE -> RLWE), and the CMUX
// selector built from it. The external product is what gives the scheme
// its multiplicative homomorphism, at the cost of a noise amplification
// bounded by NoiseGrowthBound.
package gsw

import (
	"fmt"

	"github.com/lowdanie/tfhe/core/rlwe"
	"github.com/lowdanie/tfhe/ring"
	"github.com/lowdanie/tfhe/sampling"
)

// Key is an alias for the RLWE key; a GSW key is the same object viewed
// differently.
type Key = rlwe.Key

// Plaintext is a small integer polynomial used as a selector. It is not
// torus-encoded.
type Plaintext = ring.Polynomial

// Ciphertext is a stack of 2*ell RLWE rows realizing Z + m*G for the
// gadget matrix G: rows 0..ell-1 carry p^i*m in their a component, rows
// ell..2*ell-1 carry p^i*m in their b component.
type Ciphertext struct {
	Config Config
	Rows   []*rlwe.Ciphertext
}

// Encrypt returns a GSW encryption of m: 2*ell independent RLWE
// encryptions of zero, with p^i*m added into the a component of row i and
// into the b component of row i+ell.
func Encrypt(m *ring.Polynomial, key *Key, cfg Config, prng sampling.PRNG) *Ciphertext {
	if m.N != cfg.RLWEConfig.Degree {
		panic(fmt.Sprintf("gsw: message degree %d does not match rlwe degree %d", m.N, cfg.RLWEConfig.Degree))
	}
	ell := cfg.Levels()
	zero := ring.Zero(cfg.RLWEConfig.Degree)

	rows := make([]*rlwe.Ciphertext, 2*ell)
	for i := range rows {
		rows[i] = rlwe.Encrypt(zero, key, cfg.RLWEConfig, prng)
	}

	var pk int32 = 1
	for i := 0; i < ell; i++ {
		shifted := ring.ConstantMultiply(pk, m)
		rows[i].A = ring.Add(rows[i].A, shifted)
		rows[i+ell].B = ring.Add(rows[i+ell].B, shifted)
		pk *= int32(cfg.Base())
	}
	return &Ciphertext{Config: cfg, Rows: rows}
}

// Multiply computes the external product: given G encrypting m and ct
// encrypting u, it returns an RLWE encryption of m*u. Both components of
// ct are decomposed into signed base-p digit polynomials, and the digit
// sequence is contracted against the gadget rows of G.
func Multiply(g *Ciphertext, ct *rlwe.Ciphertext) *rlwe.Ciphertext {
	cfg := g.Config
	if ct.A.N != cfg.RLWEConfig.Degree {
		panic(fmt.Sprintf("gsw: ciphertext degree %d does not match rlwe degree %d", ct.A.N, cfg.RLWEConfig.Degree))
	}

	digits := DecomposePolynomial(ct.A, cfg.LogP)
	digits = append(digits, DecomposePolynomial(ct.B, cfg.LogP)...)

	N := cfg.RLWEConfig.Degree
	out := &rlwe.Ciphertext{A: ring.Zero(N), B: ring.Zero(N)}
	for j, d := range digits {
		out.A = ring.Add(out.A, ring.Multiply(d, g.Rows[j].A))
		out.B = ring.Add(out.B, ring.Multiply(d, g.Rows[j].B))
	}
	return out
}

// CMux selects between two RLWE ciphertexts using a GSW-encrypted bit:
// it returns g (x) (c1 - c0) + c0, which encrypts c0's message when g
// encrypts 0 and c1's when g encrypts 1. Selectors other than the
// constants 0 and 1 compute the linear combination m*(u1-u0) + u0.
func CMux(g *Ciphertext, c0, c1 *rlwe.Ciphertext) *rlwe.Ciphertext {
	return rlwe.Add(Multiply(g, rlwe.Subtract(c1, c0)), c0)
}
