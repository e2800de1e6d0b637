// Package gates evaluates boolean gates over LWE ciphertexts encrypting
// encode(0) (false) or encode(2) (true). NAND, AND and OR are each a
// linear combination of their inputs against a fixed constant, followed by
// a bootstrap that both thresholds the result and refreshes its noise;
// NOR, XOR, XNOR and MUX are composed from those gates and NOT.
//
// The constants pick out the right cells of each truth table once the
// inputs are summed on the torus (messages are eighths of the circle;
// the bootstrap step outputs true exactly on the {3,4,5,6} octants):
//
//	        F F    F T    T F    T T
//	sum      0      2      2      4
//	NAND    -3     -5~3   -5~3   -7~1    -> T T T F
//	AND     -1      1      1      3      -> F F F T
//	OR       1      3      3      5~-3   -> F T T T
package gates

import (
	"github.com/lowdanie/tfhe/core/bootstrap"
	"github.com/lowdanie/tfhe/core/lwe"
)

// NAND returns an encryption of !(l && r), bootstrapped.
func NAND(l, r *lwe.Ciphertext, key *bootstrap.Key) *lwe.Ciphertext {
	t := lwe.Subtract(lwe.Subtract(lwe.Trivial(lwe.Encode(-3), key.LWEConfig), l), r)
	return bootstrap.Bootstrap(t, key, lwe.Encode(2))
}

// AND returns an encryption of l && r, bootstrapped.
func AND(l, r *lwe.Ciphertext, key *bootstrap.Key) *lwe.Ciphertext {
	t := lwe.Add(lwe.Add(lwe.Trivial(lwe.Encode(-1), key.LWEConfig), l), r)
	return bootstrap.Bootstrap(t, key, lwe.Encode(2))
}

// OR returns an encryption of l || r, bootstrapped.
func OR(l, r *lwe.Ciphertext, key *bootstrap.Key) *lwe.Ciphertext {
	t := lwe.Add(lwe.Add(lwe.Trivial(lwe.Encode(1), key.LWEConfig), l), r)
	return bootstrap.Bootstrap(t, key, lwe.Encode(2))
}

// NOT returns an encryption of !c. It is evaluated as a subtraction from
// a trivial true and costs no bootstrap.
func NOT(c *lwe.Ciphertext, key *bootstrap.Key) *lwe.Ciphertext {
	return lwe.Subtract(lwe.Trivial(lwe.Encode(2), key.LWEConfig), c)
}

// NOR returns an encryption of !(l || r).
func NOR(l, r *lwe.Ciphertext, key *bootstrap.Key) *lwe.Ciphertext {
	return NOT(OR(l, r, key), key)
}

// XOR returns an encryption of l != r, composed from four NANDs. The
// fixed step polynomial has no single-bootstrap threshold separating the
// XOR cells, so the classic NAND identity is used instead.
func XOR(l, r *lwe.Ciphertext, key *bootstrap.Key) *lwe.Ciphertext {
	m := NAND(l, r, key)
	return NAND(NAND(l, m, key), NAND(r, m, key), key)
}

// XNOR returns an encryption of l == r.
func XNOR(l, r *lwe.Ciphertext, key *bootstrap.Key) *lwe.Ciphertext {
	return NOT(XOR(l, r, key), key)
}

// MUX returns an encryption of (sel ? a : b).
func MUX(sel, a, b *lwe.Ciphertext, key *bootstrap.Key) *lwe.Ciphertext {
	return OR(AND(sel, a, key), AND(NOT(sel, key), b, key), key)
}

// Refresh bootstraps c through the identity gate, reducing its noise to
// the bootstrap output level without changing its boolean value.
func Refresh(c *lwe.Ciphertext, key *bootstrap.Key) *lwe.Ciphertext {
	t := lwe.Add(lwe.Trivial(lwe.Encode(1), key.LWEConfig), c)
	return bootstrap.Bootstrap(t, key, lwe.Encode(2))
}
