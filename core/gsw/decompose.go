package gsw

import "github.com/lowdanie/tfhe/ring"

// DecomposeInt32 writes x in signed base p = 2^log_p with ell = 32/log_p
// digits, each in [-p/2, p/2), such that RecombineInt32 inverts it. The
// bias trick: add an offset that makes the windowed extraction's unsigned
// arithmetic land on the correct signed digits, by treating x+offset as
// unsigned 32-bit throughout.
func DecomposeInt32(x int32, logP int) []int32 {
	p := uint64(1) << uint(logP)
	ell := 32 / logP
	mask := p - 1
	half := int32(p / 2)

	offset := biasOffset(logP, ell)
	xu := uint32(x) + offset

	digits := make([]int32, ell)
	for i := 0; i < ell; i++ {
		shifted := xu >> uint(i*logP)
		digits[i] = int32(uint64(shifted)&mask) - half
	}
	return digits
}

// RecombineInt32 inverts DecomposeInt32: sum_i p^i * d_i, cast back to a
// signed 32-bit integer.
func RecombineInt32(digits []int32, logP int) int32 {
	p := int32(uint64(1) << uint(logP))
	var acc int32
	var pk int32 = 1
	for _, d := range digits {
		acc += pk * d
		pk *= p
	}
	return acc
}

// biasOffset computes O = (p/2) * sum_{i=0}^{ell-1} p^i (mod 2^32). The
// sum is accumulated in uint64 and the product is truncated to uint32 on
// return, which is the reduction mod 2^32.
func biasOffset(logP, ell int) uint32 {
	p := uint64(1) << uint(logP)
	var sum uint64
	var pk uint64 = 1
	for i := 0; i < ell; i++ {
		sum += pk
		pk *= p
	}
	return uint32((p / 2) * sum)
}

// DecomposePolynomial extends DecomposeInt32 coefficient-wise, returning
// ell polynomials of degree p.N: level i holds, at each coefficient index,
// the i-th digit of that coefficient of p.
func DecomposePolynomial(p *ring.Polynomial, logP int) []*ring.Polynomial {
	ell := 32 / logP
	levels := make([]*ring.Polynomial, ell)
	for i := range levels {
		levels[i] = ring.New(p.N)
	}
	for coeffIdx, c := range p.Coeffs {
		digits := DecomposeInt32(c, logP)
		for i, d := range digits {
			levels[i].Coeffs[coeffIdx] = d
		}
	}
	return levels
}
