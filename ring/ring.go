// Package ring implements arithmetic in R_N = Z[X]/(X^N+1) over signed
// 32-bit coefficients, for N a power of two. Multiplication is plain
// schoolbook convolution followed by the negacyclic fold X^N = -1;
// an implementer targeting performance could substitute an NTT here
// without changing any caller, since correctness is defined by this
// schoolbook semantics, not by any particular algorithm.
package ring

import (
	"fmt"

	"github.com/lowdanie/tfhe/utils"
)

// Polynomial is a degree-N element of R_N, stored as its N coefficients
// from the constant term up.
type Polynomial struct {
	N      int
	Coeffs []int32
}

// New allocates the zero polynomial of degree N.
func New(N int) *Polynomial {
	return &Polynomial{N: N, Coeffs: make([]int32, N)}
}

// NewFromCoeffs allocates a polynomial with a copy of the given
// coefficients; len(coeffs) becomes its degree.
func NewFromCoeffs(coeffs []int32) *Polynomial {
	c := make([]int32, len(coeffs))
	copy(c, coeffs)
	return &Polynomial{N: len(c), Coeffs: c}
}

// Zero returns the zero polynomial of degree N.
func Zero(N int) *Polynomial {
	return New(N)
}

// Clone returns a deep copy of p.
func (p *Polynomial) Clone() *Polynomial {
	return NewFromCoeffs(p.Coeffs)
}

func checkSameDegree(p, q *Polynomial) {
	if p.N != q.N {
		panic(fmt.Sprintf("ring: degree mismatch (%d != %d)", p.N, q.N))
	}
}

// Add returns p+q, coefficient-wise modulo 2^32.
func Add(p, q *Polynomial) *Polynomial {
	checkSameDegree(p, q)
	r := New(p.N)
	for i := range r.Coeffs {
		r.Coeffs[i] = p.Coeffs[i] + q.Coeffs[i]
	}
	return r
}

// Subtract returns p-q, coefficient-wise modulo 2^32.
func Subtract(p, q *Polynomial) *Polynomial {
	checkSameDegree(p, q)
	r := New(p.N)
	for i := range r.Coeffs {
		r.Coeffs[i] = p.Coeffs[i] - q.Coeffs[i]
	}
	return r
}

// ConstantMultiply returns c*p, coefficient-wise modulo 2^32.
func ConstantMultiply(c int32, p *Polynomial) *Polynomial {
	r := New(p.N)
	for i, v := range p.Coeffs {
		r.Coeffs[i] = c * v
	}
	return r
}

// Multiply returns p*q in R_N: a length-(2N-1) schoolbook convolution,
// folded by the rule X^N = -1.
func Multiply(p, q *Polynomial) *Polynomial {
	checkSameDegree(p, q)
	N := p.N
	prod := make([]int32, 2*N-1)
	for i := 0; i < N; i++ {
		pi := p.Coeffs[i]
		if pi == 0 {
			continue
		}
		for j := 0; j < N; j++ {
			prod[i+j] += pi * q.Coeffs[j]
		}
	}

	r := New(N)
	copy(r.Coeffs, prod[:N])
	for k := 0; k < N-1; k++ {
		r.Coeffs[k] -= prod[N+k]
	}
	return r
}

// Monomial returns c*X^i reduced in R_N: writing i = k*N + r with
// 0 <= r < N, the result is c*X^r if k is even and -c*X^r if k is odd.
// i may be negative or exceed N; both are folded correctly.
func Monomial(c int32, i int, N int) *Polynomial {
	r := New(N)
	k := utils.FloorDiv(i, N)
	rem := i - k*N
	coeff := c
	if k%2 != 0 {
		coeff = -c
	}
	r.Coeffs[rem] = coeff
	return r
}
