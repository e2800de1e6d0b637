/*
Package tfhe is a pedagogical implementation of a TFHE-style gate-bootstrapped
fully homomorphic encryption scheme. The library features:

    - A pure Go implementation of the LWE, RLWE and GSW ciphertext algebras.
    - A bit-exact, schoolbook (non-NTT) polynomial ring Z[X]/(X^N+1).
    - A programmable bootstrapping pipeline (blind rotation, sample
      extraction, bootstrap) that refreshes ciphertext noise independently
      of the input.
    - A bootstrapped NAND gate, plus the rest of the boolean gate set
      derived from it.

tfhe is not a production cryptosystem: it makes no claim to IND-CCA
security, side-channel resistance, constant-time execution or performance.
It exists to make the bootstrapping pipeline readable end to end.
*/
package tfhe

import (
	"github.com/lowdanie/tfhe/core/gsw"
	"github.com/lowdanie/tfhe/core/lwe"
	"github.com/lowdanie/tfhe/core/rlwe"
)

// CanonicalLWEConfig returns the scheme's default LWE parameters:
// dimension 1024 and noise standard deviation 2^-24.
func CanonicalLWEConfig() lwe.Config {
	return lwe.Config{Dimension: 1024, NoiseStd: 1.0 / (1 << 24)}
}

// CanonicalRLWEConfig returns the scheme's default RLWE parameters:
// ring degree 1024 and noise standard deviation 2^-24.
func CanonicalRLWEConfig() rlwe.Config {
	return rlwe.Config{Degree: 1024, NoiseStd: 1.0 / (1 << 24)}
}

// CanonicalGSWConfig returns the scheme's default GSW parameters:
// log_p = 8, giving ell = 4 digit levels.
func CanonicalGSWConfig() gsw.Config {
	cfg, err := gsw.NewConfig(CanonicalRLWEConfig(), 8)
	if err != nil {
		panic(err)
	}
	return cfg
}
