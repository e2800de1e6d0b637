package gsw

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// noisePrec is the mantissa precision used for noise estimates; generous
// enough that the estimate itself contributes no rounding error at any
// parameter size expressible in a Config.
const noisePrec = 128

// NoiseGrowthBound estimates the noise amplification of one external
// product: ell * N * (p/2) * sigma, in absolute torus units (sigma scaled
// by 2^31-1). Computed in arbitrary precision so that parameter-analysis
// tests can compare it against torus decision boundaries without float64
// rounding getting in the way.
func NoiseGrowthBound(cfg Config) *big.Float {
	two := big.NewFloat(2).SetPrec(noisePrec)
	halfP := bigfloat.Pow(two, big.NewFloat(float64(cfg.LogP-1)).SetPrec(noisePrec))

	sigma := new(big.Float).SetPrec(noisePrec).SetFloat64(cfg.RLWEConfig.NoiseStd)
	sigma.Mul(sigma, new(big.Float).SetPrec(noisePrec).SetInt64((int64(1)<<31)-1))

	bound := new(big.Float).SetPrec(noisePrec).SetInt64(int64(cfg.Levels()))
	bound.Mul(bound, new(big.Float).SetPrec(noisePrec).SetInt64(int64(cfg.RLWEConfig.Degree)))
	bound.Mul(bound, halfP)
	bound.Mul(bound, sigma)
	return bound
}
