package gsw

import (
	"fmt"

	"github.com/lowdanie/tfhe/core/rlwe"
)

// Config fixes a GSW instance: the underlying RLWE config it builds rows
// from, and log_p, the base-2 log of the digit-decomposition radix.
// log_p must divide 32; the number of digit levels is ell = 32/log_p.
type Config struct {
	RLWEConfig rlwe.Config
	LogP       int
}

// NewConfig validates log_p (it must be a positive divisor of 32) and
// returns the corresponding Config.
func NewConfig(rlweConfig rlwe.Config, logP int) (Config, error) {
	if logP <= 0 || logP > 32 || 32%logP != 0 {
		return Config{}, fmt.Errorf("gsw: log_p=%d must be a positive divisor of 32", logP)
	}
	return Config{RLWEConfig: rlweConfig, LogP: logP}, nil
}

// Levels returns ell, the number of base-p digit levels.
func (c Config) Levels() int {
	return 32 / c.LogP
}

// Base returns p = 2^log_p.
func (c Config) Base() uint64 {
	return uint64(1) << uint(c.LogP)
}
