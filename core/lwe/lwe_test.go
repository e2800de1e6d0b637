package lwe_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lowdanie/tfhe/core/lwe"
	"github.com/lowdanie/tfhe/sampling"
)

func noiselessConfig() lwe.Config {
	return lwe.Config{Dimension: 64, NoiseStd: 0}
}

func newPRNG(t *testing.T) sampling.PRNG {
	t.Helper()
	p, err := sampling.NewKeyedPRNG([]byte("lwe-test-seed"))
	require.NoError(t, err)
	return p
}

// E2: encrypt encode(-1) and encode(3), add, decrypt, decode -> 2.
func TestAddE2(t *testing.T) {
	cfg := noiselessConfig()
	prng := newPRNG(t)
	key := lwe.NewKey(cfg, prng)

	c1 := lwe.Encrypt(lwe.Encode(-1), key, cfg, prng)
	c2 := lwe.Encrypt(lwe.Encode(3), key, cfg, prng)

	sum := lwe.Add(c1, c2)
	require.Equal(t, int32(2), lwe.Decode(lwe.Decrypt(sum, key)))
}

func TestHomomorphism(t *testing.T) {
	cfg := noiselessConfig()
	prng := newPRNG(t)
	key := lwe.NewKey(cfg, prng)

	m1, m2 := int32(1), int32(-2)
	c1 := lwe.Encrypt(lwe.Encode(m1), key, cfg, prng)
	c2 := lwe.Encrypt(lwe.Encode(m2), key, cfg, prng)

	require.Equal(t, m1+m2, lwe.Decode(lwe.Decrypt(lwe.Add(c1, c2), key)))
	require.Equal(t, m1-m2, lwe.Decode(lwe.Decrypt(lwe.Subtract(c1, c2), key)))
	require.Equal(t, int32(2*m1), lwe.Decode(lwe.Decrypt(lwe.ScalarMultiply(2, c1), key)))
}

func TestTrivialDecryptsUnderAnyKey(t *testing.T) {
	cfg := noiselessConfig()
	prng := newPRNG(t)
	key1 := lwe.NewKey(cfg, prng)
	key2 := lwe.NewKey(cfg, prng)

	ct := lwe.Trivial(lwe.Encode(3), cfg)
	require.Equal(t, int32(3), lwe.Decode(lwe.Decrypt(ct, key1)))
	require.Equal(t, int32(3), lwe.Decode(lwe.Decrypt(ct, key2)))
}

func TestEncryptDecryptWithNoise(t *testing.T) {
	cfg := lwe.Config{Dimension: 256, NoiseStd: 1.0 / (1 << 24)}
	prng := newPRNG(t)
	key := lwe.NewKey(cfg, prng)

	for m := int32(-4); m <= 3; m++ {
		ct := lwe.Encrypt(lwe.Encode(m), key, cfg, prng)
		require.Equal(t, m, lwe.Decode(lwe.Decrypt(ct, key)), "m=%d", m)
	}
}
