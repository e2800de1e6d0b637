// Package sampling provides the injectable randomness sources consumed by
// key generation and encryption: a uniform int32 sampler and a Gaussian
// int32 sampler, both driven by a seedable PRNG so that tests can pin the
// seed and get deterministic ciphertexts.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"math"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// PRNG is an injectable, reseedable source of pseudo-random bytes. It
// replaces any process-wide RNG: every sampling call in this module takes
// one explicitly.
type PRNG interface {
	io.Reader
	// Reset rewinds the stream back to the state it had right after
	// construction, so the same sequence of bytes can be replayed.
	Reset()
}

// KeyedPRNG is a PRNG backed by a blake3 extendable-output stream, keyed
// from an arbitrary-length seed via blake2b. Two KeyedPRNGs built from the
// same seed produce identical byte streams.
type KeyedPRNG struct {
	key    [32]byte
	hasher *blake3.Hasher
	digest *blake3.Digest
}

// NewKeyedPRNG derives a 32-byte blake3 key from seed (of any length) via
// blake2b-256, and returns a PRNG whose output is fully determined by it.
func NewKeyedPRNG(seed []byte) (*KeyedPRNG, error) {
	key := blake2b.Sum256(seed)
	h, err := blake3.NewKeyed(key[:])
	if err != nil {
		return nil, err
	}
	p := &KeyedPRNG{key: key, hasher: h}
	p.Reset()
	return p, nil
}

// NewPRNG returns a KeyedPRNG seeded non-deterministically from the OS
// entropy source, for production use outside of tests.
func NewPRNG() (*KeyedPRNG, error) {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return nil, err
	}
	return NewKeyedPRNG(seed)
}

// Read fills p with bytes from the keyed stream.
func (p *KeyedPRNG) Read(b []byte) (int, error) {
	return p.digest.Read(b)
}

// Reset rewinds the stream to its start.
func (p *KeyedPRNG) Reset() {
	p.digest = p.hasher.Digest()
}

// UniformInt32 draws size independent uniform int32 values, covering the
// full signed 32-bit range.
func UniformInt32(prng PRNG, size int) []int32 {
	buf := make([]byte, 4*size)
	if _, err := io.ReadFull(prng, buf); err != nil {
		panic(err)
	}
	out := make([]int32, size)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(buf[4*i : 4*i+4]))
	}
	return out
}

// GaussianInt32 draws size independent samples of round((2^31-1) * z)
// where z ~ N(0, std), each cast to int32 with 2^32 wrap-around.
func GaussianInt32(prng PRNG, std float64, size int) []int32 {
	const scale = float64((int64(1) << 31) - 1)
	out := make([]int32, size)
	for i := range out {
		z := standardNormal(prng)
		out[i] = int32(int64(math.Round(scale * std * z)))
	}
	return out
}

// standardNormal draws one N(0,1) sample via the Box-Muller transform,
// fed by two uniform floats drawn from prng.
func standardNormal(prng PRNG) float64 {
	u1 := uniformFloat01(prng)
	u2 := uniformFloat01(prng)
	if u1 == 0 {
		u1 = math.SmallestNonzeroFloat64
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// uniformFloat01 draws a uniform float64 in [0, 1) from 53 bits of the
// prng's stream.
func uniformFloat01(prng PRNG) float64 {
	var buf [8]byte
	if _, err := io.ReadFull(prng, buf[:]); err != nil {
		panic(err)
	}
	bits := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(bits) / float64(uint64(1)<<53)
}
