package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

const ALPHANUMERIC = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomSource is the only source of nondeterminism in the ledger: the validator draw and the
// authorization challenge. *rand.Rand satisfies it.
type RandomSource interface {
	// Uniform in [0, 1).
	Float64() float64
	// Uniform in [0, n).
	Intn(n int) int
}

// cryptoSource is a rand.Source64 backed by the operating system's CSPRNG.
type cryptoSource struct{}

func (cryptoSource) Seed(int64) {}

func (s cryptoSource) Int63() int64 {
	return int64(s.Uint64() & (1<<63 - 1))
}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}
	return binary.BigEndian.Uint64(b[:])
}

// NewCryptoRandom is the production randomness source.
func NewCryptoRandom() *rand.Rand {
	return rand.New(cryptoSource{})
}

// NewSeededRandom gives reproducible draws, for tests and simulations.
func NewSeededRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomString draws n characters from ALPHANUMERIC.
func RandomString(rnd RandomSource, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ALPHANUMERIC[rnd.Intn(len(ALPHANUMERIC))]
	}
	return string(b)
}
