package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
)

// ErrEntropySource reports that the entropy source could not supply a seed.
// It is not retried.
var ErrEntropySource = errors.New("entropy source failure")

// deriveTag separates derived keys from the key a Seed's own generator uses.
const deriveTag = 0x9e3779b97f4a7c15

// Seed is a ChaCha8 key. Seeds form a tree: Derive gives the key of an
// independent sub-stream, so a call can hand one seed to each simulation and
// each simulation one seed to each chunk.
type Seed [32]byte

// NewSeed reads a fresh seed from r, or from crypto/rand when r is nil.
func NewSeed(r io.Reader) (Seed, error) {
	if r == nil {
		r = cryptorand.Reader
	}
	var s Seed
	if _, err := io.ReadFull(r, s[:]); err != nil {
		return Seed{}, fmt.Errorf("%w: %v", ErrEntropySource, err)
	}
	return s, nil
}

// SeedFromUint64 expands v into a full seed. Equal values give equal seeds.
func SeedFromUint64(v uint64) Seed {
	var s Seed
	binary.LittleEndian.PutUint64(s[:8], v)
	return s.Derive(0)
}

// Derive returns the seed of sub-stream i.
func (s Seed) Derive(i uint64) Seed {
	key := s
	binary.LittleEndian.PutUint64(key[16:24], binary.LittleEndian.Uint64(key[16:24])^deriveTag)
	binary.LittleEndian.PutUint64(key[24:32], binary.LittleEndian.Uint64(key[24:32])^i)
	src := rand.NewChaCha8(key)
	var out Seed
	for j := 0; j < len(out); j += 8 {
		binary.LittleEndian.PutUint64(out[j:], src.Uint64())
	}
	return out
}

// Generator returns a new standard-normal generator keyed by s.
func (s Seed) Generator() *Generator {
	return Standard(rand.NewChaCha8(s))
}
