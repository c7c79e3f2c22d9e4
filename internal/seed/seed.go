// SPDX-License-Identifier: MIT

// Package seed derives reproducible random streams from human-readable seed
// phrases. A phrase is absorbed into SHAKE256 under a domain tag and the
// squeezed output backs a math/rand Source64, so "demo-1" yields the same
// secrets and samples on every platform and Go release.
package seed

import (
	"encoding/binary"
	"math/rand"

	"golang.org/x/crypto/sha3"
)

// domainTag separates our streams from any other SHAKE256 use of the same phrase.
const domainTag = "oracles/seed/v1:"

// Source is a math/rand Source64 squeezing 8 bytes per draw from SHAKE256.
// It is not safe for concurrent use, like every math/rand Source.
type Source struct {
	xof sha3.ShakeHash
	buf [8]byte
}

var _ rand.Source64 = (*Source)(nil)

// NewSource returns a Source bound to phrase.
func NewSource(phrase string) *Source {
	s := &Source{}
	s.absorb([]byte(phrase))

	return s
}

// NewRand is shorthand for rand.New(NewSource(phrase)).
func NewRand(phrase string) *rand.Rand {
	return rand.New(NewSource(phrase))
}

// Uint64 squeezes the next 8 bytes as a little-endian word.
func (s *Source) Uint64() uint64 {
	_, _ = s.xof.Read(s.buf[:])

	return binary.LittleEndian.Uint64(s.buf[:])
}

// Int63 returns a non-negative 63-bit value.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed restarts the stream from the 8-byte little-endian encoding of v.
func (s *Source) Seed(v int64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	s.absorb(b[:])
}

func (s *Source) absorb(material []byte) {
	s.xof = sha3.NewShake256()
	_, _ = s.xof.Write([]byte(domainTag))
	_, _ = s.xof.Write(material)
}
