// Package randsrc provides a counter-mode deterministic byte source
// for reproducible candidate generation and testing, built on
// sha256-simd rather than a hand-rolled hash loop.
package randsrc

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/minio/sha256-simd"
)

// CounterSource is a counter-mode deterministic random byte stream:
// NextBytes(n) returns SHA-256(seed || counter) blocks concatenated
// and incremented, the same construction a DRBG built from a hash
// primitive uses. Two CounterSources built from the same seed produce
// the same byte stream, which is what makes IsProbablyPrime runs
// reproducible across test fixtures.
type CounterSource struct {
	seed    [32]byte
	counter uint64
	block   []byte
	pos     int
}

// NewCounterSource seeds a CounterSource from a caller-supplied key.
// The key is hashed once to spread short or low-entropy seeds across
// the full 256-bit state.
func NewCounterSource(seed []byte) *CounterSource {
	s := &CounterSource{}
	s.seed = sha256.Sum256(seed)
	return s
}

// NewRandomCounterSource seeds a CounterSource from crypto/rand, for
// callers that want the counter-mode construction's speed without
// giving up unpredictability.
func NewRandomCounterSource() (*CounterSource, error) {
	var seed [32]byte
	if _, err := io.ReadFull(rand.Reader, seed[:]); err != nil {
		return nil, err
	}
	return NewCounterSource(seed[:]), nil
}

func (s *CounterSource) refill() {
	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], s.counter)
	s.counter++
	h := sha256.New()
	h.Write(s.seed[:])
	h.Write(ctr[:])
	s.block = h.Sum(nil)
	s.pos = 0
}

// NextBytes fills buf with the next bytes of the counter-mode stream.
// It never returns an error; the signature matches
// pkg/primetest.ByteSource so a CounterSource can stand in for
// crypto/rand in reproducible test runs.
func (s *CounterSource) NextBytes(buf []byte) error {
	for i := range buf {
		if s.block == nil || s.pos >= len(s.block) {
			s.refill()
		}
		buf[i] = s.block[s.pos]
		s.pos++
	}
	return nil
}
