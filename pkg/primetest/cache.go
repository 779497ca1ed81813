package primetest

import (
	"sync"

	"github.com/spaolacci/murmur3"

	"go.firedancer.io/bignum/internal/mag"
)

// candidateCache remembers the outcome of recent IsProbablyPrime
// calls keyed by a murmur3 hash of the candidate's big-endian bytes,
// so a caller sieving many nearby odd candidates (as pkg/bigint's
// probable-prime generator does) doesn't pay for the same Miller-Rabin
// rounds twice when a candidate recurs across overlapping sieve
// windows. It is a small bounded LRU-ish map, not a correctness
// requirement: a cache miss just falls through to the real test.
type candidateCache struct {
	mu       sync.Mutex
	entries  map[uint64]bool
	order    []uint64
	capacity int
}

func newCandidateCache(capacity int) *candidateCache {
	return &candidateCache{
		entries:  make(map[uint64]bool, capacity),
		capacity: capacity,
	}
}

func hashCandidate(n mag.Mag) uint64 {
	n = n.Normalize()
	buf := make([]byte, len(n)*4)
	for i, w := range n {
		buf[i*4] = byte(w >> 24)
		buf[i*4+1] = byte(w >> 16)
		buf[i*4+2] = byte(w >> 8)
		buf[i*4+3] = byte(w)
	}
	return murmur3.Sum64(buf)
}

func (c *candidateCache) lookup(n mag.Mag) (result bool, ok bool) {
	h := hashCandidate(n)
	c.mu.Lock()
	defer c.mu.Unlock()
	result, ok = c.entries[h]
	return result, ok
}

func (c *candidateCache) store(n mag.Mag, result bool) {
	h := hashCandidate(n)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[h]; !exists {
		if len(c.order) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, h)
	}
	c.entries[h] = result
}

// defaultCache backs the package-level cached helper IsProbablyPrimeCached.
var defaultCache = newCandidateCache(4096)

// IsProbablyPrimeCached wraps IsProbablyPrime with defaultCache: a
// cache hit returns immediately, a miss runs the real test and
// remembers its outcome. Intended for sieve-style callers that
// re-probe overlapping candidate windows (see pkg/bigint's
// probable-prime generator).
func IsProbablyPrimeCached(n mag.Mag, certainty int, src ByteSource) (bool, error) {
	if result, ok := defaultCache.lookup(n); ok {
		return result, nil
	}
	result, err := IsProbablyPrime(n, certainty, src)
	if err != nil {
		return false, err
	}
	defaultCache.store(n, result)
	return result, nil
}
