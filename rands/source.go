package rands

import (
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/zeebo/xxh3"
)

// pcgStream is the second PCG word used by NewSource.
const pcgStream = 0x9e3779b97f4a7c15

// Source is the uniform random collaborator every draw goes through.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// Uint64 returns a uniformly distributed 64-bit value.
	Uint64() uint64
	// Uint64N returns a value in [0, n). It panics if n == 0.
	Uint64N(n uint64) uint64
}

type globalSource struct{}

func (globalSource) Uint64() uint64          { return rand.Uint64() }
func (globalSource) Uint64N(n uint64) uint64 { return rand.Uint64N(n) }

var _global Source = globalSource{}

// Global returns the process-wide source backed by the math/rand/v2 top level
// functions. The runtime keeps its state per thread, so concurrent callers
// never contend on it. It cannot be seeded.
func Global() Source {
	return _global
}

// NewSource returns a PCG generator seeded with seed. The result is not safe
// for concurrent use, wrap it with Locked when it has to be shared.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgStream))
}

// NewChaChaSource returns a ChaCha8 generator seeded with seed.
func NewChaChaSource(seed [32]byte) *rand.Rand {
	return rand.New(rand.NewChaCha8(seed))
}

// SeedFromString hashes s into a seed usable with NewSource.
func SeedFromString(s string) uint64 {
	return xxh3.HashString(s)
}

// DeriveSeed returns the seed of the i-th independent stream under seed.
func DeriveSeed(seed uint64, i int) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(i))
	return xxh3.HashSeed(b[:], seed)
}

type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// Locked serializes access to src so a single generator can be shared by
// several goroutines.
func Locked(src Source) Source {
	return &lockedSource{src: src}
}

func (l *lockedSource) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Uint64()
}

func (l *lockedSource) Uint64N(n uint64) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Uint64N(n)
}

// CountingSource counts how many values were taken from the wrapped Source.
type CountingSource struct {
	src Source
	n   atomic.Uint64
}

func Counting(src Source) *CountingSource {
	if src == nil {
		src = Global()
	}
	return &CountingSource{src: src}
}

func (c *CountingSource) Uint64() uint64 {
	c.n.Add(1)
	return c.src.Uint64()
}

func (c *CountingSource) Uint64N(n uint64) uint64 {
	c.n.Add(1)
	return c.src.Uint64N(n)
}

// Draws returns the number of values taken so far.
func (c *CountingSource) Draws() uint64 {
	return c.n.Load()
}
