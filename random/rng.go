// Package random supplies the randomness used by pattern synthesis: a
// cheap per-worker source plus the named distributions the designs draw
// from.
//
// There is no ambient global source. Each concurrent worker owns one
// [Rand], created with [New] at the start of its work and passed
// explicitly down the call graph; this keeps layer generation free of
// cross-worker lock contention.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/rand"
)

// Rand is a single worker's random source. It is not safe for concurrent
// use; give each goroutine its own.
type Rand struct {
	src rand.Source
	*rand.Rand
}

// New creates a Rand seeded from OS entropy.
func New() *Rand {
	return NewSeeded(entropySeed())
}

// NewSeeded creates a Rand with a fixed seed, for reproducible runs and
// tests.
func NewSeeded(seed uint64) *Rand {
	src := rand.NewSource(seed)
	return &Rand{src: src, Rand: rand.New(src)}
}

// Source exposes the underlying source for distribution primitives that
// consume a rand.Source directly.
func (r *Rand) Source() rand.Source { return r.src }

func entropySeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand failing means the OS entropy pool is broken;
		// there is no sensible fallback for a generative art seed.
		panic(fmt.Sprintf("random: reading OS entropy: %v", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Distribution produces one value of type T per draw from a worker source.
type Distribution[T any] interface {
	Sample(r *Rand) T
}

// Sample draws one value from dist using the worker source r.
func Sample[T any](r *Rand, dist Distribution[T]) T {
	return dist.Sample(r)
}

// SampleFn grants f scoped access to the worker source for composite
// draws that need several primitive samples from the same source.
func SampleFn[T any](r *Rand, f func(*Rand) T) T {
	return f(r)
}
