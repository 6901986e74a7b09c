// Package heuristic - RNG utilities shared by the constructors and the optimizer.
//
// Goals:
//   - Isolation: every call builds its own *rand.Rand; nothing process-wide.
//   - Determinism on request: a non-zero seed reproduces a run exactly.
//   - Fresh streams otherwise: seed == 0 draws a seed from crypto/rand.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; generators never leave the call
//     that created them.
package heuristic

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/katalvlaran/greenwave/core"
)

// rngFromSeed returns a generator owned by the caller.
// Policy: seed == 0 ⇒ entropySeed(); otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = entropySeed()
	}
	return rand.New(rand.NewSource(seed))
}

// entropySeed reads 8 bytes from the OS entropy source. If that fails the
// wall clock is mixed instead so a generator is always produced.
func entropySeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err == nil {
		if s := int64(binary.LittleEndian.Uint64(buf[:])); s != 0 {
			return s
		}
	}
	return mixSeed(time.Now().UnixNano(), 0)
}

// mixSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer. Small input changes give well-spread outputs.
func mixSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveSeed returns the seed of stream number stream derived from base.
// The benchmark uses it to give every run and every phase its own
// reproducible generator from one experiment seed.
func DeriveSeed(base int64, stream uint64) int64 {
	s := mixSeed(base, stream)
	if s == 0 {
		s = 1
	}
	return s
}

// randomTiming draws a timing uniformly from [0, c).
func randomTiming(rng *rand.Rand, c core.TimeUnit) core.TimeUnit {
	return core.TimeUnit(rng.Intn(int(c)))
}

// shuffleVertices performs an in-place Fisher–Yates shuffle.
func shuffleVertices(vs []core.Vertex, rng *rand.Rand) {
	for i := len(vs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		vs[i], vs[j] = vs[j], vs[i]
	}
}
