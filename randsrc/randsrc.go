// Package randsrc provides the RNG handle injected into the RANDOM
// ordering heuristic. The core never mutates it except to draw from
// it, and never resolves a process-global seed itself: the caller
// owns the seed source, per the spec's concurrency/resource model.
package randsrc

import "math/rand"

// Source is satisfied by *math/rand.Rand. It is the minimal interface
// cnf.Order needs to shuffle a slice.
type Source interface {
	Intn(n int) int
}

// FromSeed returns a deterministic Source seeded with seed, suitable
// for reproducible CLI runs (--seed).
func FromSeed(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
