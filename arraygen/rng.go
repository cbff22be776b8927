// SPDX-License-Identifier: MIT
// Package: sortlab/arraygen
//
// rng.go: deterministic random helpers.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.

package arraygen

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand for seed; seed==0 ⇒ defaultRNGSeed.
// Callers that regenerate many sequences share one so each draw differs.
func NewRand(seed int64) *rand.Rand { return rngFromSeed(seed) }

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// uniformInRange draws one value from [min, max] inclusive.
// The span is computed in int64 so that wide ranges do not overflow.
func uniformInRange(r *rand.Rand, min, max int) int {
	span := int64(max) - int64(min) + 1
	return int(int64(min) + r.Int63n(span))
}

// poolLimit bounds the range width materialized by distinctFromRange.
const poolLimit = 1 << 20

// distinctFromRange returns size distinct values from [min, max].
// Callers guarantee max-min+1 >= size.
//
// Narrow ranges use a partial Fisher–Yates shuffle over the whole range: only
// the first size positions are shuffled. Ranges wider than poolLimit are
// sampled with rejection against a seen-set instead, which stays cheap
// because such ranges are at least 4x larger than size (see Generate's MaxSize).
func distinctFromRange(r *rand.Rand, size, min, max int) []int {
	width := int64(max) - int64(min) + 1
	if width <= poolLimit {
		w := int(width)
		pool := make([]int, w)
		for i := range pool {
			pool[i] = min + i
		}
		for i := 0; i < size; i++ {
			j := i + r.Intn(w-i)
			pool[i], pool[j] = pool[j], pool[i]
		}
		return pool[:size:size]
	}

	out := make([]int, 0, size)
	seen := make(map[int]struct{}, size)
	for len(out) < size {
		v := uniformInRange(r, min, max)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
