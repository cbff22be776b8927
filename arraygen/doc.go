// SPDX-License-Identifier: MIT
// Package: sortlab/arraygen
//
// Package arraygen builds the integer sequences the learner sorts and searches.
//
// What
//
//   - Generate(spec, duplicates, min, max, opts...) returns a fresh []int.
//   - SizeSpec chooses the length: Direct (N), Square (N²) or Rect (N×M).
//   - duplicates == true: every value is drawn uniformly from [min, max].
//   - duplicates == false: the range [min, max] is shuffled (Fisher–Yates) and
//     the first size values are taken, so all values are distinct.
//
// Determinism
//
//	Randomness flows only through the options: WithSeed(s) or WithRand(r).
//	Seed 0 maps to a fixed default seed, so calls without options are
//	reproducible too. No time-based sources are used.
//
// Errors
//
//   - ErrBadSize        negative N/M, or a resolved size above MaxSize.
//   - ErrInvalidRange   min > max.
//   - ErrRangeTooSmall  distinct values requested but max-min+1 < size.
//
// Size 0 is valid and yields an empty sequence.
package arraygen
