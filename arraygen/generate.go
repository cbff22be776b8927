// SPDX-License-Identifier: MIT
// Package: sortlab/arraygen
//
// generate.go: sequence construction.

package arraygen

import (
	"fmt"
	"math"
)

// MaxSize is the largest sequence Generate will build.
const MaxSize = poolLimit / 4

// SizeMode selects how N and M resolve to a sequence length.
type SizeMode int

const (
	// Direct: length N.
	Direct SizeMode = iota + 1
	// Square: length N×N.
	Square
	// Rect: length N×M.
	Rect
)

// String returns the mode name.
func (m SizeMode) String() string {
	switch m {
	case Direct:
		return "direct"
	case Square:
		return "square"
	case Rect:
		return "rect"
	default:
		return fmt.Sprintf("sizemode(%d)", int(m))
	}
}

// ParseSizeMode maps "direct", "square" or "rect" to a SizeMode.
func ParseSizeMode(s string) (SizeMode, error) {
	switch s {
	case "direct", "n":
		return Direct, nil
	case "square", "nxn":
		return Square, nil
	case "rect", "nxm":
		return Rect, nil
	}
	return 0, genErrorf(ErrUnknownSizeMode, "%q", s)
}

// SizeSpec describes the requested length. M is read only in Rect mode.
type SizeSpec struct {
	Mode SizeMode
	N    int
	M    int
}

// Size resolves the spec to a length, validating dimensions and MaxSize.
func (s SizeSpec) Size() (int, error) {
	if s.N < 0 {
		return 0, genErrorf(ErrBadSize, "N=%d is negative", s.N)
	}
	var size int64
	switch s.Mode {
	case Direct:
		size = int64(s.N)
	case Square:
		size = int64(s.N) * int64(s.N)
	case Rect:
		if s.M < 0 {
			return 0, genErrorf(ErrBadSize, "M=%d is negative", s.M)
		}
		size = int64(s.N) * int64(s.M)
	default:
		return 0, genErrorf(ErrUnknownSizeMode, "%d", int(s.Mode))
	}
	if size > MaxSize || size < 0 {
		return 0, genErrorf(ErrBadSize, "%s size %d exceeds %d", s.Mode, size, MaxSize)
	}
	return int(size), nil
}

// Generate returns a new sequence sized by spec with values in [min, max].
// With duplicates, each value is uniform over the range; without, values are
// distinct and drawn by shuffling the range.
//
// Complexity: O(size) with duplicates; O(max-min+1) for narrow distinct
// ranges, expected O(size) for wide ones.
func Generate(spec SizeSpec, duplicates bool, min, max int, opts ...Option) ([]int, error) {
	size, err := spec.Size()
	if err != nil {
		return nil, err
	}
	if min > max {
		return nil, genErrorf(ErrInvalidRange, "min %d > max %d", min, max)
	}
	if uint64(max)-uint64(min) >= math.MaxInt64 {
		return nil, genErrorf(ErrInvalidRange, "[%d, %d] is too wide", min, max)
	}
	width := int64(max) - int64(min) + 1
	if !duplicates && width < int64(size) {
		return nil, genErrorf(ErrRangeTooSmall, "%d distinct values requested from %d", size, width)
	}

	cfg := newGenConfig(opts...)
	if !duplicates {
		return distinctFromRange(cfg.rng, size, min, max), nil
	}
	seq := make([]int, size)
	for i := range seq {
		seq[i] = uniformInRange(cfg.rng, min, max)
	}
	return seq, nil
}
