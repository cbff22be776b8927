// SPDX-License-Identifier: MIT
// Package: sortlab/arraygen
//
// errors.go: sentinel errors for the arraygen package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w via genErrorf.
//   • Generate never panics on caller data; only option constructors panic
//     on nil arguments.

package arraygen

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative dimension or a resolved size above MaxSize.
var ErrBadSize = errors.New("arraygen: invalid size")

// ErrInvalidRange indicates min > max.
var ErrInvalidRange = errors.New("arraygen: invalid value range")

// ErrRangeTooSmall indicates that distinct values were requested but the
// value range holds fewer values than the requested size.
var ErrRangeTooSmall = errors.New("arraygen: value range too small for distinct values")

// ErrUnknownSizeMode indicates a SizeMode outside Direct/Square/Rect.
var ErrUnknownSizeMode = errors.New("arraygen: unknown size mode")

// genErrorf wraps sentinel with a formatted detail, keeping errors.Is working.
func genErrorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
