// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of definitions shared by the suffix
// sorting and transform packages.
//
// For performance reasons, the internal packages lack strong error checking
// and require that the caller ensure that strict invariants are kept.
package internal

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "suffix: " + string(e) }

var (
	// ErrAmbiguousSentinel reports an input that already holds the
	// terminator somewhere other than its final position, or holds it twice.
	ErrAmbiguousSentinel error = Error("ambiguous sentinel")

	// ErrMissingSentinel reports an input that must carry exactly one
	// terminator but has none.
	ErrMissingSentinel error = Error("missing sentinel")

	// ErrCorrupt reports a transform that no input sequence could produce.
	ErrCorrupt error = Error("transform is corrupted")
)
