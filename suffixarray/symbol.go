// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixarray

import (
	"cmp"
	"fmt"
)

// Symbol is either a value of the alphabet T or the Sentinel.
// The Sentinel compares less than every value.
//
// The zero Symbol is the Sentinel.
type Symbol[T cmp.Ordered] struct {
	val   T
	valid bool
}

// Sentinel returns the terminator symbol.
func Sentinel[T cmp.Ordered]() Symbol[T] { return Symbol[T]{} }

// Of returns the symbol holding v.
func Of[T cmp.Ordered](v T) Symbol[T] { return Symbol[T]{val: v, valid: true} }

// IsSentinel reports whether s is the Sentinel.
func (s Symbol[T]) IsSentinel() bool { return !s.valid }

// Value returns the value held by s.
// The boolean is false for the Sentinel.
func (s Symbol[T]) Value() (T, bool) { return s.val, s.valid }

// Compare returns -1, 0, or +1 depending on whether a is less than, equal
// to, or greater than b. Values are compared with cmp.Compare.
func Compare[T cmp.Ordered](a, b Symbol[T]) int {
	switch {
	case !a.valid && !b.valid:
		return 0
	case !a.valid:
		return -1
	case !b.valid:
		return +1
	}
	return cmp.Compare(a.val, b.val)
}

// Equal reports whether s and t are the same symbol.
func (s Symbol[T]) Equal(t Symbol[T]) bool { return Compare(s, t) == 0 }

func (s Symbol[T]) String() string {
	if !s.valid {
		return "$"
	}
	return fmt.Sprint(s.val)
}

// Symbols wraps every value of seq.
func Symbols[T cmp.Ordered](seq []T) []Symbol[T] {
	syms := make([]Symbol[T], len(seq))
	for i, v := range seq {
		syms[i] = Of(v)
	}
	return syms
}

// Values returns the values of seq in order, leaving out any Sentinel.
func Values[T cmp.Ordered](seq []Symbol[T]) []T {
	vals := make([]T, 0, len(seq))
	for _, s := range seq {
		if s.valid {
			vals = append(vals, s.val)
		}
	}
	return vals
}
