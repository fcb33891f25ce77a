// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"cmp"
	"slices"
)

// NaiveSuffixArray computes the suffix array of text followed by an implicit
// terminator that is smaller than every symbol. The result has length
// len(text)+1 and starts with len(text), the terminator's own suffix.
//
// The suffixes are sorted by direct comparison, so this is only usable on
// short inputs.
func NaiveSuffixArray[T cmp.Ordered](text []T) []int {
	sa := make([]int, len(text)+1)
	for i := range sa {
		sa[i] = i
	}
	// A proper prefix compares smaller, which is exactly how the
	// terminator orders a suffix before any suffix it is a prefix of.
	slices.SortFunc(sa, func(i, j int) int {
		return slices.Compare(text[i:], text[j:])
	})
	return sa
}

// RotationBWT computes the Burrows-Wheeler transform of text by sorting
// every rotation of text followed by a terminator that is smaller than every
// symbol, and reading off the last column.
//
// The terminator is left out of last, and end is the row it appeared in.
// Thus, len(last) == len(text) and the full column has len(text)+1 rows.
func RotationBWT[T cmp.Ordered](text []T) (last []T, end int) {
	n := len(text) + 1
	at := func(i int) (T, bool) {
		if i == len(text) {
			var zero T
			return zero, false
		}
		return text[i], true
	}

	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	slices.SortFunc(rows, func(a, b int) int {
		for k := 0; k < n; k++ {
			x, okx := at((a + k) % n)
			y, oky := at((b + k) % n)
			switch {
			case !okx && !oky:
				return 0
			case !okx:
				return -1
			case !oky:
				return +1
			}
			if c := cmp.Compare(x, y); c != 0 {
				return c
			}
		}
		return 0
	})

	end = -1
	last = make([]T, 0, len(text))
	for r, i := range rows {
		j := (i + n - 1) % n
		if j == len(text) {
			end = r
			continue
		}
		last = append(last, text[j])
	}
	return last, end
}
