// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"cmp"
	"slices"
	"sort"

	"github.com/dsnet/golib/errs"
	"github.com/dsnet/suffix/suffixarray"
)

// Decode inverts the transform, returning the original sequence without
// its Sentinel. The input must hold exactly one Sentinel.
func Decode[T cmp.Ordered](bwt []suffixarray.Symbol[T]) (seq []T, err error) {
	defer errs.Recover(&err)

	end := -1
	for i, sym := range bwt {
		if sym.IsSentinel() {
			errs.Assert(end < 0, ErrAmbiguousSentinel)
			end = i
		}
	}
	errs.Assert(end >= 0, ErrMissingSentinel)

	// The first column of the rotation table is the sorted transform, so it
	// splits into one bucket of rows per symbol. The Sentinel is bucket 0,
	// and keys[k-1] is the value of bucket k.
	keys := suffixarray.Values(bwt)
	slices.SortFunc(keys, cmp.Compare[T])
	keys = slices.CompactFunc(keys, func(a, b T) bool { return cmp.Compare(a, b) == 0 })

	buckets := make([]int, len(bwt))
	offsets := make([]int, len(keys)+2) // offsets[k] is the first row of bucket k
	for i, sym := range bwt {
		if v, ok := sym.Value(); ok {
			k, _ := slices.BinarySearchFunc(keys, v, cmp.Compare[T])
			buckets[i] = k + 1
		}
		offsets[buckets[i]+1]++
	}
	for k := 1; k < len(offsets); k++ {
		offsets[k] += offsets[k-1]
	}

	// For each symbol, list where it occurs in the transform, in order.
	// All lists share one arena laid out like the buckets.
	arena := make([]int, len(bwt))
	cursors := slices.Clone(offsets[:len(offsets)-1])
	for i, k := range buckets {
		arena[cursors[k]] = i
		cursors[k]++
	}
	occurs := make([][]int, len(keys)+1)
	for k := range occurs {
		occurs[k] = arena[offsets[k]:offsets[k+1]]
	}

	// The row whose last symbol is the Sentinel holds the original sequence.
	// The j-th occurrence of a symbol in the first column and the j-th
	// occurrence in the last column are the same symbol of the sequence,
	// so every step moves to the rotation starting one symbol later.
	seq = make([]T, 0, len(bwt)-1)
	row := end
	for len(seq) < len(bwt)-1 {
		k := sort.Search(len(offsets), func(k int) bool { return offsets[k] > row }) - 1
		errs.Assert(k > 0, ErrCorrupt) // Reached the Sentinel's rotation early
		seq = append(seq, keys[k-1])
		row = occurs[k][row-offsets[k]]
	}
	errs.Assert(row == 0, ErrCorrupt)
	return seq, nil
}

// DecodeString inverts a transform over runes.
func DecodeString(bwt []suffixarray.Symbol[rune]) (string, error) {
	rs, err := Decode(bwt)
	if err != nil {
		return "", err
	}
	return string(rs), nil
}
