// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package suffixarray computes suffix arrays over arbitrary ordered alphabets
// in linear time.
//
// A suffix array lists the start of every suffix of a sequence in
// lexicographic order of the suffixes. Every sequence is sorted with a unique
// terminator, the Sentinel, appended to it. The Sentinel is smaller than any
// value, so the first entry of a suffix array is always the index of the
// Sentinel itself.
package suffixarray

import (
	"cmp"
	"slices"

	"github.com/dsnet/golib/errs"
	"github.com/dsnet/suffix/internal"
	"github.com/dsnet/suffix/internal/sais"
)

var (
	// ErrAmbiguousSentinel reports an input holding the Sentinel anywhere
	// other than its final position.
	ErrAmbiguousSentinel = internal.ErrAmbiguousSentinel

	// ErrMissingSentinel reports an input that was declared terminated,
	// but does not end with the Sentinel.
	ErrMissingSentinel = internal.ErrMissingSentinel
)

// Config configures the computation of a suffix array.
type Config struct {
	// AssumeMarked declares that the input already ends with the Sentinel.
	// By default, the Sentinel is appended to inputs lacking one.
	AssumeMarked bool
}

// Compute returns the suffix array of seq. A nil conf uses the defaults.
//
// Unless the input already ends with the Sentinel, the suffix array is that
// of seq with the Sentinel appended, so it is one longer than seq.
// Either way, sa[0] is the index of the Sentinel.
func Compute[T cmp.Ordered](seq []Symbol[T], conf *Config) (sa []int, err error) {
	defer errs.Recover(&err)

	var assumeMarked bool
	if conf != nil {
		assumeMarked = conf.AssumeMarked
	}

	work := seq
	if n := len(seq); n == 0 || !seq[n-1].IsSentinel() {
		errs.Assert(!assumeMarked, ErrMissingSentinel)
		work = make([]Symbol[T], n+1) // The zero Symbol is the Sentinel
		copy(work, seq)
	}
	text, sigma := rankSymbols(work)
	return sais.ComputeSA(text, sigma), nil
}

// New returns the suffix array of seq with the Sentinel appended.
func New[T cmp.Ordered](seq []T) []int {
	sa, err := Compute(Symbols(seq), nil)
	if err != nil {
		panic(err) // Plain values cannot hold the Sentinel
	}
	return sa
}

// Bytes returns the suffix array of b with the Sentinel appended.
// It is equivalent to New(b), but avoids sorting the alphabet.
func Bytes(b []byte) []int {
	text := make([]int, len(b)+1)
	for i, c := range b {
		text[i] = int(c) + 1
	}
	return sais.ComputeSA(text, 1+256)
}

// rankSymbols maps the terminated sequence work onto the integer alphabet
// of the sais package: the Sentinel becomes 0 and the distinct values become
// 1, 2, 3, and so on in ascending order. It returns the mapped text along
// with the size of its alphabet.
func rankSymbols[T cmp.Ordered](work []Symbol[T]) (text []int, sigma int) {
	n := len(work)
	idxs := make([]int, n-1)
	for i := range idxs {
		errs.Assert(work[i].valid, ErrAmbiguousSentinel)
		idxs[i] = i
	}
	slices.SortFunc(idxs, func(i, j int) int {
		return cmp.Compare(work[i].val, work[j].val)
	})

	text = make([]int, n) // The Sentinel maps to 0
	var rank int
	for k, i := range idxs {
		if k == 0 || cmp.Compare(work[idxs[k-1]].val, work[i].val) != 0 {
			rank++
		}
		text[i] = rank
	}
	return text, rank + 1
}
