// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bwt implements the Burrows-Wheeler Transform.
//
// The transform of a sequence is the last column of the sorted table of all
// rotations of the sequence followed by the Sentinel. It is derived from the
// suffix array in linear time: row i of the table starts at sa[i], so its
// last symbol is the one preceding sa[i], or the Sentinel if sa[i] is 0.
// The inverse transform walks the rows from first column to last column,
// emitting the original sequence front to back.
package bwt

import (
	"cmp"
	"iter"

	"github.com/dsnet/golib/errs"
	"github.com/dsnet/suffix/internal"
	"github.com/dsnet/suffix/suffixarray"
)

// Marker is the rune that terminates strings given to EncodeString and
// that stands for the Sentinel in FormatString.
const Marker = '\x00'

var (
	ErrAmbiguousSentinel = internal.ErrAmbiguousSentinel
	ErrMissingSentinel   = internal.ErrMissingSentinel
	ErrCorrupt           = internal.ErrCorrupt
)

// Stream produces the transform of a sequence one symbol at a time.
//
// A Stream can be consumed exactly once. After the last symbol, Next reports
// false forever and All yields nothing. Use Collect to keep the transform
// around for repeated traversal.
// A Stream is not safe for concurrent use.
type Stream[T cmp.Ordered] struct {
	seq []suffixarray.Symbol[T] // Terminated by the Sentinel
	sa  []int
	pos int // Number of symbols produced so far
}

// NewStream returns a Stream over the transform of seq.
func NewStream[T cmp.Ordered](seq []T) *Stream[T] {
	st, err := newStream(terminate(suffixarray.Symbols(seq)))
	if err != nil {
		panic(err) // Plain values cannot hold the Sentinel
	}
	return st
}

func newStream[T cmp.Ordered](work []suffixarray.Symbol[T]) (*Stream[T], error) {
	sa, err := suffixarray.Compute(work, &suffixarray.Config{AssumeMarked: true})
	if err != nil {
		return nil, err
	}
	return &Stream[T]{seq: work, sa: sa}, nil
}

// Len reports the length of the whole transform, which is one more than the
// length of the unterminated sequence.
func (st *Stream[T]) Len() int { return len(st.sa) }

// Next returns the next symbol of the transform.
// It reports false once the transform is exhausted.
func (st *Stream[T]) Next() (suffixarray.Symbol[T], bool) {
	if st.pos >= len(st.sa) {
		return suffixarray.Sentinel[T](), false
	}
	i := st.sa[st.pos]
	st.pos++
	if i == 0 {
		return suffixarray.Sentinel[T](), true
	}
	return st.seq[i-1], true
}

// All returns an iterator over the remaining symbols of the transform.
// Iterating consumes the Stream.
func (st *Stream[T]) All() iter.Seq[suffixarray.Symbol[T]] {
	return func(yield func(suffixarray.Symbol[T]) bool) {
		for {
			sym, ok := st.Next()
			if !ok || !yield(sym) {
				return
			}
		}
	}
}

// Collect consumes the Stream and returns the remaining symbols.
func (st *Stream[T]) Collect() []suffixarray.Symbol[T] {
	out := make([]suffixarray.Symbol[T], 0, len(st.sa)-st.pos)
	for sym := range st.All() {
		out = append(out, sym)
	}
	return out
}

// Encode returns the transform of seq, which has exactly one Sentinel and is
// one longer than seq.
func Encode[T cmp.Ordered](seq []T) []suffixarray.Symbol[T] {
	return NewStream(seq).Collect()
}

// EncodeSymbols returns the transform of seq. The input may already end with
// the Sentinel, but may not hold it anywhere else.
func EncodeSymbols[T cmp.Ordered](seq []suffixarray.Symbol[T]) ([]suffixarray.Symbol[T], error) {
	st, err := newStream(terminate(seq))
	if err != nil {
		return nil, err
	}
	return st.Collect(), nil
}

// EncodeString returns the transform of the runes of s. A trailing Marker
// is taken as the terminator, while a Marker anywhere else is ambiguous.
func EncodeString(s string) (bwt []suffixarray.Symbol[rune], err error) {
	defer errs.Recover(&err)

	rs := []rune(s)
	if n := len(rs); n > 0 && rs[n-1] == Marker {
		rs = rs[:n-1]
	}
	work := make([]suffixarray.Symbol[rune], len(rs)+1)
	for i, r := range rs {
		errs.Assert(r != Marker, ErrAmbiguousSentinel)
		work[i] = suffixarray.Of(r)
	}
	st, err := newStream(work)
	errs.Panic(err)
	return st.Collect(), nil
}

// FormatString renders a transform over runes as a string,
// writing the Sentinel as the Marker.
func FormatString(bwt []suffixarray.Symbol[rune]) string {
	rs := make([]rune, len(bwt))
	for i, sym := range bwt {
		rs[i] = Marker
		if r, ok := sym.Value(); ok {
			rs[i] = r
		}
	}
	return string(rs)
}

// terminate returns seq if it ends with the Sentinel,
// and otherwise a copy of seq with the Sentinel appended.
func terminate[T cmp.Ordered](seq []suffixarray.Symbol[T]) []suffixarray.Symbol[T] {
	if n := len(seq); n > 0 && seq[n-1].IsSentinel() {
		return seq
	}
	work := make([]suffixarray.Symbol[T], len(seq)+1)
	copy(work, seq)
	return work
}
