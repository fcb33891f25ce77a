// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

// slType classifies the suffix starting at some position relative to the
// suffix that follows it.
type slType uint8

const (
	typeL     slType = iota // suffix is larger than its successor
	typeS                   // suffix is smaller than its successor
	typeSStar               // S-type preceded by an L-type (or at position 0)
)

// isS reports whether t is an S-type, which includes S*-types.
func (t slType) isS() bool { return t != typeL }

// classify computes the SL-type of every position of text.
// The text must end with the sentinel.
//
// The types are computed by a single backward scan:
//	- position len(text)-1 (the sentinel) is type S.
//	- position i is type S if text[i] < text[i+1], or if text[i] == text[i+1] and i+1 is type S.
//	- position i is type L otherwise.
// A forward scan then promotes every S-type position that starts the text
// or follows an L-type position to type S*.
func classify(text []int) []slType {
	n := len(text)
	types := make([]slType, n)
	if n == 0 {
		return types
	}
	types[n-1] = typeS
	for i := n - 2; i >= 0; i-- {
		c0, c1 := text[i], text[i+1]
		if c0 < c1 || (c0 == c1 && types[i+1] == typeS) {
			types[i] = typeS
		}
	}
	for i, t := range types {
		if t == typeS && (i == 0 || types[i-1] == typeL) {
			types[i] = typeSStar
		}
	}
	return types
}

// starPositions returns the S*-positions in left-to-right order.
func starPositions(types []slType) []int {
	var cnt int
	for _, t := range types {
		if t == typeSStar {
			cnt++
		}
	}
	pos := make([]int, 0, cnt)
	for i, t := range types {
		if t == typeSStar {
			pos = append(pos, i)
		}
	}
	return pos
}
