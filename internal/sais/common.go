// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sais implements a linear time suffix array algorithm.
//
// The algorithm is Suffix Array by Induced Sorting (SA-IS) by Nong, Zhang,
// and Chan. Every position of the text is classified as L-type, S-type, or
// S*-type. The S*-positions seed a bucket sort that induces the order of all
// L-type and then all S-type positions. The induced order sorts the
// S*-substrings, which are named by rank; if two of them share a name, the
// names form a reduced text at most half as long that is sorted recursively.
// A final induced sort seeded with the sorted S*-positions yields the suffix
// array.
//
// The package operates on integer texts only. Callers rank their symbols
// into [1, sigma) and terminate the text with the sentinel 0.
//
// References:
//	https://ge-nong.googlecode.com/files/Two%20Efficient%20Algorithms%20for%20Linear%20Time%20Suffix%20Array%20Construction.pdf
//	https://sites.google.com/site/yuta256/sais
package sais

import "github.com/dsnet/suffix/internal"

// sentinel is the reserved symbol terminating every text.
const sentinel = 0

// Level describes one level of the recursion, reported after the
// S*-substrings of that level have been named.
type Level struct {
	Depth int // Zero for the top-level text
	Len   int // Length of the text, including the sentinel
	Stars int // Number of S*-positions
	Names int // Number of distinct S*-substrings
}

// Observer receives a Level for every text that needs naming.
type Observer func(Level)

// ComputeSA returns the suffix array of text.
// The text must end with the sentinel 0, which may not occur elsewhere,
// and all other symbols must lie in [1, sigma).
func ComputeSA(text []int, sigma int) []int {
	return ComputeSAObserved(text, sigma, nil)
}

// ComputeSAObserved is ComputeSA, but reports every level of the recursion
// to obs.
func ComputeSAObserved(text []int, sigma int, obs Observer) []int {
	if len(text) == 0 || text[len(text)-1] != sentinel {
		panic("sais: text is not terminated")
	}
	return computeSA(text, sigma, 0, obs)
}

func computeSA(text []int, sigma int, depth int, obs Observer) []int {
	types := classify(text)
	stars := starPositions(types)

	// With zero or one S*-positions, there is nothing to order.
	if len(stars) > 1 {
		b := newBuckets(text, types, sigma)
		b.sort(text, types, stars)
		sorted := b.starOrder(types, len(stars))
		stars = reduce(text, stars, sorted, depth, obs)
		if internal.Debug {
			verifyOrder(text, stars)
		}
	}

	b := newBuckets(text, types, sigma)
	b.sort(text, types, stars)
	return b.order()
}
