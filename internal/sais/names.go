// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

import "slices"

// substringEnds returns a table holding, for every S*-position p, the index
// of the last symbol of its S*-substring: the next S*-position to the right.
// The sentinel's substring is the sentinel alone.
// Entries for other positions are meaningless.
func substringEnds(n int, stars []int) []int {
	ends := make([]int, n)
	for k, p := range stars {
		if k+1 < len(stars) {
			ends[p] = stars[k+1]
		} else {
			ends[p] = p
		}
	}
	return ends
}

// nameSubstrings assigns a name to every S*-substring, visiting them in the
// induced order given by sorted. The first gets the name 1, and every next one
// gets the previous name if both substrings are element-wise equal and the
// next larger name otherwise. Equal substrings are adjacent in the induced
// order, so equal substrings always get equal names.
//
// It returns the names in the left-to-right order of stars, along with the
// largest name assigned.
func nameSubstrings(text []int, stars, sorted []int) (names []int, maxName int) {
	table := substringEnds(len(text), stars)

	// Once a position is named its end is no longer needed,
	// so the name replaces it in the same table.
	var prev []int
	for _, p := range sorted {
		cur := text[p : table[p]+1]
		if prev == nil || !slices.Equal(cur, prev) {
			maxName++
		}
		table[p] = maxName
		prev = cur
	}

	names = make([]int, len(stars))
	for k, p := range stars {
		names[k] = table[p]
	}
	return names, maxName
}

// reduce computes the final order of the S*-positions given their induced
// order. If every S*-substring is distinct, the induced order is already
// final. Otherwise the names form a shorter text whose suffix array orders
// the S*-suffixes, and that text is sorted recursively.
func reduce(text []int, stars, sorted []int, depth int, obs Observer) []int {
	names, maxName := nameSubstrings(text, stars, sorted)
	checkShrink(len(text), len(stars), maxName)
	if obs != nil {
		obs(Level{Depth: depth, Len: len(text), Stars: len(stars), Names: maxName})
	}
	if maxName == len(stars) {
		return sorted
	}

	// The last name always belongs to the sentinel's substring, which is
	// unique and smallest, but the sorted text still needs its own sentinel.
	reduced := append(names, sentinel)
	if len(reduced) >= len(text) {
		panic("sais: reduced text did not shrink")
	}
	sub := computeSA(reduced, maxName+1, depth+1, obs)

	// The first entry of sub is the suffix made of the sentinel alone.
	ordered := sorted[:0]
	for _, k := range sub[1:] {
		ordered = append(ordered, stars[k])
	}
	return ordered
}

// checkShrink panics if the S*-positions of a text of length n could fail
// to produce a strictly smaller problem.
//
// S*-positions are never adjacent, so there are at most ⌈n/2⌉ of them,
// and there can never be more names than named substrings.
func checkShrink(n, numStars, maxName int) {
	if numStars > (n+1)/2 || maxName > numStars || maxName < 1 {
		panic("sais: alphabet did not shrink")
	}
}
