// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

const empty = -1

// buckets is the bucket map used by a single induced sort.
//
// Every suffix-start index lives in one arena that is exactly as long as the
// text. Bucket c owns the span arena[head[c]:head[c+1]], which is made of
// its L-list in arena[head[c]:sHead[c]] followed by its S-list in
// arena[sHead[c]:head[c+1]]. Since the spans are laid out by ascending symbol,
// scanning the arena forwards visits the buckets in ascending order with each
// L-list before its S-list, and scanning backwards replays the exact reverse.
//
// Each sub-list has an explicit insertion cursor. The L-list cursor only ever
// moves forward. The S-list cursor moves forward while seeding and backward
// while inducing S-types, after the S-list has been cleared.
type buckets struct {
	arena []int
	head  []int // len(head) == sigma+1
	sHead []int
	lCur  []int
	sCur  []int
}

// newBuckets sizes the bucket map for text, whose symbols must lie in
// [0, sigma). All lists start out empty.
func newBuckets(text []int, types []slType, sigma int) *buckets {
	b := &buckets{
		arena: make([]int, len(text)),
		head:  make([]int, sigma+1),
		sHead: make([]int, sigma),
		lCur:  make([]int, sigma),
		sCur:  make([]int, sigma),
	}

	// Count the L-types and S-types of each symbol, using lCur and sCur
	// as scratch space before they become cursors.
	numL, numS := b.lCur, b.sCur
	for i, c := range text {
		if types[i].isS() {
			numS[c]++
		} else {
			numL[c]++
		}
	}
	var total int
	for c := 0; c < sigma; c++ {
		b.head[c] = total
		b.sHead[c] = total + numL[c]
		total += numL[c] + numS[c]
	}
	b.head[sigma] = total

	for i := range b.arena {
		b.arena[i] = empty
	}
	copy(b.lCur, b.head[:sigma])
	copy(b.sCur, b.sHead)
	return b
}

// seed appends every index in pos to the S-list of its symbol, in the order
// given.
func (b *buckets) seed(text, pos []int) {
	for _, i := range pos {
		c := text[i]
		b.arena[b.sCur[c]] = i
		b.sCur[c]++
	}
}

// induceL scans the bucket map in ascending order and, for every index i
// whose predecessor is L-type, appends i-1 to the L-list of text[i-1].
//
// An L-type predecessor is never smaller than its successor, so it is always
// appended at a position of the arena that the scan has yet to visit.
func (b *buckets) induceL(text []int, types []slType) {
	for k := 0; k < len(b.arena); k++ {
		i := b.arena[k]
		if i <= 0 {
			continue // empty slot or no predecessor
		}
		if j := i - 1; types[j] == typeL {
			c := text[j]
			b.arena[b.lCur[c]] = j
			b.lCur[c]++
		}
	}
}

// induceS clears every S-list and then scans the bucket map in descending
// order. For every index i whose predecessor is S-type, it inserts i-1 at
// the front of the S-list of text[i-1].
//
// The sentinel suffix is never induced, since it has no successor. It is the
// sole member of bucket 0 and is put back right after clearing.
func (b *buckets) induceS(text []int, types []slType) {
	sigma := len(b.sCur)
	for c := 0; c < sigma; c++ {
		end := b.head[c+1]
		for k := b.sHead[c]; k < end; k++ {
			b.arena[k] = empty
		}
		b.sCur[c] = end
	}
	if n := len(text); n > 0 {
		b.sCur[0]--
		b.arena[b.sCur[0]] = n - 1
	}

	for k := len(b.arena) - 1; k >= 0; k-- {
		i := b.arena[k]
		if i <= 0 {
			continue // empty slot or no predecessor
		}
		if j := i - 1; types[j].isS() {
			c := text[j]
			b.sCur[c]--
			b.arena[b.sCur[c]] = j
		}
	}
}

// sort runs all three phases of the induced sort seeded with pos.
func (b *buckets) sort(text []int, types []slType, pos []int) {
	b.seed(text, pos)
	b.induceL(text, types)
	b.induceS(text, types)
}

// order returns the flattened bucket map.
// After a complete induced sort, every slot is occupied.
func (b *buckets) order() []int {
	return b.arena
}

// starOrder returns the S*-positions in the order they appear in the
// flattened bucket map.
func (b *buckets) starOrder(types []slType, cnt int) []int {
	pos := make([]int, 0, cnt)
	for _, i := range b.arena {
		if i >= 0 && types[i] == typeSStar {
			pos = append(pos, i)
		}
	}
	return pos
}
