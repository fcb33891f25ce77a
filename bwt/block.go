// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

// The block transform follows the conventions of the bzip2 format. Instead of
// terminating the input with a Sentinel, all rotations of the block itself are
// sorted, and the row holding the unrotated block is recorded as the origin
// pointer. The rotations are sorted by suffix sorting the block concatenated
// with itself, since the first len(buf) symbols of every suffix starting in
// the first copy are exactly one rotation.
//
// References:
//	https://www.quora.com/How-can-I-optimize-burrows-wheeler-transform-and-inverse-transform-to-work-in-O-n-time-O-n-space
//	https://github.com/cscott/compressjs/blob/master/lib/BWT.js

import "github.com/dsnet/suffix/suffixarray"

// EncodeBlock transforms buf in place and returns the origin pointer.
// It returns -1 for an empty block.
func EncodeBlock(buf []byte) (ptr int) {
	if len(buf) == 0 {
		return -1
	}

	// TODO: Sort the rotations directly instead of doubling the input.
	t := make([]byte, 2*len(buf))
	copy(t, buf)
	copy(t[len(buf):], buf)
	sa := suffixarray.Bytes(t)

	var row int
	for _, idx := range sa[1:] { // sa[0] is the Sentinel
		if idx >= len(buf) {
			continue
		}
		if idx == 0 {
			ptr = row
			idx = len(buf)
		}
		buf[row] = t[idx-1]
		row++
	}
	return ptr
}

// DecodeBlock inverts EncodeBlock in place, given the origin pointer.
func DecodeBlock(buf []byte, ptr int) {
	if len(buf) == 0 {
		return
	}

	// Bucket the rows by their first symbol, and list where each symbol
	// occurs in buf. Listing the occurrences in bucket order means that
	// occurs[r] is the row of the rotation starting one symbol after the
	// rotation in row r.
	var starts [256]int
	for _, c := range buf {
		starts[c]++
	}
	var sum int
	for c, cnt := range starts {
		starts[c] = sum
		sum += cnt
	}
	occurs := make([]int, len(buf))
	for i, c := range buf {
		occurs[starts[c]] = i
		starts[c]++
	}

	out := make([]byte, len(buf))
	row := ptr
	for i := range out {
		row = occurs[row]
		out[i] = buf[row]
	}
	copy(buf, out)
}
