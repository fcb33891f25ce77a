// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

import (
	"fmt"
	"slices"
	"strings"
)

func (t slType) String() string {
	switch t {
	case typeL:
		return "L"
	case typeS:
		return "S"
	case typeSStar:
		return "S*"
	default:
		return fmt.Sprintf("slType(%d)", uint8(t))
	}
}

// String renders each bucket as its symbol followed by the L-list and the
// S-list. Empty slots are printed as underscores.
func (b *buckets) String() string {
	list := func(s []int) string {
		var ss []string
		for _, i := range s {
			if i == empty {
				ss = append(ss, "_")
			} else {
				ss = append(ss, fmt.Sprint(i))
			}
		}
		return "[" + strings.Join(ss, " ") + "]"
	}

	var ss []string
	for c := 0; c < len(b.sHead); c++ {
		lo, mid, hi := b.head[c], b.sHead[c], b.head[c+1]
		if lo == hi {
			continue
		}
		ss = append(ss, fmt.Sprintf("%d:{L:%s S:%s}", c, list(b.arena[lo:mid]), list(b.arena[mid:hi])))
	}
	return "{" + strings.Join(ss, ", ") + "}"
}

// verifyOrder panics unless the suffixes starting at pos are strictly
// increasing. It is quadratic in the worst case and only used for debugging.
func verifyOrder(text []int, pos []int) {
	for k := 1; k < len(pos); k++ {
		if slices.Compare(text[pos[k-1]:], text[pos[k]:]) >= 0 {
			panic(fmt.Sprintf("sais: suffixes %d and %d are out of order", pos[k-1], pos[k]))
		}
	}
}
