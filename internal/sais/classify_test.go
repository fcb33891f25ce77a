// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

import (
	"slices"
	"strings"
	"testing"

	"github.com/dsnet/suffix/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

// byteText maps s onto an integer text terminated by the sentinel.
func byteText(s string) []int {
	text := make([]int, len(s)+1)
	for i := 0; i < len(s); i++ {
		text[i] = int(s[i]) + 1
	}
	return text
}

func formatTypes(types []slType) string {
	var ss []string
	for _, t := range types {
		ss = append(ss, t.String())
	}
	return strings.Join(ss, " ")
}

func TestClassify(t *testing.T) {
	var vectors = []struct {
		input  string
		output string
	}{{
		input:  "",
		output: "S*",
	}, {
		input:  "a",
		output: "L S*",
	}, {
		input:  "ab",
		output: "S* L S*",
	}, {
		input:  "aaa",
		output: "L L L S*",
	}, {
		input:  "aab",
		output: "S* S L S*",
	}, {
		input:  "banana",
		output: "L S* L S* L L S*",
	}, {
		input:  "mmiissiissiippii",
		output: "L L S* S L L S* S L L S* S L L L L S*",
	}}

	for i, v := range vectors {
		got := formatTypes(classify(byteText(v.input)))
		if got != v.output {
			t.Errorf("test %d, %q, types mismatch:\ngot  %s\nwant %s", i, v.input, got, v.output)
		}
	}
}

// TestClassifyDefinition checks every type against the definition:
// a position is S-type if its suffix is smaller than the next suffix.
func TestClassifyDefinition(t *testing.T) {
	r := testutil.NewRand(0)
	for i := 0; i < 200; i++ {
		text := append(r.Ints(r.Between(0, 64), 1+r.Between(1, 4)), sentinel)
		for j := range text[:len(text)-1] {
			text[j]++ // Reserve 0 for the sentinel
		}
		types := classify(text)

		want := make([]slType, len(text))
		for j := range text {
			if j == len(text)-1 || slices.Compare(text[j:], text[j+1:]) < 0 {
				want[j] = typeS
				if j == 0 || want[j-1] == typeL {
					want[j] = typeSStar
				}
			}
		}
		if diff := cmp.Diff(formatTypes(want), formatTypes(types)); diff != "" {
			t.Errorf("test %d, %v, types mismatch (-want +got):\n%s", i, text, diff)
		}

		// S*-positions are never adjacent.
		stars := starPositions(types)
		for k := 1; k < len(stars); k++ {
			if stars[k]-stars[k-1] < 2 {
				t.Errorf("test %d, adjacent S*-positions %d and %d", i, stars[k-1], stars[k])
			}
		}
		if len(stars) > (len(text)+1)/2 {
			t.Errorf("test %d, %d S*-positions in text of length %d", i, len(stars), len(text))
		}
	}
}
