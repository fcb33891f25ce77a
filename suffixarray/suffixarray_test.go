// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffixarray

import (
	"errors"
	"strings"
	"testing"

	"github.com/dsnet/suffix/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	var vectors = []struct {
		input  string
		output []int
	}{{
		input:  "",
		output: []int{0},
	}, {
		input:  "a",
		output: []int{1, 0},
	}, {
		input:  "banana",
		output: []int{6, 5, 3, 1, 0, 4, 2},
	}, {
		input:  "abracadabra",
		output: []int{11, 10, 7, 0, 3, 5, 8, 1, 4, 6, 9, 2},
	}, {
		input:  "mississippi",
		output: []int{11, 10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2},
	}}

	for i, v := range vectors {
		if got := New([]byte(v.input)); !cmp.Equal(got, v.output) {
			t.Errorf("test %d, New(%q):\ngot  %v\nwant %v", i, v.input, got, v.output)
		}
		if got := New([]rune(v.input)); !cmp.Equal(got, v.output) {
			t.Errorf("test %d, New(%q) over runes:\ngot  %v\nwant %v", i, v.input, got, v.output)
		}
		if got := Bytes([]byte(v.input)); !cmp.Equal(got, v.output) {
			t.Errorf("test %d, Bytes(%q):\ngot  %v\nwant %v", i, v.input, got, v.output)
		}
	}
}

func TestNewAlphabets(t *testing.T) {
	ints := []int{-5, 300, -5, 7, 300, -5, 1 << 30}
	if diff := cmp.Diff(testutil.NaiveSuffixArray(ints), New(ints)); diff != "" {
		t.Errorf("ints, suffix array mismatch (-want +got):\n%s", diff)
	}

	floats := []float64{0.5, -1.25, 0.5, 3, -1.25, 0.5, 3}
	if diff := cmp.Diff(testutil.NaiveSuffixArray(floats), New(floats)); diff != "" {
		t.Errorf("floats, suffix array mismatch (-want +got):\n%s", diff)
	}

	words := strings.Fields("to be or not to be that is the question to be")
	if diff := cmp.Diff(testutil.NaiveSuffixArray(words), New(words)); diff != "" {
		t.Errorf("words, suffix array mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRandom(t *testing.T) {
	r := testutil.NewRand(0)
	for i := 0; i < 300; i++ {
		alphabet := testutil.Alphanumeric[:r.Between(1, len(testutil.Alphanumeric))]
		s := r.String(r.Between(0, 400), alphabet)
		sa := New([]byte(s))

		// The suffix array is a permutation of all indexes,
		// starting with the Sentinel.
		if len(sa) != len(s)+1 {
			t.Errorf("test %d, length mismatch: got %d, want %d", i, len(sa), len(s)+1)
			continue
		}
		if sa[0] != len(s) {
			t.Errorf("test %d, first entry: got %d, want %d", i, sa[0], len(s))
		}
		seen := make([]bool, len(sa))
		for _, j := range sa {
			if j < 0 || j >= len(sa) || seen[j] {
				t.Errorf("test %d, not a permutation: %v", i, sa)
				break
			}
			seen[j] = true
		}

		if diff := cmp.Diff(testutil.NaiveSuffixArray([]byte(s)), sa); diff != "" {
			t.Errorf("test %d, %s, suffix array mismatch (-want +got):\n%s", i, testutil.Abbrev(s), diff)
		}
		if diff := cmp.Diff(sa, Bytes([]byte(s))); diff != "" {
			t.Errorf("test %d, %s, Bytes mismatch (-New +Bytes):\n%s", i, testutil.Abbrev(s), diff)
		}
	}
}

func TestCompute(t *testing.T) {
	sym := func(s string) []Symbol[byte] { return Symbols([]byte(s)) }
	marked := func(s string) []Symbol[byte] { return append(sym(s), Sentinel[byte]()) }

	var vectors = []struct {
		input  []Symbol[byte]
		conf   *Config
		output []int
		err    error
	}{{
		input:  nil,
		output: []int{0},
	}, {
		input:  sym("banana"),
		output: []int{6, 5, 3, 1, 0, 4, 2},
	}, {
		input:  marked("banana"),
		output: []int{6, 5, 3, 1, 0, 4, 2},
	}, {
		input:  marked("banana"),
		conf:   &Config{AssumeMarked: true},
		output: []int{6, 5, 3, 1, 0, 4, 2},
	}, {
		input:  marked(""),
		conf:   &Config{AssumeMarked: true},
		output: []int{0},
	}, {
		input: sym("banana"),
		conf:  &Config{AssumeMarked: true},
		err:   ErrMissingSentinel,
	}, {
		input: nil,
		conf:  &Config{AssumeMarked: true},
		err:   ErrMissingSentinel,
	}, {
		input: append(marked("ban"), sym("ana")...),
		err:   ErrAmbiguousSentinel,
	}, {
		input: append(marked("ban"), marked("ana")...),
		err:   ErrAmbiguousSentinel,
	}, {
		input: append(marked("ban"), marked("ana")...),
		conf:  &Config{AssumeMarked: true},
		err:   ErrAmbiguousSentinel,
	}, {
		input: []Symbol[byte]{Sentinel[byte](), Sentinel[byte]()},
		err:   ErrAmbiguousSentinel,
	}}

	for i, v := range vectors {
		got, err := Compute(v.input, v.conf)
		if !errors.Is(err, v.err) {
			t.Errorf("test %d, error mismatch: got %v, want %v", i, err, v.err)
			continue
		}
		if !cmp.Equal(got, v.output) {
			t.Errorf("test %d, output mismatch:\ngot  %v\nwant %v", i, got, v.output)
		}
	}
}

func TestSymbol(t *testing.T) {
	var vectors = []struct {
		a, b Symbol[int]
		want int
	}{
		{Sentinel[int](), Sentinel[int](), 0},
		{Sentinel[int](), Of(-1 << 30), -1},
		{Of(-1 << 30), Sentinel[int](), +1},
		{Of(3), Of(4), -1},
		{Of(4), Of(4), 0},
		{Of(5), Of(4), +1},
	}
	for i, v := range vectors {
		if got := Compare(v.a, v.b); got != v.want {
			t.Errorf("test %d, Compare(%v, %v) = %d, want %d", i, v.a, v.b, got, v.want)
		}
	}

	var zero Symbol[string]
	if !zero.IsSentinel() || zero.String() != "$" {
		t.Errorf("zero Symbol is %q, want the Sentinel", zero.String())
	}
	if v, ok := Of("x").Value(); !ok || v != "x" {
		t.Errorf("Of(%q).Value() = (%q, %v)", "x", v, ok)
	}
	if got := Values(append(Symbols([]int{3, 1}), Sentinel[int]())); !cmp.Equal(got, []int{3, 1}) {
		t.Errorf("Values mismatch: got %v, want [3 1]", got)
	}
}
