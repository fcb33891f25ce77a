// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Alphanumeric is the alphabet of generated test strings.
const Alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Rand implements a deterministic pseudo-random number generator.
// This differs from the math.Rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]) << 32
	x |= int(r.blk[5]) << 40
	x |= int(r.blk[6]) << 48
	x |= int(r.blk[7]&0x3f) << 56
	return x
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

// Between returns a number in [lo, hi].
func (r *Rand) Between(lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

// String returns n bytes drawn uniformly from alphabet.
func (r *Rand) String(n int, alphabet string) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

// Ints returns n numbers drawn uniformly from [0, sigma).
func (r *Rand) Ints(n, sigma int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = r.Intn(sigma)
	}
	return v
}

// Strings returns cnt strings over alphabet whose lengths are drawn
// uniformly from [minLen, maxLen].
func (r *Rand) Strings(cnt, minLen, maxLen int, alphabet string) []string {
	ss := make([]string, cnt)
	for i := range ss {
		ss[i] = r.String(r.Between(minLen, maxLen), alphabet)
	}
	return ss
}
