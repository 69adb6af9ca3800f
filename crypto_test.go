// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMD5SumKnownVectors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"abc", "900150983cd24fb0d6963f7d28e17f72"},
		{"The quick brown fox jumps over the lazy dog", "9e107d9d372bb6826bd81d3542a419d6"},
	}
	for _, c := range cases {
		sum := md5Sum([]byte(c.in))
		assert.Equal(t, c.want, hex.EncodeToString(sum[:]), "md5(%q)", c.in)
	}
}

func TestRC4KnownVector(t *testing.T) {
	// Classic RC4 test vector: key "Key", plaintext "Plaintext".
	key := []byte("Key")
	plain := []byte("Plaintext")
	want, _ := hex.DecodeString("bbf316e8d940af0ad3")

	got := rc4Crypt(key, plain)
	assert.Equal(t, want, got)

	// RC4 is its own inverse.
	roundTrip := rc4Crypt(key, got)
	assert.Equal(t, plain, roundTrip)
}

func TestPadPasswordShortAndLong(t *testing.T) {
	short := padPassword([]byte("abc"))
	assert.Len(t, short, 32)
	assert.Equal(t, []byte("abc"), short[:3])
	assert.Equal(t, passwordPad[:29], short[3:])

	long := padPassword([]byte(string(make([]byte, 40))))
	assert.Len(t, long, 32)
}

func TestPerObjectKeyLengthBound(t *testing.T) {
	fileKey := make([]byte, 16)
	key := perObjectKey(fileKey, objptr{id: 7, gen: 0})
	assert.Len(t, key, 16)
}
