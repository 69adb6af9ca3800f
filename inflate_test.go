// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// These fixtures are real zlib streams (RFC 1950 wrapper over RFC 1951
// DEFLATE), generated independently of this package, so decoding them
// exercises the from-scratch inflate implementation against output it
// didn't produce itself.
func TestInflateZlibFixedHuffman(t *testing.T) {
	want := "Hello, this is a test string for DEFLATE compression testing purposes."
	raw, err := hex.DecodeString("789cf348cdc9c9d75128c9c82c5600a2448592d4e21285e292a2ccbc7485b4fc22051757371fc7105785e4fcdc82a2d4e2e2ccfc3cb01a907c416951417e716ab11e0068311948")
	require.NoError(t, err)

	got, err := inflateZlib(raw)
	require.NoError(t, err)
	require.Equal(t, want, string(got))
}

func TestInflateZlibStoredBlock(t *testing.T) {
	want := ""
	for i := 0; i < 80; i++ {
		want += "A"
	}
	raw, err := hex.DecodeString("7801015000afff414141414141414141414141414141414141414141414141414141414141414141414141414141414141414141414141414141414141414141414141414141414141414141414141414141414141414137251451")
	require.NoError(t, err)

	got, err := inflateZlib(raw)
	require.NoError(t, err)
	require.Equal(t, want, string(got))
}

func TestInflateZlibRejectsTruncatedInput(t *testing.T) {
	_, err := inflateZlib([]byte{0x78, 0x9c, 0x01})
	require.Error(t, err)
}
