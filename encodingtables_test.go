// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseEncodingByNameKnownNames(t *testing.T) {
	assert.Equal(t, winAnsiEncoding, baseEncodingByName("WinAnsiEncoding"))
	assert.Equal(t, macRomanEncoding, baseEncodingByName("MacRomanEncoding"))
	assert.Equal(t, pdfDocEncoding, baseEncodingByName("PDFDocEncoding"))
}

func TestBaseEncodingByNameDefaultsToStandard(t *testing.T) {
	assert.Equal(t, standardEncoding, baseEncodingByName(""))
	assert.Equal(t, standardEncoding, baseEncodingByName("NoSuchEncoding"))
}

func TestBaseEncodingTablesFillASCIIRange(t *testing.T) {
	for _, tbl := range []map[byte]rune{standardEncoding, macRomanEncoding, winAnsiEncoding, pdfDocEncoding} {
		r, ok := tbl['A']
		assert.True(t, ok)
		assert.Equal(t, rune('A'), r)
	}
}

func TestGlyphNameToRuneAdobeGlyphList(t *testing.T) {
	r, ok := glyphNameToRune("Agrave")
	assert.True(t, ok)
	assert.Equal(t, rune(0x00C0), r)

	r, ok = glyphNameToRune("space")
	assert.True(t, ok)
	assert.Equal(t, rune(0x0020), r)
}

func TestGlyphNameToRuneUniConvention(t *testing.T) {
	r, ok := glyphNameToRune("uni0041")
	assert.True(t, ok)
	assert.Equal(t, rune(0x0041), r)
}

func TestGlyphNameToRuneShortUConvention(t *testing.T) {
	r, ok := glyphNameToRune("u0041")
	assert.True(t, ok)
	assert.Equal(t, rune(0x0041), r)
}

func TestGlyphNameToRuneSingleLetterFallback(t *testing.T) {
	r, ok := glyphNameToRune("Q")
	assert.True(t, ok)
	assert.Equal(t, rune('Q'), r)
}

func TestGlyphNameToRuneUnknownReturnsFalse(t *testing.T) {
	_, ok := glyphNameToRune("nonexistentglyphname")
	assert.False(t, ok)
}

func TestUTF16DecodeBasicMultilingualPlane(t *testing.T) {
	// "Hi" in UTF-16BE.
	b := []byte{0x00, 'H', 0x00, 'i'}
	assert.Equal(t, "Hi", utf16Decode(b))
}

func TestUTF16DecodeSurrogatePair(t *testing.T) {
	// U+1F600 (grinning face) as a UTF-16BE surrogate pair.
	b := []byte{0xD8, 0x3D, 0xDE, 0x00}
	got := utf16Decode(b)
	assert.Equal(t, string(rune(0x1F600)), got)
}

func TestUTF16DecodeOddLengthTruncates(t *testing.T) {
	b := []byte{0x00, 'H', 0x00}
	assert.Equal(t, "H", utf16Decode(b))
}

func TestPDFDocDecodeASCIIPassthrough(t *testing.T) {
	assert.Equal(t, "Hello", pdfDocDecode("Hello"))
}
