// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleToUnicode = `
/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
1 begincodespacerange
<00> <FF>
endcodespacerange
2 beginbfchar
<41> <0041>
<42> <0042>
endbfchar
1 beginbfrange
<43> <45> <0043>
endbfrange
endcmap
end
end
`

func TestParseToUnicodeCMapBfChar(t *testing.T) {
	cm := parseToUnicodeCMap([]byte(sampleToUnicode))
	require.NotNil(t, cm)
	s, ok := cm.lookup([]byte{0x41})
	require.True(t, ok)
	assert.Equal(t, "A", s)
}

func TestParseToUnicodeCMapBfRange(t *testing.T) {
	cm := parseToUnicodeCMap([]byte(sampleToUnicode))
	s, ok := cm.lookup([]byte{0x44})
	require.True(t, ok)
	assert.Equal(t, "D", s)
}

func TestToUnicodeCMapDecodeFallsBackToReplacementChar(t *testing.T) {
	cm := parseToUnicodeCMap([]byte(sampleToUnicode))
	decoded := cm.Decode(string([]byte{0x41, 0xFE}))
	assert.Equal(t, "A�", decoded)
}

func TestToUnicodeCMapBfRangeArrayForm(t *testing.T) {
	data := `
1 begincodespacerange
<00> <FF>
endcodespacerange
1 beginbfrange
<10> <12> [<0041> <0042> <0043>]
endbfrange
`
	cm := parseToUnicodeCMap([]byte(data))
	s, ok := cm.lookup([]byte{0x11})
	require.True(t, ok)
	assert.Equal(t, "B", s)
}

func TestSimpleFontEncodingIdentityWhenEncodingAbsent(t *testing.T) {
	enc := newSimpleFontEncoding(nil)
	assert.Equal(t, "A", enc.Decode(string([]byte{0x41})))
}

func TestSimpleFontEncodingBaseTable(t *testing.T) {
	enc := newSimpleFontEncoding(baseEncodingByName("WinAnsiEncoding"))
	assert.Equal(t, "A", enc.Decode(string([]byte{0x41})))
}

func TestSimpleFontEncodingDifferencesOverride(t *testing.T) {
	enc := newSimpleFontEncoding(baseEncodingByName("WinAnsiEncoding"))
	diffs := array{int64(65), name("Agrave")}
	enc.applyDifferences(diffs)
	got := enc.Decode(string([]byte{0x41}))
	assert.Equal(t, "À", got)
}

func TestSimpleFontEncodingDifferencesStopsAtMalformedToken(t *testing.T) {
	enc := newSimpleFontEncoding(nil)
	// 65 "B" <malformed dict token> 67 "D" -- the walk should apply the
	// first pair and stop, leaving 67/"D" unapplied.
	diffs := array{int64(65), name("B"), dict{}, int64(67), name("D")}
	enc.applyDifferences(diffs)
	assert.NotEqual(t, rune(0), enc.table[65])
	assert.Equal(t, rune(0), enc.table[67])
}

func TestParseCIDWArrayListForm(t *testing.T) {
	w := array{int64(1), array{float64(500), float64(600), float64(700)}}
	widths := parseCIDWArray(w)
	assert.Equal(t, 500.0, widths[1])
	assert.Equal(t, 600.0, widths[2])
	assert.Equal(t, 700.0, widths[3])
}

func TestParseCIDWArrayRangeForm(t *testing.T) {
	w := array{int64(10), int64(12), float64(1000)}
	widths := parseCIDWArray(w)
	assert.Equal(t, 1000.0, widths[10])
	assert.Equal(t, 1000.0, widths[11])
	assert.Equal(t, 1000.0, widths[12])
	_, ok := widths[13]
	assert.False(t, ok)
}
