// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixIdentMul(t *testing.T) {
	m := ident()
	assert.Equal(t, matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, m)

	a := translateMatrix(5, 7)
	got := mul(a, ident())
	assert.Equal(t, a, got)
}

func TestMatrixFromOperandsCM(t *testing.T) {
	ops := []object{float64(2), int64(0), int64(0), float64(2), float64(10), float64(20)}
	m := matrixFromOperands(ops)
	assert.Equal(t, matrix{{2, 0, 0}, {0, 2, 0}, {10, 20, 1}}, m)
}

// TestTJKerningExactPositions reproduces a tight TJ kerning scenario: font
// size 10, Times-Roman widths A:722 B:667 C:667, [(AB) -120 (C)] TJ with
// an identity CTM. Expected left edges: 0, 7.22, 15.09.
func TestTJKerningExactPositions(t *testing.T) {
	font := &Font{
		baseFont:   "Times-Roman",
		coreWidths: timesRomanWidths,
		enc:        newSimpleFontEncoding(nil),
	}
	ce := &contentExtractor{
		fonts: map[string]*Font{"F1": font},
		gs:    newGState(),
	}
	require.NoError(t, ce.dispatch("BT", nil))
	require.NoError(t, ce.dispatch("Tf", []object{name("F1"), float64(10)}))

	items := array{string("AB"), int64(-120), string("C")}
	ce.showText(items)

	require.Len(t, ce.elements, 3)
	assert.InDelta(t, 0.0, ce.elements[0].Left, 1e-9)
	assert.InDelta(t, 7.22, ce.elements[1].Left, 1e-9)
	assert.InDelta(t, 15.09, ce.elements[2].Left, 1e-9)
	assert.Equal(t, []rune("A"), ce.elements[0].Glyphs)
	assert.Equal(t, []rune("B"), ce.elements[1].Glyphs)
	assert.Equal(t, []rune("C"), ce.elements[2].Glyphs)
}

func TestShowTextSpaceUsesWordSpacing(t *testing.T) {
	font := &Font{baseFont: "Helvetica", coreWidths: helveticaWidths, enc: newSimpleFontEncoding(nil)}
	ce := &contentExtractor{fonts: map[string]*Font{"F1": font}, gs: newGState()}
	require.NoError(t, ce.dispatch("BT", nil))
	require.NoError(t, ce.dispatch("Tf", []object{name("F1"), float64(12)}))
	require.NoError(t, ce.dispatch("Tw", []object{float64(2)}))

	ce.showText(array{string("A B")})
	require.Len(t, ce.elements, 3)
	// The space glyph's advance includes Tw in addition to Tc, so its
	// width differs from what the plain core-width table alone would give:
	// 12*(278 + 1000*2/12)/1000 = 5.336 rather than 12*278/1000 = 3.336.
	spaceWidth := ce.elements[1].Right - ce.elements[1].Left
	assert.InDelta(t, 5.336, spaceWidth, 1e-9)
}

func TestDispatchQQRestoresGraphicsState(t *testing.T) {
	ce := &contentExtractor{gs: newGState()}
	require.NoError(t, ce.dispatch("cm", []object{float64(1), int64(0), int64(0), float64(1), float64(100), float64(0)}))
	require.NoError(t, ce.dispatch("q", nil))
	require.NoError(t, ce.dispatch("cm", []object{float64(1), int64(0), int64(0), float64(1), float64(50), float64(0)}))
	afterPush := ce.gs.CTM
	require.NoError(t, ce.dispatch("Q", nil))
	assert.NotEqual(t, afterPush, ce.gs.CTM)
	assert.Equal(t, 100.0, ce.gs.CTM[2][0])
}

func TestFindInheritedWalksParentChain(t *testing.T) {
	leaf := Value{data: dict{"Type": name("Page")}}
	got := findInherited(leaf, "Resources")
	assert.Equal(t, Null, got.Kind())

	root := dict{"Type": name("Pages"), "Resources": dict{"Font": dict{}}}
	mid := dict{"Type": name("Pages"), "Parent": root}
	child := Value{data: dict{"Type": name("Page"), "Parent": mid}}
	got = findInherited(child, "Resources")
	assert.Equal(t, Dict, got.Kind())
}

func TestSkipInlineImageConsumesThroughEI(t *testing.T) {
	buf := newBuffer(strings.NewReader(""), 0)
	buf.allowEOF = true
	// Nothing to read; just verify it doesn't panic on an empty reader.
	skipInlineImage(buf)

	// The "EI" inside the binary data is not preceded by whitespace, so
	// only the second one ends the image.
	buf = newBuffer(strings.NewReader("/W 2 /H 1 ID \x01EI\x02 EI Q"), 0)
	skipInlineImage(buf)
	assert.Equal(t, keyword("Q"), buf.readToken())
}

func TestFontWidthFallsBackToDefault(t *testing.T) {
	f := &Font{defaultWidth: 500}
	assert.Equal(t, 500.0, f.Width(65, 'A'))
}

func TestFontWidthPrefersCoreTableOverSimpleWidths(t *testing.T) {
	f := &Font{
		coreWidths:   map[rune]int{'A': 722},
		simpleWidths: map[int]float64{65: 999},
		defaultWidth: 500,
	}
	assert.Equal(t, 722.0, f.Width(65, 'A'))
}

func TestFontDecodeSimpleFont(t *testing.T) {
	f := &Font{enc: newSimpleFontEncoding(nil)}
	glyphs := f.decode("AB")
	require.Len(t, glyphs, 2)
	assert.Equal(t, 'A', glyphs[0].r)
	assert.Equal(t, 'B', glyphs[1].r)
}

func TestFontDecodeType0FontTwoByteCodes(t *testing.T) {
	f := &Font{isType0: true}
	glyphs := f.decode(string([]byte{0x00, 0x41, 0x00, 0x42}))
	require.Len(t, glyphs, 2)
	assert.Equal(t, 0x0041, glyphs[0].code)
	assert.Equal(t, 0x0042, glyphs[1].code)
}
