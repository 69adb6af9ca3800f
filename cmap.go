// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import (
	"bytes"
)

// ---------------------------------------------------------------------
// C8: ToUnicodeCMap — parses a font's /ToUnicode CMap stream and maps raw
// character codes to Unicode text, per §4.6 step 3.
//
// Only the subset of the CMap grammar that bfchar/bfrange producers
// actually emit is handled: codespace ranges and begin/end bfchar and
// bfrange blocks. Composite CJK CID font machinery (registries,
// predefined CMaps, CID-to-GID maps) is out of scope.
// ---------------------------------------------------------------------

type codespaceRange struct {
	lo, hi []byte
}

type bfCharEntry struct {
	src []byte
	dst string
}

type bfRangeEntry struct {
	lo, hi []byte
	dst    string   // single-string target, last byte bumped by offset
	dstArr []string // array-of-targets form
}

// ToUnicodeCMap is a parsed /ToUnicode stream.
type ToUnicodeCMap struct {
	space  []codespaceRange
	chars  []bfCharEntry
	ranges []bfRangeEntry
}

// codeLen reports the byte length of the next character code starting at
// raw, by matching it against the codespace ranges. Falls back to 2 bytes
// (the common case for non-Latin fonts) if no range matches, or 1 if raw
// is too short for that.
func (c *ToUnicodeCMap) codeLen(raw []byte) int {
	for _, sp := range c.space {
		n := len(sp.lo)
		if n == 0 || n > len(raw) {
			continue
		}
		if bytes.Compare(raw[:n], sp.lo) >= 0 && bytes.Compare(raw[:n], sp.hi) <= 0 {
			return n
		}
	}
	if len(raw) >= 2 {
		return 2
	}
	return 1
}

// Decode maps a raw content-stream string through the CMap, returning the
// decoded Unicode text. Codes that match neither a bfchar entry nor a
// bfrange entry decode to U+FFFD, per the Encoding-error recovery policy.
func (c *ToUnicodeCMap) Decode(raw string) string {
	b := []byte(raw)
	var out []rune
	for len(b) > 0 {
		n := c.codeLen(b)
		if n > len(b) {
			n = len(b)
		}
		code := b[:n]
		b = b[n:]

		if s, ok := c.lookupChar(code); ok {
			out = append(out, []rune(s)...)
			continue
		}
		if s, ok := c.lookupRange(code); ok {
			out = append(out, []rune(s)...)
			continue
		}
		out = append(out, 0xFFFD)
	}
	return string(out)
}

// lookup tries an exact bfchar match first, then falls back to bfrange.
func (c *ToUnicodeCMap) lookup(code []byte) (string, bool) {
	if s, ok := c.lookupChar(code); ok {
		return s, true
	}
	return c.lookupRange(code)
}

func (c *ToUnicodeCMap) lookupChar(code []byte) (string, bool) {
	for _, e := range c.chars {
		if bytes.Equal(e.src, code) {
			return e.dst, true
		}
	}
	return "", false
}

func (c *ToUnicodeCMap) lookupRange(code []byte) (string, bool) {
	for _, r := range c.ranges {
		if len(r.lo) != len(code) {
			continue
		}
		if bytes.Compare(code, r.lo) < 0 || bytes.Compare(code, r.hi) > 0 {
			continue
		}
		offset := beValue(code) - beValue(r.lo)
		if r.dstArr != nil {
			if offset < 0 || offset >= len(r.dstArr) {
				return "", false
			}
			return r.dstArr[offset], true
		}
		if r.dst == "" {
			return "", false
		}
		runes := []rune(r.dst)
		last := runes[len(runes)-1] + rune(offset)
		return string(runes[:len(runes)-1]) + string(last), true
	}
	return "", false
}

func beValue(b []byte) int {
	v := 0
	for _, c := range b {
		v = v<<8 | int(c)
	}
	return v
}

// parseToUnicodeCMap tokenizes a /ToUnicode stream's PostScript-flavored
// grammar. The operand syntax (hex strings, names, numbers, arrays) is
// exactly the object-model grammar already handled by buffer/readToken;
// only the begin*/end* operator keywords carry CMap-specific meaning.
func parseToUnicodeCMap(data []byte) *ToUnicodeCMap {
	c := &ToUnicodeCMap{}
	buf := newBuffer(bytes.NewReader(data), 0)
	buf.allowEOF = true

	var pending []object
	mode := ""

	flushCodespace := func() {
		for i := 0; i+1 < len(pending); i += 2 {
			lo, ok1 := pending[i].(string)
			hi, ok2 := pending[i+1].(string)
			if ok1 && ok2 {
				c.space = append(c.space, codespaceRange{lo: []byte(lo), hi: []byte(hi)})
			}
		}
		pending = nil
	}
	flushChar := func() {
		for i := 0; i+1 < len(pending); i += 2 {
			src, ok := pending[i].(string)
			if !ok {
				continue
			}
			if dst, ok := pending[i+1].(string); ok {
				c.chars = append(c.chars, bfCharEntry{src: []byte(src), dst: utf16Decode([]byte(dst))})
			}
		}
		pending = nil
	}
	flushRange := func() {
		for i := 0; i+2 < len(pending); i += 3 {
			lo, ok1 := pending[i].(string)
			hi, ok2 := pending[i+1].(string)
			if !ok1 || !ok2 {
				continue
			}
			switch dst := pending[i+2].(type) {
			case string:
				c.ranges = append(c.ranges, bfRangeEntry{
					lo: []byte(lo), hi: []byte(hi), dst: utf16Decode([]byte(dst)),
				})
			case array:
				var arr []string
				for _, d := range dst {
					if s, ok := d.(string); ok {
						arr = append(arr, utf16Decode([]byte(s)))
					}
				}
				c.ranges = append(c.ranges, bfRangeEntry{lo: []byte(lo), hi: []byte(hi), dstArr: arr})
			}
		}
		pending = nil
	}

	for {
		tok := buf.readToken()
		if tok == nil {
			break
		}
		if kw, ok := tok.(keyword); ok {
			switch kw {
			case "begincodespacerange":
				mode, pending = "codespace", nil
			case "endcodespacerange":
				flushCodespace()
				mode = ""
			case "beginbfchar":
				mode, pending = "bfchar", nil
			case "endbfchar":
				flushChar()
				mode = ""
			case "beginbfrange":
				mode, pending = "bfrange", nil
			case "endbfrange":
				flushRange()
				mode = ""
			}
			continue
		}
		if mode != "" {
			pending = append(pending, tok)
		}
	}
	return c
}

// simpleFontEncoding is a 256-entry byte-to-rune table built from a base
// encoding plus an optional /Differences override, per §4.6 steps 1-2.
type simpleFontEncoding struct {
	table [256]rune
}

func newSimpleFontEncoding(base map[byte]rune) *simpleFontEncoding {
	e := &simpleFontEncoding{}
	for code, r := range base {
		e.table[code] = r
	}
	return e
}

// applyDifferences walks a PDF /Differences array: a sequence alternating
// integer codes (which set the "current code" and advance by one for each
// subsequent name) and glyph names (which assign the current code's entry
// then advance it). The walk stops as soon as it sees a token that is
// neither an integer nor a name, favoring the data parsed so far over
// erroring out or skipping past the malformed tail.
func (e *simpleFontEncoding) applyDifferences(diffs array) {
	code := -1
	for _, item := range diffs {
		switch v := item.(type) {
		case int64:
			code = int(v)
		case float64:
			code = int(v)
		case name:
			if code < 0 || code > 255 {
				return
			}
			if r, ok := glyphNameToRune(string(v)); ok {
				e.table[code] = r
			}
			code++
		default:
			return
		}
	}
}

func (e *simpleFontEncoding) Decode(raw string) string {
	out := make([]rune, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		r := e.table[raw[i]]
		if r == 0 {
			r = rune(raw[i])
		}
		out = append(out, r)
	}
	return string(out)
}

// parseCIDWArray decodes a composite font's /DescendantFonts[0]/W array
// per §4.7 step 3: a sequence of either "c [w1 w2 ...]" runs (consecutive
// codes starting at c) or "c_lo c_hi w" runs (a uniform width across a
// range), populating a sparse map from CID to width in glyph-space units
// (thousandths of an em).
func parseCIDWArray(w array) map[int]float64 {
	out := make(map[int]float64)
	asInt := func(v object) (int, bool) {
		switch n := v.(type) {
		case int64:
			return int(n), true
		case float64:
			return int(n), true
		}
		return 0, false
	}
	asFloat := func(v object) (float64, bool) {
		switch n := v.(type) {
		case int64:
			return float64(n), true
		case float64:
			return n, true
		}
		return 0, false
	}
	i := 0
	for i < len(w) {
		c, ok := asInt(w[i])
		if !ok {
			i++
			continue
		}
		i++
		if i >= len(w) {
			break
		}
		if arr, ok := w[i].(array); ok {
			for j, wv := range arr {
				if fv, ok := asFloat(wv); ok {
					out[c+j] = fv
				}
			}
			i++
			continue
		}
		cHi, ok := asInt(w[i])
		if !ok {
			i++
			continue
		}
		i++
		if i >= len(w) {
			break
		}
		fv, ok := asFloat(w[i])
		i++
		if !ok {
			continue
		}
		for cid := c; cid <= cHi; cid++ {
			out[cid] = fv
		}
	}
	return out
}
