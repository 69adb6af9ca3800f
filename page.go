// Copyright 2014 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// maxContentStreamLen bounds the total bytes of a page's concatenated
// content streams, per §5.
const maxContentStreamLen = 64 << 20

// maxDoDepth bounds Form XObject recursion via the Do operator, per §5 and
// the cyclic-reference guidance of §9.
const maxDoDepth = 16

// ---------------------------------------------------------------------
// C11: page assembly — walks the /Pages tree, resolves inherited
// attributes, and builds the per-page Font/XObject tables, per §4.8.
// ---------------------------------------------------------------------

// A Page is one page of a document, addressed by the 1-based index passed
// to Reader.Page. The zero Page (an invalid page index) has a null V.
type Page struct {
	V   Value
	r   *Reader
	num int
}

// pageList walks the /Pages tree starting at the catalog, expanding /Kids
// recursively and collecting leaves in document order. A seen-set keyed on
// object number guards against the cyclic references §9 calls out.
func (r *Reader) pageList() []Value {
	root := r.Trailer().Key("Root").Key("Pages")
	var out []Value
	seen := make(map[objptr]bool)
	var walk func(node Value)
	walk = func(node Value) {
		if node.Kind() != Dict && node.Kind() != Stream {
			return
		}
		kids := node.Key("Kids")
		if kids.Kind() == Array {
			for i := 0; i < kids.Len(); i++ {
				child := kids.Index(i)
				if child.ptr != (objptr{}) {
					if seen[child.ptr] {
						continue
					}
					seen[child.ptr] = true
				}
				walk(child)
			}
			return
		}
		out = append(out, node)
	}
	walk(root)
	return out
}

// NumPage returns the number of pages in the PDF file.
func (r *Reader) NumPage() int {
	return len(r.pageList())
}

// Page returns the num'th page, where 1 is the first page. Out-of-range
// indices return the zero Page.
func (r *Reader) Page(num int) Page {
	pages := r.pageList()
	if num < 1 || num > len(pages) {
		return Page{}
	}
	return Page{V: pages[num-1], r: r, num: num}
}

// findInherited walks a page's /Parent chain looking for key, which PDF
// allows to be specified once on an ancestor and inherited by every
// descendant page (§4.8 step 2).
func findInherited(v Value, key string) Value {
	for cur := v; cur.Kind() == Dict || cur.Kind() == Stream; {
		if val := cur.Key(key); val.Kind() != Null {
			return val
		}
		parent := cur.Key("Parent")
		if parent.Kind() == Null {
			break
		}
		cur = parent
	}
	return Value{}
}

// Resources returns the page's /Resources dictionary, inherited from an
// ancestor if the page itself doesn't declare one.
func (p Page) Resources() Value {
	return findInherited(p.V, "Resources")
}

// Rect is an axis-aligned rectangle in unscaled PDF user space.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// BoundingBox computes the minimum bounding box across whichever of
// /MediaBox, /CropBox, /BleedBox, /TrimBox, /ArtBox are present (each
// inherited from an ancestor if the page doesn't declare it), per §4.8
// step 6. Falls back to US Letter if none are present.
func (p Page) BoundingBox() Rect {
	box := Rect{0, 0, 612, 792}
	first := true
	for _, key := range []string{"MediaBox", "CropBox", "BleedBox", "TrimBox", "ArtBox"} {
		v := findInherited(p.V, key)
		if v.Kind() != Array || v.Len() != 4 {
			continue
		}
		cur := Rect{v.Index(0).Float64(), v.Index(1).Float64(), v.Index(2).Float64(), v.Index(3).Float64()}
		if cur.MinX > cur.MaxX {
			cur.MinX, cur.MaxX = cur.MaxX, cur.MinX
		}
		if cur.MinY > cur.MaxY {
			cur.MinY, cur.MaxY = cur.MaxY, cur.MinY
		}
		if first {
			box, first = cur, false
			continue
		}
		if cur.MinX > box.MinX {
			box.MinX = cur.MinX
		}
		if cur.MinY > box.MinY {
			box.MinY = cur.MinY
		}
		if cur.MaxX < box.MaxX {
			box.MaxX = cur.MaxX
		}
		if cur.MaxY < box.MaxY {
			box.MaxY = cur.MaxY
		}
	}
	return box
}

// contentBytes concatenates the page's /Contents: a single stream
// reference, an array of references, or a nested tree of arrays,
// joined with a newline separator (§4.8 step 4).
func (p Page) contentBytes() ([]byte, error) {
	var buf bytes.Buffer
	var gather func(v Value) error
	gather = func(v Value) error {
		switch v.Kind() {
		case Stream:
			rc := v.Reader()
			data, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return err
			}
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.Write(data)
		case Array:
			for i := 0; i < v.Len(); i++ {
				if err := gather(v.Index(i)); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := gather(p.V.Key("Contents")); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// arrayFromValue unwraps v's underlying array representation, or nil if v
// is not an Array.
func arrayFromValue(v Value) array {
	a, _ := v.data.(array)
	return a
}

// withPage attaches a page number to err, whether or not it already
// carries one, so callers one level up the call stack don't have to
// re-derive it.
func withPage(err error, page int) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		cp := *e
		cp.Page = page
		return &cp
	}
	return wrapPageError("page", page, err)
}

// ---------------------------------------------------------------------
// Font cache: memoizes constructed Font values by the font dictionary's
// object pointer, so page-parallel extraction (§5, SPEC_FULL.md A3)
// doesn't rebuild the encoding pipeline for a font shared across pages.
// ---------------------------------------------------------------------

// FontCache is a concurrency-safe cache of resolved Fonts, keyed by the
// font dictionary's indirect object reference.
type FontCache struct {
	mu sync.Mutex
	m  map[objptr]*Font
}

// NewFontCache returns an empty FontCache.
func NewFontCache() *FontCache {
	return &FontCache{m: make(map[objptr]*Font)}
}

func (c *FontCache) get(ptr objptr) (*Font, bool) {
	if ptr == (objptr{}) {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	f, ok := c.m[ptr]
	return f, ok
}

func (c *FontCache) put(ptr objptr, f *Font) {
	if ptr == (objptr{}) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[ptr] = f
}

// ---------------------------------------------------------------------
// Font: the encoding (§4.6) and width (§4.7) pipelines for one font
// dictionary.
// ---------------------------------------------------------------------

// Font wraps a page's font dictionary with the resolved encoding and width
// pipelines needed to turn raw content-stream codes into (Unicode, width)
// pairs.
type Font struct {
	baseFont string
	isType0  bool

	enc       *simpleFontEncoding // nil for composite (Type0) fonts
	toUnicode *ToUnicodeCMap      // nil if the font has no /ToUnicode

	coreWidths   map[rune]int     // §4.7 step 1: keyed by Unicode code point
	simpleWidths map[int]float64  // §4.7 step 2: keyed by raw code
	cidWidths    map[int]float64  // §4.7 step 3: keyed by CID
	defaultWidth float64          // §4.7 step 4
}

// BaseFont returns the font's /BaseFont name.
func (f *Font) BaseFont() string { return f.baseFont }

// buildFont constructs a Font from its dictionary Value, applying the
// encoding pipeline of §4.6 (base table → /Differences → /ToUnicode) and
// selecting the width source of §4.7.
func buildFont(v Value) *Font {
	f := &Font{defaultWidth: 500}
	f.baseFont = v.Key("BaseFont").Name()
	f.isType0 = v.Key("Subtype").Name() == "Type0"
	f.coreWidths = coreFontWidths(f.baseFont)

	if f.isType0 {
		desc := v.Key("DescendantFonts").Index(0)
		if w := desc.Key("W"); w.Kind() == Array {
			f.cidWidths = parseCIDWArray(arrayFromValue(w))
		}
	} else {
		firstChar := int(v.Key("FirstChar").Int64())
		if widths := v.Key("Widths"); widths.Kind() == Array {
			f.simpleWidths = make(map[int]float64, widths.Len())
			for i := 0; i < widths.Len(); i++ {
				f.simpleWidths[firstChar+i] = widths.Index(i).Float64()
			}
		}

		encVal := v.Key("Encoding")
		var base map[byte]rune
		switch encVal.Kind() {
		case Name:
			base = baseEncodingByName(encVal.Name())
		case Dict:
			if bn := encVal.Key("BaseEncoding").Name(); bn != "" {
				base = baseEncodingByName(bn)
			}
		}
		// base is nil when /Encoding is absent or names no BaseEncoding;
		// simpleFontEncoding's zero-entry fallback is 8-bit identity
		// pass-through, matching §4.6 step 1's "if absent, identity" rule.
		enc := newSimpleFontEncoding(base)
		if encVal.Kind() == Dict {
			if diffs := encVal.Key("Differences"); diffs.Kind() == Array {
				enc.applyDifferences(arrayFromValue(diffs))
			}
		}
		f.enc = enc
	}

	if tu := v.Key("ToUnicode"); tu.Kind() == Stream {
		rc := tu.Reader()
		data, err := io.ReadAll(rc)
		rc.Close()
		if err == nil {
			f.toUnicode = parseToUnicodeCMap(data)
		}
	}
	return f
}

// Width resolves the glyph-space width (thousandths of an em) of a raw
// code whose decoded Unicode value is uni, following the fallback order of
// §4.7: core-font table (by Unicode) → /Widths (by code) → composite /W
// (by CID) → default 500.
func (f *Font) Width(code int, uni rune) float64 {
	if f.coreWidths != nil {
		if w, ok := f.coreWidths[uni]; ok {
			return float64(w)
		}
	}
	if f.simpleWidths != nil {
		if w, ok := f.simpleWidths[code]; ok {
			return w
		}
	}
	if f.cidWidths != nil {
		if w, ok := f.cidWidths[code]; ok {
			return w
		}
	}
	return f.defaultWidth
}

// decodedGlyph is one RawChar mapped through the font's encoding pipeline.
type decodedGlyph struct {
	code int
	r    rune
}

// decode splits a content-stream string into RawChars (2-byte big-endian
// units for composite fonts, single bytes otherwise, per the scanner
// rules of §4.9) and maps each through the encoding pipeline.
func (f *Font) decode(raw string) []decodedGlyph {
	b := []byte(raw)
	var out []decodedGlyph
	if f.isType0 {
		for i := 0; i+1 < len(b); i += 2 {
			code := int(b[i])<<8 | int(b[i+1])
			out = append(out, decodedGlyph{code: code, r: f.runeFor(code, string(b[i:i+2]))})
		}
		return out
	}
	for i := 0; i < len(b); i++ {
		code := int(b[i])
		out = append(out, decodedGlyph{code: code, r: f.runeFor(code, string(b[i:i+1]))})
	}
	return out
}

// runeFor applies the §4.6 pipeline's final layer: /ToUnicode overrides
// the base-table+/Differences result when present for this code.
func (f *Font) runeFor(code int, rawCode string) rune {
	if f.toUnicode != nil {
		if s, ok := f.toUnicode.lookup([]byte(rawCode)); ok && s != "" {
			return []rune(s)[0]
		}
	}
	if f.enc != nil {
		if s := f.enc.Decode(rawCode); s != "" {
			return []rune(s)[0]
		}
	}
	return rune(code)
}

// ---------------------------------------------------------------------
// Matrices (§4.9 "Matrix convention"): 3×3, row-major, fixed third column
// (0,0,1), so a PDF "a b c d e f" tuple is [[a,b,0],[c,d,0],[e,f,1]].
// ---------------------------------------------------------------------

type matrix [3][3]float64

func ident() matrix {
	return matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// mul composes a with b as a·b (row-major matrix product), so
// "CTM ← M · CTM" is mul(M, CTM).
func mul(a, b matrix) matrix {
	var out matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func translateMatrix(x, y float64) matrix {
	return matrix{{1, 0, 0}, {0, 1, 0}, {x, y, 1}}
}

func matrixFromOperands(ops []object) matrix {
	var n [6]float64
	for i := 0; i < 6 && i < len(ops); i++ {
		n[i] = toFloat(ops[i])
	}
	return matrix{{n[0], n[1], 0}, {n[2], n[3], 0}, {n[4], n[5], 1}}
}

func toFloat(o object) float64 {
	switch v := o.(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

// ---------------------------------------------------------------------
// Graphics state (§3, §4.9).
// ---------------------------------------------------------------------

type gstate struct {
	CTM matrix

	// Text state.
	Tm, Td             matrix // text matrix, line matrix
	Tc, Tw, Tl, Th, Tfs float64
	Trise              float64

	fontName string
	font     *Font
}

func newGState() gstate {
	return gstate{CTM: ident(), Tm: ident(), Td: ident(), Th: 100}
}

// ---------------------------------------------------------------------
// TextElement / GlyphMapping: the external shapes produced by page text
// extraction, per §6 and the GLOSSARY.
// ---------------------------------------------------------------------

// TextElement is one positioned glyph emitted while interpreting a page's
// content stream.
type TextElement struct {
	Left, Right, Bottom, Top float64
	Font                     string
	Size                     float64
	Glyphs                   []rune
}

// GlyphMapping is one (font, raw code, decoded Unicode, width) tuple, as
// returned by Reader.GlyphMap.
type GlyphMapping struct {
	FontName string
	RawCode  int
	Unicode  rune
	Width    float64
}

// ---------------------------------------------------------------------
// C12/C13: content-stream interpreter.
// ---------------------------------------------------------------------

type contentExtractor struct {
	fontCache *FontCache
	fonts     map[string]*Font
	xobjects  map[string]Value

	gs    gstate
	stack []gstate

	nameStack []string

	elements []TextElement
	glyphs   []GlyphMapping
}

func (ce *contentExtractor) loadResources(res Value) {
	ce.fonts = make(map[string]*Font)
	if fontDict := res.Key("Font"); fontDict.Kind() == Dict {
		for _, k := range fontDict.Keys() {
			ce.fonts[k] = ce.resolveFont(fontDict.Key(k))
		}
	}
	ce.xobjects = make(map[string]Value)
	if xobjDict := res.Key("XObject"); xobjDict.Kind() == Dict {
		for _, k := range xobjDict.Keys() {
			ce.xobjects[k] = xobjDict.Key(k)
		}
	}
}

func (ce *contentExtractor) resolveFont(fv Value) *Font {
	if ce.fontCache != nil {
		if f, ok := ce.fontCache.get(fv.ptr); ok {
			return f
		}
	}
	f := buildFont(fv)
	if ce.fontCache != nil {
		ce.fontCache.put(fv.ptr, f)
	}
	return f
}

// process interprets a content stream, the scanner reusing the object-model
// tokenizer (buffer/readToken) from the file-skeleton parser: PDF operator
// syntax shares its operand grammar (numbers, strings, names, arrays,
// dicts) with the rest of the object model; only bare keywords carry
// operator meaning here, and BI...ID...EI inline images need a dedicated
// raw-byte skip since their payload isn't token-grammar-conformant.
func (ce *contentExtractor) process(data []byte) error {
	if len(data) > maxContentStreamLen {
		return wrapErrCode(Bound, "content", fmt.Errorf("content stream of %d bytes exceeds %d byte bound", len(data), maxContentStreamLen))
	}
	buf := newBuffer(bytes.NewReader(data), 0)
	buf.allowEOF = true
	var operands []object
	for {
		tok := buf.readToken()
		if tok == nil {
			break
		}
		kw, isKeyword := tok.(keyword)
		if !isKeyword {
			operands = append(operands, tok)
			continue
		}
		if kw == keyword("BI") {
			skipInlineImage(buf)
			operands = operands[:0]
			continue
		}
		if err := ce.dispatch(string(kw), operands); err != nil {
			return err
		}
		operands = operands[:0]
	}
	return nil
}

// skipInlineImage consumes a BI...ID...EI sequence whose "BI" keyword has
// already been read: any dict-like key/value tokens up to ID, then raw
// binary bytes up to the first EI bounded by whitespace or a delimiter.
func skipInlineImage(buf *buffer) {
	for {
		tok := buf.readToken()
		if tok == nil {
			return
		}
		if tok == keyword("ID") {
			break
		}
	}
	w := [3]byte{' ', ' ', ' '} // the last three raw bytes read
	for c, ok := buf.readByte(); ok; c, ok = buf.readByte() {
		if isSpace(w[0]) && w[1] == 'E' && w[2] == 'I' && (isSpace(c) || isDelim(c)) {
			buf.unreadByte()
			return
		}
		w = [3]byte{w[1], w[2], c}
	}
}

func (ce *contentExtractor) dispatch(op string, args []object) error {
	switch op {
	case "q":
		ce.stack = append(ce.stack, ce.gs)
	case "Q":
		if len(ce.stack) == 0 {
			return nil
		}
		ce.gs = ce.stack[len(ce.stack)-1]
		ce.stack = ce.stack[:len(ce.stack)-1]
	case "cm":
		ce.gs.CTM = mul(matrixFromOperands(args), ce.gs.CTM)
	case "BT", "ET":
		ce.gs.Tm = ident()
		ce.gs.Td = ident()
		ce.gs.Tc = 0
		ce.gs.Tw = 0
		ce.gs.Th = 100
	case "Td":
		if len(args) < 2 {
			return nil
		}
		ce.gs.Td = mul(translateMatrix(toFloat(args[0]), toFloat(args[1])), ce.gs.Td)
	case "TD":
		if len(args) < 2 {
			return nil
		}
		x, y := toFloat(args[0]), toFloat(args[1])
		ce.gs.Tl = -y
		ce.gs.Td = mul(translateMatrix(x, y), ce.gs.Td)
	case "Tm":
		if len(args) < 6 {
			return nil
		}
		m := matrixFromOperands(args)
		ce.gs.Td = ident()
		ce.gs.Tm = m
	case "T*":
		ce.gs.Td = mul(translateMatrix(0, -ce.gs.Tl), ce.gs.Td)
	case "Tc":
		if len(args) >= 1 {
			ce.gs.Tc = toFloat(args[0])
		}
	case "Tw":
		if len(args) >= 1 {
			ce.gs.Tw = toFloat(args[0])
		}
	case "TL":
		if len(args) >= 1 {
			ce.gs.Tl = toFloat(args[0])
		}
	case "Th":
		if len(args) >= 1 {
			ce.gs.Th = toFloat(args[0])
		}
	case "Tf":
		if len(args) >= 2 {
			if n, ok := args[0].(name); ok {
				ce.gs.fontName = string(n)
				ce.gs.font = ce.fonts[string(n)]
			}
			ce.gs.Tfs = toFloat(args[1])
		}
	case "Tj":
		if len(args) >= 1 {
			ce.showText(args[len(args)-1:])
		}
	case "TJ":
		if len(args) >= 1 {
			if arr, ok := args[len(args)-1].(array); ok {
				ce.showText(arr)
			}
		}
	case "'":
		ce.gs.Td = mul(translateMatrix(0, -ce.gs.Tl), ce.gs.Td)
		if len(args) >= 1 {
			ce.showText(args[len(args)-1:])
		}
	case "Do":
		if len(args) >= 1 {
			if n, ok := args[0].(name); ok {
				return ce.handleDo(string(n))
			}
		}
	}
	return nil
}

// showText implements the glyph emission procedure of §4.9 for a single
// text-showing operation: Tj and ' pass a one-element string slice, TJ
// passes its whole operand array (strings interleaved with kerning
// numbers).
func (ce *contentExtractor) showText(items []object) {
	font := ce.gs.font
	if ce.gs.Tfs == 0 {
		return
	}

	TS := mul(ce.gs.Tm, ce.gs.CTM)
	TS = mul(ce.gs.Td, TS)
	x0, y0 := TS[2][0], TS[2][1]
	s := ce.gs.Tfs * TS[0][0]
	pushright := 0.0

	for _, item := range items {
		switch v := item.(type) {
		case int64:
			pushright -= float64(v)
			TS[2][0] = x0 + pushright*s/1000
		case float64:
			pushright -= v
			TS[2][0] = x0 + pushright*s/1000
		case string:
			if font == nil {
				continue
			}
			for _, g := range font.decode(v) {
				w := font.Width(g.code, g.r)
				var advance float64
				if g.code == 0x20 {
					advance = w + 1000*(ce.gs.Tc+ce.gs.Tw)/ce.gs.Tfs
				} else {
					advance = w + 1000*ce.gs.Tc/ce.gs.Tfs
				}
				left := TS[2][0]
				bottom := TS[2][1]
				width := s * advance / 1000 * ce.gs.Th / 100

				ce.elements = append(ce.elements, TextElement{
					Left: left, Right: left + width, Bottom: bottom, Top: bottom + s,
					Font: ce.gs.fontName, Size: s, Glyphs: []rune{g.r},
				})
				ce.glyphs = append(ce.glyphs, GlyphMapping{
					FontName: ce.gs.fontName, RawCode: g.code, Unicode: g.r, Width: w,
				})

				pushright += advance
				TS[2][0] = x0 + pushright*s/1000
			}
		}
	}
	_ = y0

	// Advance Td by the net horizontal displacement so a following
	// text-showing operation without an intervening Td continues from
	// where this one left off, rather than overlapping it.
	tx := pushright * s / 1000
	if tx != 0 {
		ce.gs.Td = mul(translateMatrix(tx, 0), ce.gs.Td)
	}
}

// handleDo recursively interprets a Form XObject's content stream, guarded
// by a name-stack cycle check and a depth bound (§5, §9).
func (ce *contentExtractor) handleDo(xname string) error {
	for _, n := range ce.nameStack {
		if n == xname {
			return nil
		}
	}
	if len(ce.nameStack) >= maxDoDepth {
		return wrapErrCode(Bound, "content", fmt.Errorf("Do recursion exceeds depth %d", maxDoDepth))
	}
	xobj, ok := ce.xobjects[xname]
	if !ok || xobj.Kind() != Stream || xobj.Key("Subtype").Name() != "Form" {
		return nil
	}
	rc := xobj.Reader()
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return nil
	}

	sub := &contentExtractor{
		fontCache: ce.fontCache,
		fonts:     ce.fonts,
		xobjects:  ce.xobjects,
		gs:        ce.gs,
		nameStack: append(append([]string{}, ce.nameStack...), xname),
	}
	if res := xobj.Key("Resources"); res.Kind() == Dict {
		sub.loadResources(res)
	} else {
		sub.fonts, sub.xobjects = ce.fonts, ce.xobjects
	}
	if err := sub.process(data); err != nil {
		return err
	}
	ce.elements = append(ce.elements, sub.elements...)
	ce.glyphs = append(ce.glyphs, sub.glyphs...)
	return nil
}

// ---------------------------------------------------------------------
// Page-level entry points.
// ---------------------------------------------------------------------

func (p Page) newExtractor() (*contentExtractor, error) {
	if p.V.Kind() == Null {
		return nil, wrapErrCode(Structural, "page", ErrInvalidPage)
	}
	ce := &contentExtractor{fontCache: p.r.fontCache, gs: newGState()}
	ce.loadResources(p.Resources())
	return ce, nil
}

// Text interprets the page's content stream and returns its TextElements,
// per §4.9.
func (p Page) Text() ([]TextElement, error) {
	ce, err := p.newExtractor()
	if err != nil {
		return nil, err
	}
	data, err := p.contentBytes()
	if err != nil {
		return nil, withPage(wrapErrCode(Structural, "content", err), p.num)
	}
	if err := ce.process(data); err != nil {
		return nil, withPage(err, p.num)
	}
	return ce.elements, nil
}

// GlyphMap interprets the page's content stream and returns every
// (font, raw code, Unicode, width) tuple produced along the way.
func (p Page) GlyphMap() ([]GlyphMapping, error) {
	ce, err := p.newExtractor()
	if err != nil {
		return nil, err
	}
	data, err := p.contentBytes()
	if err != nil {
		return nil, withPage(wrapErrCode(Structural, "content", err), p.num)
	}
	if err := ce.process(data); err != nil {
		return nil, withPage(err, p.num)
	}
	return ce.glyphs, nil
}

// PlainText concatenates every glyph emitted on the page in emission
// order. It performs no layout reconstruction (column/row grouping,
// sentence joining, smart ordering): that is explicitly out of scope.
func (p Page) PlainText() (string, error) {
	elements, err := p.Text()
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	for _, e := range elements {
		buf.WriteString(string(e.Glyphs))
	}
	return buf.String(), nil
}

// ---------------------------------------------------------------------
// External interfaces (§6), exposed as Reader/Document methods.
// ---------------------------------------------------------------------

// Document is an alias for Reader, matching the external-interface naming
// of §6's primary operations.
type Document = Reader

// PageCount reports the number of pages in the document.
func (r *Reader) PageCount() int { return r.NumPage() }

// PageText returns the TextElements of the page at the given 0-based
// index.
func (r *Reader) PageText(page int) ([]TextElement, error) {
	return r.Page(page + 1).Text()
}

// GlyphMap returns the (font, raw code, Unicode, width) tuples of the page
// at the given 0-based index.
func (r *Reader) GlyphMap(page int) ([]GlyphMapping, error) {
	return r.Page(page + 1).GlyphMap()
}

// PageContentStream returns the page's concatenated, decoded content
// stream bytes as a string, without interpreting them.
func (r *Reader) PageContentStream(page int) (string, error) {
	p := r.Page(page + 1)
	if p.V.Kind() == Null {
		return "", wrapErrCode(Structural, "page", ErrInvalidPage)
	}
	data, err := p.contentBytes()
	if err != nil {
		return "", withPage(wrapErrCode(Structural, "content", err), p.num)
	}
	return string(data), nil
}

// Object resolves object n (generation taken from the xref table) and
// returns its header dictionary and, if it has one, its decoded stream.
func (r *Reader) Object(n uint32) (Value, []byte, error) {
	if int(n) >= len(r.xref) || r.xref[n].ptr == (objptr{}) {
		return Value{}, nil, wrapErrCode(Structural, "object", fmt.Errorf("object %d not found", n))
	}
	gen := r.xref[n].ptr.gen
	v := r.resolve(objptr{}, objptr{id: n, gen: gen})
	if v.Kind() == Null {
		return Value{}, nil, wrapErrCode(Structural, "object", fmt.Errorf("object %d not found", n))
	}
	if v.Kind() != Stream {
		return v, nil, nil
	}
	rc := v.Reader()
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return v, nil, err
	}
	return v, data, nil
}
