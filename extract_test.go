// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// helloWorldPDF is a minimal 5-object PDF (catalog, page tree, page,
// content stream, font) whose xref table is deliberately unparseable
// (startxref points at the file header rather than an "xref" keyword),
// exercising the rebuildXrefTable recovery path alongside ordinary page
// assembly and text extraction.
const helloWorldPDF = "%PDF-1.4\n" +
	"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n" +
	"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n" +
	"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R " +
	"/Resources << /Font << /F1 5 0 R >> >> >>\nendobj\n" +
	"4 0 obj\n<< /Length 43 >>\nstream\n" +
	"BT\n/F1 12 Tf\n100 700 Td\n(Hello World) Tj\nET" +
	"\nendstream\nendobj\n" +
	"5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n" +
	"trailer\n<< /Size 6 /Root 1 0 R >>\n" +
	"startxref\n0\n%%EOF"

func openHelloWorld(t *testing.T) *Reader {
	t.Helper()
	r, err := OpenReader([]byte(helloWorldPDF))
	require.NoError(t, err)
	return r
}

func TestOpenRebuildsXrefFromScan(t *testing.T) {
	r := openHelloWorld(t)
	require.Equal(t, 1, r.NumPage())
}

func TestPageTextHelloWorld(t *testing.T) {
	r := openHelloWorld(t)
	elements, err := r.PageText(0)
	require.NoError(t, err)
	require.NotEmpty(t, elements)

	var buf strings.Builder
	for _, e := range elements {
		buf.WriteString(string(e.Glyphs))
	}
	require.Equal(t, "Hello World", buf.String())
}

func TestPlainTextHelloWorld(t *testing.T) {
	r := openHelloWorld(t)
	text, err := r.Page(1).PlainText()
	require.NoError(t, err)
	require.Equal(t, "Hello World", text)
}

func TestPageContentStreamHelloWorld(t *testing.T) {
	r := openHelloWorld(t)
	content, err := r.PageContentStream(0)
	require.NoError(t, err)
	require.Contains(t, content, "(Hello World) Tj")
}

func TestGlyphMapHelloWorld(t *testing.T) {
	r := openHelloWorld(t)
	mapping, err := r.GlyphMap(0)
	require.NoError(t, err)
	require.Len(t, mapping, len("Hello World"))
	require.Equal(t, "F1", mapping[0].FontName)
}

func TestExtractWithContextConcatenatesPages(t *testing.T) {
	r := openHelloWorld(t)
	out, err := r.ExtractWithContext(context.Background(), ExtractOptions{})
	require.NoError(t, err)
	data, err := io.ReadAll(out)
	require.NoError(t, err)
	require.Equal(t, "Hello World", string(data))
}

func TestPageOutOfRangeReturnsNullPage(t *testing.T) {
	r := openHelloWorld(t)
	p := r.Page(99)
	require.Equal(t, Null, p.V.Kind())
	_, err := p.Text()
	require.Error(t, err)
}
