// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pdfcore exposes the external operations of the pdf package as a
// flag-driven CLI: page text, glyph mappings, raw content streams,
// document metadata, and the cross-reference table.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lagerfeld/pdfcore"
)

func main() {
	mode := flag.String("mode", "text", "Operation: text, glyphs, content, meta, xref")
	page := flag.Int("page", 0, "0-based page index (required for text/glyphs/content)")
	password := flag.String("password", "", "Password for an encrypted document")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: pdfcore [options] file.pdf")
		flag.PrintDefaults()
		os.Exit(exitCode(pdf.Structural))
	}

	path := flag.Arg(0)
	doc, closer, err := openDocument(path, *password)
	if err != nil {
		fail("open", err)
	}
	defer closer()

	switch strings.ToLower(*mode) {
	case "text":
		runText(doc, *page)
	case "glyphs":
		runGlyphs(doc, *page)
	case "content":
		runContent(doc, *page)
	case "meta":
		runMeta(doc)
	case "xref":
		runXref(doc)
	default:
		fail("mode", fmt.Errorf("unknown mode %q", *mode))
	}
}

func openDocument(path, password string) (*pdf.Document, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, func() {}, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, func() {}, err
	}
	tried := false
	r, err := pdf.NewReaderEncrypted(f, fi.Size(), func() string {
		if tried {
			return ""
		}
		tried = true
		return password
	})
	if err != nil {
		f.Close()
		return nil, func() {}, err
	}
	log.Debug().Str("path", path).Int("pages", r.NumPage()).Msg("opened document")
	return r, func() { f.Close() }, nil
}

func runText(doc *pdf.Document, page int) {
	elements, err := doc.PageText(page)
	if err != nil {
		fail("page_text", err)
	}
	var buf strings.Builder
	for _, e := range elements {
		buf.WriteString(string(e.Glyphs))
	}
	fmt.Println(buf.String())
}

func runGlyphs(doc *pdf.Document, page int) {
	mapping, err := doc.GlyphMap(page)
	if err != nil {
		fail("glyph_map", err)
	}
	enc := json.NewEncoder(os.Stdout)
	for _, g := range mapping {
		enc.Encode(g)
	}
}

func runContent(doc *pdf.Document, page int) {
	content, err := doc.PageContentStream(page)
	if err != nil {
		fail("page_content_stream", err)
	}
	fmt.Print(content)
}

func runMeta(doc *pdf.Document) {
	meta, err := doc.GetMetadata()
	if err != nil {
		fail("metadata", err)
	}
	fmt.Print(meta.String())
}

func runXref(doc *pdf.Document) {
	enc := json.NewEncoder(os.Stdout)
	for _, e := range doc.XrefEntries() {
		enc.Encode(e)
	}
}

// fail reports err, classified by its ErrorCode if it carries one, and
// exits with the corresponding status.
func fail(op string, err error) {
	code, _ := pdf.CodeOf(err)
	log.Error().Str("op", op).Err(err).Str("code", code.String()).Msg("pdfcore: operation failed")
	fmt.Fprintf(os.Stderr, "pdfcore: %s: %v\n", op, err)
	os.Exit(exitCode(code))
}

// exitCode maps an ErrorCode onto the small-integer exit-status vocabulary
// of the external interface document.
func exitCode(code pdf.ErrorCode) int {
	switch code {
	case pdf.Structural:
		return 1
	case pdf.Filter:
		return 2
	case pdf.Inflate:
		return 3
	case pdf.Crypto:
		return 4
	case pdf.Encoding:
		return 5
	case pdf.Bound:
		return 6
	case pdf.Invariant:
		return 7
	default:
		return 1
	}
}
