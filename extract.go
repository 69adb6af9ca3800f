// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import (
	"context"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ExtractOptions configures text extraction behavior
type ExtractOptions struct {
	Workers   int   // Number of concurrent workers (0 = use NumCPU)
	PageRange []int // Specific pages to extract (nil = all pages)
}

// ExtractWithContext extracts plain text from all pages, running page
// extraction concurrently across an errgroup.Group bounded to
// opts.Workers goroutines. The first page to fail cancels the group's
// context, so pages that have not started yet are skipped (pages already
// running finish), and that page's error is returned.
func (r *Reader) ExtractWithContext(ctx context.Context, opts ExtractOptions) (io.Reader, error) {
	pages := r.NumPage()
	if pages == 0 {
		return strings.NewReader(""), nil
	}

	// Bound the object cache for concurrent page processing so a large
	// document's shared objects (fonts, the page tree) don't grow the
	// cache without limit across goroutines.
	if r.GetCacheCapacity() <= 0 {
		cacheSize := len(opts.PageRange)
		if cacheSize == 0 {
			cacheSize = pages
		}
		cacheSize *= 10
		if cacheSize > 5000 {
			cacheSize = 5000
		}
		r.SetCacheCapacity(cacheSize)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > pages {
		workers = pages
	}

	pageList := opts.PageRange
	if pageList == nil {
		pageList = make([]int, pages)
		for i := 0; i < pages; i++ {
			pageList[i] = i + 1
		}
	}

	results := make([]string, len(pageList))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, pageNum := range pageList {
		i, pageNum := i, pageNum
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := r.Page(pageNum).PlainText()
			if err != nil {
				return withPage(err, pageNum)
			}
			results[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var buf strings.Builder
	for _, text := range results {
		buf.WriteString(text)
	}
	return strings.NewReader(buf.String()), nil
}
