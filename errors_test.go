// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOfExtractsWrappedCode(t *testing.T) {
	err := wrapPageErrCode(Bound, "content", 3, errors.New("recursion too deep"))
	code, ok := CodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, Bound, code)
}

func TestCodeOfFalseForPlainError(t *testing.T) {
	_, ok := CodeOf(errors.New("not ours"))
	assert.False(t, ok)
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := wrapErrCode(Structural, "resolve", inner)
	assert.True(t, errors.Is(err, inner))
}

func TestWithPageSetsPageOnExistingError(t *testing.T) {
	err := wrapErrCode(Encoding, "decode", errors.New("bad differences"))
	withP := withPage(err, 5)
	var e *Error
	assert.True(t, errors.As(withP, &e))
	assert.Equal(t, 5, e.Page)
	assert.Equal(t, Encoding, e.Code)
}

func TestWithPageWrapsPlainError(t *testing.T) {
	withP := withPage(errors.New("plain"), 2)
	var e *Error
	assert.True(t, errors.As(withP, &e))
	assert.Equal(t, 2, e.Page)
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "Structural", Structural.String())
	assert.Equal(t, "Bound", Bound.String())
}
