// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePDFDateWithTimezone(t *testing.T) {
	v := Value{data: "D:20240318143022+08'00'"}
	got := parsePDFDate(v)
	want := time.Date(2024, 3, 18, 14, 30, 22, 0, time.FixedZone("PDF", 8*3600))
	assert.True(t, got.Equal(want))
}

func TestParsePDFDateWithoutTimezone(t *testing.T) {
	v := Value{data: "D:20240318143022"}
	got := parsePDFDate(v)
	want := time.Date(2024, 3, 18, 14, 30, 22, 0, time.UTC)
	assert.True(t, got.Equal(want))
}

func TestParsePDFDateMalformedReturnsZero(t *testing.T) {
	assert.True(t, parsePDFDate(Value{data: "not a date"}).IsZero())
	assert.True(t, parsePDFDate(Value{data: "D:2024"}).IsZero())
	assert.True(t, parsePDFDate(Value{}).IsZero())
}

func TestParsePDFTimezonePositiveAndNegative(t *testing.T) {
	pos := parsePDFTimezone("+08'00'")
	_, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, pos).Zone()
	assert.Equal(t, 8*3600, offset)

	neg := parsePDFTimezone("-05'30'")
	_, offset = time.Date(2024, 1, 1, 0, 0, 0, 0, neg).Zone()
	assert.Equal(t, -(5*3600 + 30*60), offset)
}

func TestParsePDFTimezoneZAndMalformed(t *testing.T) {
	assert.Equal(t, time.UTC, parsePDFTimezone("Z"))
	assert.Equal(t, time.UTC, parsePDFTimezone(""))
	assert.Nil(t, parsePDFTimezone("x"))
}

func TestDecodeMetadataStringNonStringReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", decodeMetadataString(Value{data: int64(5)}))
}

func TestDecodeMetadataStringPlain(t *testing.T) {
	assert.Equal(t, "Jane Doe", decodeMetadataString(Value{data: "Jane Doe"}))
}

func TestGetMetadataPopulatesStandardFields(t *testing.T) {
	info := dict{
		"Title":        "A Title",
		"Author":       "An Author",
		"Keywords":     "foo, bar; baz",
		"CreationDate": "D:20230101000000Z",
		"CustomField":  "custom value",
	}
	r := &Reader{trailer: dict{"Info": info}}

	meta, err := r.GetMetadata()
	assert.NoError(t, err)
	assert.Equal(t, "A Title", meta.Title)
	assert.Equal(t, "An Author", meta.Author)
	assert.Equal(t, []string{"foo", "bar", "baz"}, meta.Keywords)
	assert.Equal(t, "custom value", meta.Custom["CustomField"])
	assert.True(t, meta.CreationDate.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestGetMetadataNoInfoDict(t *testing.T) {
	r := &Reader{trailer: dict{}}
	meta, err := r.GetMetadata()
	assert.NoError(t, err)
	assert.Equal(t, "", meta.Title)
}

func TestMetadataStringFormatsKnownFields(t *testing.T) {
	m := Metadata{
		Title:    "T",
		Author:   "A",
		Keywords: []string{"x", "y"},
		Custom:   map[string]string{"_HasXMP": "true", "Dept": "Eng"},
	}
	s := m.String()
	assert.Contains(t, s, "Title: T")
	assert.Contains(t, s, "Author: A")
	assert.Contains(t, s, "Keywords: x, y")
	assert.Contains(t, s, "Dept: Eng")
	assert.NotContains(t, s, "_HasXMP")
}
