// Copyright 2026 The crosslinkhq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package render turns a document's hyperlinks into a standalone HTML
// preview: every recognized link is wrapped in an anchor, and the
// surrounding prose is reproduced byte-for-byte (HTML-escaped) around it.
// It is grounded on the teacher's HTMLRenderer (html_renderer.go),
// narrowed from rendering a full parsed block tree down to walking
// [hyperlink.Iterator] over flat source text.
package render

import (
	"fmt"
	"io"

	"github.com/crosslinkhq/hyperlinks"
)

// Mode selects what text is placed inside the rendered anchor.
type Mode int

const (
	// SourceSpan wraps the link's exact source span (its original
	// markup) inside the anchor.
	SourceSpan Mode = iota
	// LinkText wraps only the link's extracted text, discarding the
	// surrounding markup syntax.
	LinkText
)

// Render writes input to w as an HTML preview, wrapping every
// recognized hyperlink in an "<a href=... title=...>" element and
// HTML-escaping everything else. The whole document is wrapped in a
// "<pre>" element so that whitespace and line breaks in the original
// text are preserved exactly as the teacher's AppendBlock output is
// meant to be dropped into a page verbatim.
func Render(w io.Writer, input []byte, mode Mode) error {
	var buf []byte
	buf = append(buf, "<pre>"...)

	it := hyperlink.NewIterator(input, hyperlink.LinksOnly)
	pos := 0
	for {
		link, ok := it.Next()
		if !ok {
			break
		}
		buf = escapeHTML(buf, input[pos:link.Span.Start])
		buf = appendAnchor(buf, input, link, mode)
		pos = link.Span.End
	}
	buf = escapeHTML(buf, input[pos:])
	buf = append(buf, "</pre>"...)

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("render hyperlinks: %w", err)
	}
	return nil
}

func appendAnchor(dst, input []byte, link hyperlink.ResolvedLink, mode Mode) []byte {
	dst = append(dst, `<a href="`...)
	if isAbsoluteURI(link.Link.Destination) {
		dst = escapeHTML(dst, link.Link.Destination)
	} else {
		dst = append(dst, link.Link.Destination...)
	}
	dst = append(dst, '"')
	if len(link.Link.Title) > 0 {
		dst = append(dst, ` title="`...)
		dst = escapeHTML(dst, link.Link.Title)
		dst = append(dst, '"')
	}
	dst = append(dst, '>')
	switch mode {
	case LinkText:
		dst = escapeHTML(dst, link.Link.Text)
	default:
		dst = escapeHTML(dst, link.Span.Slice(input))
	}
	dst = append(dst, "</a>"...)
	return dst
}

// escapeHTML appends the HTML-escaped version of src to dst. Adapted
// from the teacher's escapeHTML (html_renderer.go): same byte-loop,
// same verbatim-run copying, extended with nothing since the five
// characters CommonMark escapes are exactly the five an href/title
// attribute and surrounding text need escaped too.
func escapeHTML(dst []byte, src []byte) []byte {
	verbatimStart := 0
	for i, b := range src {
		switch b {
		case '&':
			dst = append(dst, src[verbatimStart:i]...)
			dst = append(dst, "&amp;"...)
			verbatimStart = i + 1
		case '\'':
			dst = append(dst, src[verbatimStart:i]...)
			dst = append(dst, "&#39;"...)
			verbatimStart = i + 1
		case '<':
			dst = append(dst, src[verbatimStart:i]...)
			dst = append(dst, "&lt;"...)
			verbatimStart = i + 1
		case '>':
			dst = append(dst, src[verbatimStart:i]...)
			dst = append(dst, "&gt;"...)
			verbatimStart = i + 1
		case '"':
			dst = append(dst, src[verbatimStart:i]...)
			dst = append(dst, "&quot;"...)
			verbatimStart = i + 1
		}
	}
	if verbatimStart < len(src) {
		dst = append(dst, src[verbatimStart:]...)
	}
	return dst
}

// isAbsoluteURI reports whether destination begins with an RFC 3986
// scheme ("letter followed by letters/digits/+/-/. then a colon"), the
// dividing line spec.md draws between destinations the renderer
// HTML-escapes and destinations it passes through untouched. The
// renderer never percent-encodes a destination either way; that is a
// parser-side concern (internal/percent), not a rendering one.
func isAbsoluteURI(destination []byte) bool {
	if len(destination) == 0 || !isASCIILetter(destination[0]) {
		return false
	}
	for i := 1; i < len(destination); i++ {
		c := destination[i]
		if c == ':' {
			return true
		}
		if !isASCIILetter(c) && !isASCIIDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return false
}

func isASCIILetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
