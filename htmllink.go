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

package hyperlink

import (
	"golang.org/x/net/html/atom"

	"github.com/crosslinkhq/hyperlinks/internal/entity"
	"github.com/crosslinkhq/hyperlinks/internal/percent"
)

// htmlTextToDest recognizes a raw HTML anchor element,
// "<a href=... title=...>inner</a>", starting at data[0] == '<'. The
// open-tag attribute lexer (quoted with '"' or '\'', or unquoted up to
// whitespace/'>') is adapted from the teacher's own
// parseHTMLOpenTag/parseHTMLAttribute state machines
// (html.go/parse_html.go), narrowed from "any tag" to "anchor tag with
// href/title" and generalized to decode attribute values through the
// entity and percent decoders instead of leaving them raw.
func htmlTextToDest(data []byte) (rest []byte, res rawResult, ok bool) {
	if len(data) < 2 || data[0] != '<' {
		return data, rawResult{}, false
	}
	i := 1
	nameStart := i
	for i < len(data) && isTagNameChar(data[i]) {
		i++
	}
	if i == nameStart {
		return data, rawResult{}, false
	}
	if atom.Lookup(lowerASCII(data[nameStart:i])) != atom.A {
		return data, rawResult{}, false
	}

	var href, title []byte
	haveHref := false
	for {
		before := i
		i = skipASCIISpaceIndex(data, i)
		if i >= len(data) {
			return data, rawResult{}, false
		}
		if data[i] == '>' {
			i++
			break
		}
		if data[i] == '/' && i+1 < len(data) && data[i+1] == '>' {
			// Self-closing anchor: no inner text, nothing to wrap.
			return data, rawResult{}, false
		}
		if i == before {
			return data, rawResult{}, false
		}
		name, value, next, ok := htmlAttribute(data, i)
		if !ok {
			return data, rawResult{}, false
		}
		i = next
		switch lowerASCIIString(name) {
		case "href":
			href = value
			haveHref = true
		case "title":
			title = value
		}
	}
	if !haveHref {
		return data, rawResult{}, false
	}

	innerStart := i
	closeAt := findCaseInsensitive(data[innerStart:], "</a>")
	if closeAt < 0 {
		return data, rawResult{}, false
	}
	inner := data[innerStart : innerStart+closeAt]
	after := data[innerStart+closeAt+len("</a>"):]

	dest := entity.Decode(href)
	dest = percent.Decode(dest)
	decodedTitle := entity.Decode(title)

	consumed := len(data) - len(after)
	return after, rawResult{
		span:   Span{Start: 0, End: consumed},
		family: HTMLFamily,
		link: &Link{
			Text:        inner,
			Destination: dest,
			Title:       decodedTitle,
		},
	}, true
}

// htmlAttribute parses a single attribute starting at data[pos], which
// must not be whitespace. It returns the raw (not yet entity-decoded)
// attribute name and value and the index just past the attribute.
func htmlAttribute(data []byte, pos int) (name, value []byte, next int, ok bool) {
	start := pos
	for pos < len(data) && isAttrNameChar(data[pos]) {
		pos++
	}
	if pos == start {
		return nil, nil, 0, false
	}
	name = data[start:pos]

	save := pos
	pos = skipASCIISpaceIndex(data, pos)
	if pos >= len(data) || data[pos] != '=' {
		// Boolean attribute with no value.
		return name, nil, save, true
	}
	pos++
	pos = skipASCIISpaceIndex(data, pos)
	if pos >= len(data) {
		return nil, nil, 0, false
	}
	switch data[pos] {
	case '"', '\'':
		quote := data[pos]
		pos++
		valueStart := pos
		for pos < len(data) && data[pos] != quote {
			pos++
		}
		if pos >= len(data) {
			return nil, nil, 0, false
		}
		value = data[valueStart:pos]
		pos++
	default:
		valueStart := pos
		for pos < len(data) && isUnquotedAttributeValueChar(data[pos]) {
			pos++
		}
		if pos == valueStart {
			return nil, nil, 0, false
		}
		value = data[valueStart:pos]
	}
	return name, value, pos, true
}

func isTagNameChar(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '-'
}

func isAttrNameChar(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '"', '\'', '>', '/', '=':
		return false
	default:
		return !isASCIIControl(c)
	}
}

func isUnquotedAttributeValueChar(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '"', '\'', '=', '<', '>', '`':
		return false
	default:
		return true
	}
}

func skipASCIISpaceIndex(data []byte, i int) int {
	for i < len(data) && isASCIISpace(data[i]) {
		i++
	}
	return i
}

func lowerASCII(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		out[i] = b
	}
	return out
}

func lowerASCIIString(data []byte) string {
	return string(lowerASCII(data))
}

// findCaseInsensitive returns the index of the first case-insensitive
// occurrence of needle in data, or -1 if not found.
func findCaseInsensitive(data []byte, needle string) int {
	n := len(needle)
	for i := 0; i+n <= len(data); i++ {
		if equalFoldASCII(data[i:i+n], needle) {
			return i
		}
	}
	return -1
}

func equalFoldASCII(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := range b {
		bc, sc := b[i], s[i]
		if 'A' <= bc && bc <= 'Z' {
			bc += 'a' - 'A'
		}
		if 'A' <= sc && sc <= 'Z' {
			sc += 'a' - 'A'
		}
		if bc != sc {
			return false
		}
	}
	return true
}
