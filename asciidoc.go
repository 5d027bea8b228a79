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
	"github.com/crosslinkhq/hyperlinks/internal/percent"
)

// Like rst.go, there is no Asciidoc parser in the retrieved pack to
// ground against; this file generalizes the teacher's byte-span
// combinator idiom (and reuses span.go's takeUntilUnbalanced for
// the macro's bracketed text, exactly as AsciiDoctor's own macro
// grammar reuses square-bracket balancing across its link forms).

// adocTextToDest recognizes the three Asciidoc inline forms that can
// introduce a hyperlink at the current cursor, trying each in turn:
// the bare URL macro ("scheme://host/path[text]"), the prefixed macro
// ("link:target[text]"), and an attribute substitution
// ("{attr}[text]" or bare "{attr}"). The URL macro always resolves
// immediately to a Link. The prefixed macro resolves to a Link when its
// target is a literal URI or path, and to a Reference keyed by
// attribute name when its target is "{attr}"; an attribute
// substitution is always a Reference. References are resolved against
// the attribute table built in pass 1.
func adocTextToDest(data []byte) (rest []byte, res rawResult, ok bool) {
	if rest, res, ok := adocURLMacro(data); ok {
		return rest, res, true
	}
	if rest, res, ok := adocLinkMacro(data); ok {
		return rest, res, true
	}
	if rest, res, ok := adocAttrReference(data); ok {
		return rest, res, true
	}
	return data, rawResult{}, false
}

// adocURLMacro recognizes "scheme://host/path[text]". The scheme must
// be a syntactically valid URI scheme followed by "://", so that
// ordinary prose containing a colon doesn't misfire; the path runs
// until the '[' that opens the macro's bracketed text (which may itself
// contain balanced brackets) and may not contain whitespace. The
// destination is percent-decoded.
func adocURLMacro(data []byte) (rest []byte, res rawResult, ok bool) {
	_, i, ok := matchURIScheme(data)
	if !ok {
		return data, rawResult{}, false
	}
	if !hasPrefixAt(data, i, "://") {
		return data, rawResult{}, false
	}
	i += len("://")
	pathStart := i
	for i < len(data) && data[i] != '[' && !isASCIISpace(data[i]) {
		i++
	}
	if i >= len(data) || data[i] != '[' || i == pathStart {
		return data, rawResult{}, false
	}
	dest := data[:i]
	textRaw, after, ok := takeUntilUnbalanced(data[i+1:], '[', ']')
	if !ok {
		return data, rawResult{}, false
	}
	text := textRaw
	if len(text) == 0 {
		text = dest
	}
	consumed := len(data) - len(after)
	return after, rawResult{
		span:   Span{Start: 0, End: consumed},
		family: AsciidocFamily,
		link: &Link{
			Text:        text,
			Destination: percent.Decode(dest),
		},
	}, true
}

// adocLinkMacro recognizes "link:target[text]" where target is a bare
// URI/path, or an attribute substitution "{attr}".
func adocLinkMacro(data []byte) (rest []byte, res rawResult, ok bool) {
	after, matched := matchPrefix(data, "link:")
	if !matched {
		return data, rawResult{}, false
	}
	targetStart := 0
	i := targetStart
	for i < len(after) && after[i] != '[' && !isASCIISpace(after[i]) {
		i++
	}
	if i >= len(after) || after[i] != '[' || i == targetStart {
		return data, rawResult{}, false
	}
	target := after[:i]
	textRaw, rest2, ok := takeUntilUnbalanced(after[i+1:], '[', ']')
	if !ok {
		return data, rawResult{}, false
	}
	text := textRaw
	if len(text) == 0 {
		text = target
	}
	consumed := len(data) - len(rest2)

	if attr, isAttr := matchBracedAttribute(target); isAttr {
		return rest2, rawResult{
			span:      Span{Start: 0, End: consumed},
			family:    AsciidocFamily,
			reference: &Reference{Text: text, Label: attr},
		}, true
	}

	return rest2, rawResult{
		span:   Span{Start: 0, End: consumed},
		family: AsciidocFamily,
		link: &Link{
			Text:        text,
			Destination: percent.Decode(target),
		},
	}, true
}

// adocAttrReference recognizes a bare attribute substitution:
// "{attr}[text]" or "{attr}" on its own. Resolution against the
// attribute table happens in pass 2, since attribute definitions
// (":attr: value") may appear anywhere in the document and follow
// last-definition-wins semantics.
func adocAttrReference(data []byte) (rest []byte, res rawResult, ok bool) {
	attr, isAttr := matchBracedAttribute(data)
	if !isAttr {
		return data, rawResult{}, false
	}
	consumedAttr := len(attr) + 2
	after := data[consumedAttr:]
	if len(after) > 0 && after[0] == '[' {
		textRaw, rest2, ok := takeUntilUnbalanced(after[1:], '[', ']')
		if ok {
			text := textRaw
			if len(text) == 0 {
				text = data[:consumedAttr]
			}
			consumed := len(data) - len(rest2)
			return rest2, rawResult{
				span:      Span{Start: 0, End: consumed},
				family:    AsciidocFamily,
				reference: &Reference{Text: text, Label: string(attr)},
			}, true
		}
	}
	return after, rawResult{
		span:      Span{Start: 0, End: consumedAttr},
		family:    AsciidocFamily,
		reference: &Reference{Text: data[:consumedAttr], Label: string(attr)},
	}, true
}

// matchBracedAttribute reports whether data begins with "{name}" and,
// if so, returns the attribute name.
func matchBracedAttribute(data []byte) (name []byte, ok bool) {
	if len(data) == 0 || data[0] != '{' {
		return nil, false
	}
	i := 1
	for i < len(data) && data[i] != '}' && !isASCIISpace(data[i]) {
		i++
	}
	if i >= len(data) || data[i] != '}' || i == 1 {
		return nil, false
	}
	return data[1:i], true
}

// adocLabelToDest recognizes an attribute definition at the start of a
// line: ":attr: value". Asciidoc attribute names are matched
// case-sensitively and later definitions override earlier ones
// (handled by the iterator's collection pass, not here).
func adocLabelToDest(data []byte) (rest []byte, def Definition, ok bool) {
	if len(data) == 0 || data[0] != ':' {
		return data, Definition{}, false
	}
	i := 1
	if i < len(data) && data[i] == '!' {
		// Attribute unset form ":!attr:" carries no value; not a link source.
		return data, Definition{}, false
	}
	start := i
	for i < len(data) && data[i] != ':' && !isASCIISpace(data[i]) {
		i++
	}
	if i >= len(data) || data[i] != ':' || i == start {
		return data, Definition{}, false
	}
	name := string(data[start:i])
	after := data[i+1:]
	line, rest2 := takeLine(after)
	value := trimTrailingSpace(skipLeadingSpace(line))
	return rest2, Definition{Label: name, Destination: value}, true
}

// matchURIScheme matches a URI scheme token ([A-Za-z][A-Za-z0-9+.-]*)
// at the start of data and returns it along with the index just past
// it. It does not check for the "://" that must follow.
func matchURIScheme(data []byte) (scheme []byte, end int, ok bool) {
	if len(data) == 0 || !isASCIILetter(data[0]) {
		return nil, 0, false
	}
	i := 1
	for i < len(data) && isSchemeChar(data[i]) {
		i++
	}
	return data[:i], i, true
}

func hasPrefixAt(data []byte, i int, prefix string) bool {
	if i+len(prefix) > len(data) {
		return false
	}
	return string(data[i:i+len(prefix)]) == prefix
}
