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

// mdTextToDest recognizes an inline Markdown link "[text](dest "title")"
// starting at data[0] == '['. It returns the match's span, the parsed
// rawResult, and the unconsumed remainder of data. The bracket-balanced
// text scan is grounded on gardener-docforge's parseLink bracket
// counter; the destination/title grammar follows spec.md section 4.3
// item 1.
func mdTextToDest(data []byte) (rest []byte, res rawResult, ok bool) {
	if len(data) == 0 || data[0] != '[' {
		return data, rawResult{}, false
	}
	textRaw, after, ok := takeUntilUnbalanced(data[1:], '[', ']')
	if !ok {
		return data, rawResult{}, false
	}
	if len(after) == 0 || after[0] != '(' {
		return data, rawResult{}, false
	}
	after = after[1:]
	after = skipSpacesAndTabs(after)

	dest, after, ok := mdLinkDestination(after)
	if !ok {
		return data, rawResult{}, false
	}

	beforeTitle := after
	after = skipSpacesAndTabs(after)
	hadSpace := len(after) < len(beforeTitle)

	var title []byte
	if hadSpace && len(after) > 0 && (after[0] == '"' || after[0] == '\'' || after[0] == '(') {
		t, rest2, ok := mdLinkTitle(after)
		if ok {
			title = t
			after = skipSpacesAndTabs(rest2)
		}
	}

	if len(after) == 0 || after[0] != ')' {
		return data, rawResult{}, false
	}
	consumed := len(data) - len(after) + 1
	return after[1:], rawResult{
		span:   Span{Start: 0, End: consumed},
		family: MarkdownFamily,
		link: &Link{
			Text:        escapedStrTransformMaybe(textRaw),
			Destination: dest,
			Title:       title,
		},
	}, true
}

func escapedStrTransformMaybe(data []byte) []byte {
	if !hasEscape(data) {
		return data
	}
	return escapedStrTransform(data)
}

// mdLinkDestination parses a CommonMark link destination: either an
// angle-bracket enclosed URI ("<...>", escapes and entities allowed, no
// unescaped '<', '>', or line ending), or a bare URI terminated by
// whitespace or an unescaped ')' (balanced parens allowed).
func mdLinkDestination(data []byte) (dest, rest []byte, ok bool) {
	if len(data) == 0 {
		return nil, data, false
	}
	if data[0] == '<' {
		raw, after, ok := takeUntilPlain(data[1:], func(b byte) bool {
			return b == '>' || b == '<' || b == '\n'
		})
		if !ok || len(after) == 0 || after[0] != '>' {
			return nil, data, false
		}
		return escapedStrTransformMaybe(raw), after[1:], true
	}

	depth := 0
	i := 0
	for i < len(data) {
		switch {
		case data[i] == '\\' && i+1 < len(data):
			i += 2
		case isASCIIControl(data[i]):
			if i == 0 {
				return nil, data, false
			}
			return escapedStrTransformMaybe(data[:i]), data[i:], true
		case data[i] == '(':
			depth++
			i++
		case data[i] == ')':
			if depth == 0 {
				if i == 0 {
					return nil, data, false
				}
				return escapedStrTransformMaybe(data[:i]), data[i:], true
			}
			depth--
			i++
		case isASCIISpace(data[i]):
			if i == 0 {
				return nil, data, false
			}
			return escapedStrTransformMaybe(data[:i]), data[i:], true
		default:
			i++
		}
	}
	if i == 0 {
		return nil, data, false
	}
	return escapedStrTransformMaybe(data[:i]), data[i:], true
}

// mdLinkTitle parses a CommonMark link title delimited by '"', '\'', or
// a balanced '(' ')' pair.
func mdLinkTitle(data []byte) (title, rest []byte, ok bool) {
	if len(data) == 0 {
		return nil, data, false
	}
	switch data[0] {
	case '"':
		raw, after, ok := takeUntilPlain(data[1:], func(b byte) bool { return b == '"' })
		if !ok {
			return nil, data, false
		}
		return escapedStrTransformMaybe(raw), after[1:], true
	case '\'':
		raw, after, ok := takeUntilPlain(data[1:], func(b byte) bool { return b == '\'' })
		if !ok {
			return nil, data, false
		}
		return escapedStrTransformMaybe(raw), after[1:], true
	case '(':
		raw, after, ok := takeUntilUnbalanced(data[1:], '(', ')')
		if !ok {
			return nil, data, false
		}
		return escapedStrTransformMaybe(raw), after, true
	default:
		return nil, data, false
	}
}

// mdLabelToDest recognizes a link-reference definition,
// "[label]: destination optional-title", starting at data[0] == '['. It
// implements spec.md section 4.3's definition grammar, generalized from
// the teacher's block-scoped onCloseParagraph state machine
// (blocks.go) to operate on flat text per spec.md's Open Question
// resolution: the core library treats any line-start definition as
// valid without tracking surrounding block structure.
func mdLabelToDest(data []byte) (rest []byte, def Definition, ok bool) {
	if len(data) == 0 || data[0] != '[' {
		return data, Definition{}, false
	}
	labelRaw, after, ok := takeUntilUnbalanced(data[1:], '[', ']')
	if !ok || len(labelRaw) == 0 {
		return data, Definition{}, false
	}
	if normalizeLabel(string(labelRaw), true) == "" {
		return data, Definition{}, false
	}
	if len(after) == 0 || after[0] != ':' {
		return data, Definition{}, false
	}
	after = after[1:]
	var moved bool
	after, moved = skipLinkSpace(after)
	if !moved && (len(after) == 0 || !isLinkDestinationStart(after[0])) {
		return data, Definition{}, false
	}

	dest, after, ok := mdLinkDestination(after)
	if !ok {
		return data, Definition{}, false
	}

	label := normalizeLabel(string(labelRaw), true)
	def = Definition{Label: label, Destination: dest}

	save := after
	afterSpace, moved := skipLinkSpace(after)
	if !moved {
		return afterSpace, def, true
	}
	if len(afterSpace) > 0 && (afterSpace[0] == '"' || afterSpace[0] == '\'' || afterSpace[0] == '(') {
		title, rest2, ok := mdLinkTitle(afterSpace)
		if ok {
			restAfterLine, lineOK := endOfLineOrEOF(rest2)
			if lineOK {
				def.Title = title
				return restAfterLine, def, true
			}
		}
	}
	return save, def, true
}

func isLinkDestinationStart(b byte) bool {
	return b == '<' || !isASCIISpace(b)
}

// endOfLineOrEOF reports whether data, after skipping trailing spaces
// and tabs, immediately reaches a line ending or end of input, and
// returns the remainder past that line ending.
func endOfLineOrEOF(data []byte) (rest []byte, ok bool) {
	data = skipSpacesAndTabs(data)
	if len(data) == 0 {
		return data, true
	}
	switch data[0] {
	case '\r':
		if len(data) > 1 && data[1] == '\n' {
			return data[2:], true
		}
		return data[1:], true
	case '\n':
		return data[1:], true
	default:
		return data, false
	}
}

// mdTextToLabel recognizes the full, collapsed, and shortcut Markdown
// reference forms: "[text][label]", "[label][]", and "[label]" (the
// last only when not immediately followed by '(', '[', or ':', which
// would make it an inline link, a full reference, or the start of a
// definition instead).
func mdTextToLabel(data []byte) (rest []byte, res rawResult, ok bool) {
	if len(data) == 0 || data[0] != '[' {
		return data, rawResult{}, false
	}
	textRaw, after, ok := takeUntilUnbalanced(data[1:], '[', ']')
	if !ok {
		return data, rawResult{}, false
	}
	text := escapedStrTransformMaybe(textRaw)
	consumedText := len(data) - len(after)

	if len(after) > 0 && after[0] == '[' {
		labelRaw, after2, ok := takeUntilUnbalanced(after[1:], '[', ']')
		if ok {
			if len(labelRaw) == 0 {
				// Collapsed reference: "[label][]".
				return after2, rawResult{
					span:      Span{Start: 0, End: len(data) - len(after2)},
					family:    MarkdownFamily,
					reference: &Reference{Text: text, Label: normalizeLabel(string(textRaw), true)},
				}, true
			}
			// Full reference: "[text][label]".
			return after2, rawResult{
				span:      Span{Start: 0, End: len(data) - len(after2)},
				family:    MarkdownFamily,
				reference: &Reference{Text: text, Label: normalizeLabel(string(labelRaw), true)},
			}, true
		}
	}

	// Shortcut reference: "[label]", rejected if immediately followed by
	// '(', '[', or ':'.
	if len(after) > 0 {
		switch after[0] {
		case '(', '[', ':':
			return data, rawResult{}, false
		}
	}
	return after, rawResult{
		span:      Span{Start: 0, End: consumedText},
		family:    MarkdownFamily,
		reference: &Reference{Text: text, Label: normalizeLabel(string(textRaw), true), Anonymous: false},
	}, true
}

// mdAutolink recognizes "<scheme:rest>" starting at data[0] == '<',
// where scheme matches [A-Za-z][A-Za-z0-9+.-]* and the enclosed URI
// contains no '<', '>', or ASCII control characters. The destination is
// percent-decoded on emission per spec.md section 4.3 item 5.
func mdAutolink(data []byte) (rest []byte, res rawResult, ok bool) {
	if len(data) == 0 || data[0] != '<' {
		return data, rawResult{}, false
	}
	i := 1
	if i >= len(data) || !isASCIILetter(data[i]) {
		return data, rawResult{}, false
	}
	i++
	for i < len(data) && isSchemeChar(data[i]) {
		i++
	}
	if i >= len(data) || data[i] != ':' {
		return data, rawResult{}, false
	}
	i++
	start := i
	for i < len(data) {
		c := data[i]
		if c == '>' {
			break
		}
		if c == '<' || isASCIIControl(c) || isASCIISpace(c) {
			return data, rawResult{}, false
		}
		i++
	}
	if i >= len(data) || data[i] != '>' {
		return data, rawResult{}, false
	}
	uri := data[start:i]
	decoded := percent.Decode(uri)
	return data[i+1:], rawResult{
		span:   Span{Start: 0, End: i + 1},
		family: MarkdownFamily,
		link: &Link{
			Text:        decoded,
			Destination: decoded,
		},
	}, true
}

func isSchemeChar(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '+' || c == '.' || c == '-'
}
