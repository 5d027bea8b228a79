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

// Span is a half-open byte range [Start, End) into a source slice.
type Span struct {
	Start int
	End   int
}

// NullSpan returns an invalid span, the zero value for "no match".
func NullSpan() Span {
	return Span{Start: -1, End: -1}
}

// IsValid reports whether the span refers to a real range of bytes.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	if !s.IsValid() {
		return 0
	}
	return s.End - s.Start
}

// Slice returns the bytes of src covered by the span.
// It panics if the span is invalid or out of range, the same contract
// as regular Go slicing.
func (s Span) Slice(src []byte) []byte {
	return src[s.Start:s.End]
}

// offset shifts a span discovered in a sub-slice back into the
// coordinate space of the original input that the sub-slice was cut from.
func (s Span) offset(base int) Span {
	if !s.IsValid() {
		return s
	}
	return Span{Start: s.Start + base, End: s.End + base}
}

// takeUntilUnbalanced scans data starting just after an already-consumed
// open delimiter, consuming bytes up to (but not including) the close
// delimiter that brings nesting back to zero. Backslash-escaped
// delimiters of either kind are treated as literal bytes, not structure.
// It reports ok=false if end-of-input is reached before balance returns
// to zero.
//
// Grounded on the bracket-balancing loop in gardener-docforge's
// parseLink (pkg/markdown/parser/links_parse.go), generalized into a
// reusable combinator instead of being inlined at each call site.
func takeUntilUnbalanced(data []byte, open, close byte) (consumed, rest []byte, ok bool) {
	depth := 1
	i := 0
	for i < len(data) {
		switch data[i] {
		case '\\':
			if i+1 < len(data) {
				i += 2
				continue
			}
			i++
		case open:
			depth++
			i++
		case close:
			depth--
			if depth == 0 {
				return data[:i], data[i+1:], true
			}
			i++
		default:
			i++
		}
	}
	return nil, nil, false
}

// takeUntilPlain scans data until the stop predicate matches a byte at
// balance zero; it performs no bracket nesting, only backslash-escape
// awareness. Grounded on the title-scanning loop (findtitleend) in the
// same gardener-docforge source as takeUntilUnbalanced.
func takeUntilPlain(data []byte, stop func(byte) bool) (consumed, rest []byte, ok bool) {
	i := 0
	for i < len(data) {
		switch {
		case data[i] == '\\' && i+1 < len(data):
			i += 2
		case stop(data[i]):
			return data[:i], data[i:], true
		default:
			i++
		}
	}
	return nil, nil, false
}

// skipSpacesAndTabs advances past a run of ASCII spaces and tabs,
// returning the remainder.
func skipSpacesAndTabs(data []byte) []byte {
	i := 0
	for i < len(data) && (data[i] == ' ' || data[i] == '\t') {
		i++
	}
	return data[i:]
}

// skipLinkSpace skips spaces, tabs, and at most one line ending, the
// whitespace grammar CommonMark link reference definitions allow between
// their label/destination/title parts. It reports whether it consumed
// anything.
func skipLinkSpace(data []byte) (rest []byte, moved bool) {
	i := 0
	sawNewline := false
	for i < len(data) {
		switch data[i] {
		case ' ', '\t':
			i++
		case '\r':
			if sawNewline {
				return data[i:], true
			}
			sawNewline = true
			i++
			if i < len(data) && data[i] == '\n' {
				i++
			}
		case '\n':
			if sawNewline {
				return data[i:], true
			}
			sawNewline = true
			i++
		default:
			return data[i:], i > 0
		}
	}
	return data[i:], i > 0
}

func isASCIILetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

func isASCIIControl(c byte) bool {
	return c < 0x20 || c == 0x7f
}
