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

// RawMatch is what a single-grammar recognizer below produces before
// reference resolution: either a fully formed Link, or a Reference
// that a caller running one grammar in isolation must resolve against
// their own definition table (see [Iterator] for the two-pass version
// that does this automatically).
type RawMatch struct {
	Span      Span
	Link      *Link
	Reference *Reference
}

func rawMatchFrom(res rawResult) RawMatch {
	return RawMatch{Span: res.span, Link: res.link, Reference: res.reference}
}

// MDTextToDest recognizes a single Markdown inline link,
// "[text](destination \"title\")", at the start of data. It is exposed
// for callers who want to run the Markdown grammar in isolation rather
// than through [ParseLinks]/[NewIterator].
func MDTextToDest(data []byte) (rest []byte, match RawMatch, ok bool) {
	rest, res, ok := mdTextToDest(data)
	return rest, rawMatchFrom(res), ok
}

// MDLabelToDest recognizes a single Markdown link-reference definition,
// "[label]: destination optional-title", at the start of data.
func MDLabelToDest(data []byte) (rest []byte, def Definition, ok bool) {
	return mdLabelToDest(data)
}

// RSTTextToDest recognizes a reStructuredText inline hyperlink with an
// embedded URI, "`text <destination>`_" or "`text <destination>`__",
// at the start of data.
func RSTTextToDest(data []byte) (rest []byte, match RawMatch, ok bool) {
	rest, res, ok := rstTextToDest(data)
	return rest, rawMatchFrom(res), ok
}

// RSTLabelToDest recognizes a reStructuredText explicit target
// definition at the start of data: a named target
// (".. _label: destination"), a short anonymous target
// ("__ destination"), or a long anonymous target (".. __: destination").
// anonymous reports whether one of the two anonymous forms matched.
func RSTLabelToDest(data []byte) (rest []byte, def Definition, anonymous bool, ok bool) {
	return rstLabelToDest(data)
}

// RSTTextToLabel recognizes a reStructuredText named or anonymous
// reference use, "`text`_"/"text_" or "`text`__"/"text__", at the start
// of data.
func RSTTextToLabel(data []byte) (rest []byte, ref Reference, ok bool) {
	rest, res, ok := rstTextToLabel(data)
	if res.reference == nil {
		return rest, Reference{}, ok
	}
	return rest, *res.reference, ok
}

// RSTLabelToLabel recognizes the alias form of a reStructuredText
// explicit target, ".. _label: other_", where the destination is
// itself another label rather than a URI. It reports ok=false for a
// target whose destination is an ordinary URI; use [RSTLabelToDest]
// for the general case.
func RSTLabelToLabel(data []byte) (rest []byte, label, alias string, ok bool) {
	rest, def, anonymous, matched := rstLabelToDest(data)
	if !matched || anonymous || def.Alias == "" {
		return data, "", "", false
	}
	return rest, def.Label, def.Alias, true
}

// AdocTextToDest recognizes an Asciidoc inline hyperlink form (a bare
// URL macro, a "link:" macro, or an attribute substitution) at the
// start of data.
func AdocTextToDest(data []byte) (rest []byte, match RawMatch, ok bool) {
	rest, res, ok := adocTextToDest(data)
	return rest, rawMatchFrom(res), ok
}

// AdocLabelToDest recognizes an Asciidoc attribute entry,
// ":name: value", at the start of data.
func AdocLabelToDest(data []byte) (rest []byte, def Definition, ok bool) {
	return adocLabelToDest(data)
}

// HTMLTextToDest recognizes a raw HTML anchor element,
// "<a href=... title=...>inner</a>", at the start of data.
func HTMLTextToDest(data []byte) (rest []byte, link Link, ok bool) {
	rest, res, ok := htmlTextToDest(data)
	if res.link == nil {
		return rest, Link{}, ok
	}
	return rest, *res.link, ok
}
