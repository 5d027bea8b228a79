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

// Family identifies the markup grammar a parser result came from.
type Family uint8

const (
	// HTMLFamily tags results produced by the HTML <a> recognizer.
	HTMLFamily Family = 1 + iota
	// MarkdownFamily tags results produced by the Markdown recognizers.
	MarkdownFamily
	// RSTFamily tags results produced by the reStructuredText recognizers.
	RSTFamily
	// AsciidocFamily tags results produced by the Asciidoc recognizers.
	AsciidocFamily
)

// String returns a lowercase name for the family, suitable for the CLI's
// -l output or for debugging.
func (f Family) String() string {
	switch f {
	case HTMLFamily:
		return "html"
	case MarkdownFamily:
		return "markdown"
	case RSTFamily:
		return "rst"
	case AsciidocFamily:
		return "asciidoc"
	default:
		return "unknown"
	}
}

// Link is a fully resolved hyperlink: rendered text, a non-empty
// destination, and an optional title.
type Link struct {
	Text        []byte
	Destination []byte
	Title       []byte
}

// Definition is a label-to-destination binding declared by a
// link-reference definition, an RST explicit target, or an Asciidoc
// attribute entry.
type Definition struct {
	Label       string
	Destination []byte
	Title       []byte
	// Alias holds the label this definition points to instead of a
	// destination, set only for RST ".. _label: other_" forms. When
	// Alias is non-empty, Destination and Title are meaningless until
	// the alias chain is resolved.
	Alias string
}

// Reference is a use of a label in place of an inline destination, such
// as a Markdown "[text][label]" or an RST "text_" form.
type Reference struct {
	Text  []byte
	Label string
	// Anonymous marks an RST "__" reference that binds positionally
	// instead of by label. Markdown references are never anonymous: a
	// Markdown reference whose label has no definition is not resolved.
	Anonymous bool
}

// ResolvedLink pairs a [Link] with the exact byte span it occupies in
// the source and the grammar family that produced it.
type ResolvedLink struct {
	Span        Span
	Link        Link
	Family      Family
	IsAnonymous bool
}

// rawResult is what a micro-parser's text2dest/label2dest/text2label
// family returns before reference resolution: either a fully formed
// Link, a Reference awaiting lookup, or a Definition (only emitted by
// the definition-only parsers Pass 1 uses).
type rawResult struct {
	span       Span
	link       *Link
	reference  *Reference
	definition *Definition
	family     Family
}
