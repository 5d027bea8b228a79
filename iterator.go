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

import "unicode/utf8"

// Mode controls whether an [Iterator] yields link-reference definitions
// in addition to resolved links.
type Mode int

const (
	// LinksOnly yields only resolved links.
	LinksOnly Mode = iota
	// LinksAndDefinitions additionally yields link-reference
	// definitions (Markdown "[label]: dest", RST explicit targets,
	// Asciidoc attribute entries) as links in their own right.
	LinksAndDefinitions
)

const maxAliasDepth = 8

// Iterator walks a document once to collect definitions and then again
// to yield resolved links, substituting reference labels for their
// targets. It is grounded on [ReferenceMap] in the teacher
// (references.go), generalized from CommonMark's single definition
// table into the label/alias/anonymous-queue machinery spec.md
// requires for four grammars at once.
type Iterator struct {
	input []byte
	mode  Mode

	defs     map[string]Definition // Markdown + RST labels, first definition wins
	aliases  map[string]string     // RST label -> label alias chains
	attrs    map[string]Definition // Asciidoc attribute table, last definition wins
	anonDefs []Definition          // RST anonymous definitions, in source order

	pos     int
	anonIdx int
}

// NewIterator builds an Iterator over input. Construction performs the
// full collection pass immediately; Next then performs the emission
// pass lazily, one match at a time.
func NewIterator(input []byte, mode Mode) *Iterator {
	it := &Iterator{
		input:   input,
		mode:    mode,
		defs:    make(map[string]Definition),
		aliases: make(map[string]string),
		attrs:   make(map[string]Definition),
	}
	it.collect()
	return it
}

// collect performs pass 1: scan the input invoking the definition
// parsers, building defs, aliases, and anonDefs, and step over link
// uses whole exactly as Next does. Grounded on
// [ReferenceMap.Extract]'s single-table version of the same idea.
func (it *Iterator) collect() {
	data := it.input
	for len(data) > 0 {
		if rest, def, anon, ok := rstLabelToDest(data); ok {
			switch {
			case anon:
				it.anonDefs = append(it.anonDefs, def)
			case def.Alias != "":
				if _, exists := it.aliases[def.Label]; !exists {
					if _, exists := it.defs[def.Label]; !exists {
						it.aliases[def.Label] = def.Alias
					}
				}
			default:
				_, hasAlias := it.aliases[def.Label]
				_, hasDef := it.defs[def.Label]
				if !hasAlias && !hasDef {
					it.defs[def.Label] = def
				}
			}
			data = rest
			continue
		}
		if rest, def, ok := mdLabelToDest(data); ok {
			if _, exists := it.defs[def.Label]; !exists {
				it.defs[def.Label] = def
			}
			data = rest
			continue
		}
		if rest, def, ok := adocLabelToDest(data); ok {
			// Last definition wins: always overwrite.
			it.attrs[def.Label] = def
			data = rest
			continue
		}
		// Text inside a link use (such as the "__ " that follows an
		// anonymous reference) is never read as a definition.
		if rest, _, ok := takeHyperlink(data); ok {
			data = rest
			continue
		}
		_, size := utf8.DecodeRune(data)
		if size == 0 {
			size = 1
		}
		data = data[size:]
	}
}

// Next returns the next resolved link in source order along with the
// byte span it occupies, or ok=false once the input is exhausted.
// Unparsed bytes between links are simply skipped; the renderer is
// responsible for reproducing them verbatim.
func (it *Iterator) Next() (result ResolvedLink, ok bool) {
	for it.pos < len(it.input) {
		data := it.input[it.pos:]

		// A definition line is always consumed as a single unit before
		// falling through to the text dispatcher, in every mode. RST's
		// alias-target syntax ("other_") is byte-for-byte identical to
		// a bare named reference, so without this the dispatcher below
		// would also fire on the destination half of an explicit target
		// line and mint a spurious extra link.
		if res, consumed, matched := it.matchDefinition(data); matched {
			it.pos += consumed
			if it.mode != LinksAndDefinitions || len(res.Link.Destination) == 0 {
				continue
			}
			res.Span = res.Span.offset(it.pos - consumed)
			return res, true
		}

		rest, raw, matched := takeHyperlink(data)
		if !matched {
			_, size := utf8.DecodeRune(data)
			if size == 0 {
				size = 1
			}
			it.pos += size
			continue
		}
		consumed := len(data) - len(rest)
		span := raw.span.offset(it.pos)
		it.pos += consumed

		switch {
		case raw.link != nil:
			if len(raw.link.Destination) == 0 {
				continue
			}
			return ResolvedLink{Span: span, Link: *raw.link, Family: raw.family}, true
		case raw.reference != nil:
			link, resolved := it.resolveReference(raw.reference, raw.family)
			if !resolved || len(link.Destination) == 0 {
				continue
			}
			return ResolvedLink{
				Span:        span,
				Link:        link,
				Family:      raw.family,
				IsAnonymous: raw.reference.Anonymous,
			}, true
		default:
			continue
		}
	}
	return ResolvedLink{}, false
}

// matchDefinition tries each definition-only parser at the start of
// data, turning a matched definition directly into a Link (following
// its alias chain, if any) instead of deferring resolution. The caller
// consumes the match unconditionally and only surfaces the result when
// running in LinksAndDefinitions mode.
func (it *Iterator) matchDefinition(data []byte) (result ResolvedLink, consumed int, ok bool) {
	if rest, def, anon, matched := rstLabelToDest(data); matched {
		consumed = len(data) - len(rest)
		if anon {
			return ResolvedLink{
				Span:   Span{Start: 0, End: consumed},
				Link:   Link{Text: []byte(def.Label), Destination: def.Destination, Title: def.Title},
				Family: RSTFamily,
			}, consumed, true
		}
		dest, title, resolved := it.resolveLabel(def.Label, RSTFamily)
		if !resolved {
			dest, title = def.Destination, def.Title
		}
		return ResolvedLink{
			Span:   Span{Start: 0, End: consumed},
			Link:   Link{Text: []byte(def.Label), Destination: dest, Title: title},
			Family: RSTFamily,
		}, consumed, true
	}
	if rest, def, matched := mdLabelToDest(data); matched {
		consumed = len(data) - len(rest)
		return ResolvedLink{
			Span:   Span{Start: 0, End: consumed},
			Link:   Link{Text: []byte(def.Label), Destination: def.Destination, Title: def.Title},
			Family: MarkdownFamily,
		}, consumed, true
	}
	if rest, def, matched := adocLabelToDest(data); matched {
		consumed = len(data) - len(rest)
		return ResolvedLink{
			Span:   Span{Start: 0, End: consumed},
			Link:   Link{Text: []byte(def.Label), Destination: def.Destination},
			Family: AsciidocFamily,
		}, consumed, true
	}
	return ResolvedLink{}, 0, false
}

// resolveReference looks up a Reference's label (or, for an anonymous
// reference, consumes the next entry in the anonymous-definition queue)
// and reports whether a destination was found.
func (it *Iterator) resolveReference(ref *Reference, family Family) (Link, bool) {
	if ref.Anonymous {
		idx := it.anonIdx
		it.anonIdx++
		if idx >= len(it.anonDefs) {
			return Link{}, false
		}
		def := it.anonDefs[idx]
		return Link{Text: ref.Text, Destination: def.Destination, Title: def.Title}, true
	}
	dest, title, ok := it.resolveLabel(ref.Label, family)
	if !ok {
		return Link{}, false
	}
	return Link{Text: ref.Text, Destination: dest, Title: title}, true
}

// resolveLabel looks up label in the table appropriate for family,
// following RST alias chains up to maxAliasDepth hops and failing
// (rather than looping forever) on a cycle.
func (it *Iterator) resolveLabel(label string, family Family) (dest, title []byte, ok bool) {
	if family == AsciidocFamily {
		def, ok := it.attrs[label]
		return def.Destination, def.Title, ok
	}
	seen := make(map[string]bool, maxAliasDepth)
	for depth := 0; depth <= maxAliasDepth; depth++ {
		if def, ok := it.defs[label]; ok {
			return def.Destination, def.Title, true
		}
		next, isAlias := it.aliases[label]
		if !isAlias || seen[label] {
			return nil, nil, false
		}
		seen[label] = true
		label = next
	}
	return nil, nil, false
}

// ParseLinks runs an [Iterator] over input to exhaustion and returns
// every resolved link in source order. It is a convenience wrapper
// around [NewIterator] for callers that don't need incremental
// iteration, mirroring spec.md's parse_links(input, mode) interface.
func ParseLinks(input []byte, mode Mode) []ResolvedLink {
	it := NewIterator(input, mode)
	var results []ResolvedLink
	for {
		r, ok := it.Next()
		if !ok {
			return results
		}
		results = append(results, r)
	}
}
