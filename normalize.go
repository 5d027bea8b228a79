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
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// caseFolder performs Unicode case folding for Markdown/RST label
// comparison. golang.org/x/text/cases is already exercised by
// rsc/markdown's normalizeLabel in the retrieved pack; cases.Fold is
// preferred here over strings.ToLower because it collapses the full
// case-insensitive equivalence classes (e.g. Turkish dotless I, German
// ß/SS) that a byte-wise ToLower mishandles.
var caseFolder = cases.Fold()

// normalizeLabel collapses internal whitespace runs to a single space,
// trims leading and trailing whitespace, and, if fold is true, case-folds
// the result. Markdown and RST labels are compared case-insensitively
// (fold=true); Asciidoc attribute names are compared case-sensitively
// (fold=false).
//
// normalizeLabel is idempotent: normalizeLabel(normalizeLabel(x)) ==
// normalizeLabel(x), since the whitespace it produces is already
// collapsed and trimmed, and case folding a folded string is a no-op.
func normalizeLabel(s string, fold bool) string {
	var sb strings.Builder
	sb.Grow(len(s))
	inSpace := false
	started := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if started {
				inSpace = true
			}
			continue
		}
		if inSpace {
			sb.WriteByte(' ')
			inSpace = false
		}
		sb.WriteRune(r)
		started = true
	}
	out := sb.String()
	if fold {
		out = caseFolder.String(out)
	}
	return out
}

// normalizeLabelBytes is a byte-slice convenience wrapper around
// normalizeLabel for call sites that hold a borrowed span rather than a
// string.
func normalizeLabelBytes(b []byte, fold bool) string {
	return normalizeLabel(string(b), fold)
}
