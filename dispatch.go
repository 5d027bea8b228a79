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

// textRecognizer is the shape shared by every text2dest/text2label
// micro-parser: given a cursor at the start of a candidate, produce the
// unconsumed remainder and a rawResult, or fail leaving data untouched.
type textRecognizer func(data []byte) (rest []byte, res rawResult, ok bool)

// dispatchOrder lists the micro-parsers takeHyperlink tries, in the
// priority spec.md section 4.7 mandates: HTML wins first because no
// other grammar's opening characters can form a valid "<a " sequence of
// the same length; Markdown's bracket forms come next, then RST, then
// Asciidoc, with the Markdown autolink tried last since a bare "<scheme:"
// is the loosest match of the set.
var dispatchOrder = []textRecognizer{
	htmlTextToDest,
	mdTextToDest,
	mdTextToLabel,
	rstTextToDest,
	rstTextToLabel,
	adocTextToDest,
	mdAutolink,
}

// takeHyperlink tries every recognizer in dispatchOrder at the start of
// data and returns the first match, the unconsumed remainder, and the
// byte offset (relative to the start of data) where the match begins is
// always zero since every recognizer anchors at data[0]. Callers that
// fail to get a match should advance one UTF-8 rune and retry.
func takeHyperlink(data []byte) (rest []byte, res rawResult, ok bool) {
	for _, recognize := range dispatchOrder {
		if rest, res, ok := recognize(data); ok {
			return rest, res, true
		}
	}
	return data, rawResult{}, false
}
