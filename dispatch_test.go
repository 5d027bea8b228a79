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

import "testing"

func TestTakeHyperlinkPrefersHTMLOverMarkdown(t *testing.T) {
	// An HTML anchor's '<' would otherwise also satisfy mdAutolink's
	// opening character; HTML must win per the priority order.
	_, res, ok := takeHyperlink([]byte(`<a href="https://example.com">x</a>`))
	if !ok {
		t.Fatal("takeHyperlink failed to match an HTML anchor")
	}
	if res.family != HTMLFamily {
		t.Errorf("family = %v, want HTMLFamily", res.family)
	}
}

func TestTakeHyperlinkNoMatchAdvancesNothing(t *testing.T) {
	data := []byte("plain prose, nothing to see")
	rest, _, ok := takeHyperlink(data)
	if ok {
		t.Fatal("takeHyperlink unexpectedly matched plain prose")
	}
	if &rest[0] != &data[0] || len(rest) != len(data) {
		t.Error("takeHyperlink should return data untouched on failure")
	}
}
