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

func TestHTMLTextToDest(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantText string
		wantDest string
		wantTtl  string
		wantRest string
	}{
		{
			"basic", `<a href="https://example.com">site</a> tail`,
			"site", "https://example.com", "", " tail",
		},
		{
			"single quoted with title", `<A HREF='https://example.com' TITLE='Ex'>site</A>`,
			"site", "https://example.com", "Ex", "",
		},
		{
			"unquoted href", `<a href=https://example.com>site</a>`,
			"site", "https://example.com", "", "",
		},
		{
			"entity in href", `<a href="https://example.com/?a=1&amp;b=2">site</a>`,
			"site", "https://example.com/?a=1&b=2", "", "",
		},
		{
			"percent-encoded href", `<a href="https://example.com/a%20b">site</a>`,
			"site", "https://example.com/a b", "", "",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rest, res, ok := htmlTextToDest([]byte(test.in))
			if !ok {
				t.Fatalf("htmlTextToDest(%q) failed to match", test.in)
			}
			if res.link == nil {
				t.Fatalf("htmlTextToDest(%q) returned no link", test.in)
			}
			if got := string(res.link.Text); got != test.wantText {
				t.Errorf("Text = %q, want %q", got, test.wantText)
			}
			if got := string(res.link.Destination); got != test.wantDest {
				t.Errorf("Destination = %q, want %q", got, test.wantDest)
			}
			if got := string(res.link.Title); got != test.wantTtl {
				t.Errorf("Title = %q, want %q", got, test.wantTtl)
			}
			if string(rest) != test.wantRest {
				t.Errorf("rest = %q, want %q", rest, test.wantRest)
			}
		})
	}
}

func TestHTMLTextToDestRejectsNonAnchorTags(t *testing.T) {
	if _, _, ok := htmlTextToDest([]byte(`<div href="https://example.com">x</div>`)); ok {
		t.Error("htmlTextToDest matched a non-anchor tag")
	}
}

func TestHTMLTextToDestRequiresHref(t *testing.T) {
	if _, _, ok := htmlTextToDest([]byte(`<a title="x">site</a>`)); ok {
		t.Error("htmlTextToDest matched an anchor with no href")
	}
}

func TestHTMLTextToDestRejectsSelfClosing(t *testing.T) {
	if _, _, ok := htmlTextToDest([]byte(`<a href="https://example.com"/>`)); ok {
		t.Error("htmlTextToDest matched a self-closing anchor")
	}
}
