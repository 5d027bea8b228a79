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

func TestAdocURLMacro(t *testing.T) {
	rest, res, ok := adocTextToDest([]byte("https://example.com/page[Example Page] tail"))
	if !ok || res.link == nil {
		t.Fatalf("adocTextToDest failed to match a URL macro (ok=%v)", ok)
	}
	if got, want := string(res.link.Text), "Example Page"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
	if got, want := string(res.link.Destination), "https://example.com/page"; got != want {
		t.Errorf("Destination = %q, want %q", got, want)
	}
	if string(rest) != " tail" {
		t.Errorf("rest = %q", rest)
	}
}

func TestAdocURLMacroDefaultsTextToDestination(t *testing.T) {
	_, res, ok := adocTextToDest([]byte("https://example.com/page[]"))
	if !ok || res.link == nil {
		t.Fatal("failed to match URL macro with empty text")
	}
	if string(res.link.Text) != string(res.link.Destination) {
		t.Errorf("Text = %q, want it to default to Destination %q", res.link.Text, res.link.Destination)
	}
}

func TestAdocLinkMacroLiteralTarget(t *testing.T) {
	_, res, ok := adocTextToDest([]byte("link:/downloads/report.pdf[Report]"))
	if !ok || res.link == nil {
		t.Fatalf("adocTextToDest failed to match a link: macro (ok=%v)", ok)
	}
	if got, want := string(res.link.Text), "Report"; got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
	if got, want := string(res.link.Destination), "/downloads/report.pdf"; got != want {
		t.Errorf("Destination = %q, want %q", got, want)
	}
}

func TestAdocLinkMacroAttributeTarget(t *testing.T) {
	_, res, ok := adocTextToDest([]byte("link:{docs-url}[Docs]"))
	if !ok || res.reference == nil {
		t.Fatalf("adocTextToDest failed to match an attribute-targeted link: macro (ok=%v)", ok)
	}
	if res.reference.Label != "docs-url" {
		t.Errorf("Label = %q, want %q", res.reference.Label, "docs-url")
	}
	if string(res.reference.Text) != "Docs" {
		t.Errorf("Text = %q", res.reference.Text)
	}
}

func TestAdocAttrReferenceBareAndBracketed(t *testing.T) {
	_, res, ok := adocTextToDest([]byte("{docs-url}"))
	if !ok || res.reference == nil {
		t.Fatalf("bare attribute reference failed to match (ok=%v)", ok)
	}
	if res.reference.Label != "docs-url" {
		t.Errorf("Label = %q", res.reference.Label)
	}

	_, res, ok = adocTextToDest([]byte("{docs-url}[Documentation]"))
	if !ok || res.reference == nil {
		t.Fatalf("bracketed attribute reference failed to match (ok=%v)", ok)
	}
	if string(res.reference.Text) != "Documentation" {
		t.Errorf("Text = %q", res.reference.Text)
	}
}

func TestAdocLabelToDest(t *testing.T) {
	rest, def, ok := adocLabelToDest([]byte(":docs-url: https://docs.example.com\ntail"))
	if !ok {
		t.Fatal("adocLabelToDest failed to match")
	}
	if def.Label != "docs-url" {
		t.Errorf("Label = %q", def.Label)
	}
	if string(def.Destination) != "https://docs.example.com" {
		t.Errorf("Destination = %q", def.Destination)
	}
	if string(rest) != "tail" {
		t.Errorf("rest = %q", rest)
	}
}

func TestAdocLabelToDestRejectsUnsetForm(t *testing.T) {
	if _, _, ok := adocLabelToDest([]byte(":!docs-url:\n")); ok {
		t.Error("adocLabelToDest matched an attribute-unset directive")
	}
}
