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

package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderSourceSpan(t *testing.T) {
	in := []byte(`See [Go](https://go.dev) site.`)
	var buf bytes.Buffer
	if err := Render(&buf, in, SourceSpan); err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := buf.String()
	want := `<pre>See <a href="https://go.dev">[Go](https://go.dev)</a> site.</pre>`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderLinkText(t *testing.T) {
	in := []byte(`See [Go](https://go.dev) site.`)
	var buf bytes.Buffer
	if err := Render(&buf, in, LinkText); err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := buf.String()
	want := `<pre>See <a href="https://go.dev">Go</a> site.</pre>`
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderEscapesSurroundingText(t *testing.T) {
	in := []byte(`Tom & Jerry's <tale> [Go](https://go.dev)`)
	var buf bytes.Buffer
	if err := Render(&buf, in, LinkText); err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "Tom &amp; Jerry&#39;s &lt;tale&gt;") {
		t.Errorf("Render() did not escape surrounding text: %q", got)
	}
}

func TestRenderEscapesAbsoluteDestination(t *testing.T) {
	in := []byte(`[search](https://example.com/search?q=a&b=c)`)
	var buf bytes.Buffer
	if err := Render(&buf, in, LinkText); err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `href="https://example.com/search?q=a&amp;b=c"`) {
		t.Errorf("Render() did not HTML-escape the absolute destination: %q", got)
	}
}

func TestRenderPassesThroughRelativeDestination(t *testing.T) {
	in := []byte(`[search](/search?q=a&b=c)`)
	var buf bytes.Buffer
	if err := Render(&buf, in, LinkText); err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `href="/search?q=a&b=c"`) {
		t.Errorf("Render() should pass a relative destination through unescaped: %q", got)
	}
}

func TestRenderNeverPercentEncodesDestination(t *testing.T) {
	in := []byte(`[space](<https://example.com/a b>)`)
	var buf bytes.Buffer
	if err := Render(&buf, in, LinkText); err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `href="https://example.com/a b"`) {
		t.Errorf("Render() must not add percent-encoding to the destination: %q", got)
	}
}

func TestRenderNoLinksStillEscapesAndWraps(t *testing.T) {
	in := []byte(`no links <here>`)
	var buf bytes.Buffer
	if err := Render(&buf, in, SourceSpan); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `<pre>no links &lt;here&gt;</pre>`
	if got := buf.String(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
