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
	"math/rand"
	"testing"
)

func TestSpanIsValid(t *testing.T) {
	tests := []struct {
		name string
		span Span
		want bool
	}{
		{"zero width", Span{Start: 3, End: 3}, true},
		{"normal", Span{Start: 0, End: 5}, true},
		{"null", NullSpan(), false},
		{"end before start", Span{Start: 5, End: 2}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.span.IsValid(); got != test.want {
				t.Errorf("IsValid() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestSpanOffset(t *testing.T) {
	s := Span{Start: 2, End: 5}
	got := s.offset(10)
	want := Span{Start: 12, End: 15}
	if got != want {
		t.Errorf("offset(10) = %+v, want %+v", got, want)
	}
	if got := NullSpan().offset(10); got != NullSpan() {
		t.Errorf("offset on NullSpan should stay null, got %+v", got)
	}
}

func TestTakeUntilUnbalanced(t *testing.T) {
	tests := []struct {
		name         string
		data         string
		wantConsumed string
		wantRest     string
		wantOK       bool
	}{
		{"simple", "abc]rest", "abc", "rest", true},
		{"nested", "a[b]c]rest", "a[b]c", "rest", true},
		{"escaped close", `a\]b]rest`, `a\]b`, "rest", true},
		{"unterminated", "abc", "", "", false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			consumed, rest, ok := takeUntilUnbalanced([]byte(test.data), '[', ']')
			if ok != test.wantOK {
				t.Fatalf("ok = %v, want %v", ok, test.wantOK)
			}
			if !ok {
				return
			}
			if string(consumed) != test.wantConsumed || string(rest) != test.wantRest {
				t.Errorf("got (%q, %q), want (%q, %q)", consumed, rest, test.wantConsumed, test.wantRest)
			}
		})
	}
}

// TestSpanFidelityProperty checks the invariant at the core of the
// whole package: resolved links never claim a span outside the
// document, and the unparsed bytes around every span concatenate back
// to the original input.
func TestSpanFidelityProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabet := []byte("[]()<>`_:.-/abc \"'{}\n")
	for i := 0; i < 200; i++ {
		n := rng.Intn(120)
		data := make([]byte, n)
		for j := range data {
			data[j] = alphabet[rng.Intn(len(alphabet))]
		}
		links := ParseLinks(data, LinksOnly)
		pos := 0
		for _, link := range links {
			if !link.Span.IsValid() {
				t.Fatalf("input %q produced an invalid span", data)
			}
			if link.Span.Start < pos || link.Span.End > len(data) {
				t.Fatalf("input %q produced out-of-range span %+v (pos=%d)", data, link.Span, pos)
			}
			pos = link.Span.End
		}
	}
}
