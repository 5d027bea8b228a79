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

// Package hyperlink locates hyperlinks and link-reference definitions
// embedded in CommonMark, reStructuredText, Asciidoc, and HTML text.
//
// The package does not parse full documents: it scans flat UTF-8 text
// for the handful of inline constructs that carry a destination (inline
// links, reference-style links, autolinks, explicit targets, anchor
// tags) and yields [ResolvedLink] values carrying the exact byte span
// each one occupies in the source.
package hyperlink
