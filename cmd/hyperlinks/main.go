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

// Command hyperlinks reads UTF-8 text from stdin or named files and
// either prints the hyperlinks it finds or renders them as an HTML
// preview. It is grounded on the cobra-based CLI structure in
// leonardomso-gone's cmd package (root.go/check.go), narrowed to the
// single-command shape this library's contract calls for.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/crosslinkhq/hyperlinks"
	"github.com/crosslinkhq/hyperlinks/render"
)

// version is set by the release process at build time via ldflags, the
// same mechanism leonardomso-gone's main.go documents for its own
// version variable.
var version = "dev"

var (
	listOnly    bool
	useLinkText bool
	outputPath  string
)

var rootCmd = &cobra.Command{
	Use:     "hyperlinks [file...]",
	Short:   "Locate hyperlinks in Markdown, reStructuredText, Asciidoc, and HTML text",
	Version: version,
	Long: `hyperlinks scans UTF-8 text for hyperlinks and link-reference
definitions across four markup grammars and either lists them or
renders an HTML preview with every link wrapped in an anchor.

If no files are given, input is read from stdin.

Examples:
  hyperlinks README.md                # render an HTML preview to stdout
  hyperlinks -l README.md              # list dest/text/title, one per line
  hyperlinks -r -o preview.html notes.rst`,
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVarP(&listOnly, "list", "l", false, "print only links, one dest\\ttext\\ttitle line each")
	rootCmd.Flags().BoolVarP(&useLinkText, "render-text", "r", false, "render anchors using link text instead of source span")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write output to FILE instead of stdout")
	rootCmd.SetVersionTemplate("hyperlinks {{.Version}}\n")
	// cobra adds a --version flag with shorthand "v" only when no
	// "version" flag exists; declaring it here gives it shorthand "V".
	rootCmd.Flags().BoolP("version", "V", false, "version for hyperlinks")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return fmt.Errorf("hyperlinks: %w", err)
	}

	out := cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("hyperlinks: %w", err)
		}
		defer f.Close()
		out = f
	}
	w := bufio.NewWriter(out)

	if listOnly {
		if err := listLinks(w, input); err != nil {
			return fmt.Errorf("hyperlinks: %w", err)
		}
	} else {
		mode := render.SourceSpan
		if useLinkText {
			mode = render.LinkText
		}
		if err := render.Render(w, input, mode); err != nil {
			return fmt.Errorf("hyperlinks: %w", err)
		}
	}
	return w.Flush()
}

// readInput concatenates stdin (when args is empty) or each named file
// in order into a single buffer. Files are read whole rather than
// streamed since every parser in this library operates on a complete,
// in-memory document.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	var buf []byte
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		buf = append(buf, data...)
	}
	return buf, nil
}

// listLinks writes one "dest\ttext\ttitle" line per resolved link, in
// source order.
func listLinks(w io.Writer, input []byte) error {
	for _, link := range hyperlink.ParseLinks(input, hyperlink.LinksOnly) {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", link.Link.Destination, link.Link.Text, link.Link.Title)
		if err != nil {
			return err
		}
	}
	return nil
}
