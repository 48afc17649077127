// SPDX-License-Identifier: AGPL-3.0-or-later

package checklist

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parser tallies checklist tasks per phase using a Catalog.
type Parser struct {
	catalog *Catalog
}

// NewParser creates a parser for the given catalog.
func NewParser(c *Catalog) *Parser {
	return &Parser{catalog: c}
}

// ParseFile reads path fully and tallies its tasks.
// A missing file is returned as an error satisfying os.IsNotExist.
func (p *Parser) ParseFile(path string) (*Result, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, err
	}
	return p.Parse(bytes.NewReader(data))
}

// Parse reads r fully and scans it line by line.
//
// A heading line moves the current-phase cursor; a line that, trimmed,
// starts with "- " is counted against the current phase when one is set.
// Lines end at "\n", "\r\n" or a bare "\r"; line length is unbounded.
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading checklist: %w", err)
	}

	res := &Result{Table: NewTable(p.catalog.Phases)}

	var current string
	for _, line := range splitLines(string(data)) {
		if phase, ok := p.catalog.Match(line); ok {
			current = phase
		}

		if !strings.HasPrefix(strings.TrimSpace(line), TaskPrefix) {
			continue
		}
		if current == "" {
			res.Orphaned++
			continue
		}

		switch {
		case strings.Contains(line, DoneGlyph):
			res.Table.markDone(current)
		case strings.Contains(line, UncheckedMarker):
			res.Table.markOpen(current)
		default:
			res.Unmarked++
		}
	}

	return res, nil
}

// splitLines splits s on universal newlines. A trailing terminator yields no extra line.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
