// SPDX-License-Identifier: AGPL-3.0-or-later

package checklist

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed phases.yaml
var defaultCatalogYAML []byte

// Rule selects Phase for any line containing every string in Contains.
type Rule struct {
	Phase    string   `yaml:"phase"`
	Contains []string `yaml:"contains"`
}

// Matches reports whether line contains all of the rule's substrings.
func (r Rule) Matches(line string) bool {
	for _, s := range r.Contains {
		if !strings.Contains(line, s) {
			return false
		}
	}
	return true
}

// Catalog is the fixed phase enumeration plus its heading rules.
// Phases is the display order; Rules is the evaluation order.
type Catalog struct {
	Phases []string `yaml:"phases"`
	Rules  []Rule   `yaml:"rules"`
}

// DefaultCatalog decodes the embedded phase catalog.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(defaultCatalogYAML)
}

// LoadCatalog decodes and validates a YAML catalog.
func LoadCatalog(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding phase catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that phases are unique and every rule targets a known phase.
func (c *Catalog) Validate() error {
	if len(c.Phases) == 0 {
		return fmt.Errorf("phase catalog: no phases defined")
	}

	seen := make(map[string]bool, len(c.Phases))
	for _, p := range c.Phases {
		if p == "" {
			return fmt.Errorf("phase catalog: empty phase name")
		}
		if seen[p] {
			return fmt.Errorf("phase catalog: duplicate phase %q", p)
		}
		seen[p] = true
	}

	for i, r := range c.Rules {
		if !seen[r.Phase] {
			return fmt.Errorf("phase catalog: rule %d targets unknown phase %q", i, r.Phase)
		}
		if len(r.Contains) == 0 {
			return fmt.Errorf("phase catalog: rule %d (%s) has no substrings", i, r.Phase)
		}
	}
	return nil
}

// Match returns the phase selected by the first matching rule.
func (c *Catalog) Match(line string) (string, bool) {
	for _, r := range c.Rules {
		if r.Matches(line) {
			return r.Phase, true
		}
	}
	return "", false
}
