// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report renders the milestone task completion report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bartekus/taskstatus/internal/checklist"
)

const (
	// Width is the report's column width for rules and centred titles.
	Width  = 80
	legend = "✅ = 100% Complete  |  🟢 = 75-99%  |  🔄 = 50-74%  |  🟡 = 1-49%  |  📋 = 0% (Pending)"
)

// Reporter writes reports to a single output.
// Headings are bold when the output is a terminal and plain otherwise.
type Reporter struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	heading  lipgloss.Style
}

// New creates a Reporter for w.
func New(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		out:      w,
		renderer: r,
		heading:  r.NewStyle().Bold(true),
	}
}

// Print writes the report for table. specName labels the banner.
// Phases without tasks are left out of the breakdown but still count toward the overall line.
func (r *Reporter) Print(specName string, table *checklist.Table) error {
	var b strings.Builder

	overall := table.Overall()

	b.WriteString("\n")
	r.banner(&b, "MILESTONE TASK COMPLETION REPORT", "Spec: "+specName)
	b.WriteString("\n")
	fmt.Fprintf(&b, "OVERALL: %d/%d tasks completed (%.1f%%)\n", overall.Completed, overall.Total, overall.Percent())
	b.WriteString("\n")
	r.banner(&b, "PHASE BREAKDOWN")
	b.WriteString("\n")

	for _, p := range table.Phases {
		if p.Total == 0 {
			continue
		}
		pct := p.Percent()
		status := Classify(pct)

		b.WriteString(r.heading.Render(p.Phase) + "\n")
		fmt.Fprintf(&b, "  %d/%d tasks  [%s]  %s %s (%.0f%%)\n",
			p.Completed, p.Total, Bar(pct), status.Emoji, status.Text, pct)
		b.WriteString("\n")
	}

	r.banner(&b, "LEGEND")
	b.WriteString(legend + "\n")
	b.WriteString("\n")

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// banner writes centred titles between two full-width rules.
func (r *Reporter) banner(b *strings.Builder, titles ...string) {
	rule := strings.Repeat("=", Width)
	b.WriteString(rule + "\n")
	for _, t := range titles {
		b.WriteString(r.renderer.PlaceHorizontal(Width, lipgloss.Center, r.heading.Render(t)) + "\n")
	}
	b.WriteString(rule + "\n")
}
