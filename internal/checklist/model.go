// SPDX-License-Identifier: AGPL-3.0-or-later

package checklist

// Markers recognised on task lines.
const (
	TaskPrefix      = "- "
	DoneGlyph       = "✅"
	UncheckedMarker = "[ ]"
)

// Tally holds the task counters for a single phase.
type Tally struct {
	Phase     string
	Completed int
	Total     int
}

// Percent returns Completed/Total*100, or 0 for an empty phase.
func (t Tally) Percent() float64 {
	return percent(t.Completed, t.Total)
}

// Table is the per-phase tally list in catalog display order.
type Table struct {
	Phases []Tally
	index  map[string]int
}

// NewTable returns a zeroed table with one entry per phase, in the given order.
func NewTable(phases []string) *Table {
	t := &Table{
		Phases: make([]Tally, 0, len(phases)),
		index:  make(map[string]int, len(phases)),
	}
	for _, name := range phases {
		t.index[name] = len(t.Phases)
		t.Phases = append(t.Phases, Tally{Phase: name})
	}
	return t
}

// Get returns the tally for phase and whether the phase is part of the table.
func (t *Table) Get(phase string) (Tally, bool) {
	i, ok := t.index[phase]
	if !ok {
		return Tally{}, false
	}
	return t.Phases[i], true
}

func (t *Table) markDone(phase string) {
	i := t.index[phase]
	t.Phases[i].Completed++
	t.Phases[i].Total++
}

func (t *Table) markOpen(phase string) {
	t.Phases[t.index[phase]].Total++
}

// Overall sums every phase, including phases without tasks.
func (t *Table) Overall() Tally {
	var sum Tally
	for _, p := range t.Phases {
		sum.Completed += p.Completed
		sum.Total += p.Total
	}
	return sum
}

// Result is the outcome of a parse pass.
type Result struct {
	Table *Table

	// Orphaned counts task lines seen before any recognised phase heading.
	Orphaned int
	// Unmarked counts task lines carrying neither the done glyph nor the unchecked marker.
	Unmarked int
}

func percent(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
