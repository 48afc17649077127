// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import "strings"

const (
	// BarLength is the number of slots in a phase progress bar.
	BarLength = 40
	barFull   = "█"
	barEmpty  = "░"
)

// Status is the emoji/text pair shown next to a phase bar.
type Status struct {
	Emoji string
	Text  string
}

var (
	StatusComplete     = Status{Emoji: "✅", Text: "COMPLETE"}
	StatusNearComplete = Status{Emoji: "🟢", Text: "NEAR COMPLETE"}
	StatusHalfway      = Status{Emoji: "🔄", Text: "IN PROGRESS"}
	StatusStarted      = Status{Emoji: "🟡", Text: "IN PROGRESS"}
	StatusPending      = Status{Emoji: "📋", Text: "PENDING"}
)

// Classify maps a completion percentage to its status. Thresholds are checked top-down.
func Classify(pct float64) Status {
	switch {
	case pct == 100:
		return StatusComplete
	case pct >= 75:
		return StatusNearComplete
	case pct >= 50:
		return StatusHalfway
	case pct > 0:
		return StatusStarted
	default:
		return StatusPending
	}
}

// FilledSlots is floor(BarLength * pct / 100), clamped to the bar.
func FilledSlots(pct float64) int {
	n := int(BarLength * pct / 100)
	if n < 0 {
		return 0
	}
	if n > BarLength {
		return BarLength
	}
	return n
}

// Bar renders a BarLength-wide progress bar for pct.
func Bar(pct float64) string {
	filled := FilledSlots(pct)
	return strings.Repeat(barFull, filled) + strings.Repeat(barEmpty, BarLength-filled)
}
