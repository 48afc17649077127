// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		pct  float64
		want Status
	}{
		{pct: 100, want: StatusComplete},
		{pct: 99.99, want: StatusNearComplete},
		{pct: 75, want: StatusNearComplete},
		{pct: 74.9, want: StatusHalfway},
		{pct: 50, want: StatusHalfway},
		{pct: 49.9, want: StatusStarted},
		{pct: 0.1, want: StatusStarted},
		{pct: 0, want: StatusPending},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.pct), "pct=%v", tt.pct)
	}
}

func TestClassify_TextsShareInProgress(t *testing.T) {
	assert.Equal(t, StatusHalfway.Text, StatusStarted.Text)
	assert.NotEqual(t, StatusHalfway.Emoji, StatusStarted.Emoji)
}

func TestFilledSlots_MonotonicAndBounded(t *testing.T) {
	prev := 0
	for total := 1; total <= 17; total++ {
		prev = 0
		for completed := 0; completed <= total; completed++ {
			pct := float64(completed) / float64(total) * 100
			n := FilledSlots(pct)
			assert.GreaterOrEqual(t, n, prev, "%d/%d", completed, total)
			assert.GreaterOrEqual(t, n, 0)
			assert.LessOrEqual(t, n, BarLength)
			prev = n
		}
		assert.Equal(t, BarLength, prev, "full phase must fill the bar")
	}
}

func TestFilledSlots_Floors(t *testing.T) {
	assert.Equal(t, 0, FilledSlots(0))
	assert.Equal(t, 0, FilledSlots(2.4))
	assert.Equal(t, 1, FilledSlots(2.5))
	assert.Equal(t, 13, FilledSlots(100.0/3))
	assert.Equal(t, 26, FilledSlots(200.0/3))
	assert.Equal(t, 30, FilledSlots(75))
	assert.Equal(t, 40, FilledSlots(100))
}

func TestBar(t *testing.T) {
	bar := Bar(50)
	assert.Equal(t, BarLength, utf8.RuneCountInString(bar))
	assert.Equal(t, strings.Repeat("█", 20)+strings.Repeat("░", 20), bar)
	assert.Equal(t, strings.Repeat("░", BarLength), Bar(0))
}
