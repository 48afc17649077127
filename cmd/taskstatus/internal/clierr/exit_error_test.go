// SPDX-License-Identifier: AGPL-3.0-or-later

package clierr

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: ExitFailure},
		{name: "usage", err: New(ExitUsage, "bad args"), want: ExitUsage},
		{name: "zero normalised", err: New(0, "oops"), want: ExitFailure},
		{name: "wrapped by fmt", err: fmt.Errorf("outer: %w", New(ExitUsage, "inner")), want: ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeOf(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(ExitFailure, "reading tasks.md", fs.ErrPermission)

	assert.Equal(t, "reading tasks.md: permission denied", err.Error())
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, "just a message", Wrap(ExitFailure, "just a message", nil).Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ExitFailure, "File not found: %s", "/tmp/tasks.md")
	assert.Equal(t, "File not found: /tmp/tasks.md", err.Error())
	assert.Equal(t, ExitFailure, ExitCodeOf(err))
}
