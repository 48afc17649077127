// SPDX-License-Identifier: AGPL-3.0-or-later

// Package golden compares rendered output against testdata/*.golden files.
// Run tests with -update to rewrite the files from the current output.
package golden

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var Update = flag.Bool("update", false, "update golden files")

// TestdataDir returns the testdata directory next to the calling test file.
func TestdataDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(1)
	if !ok {
		t.Fatalf("runtime.Caller failed")
	}
	return filepath.Join(filepath.Dir(filename), "testdata")
}

// Assert compares got with testdata/<name>.golden, or rewrites the file under -update.
func Assert(t *testing.T, testdataDir, name, got string) {
	t.Helper()
	path := goldenPath(t, testdataDir, name)

	if *Update {
		require.NoError(t, os.MkdirAll(testdataDir, 0o750))
		require.NoError(t, os.WriteFile(path, []byte(got), 0o600))
		return
	}

	want, err := os.ReadFile(path) //nolint:gosec // testdata path controlled by test
	require.NoError(t, err, "golden %s missing; run with -update", path)
	assert.Equal(t, string(want), got, "output differs from %s", path)
}

func goldenPath(t *testing.T, testdataDir, name string) string {
	t.Helper()
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		t.Fatalf("invalid golden name %q", name)
	}
	return filepath.Join(testdataDir, name+".golden")
}
