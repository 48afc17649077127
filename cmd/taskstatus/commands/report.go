// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bartekus/taskstatus/cmd/taskstatus/internal/clierr"
	"github.com/bartekus/taskstatus/internal/checklist"
	"github.com/bartekus/taskstatus/internal/report"
)

const defaultTasksPath = "specs/001-core-mechanics/tasks.md"

func runReport(cmd *cobra.Command, args []string) error {
	tasksPath := defaultTasksPath
	if len(args) > 0 {
		tasksPath = args[0]
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return clierr.Wrap(clierr.ExitUsage, "get verbose flag", err)
	}

	// Relative paths resolve against the working directory.
	if !filepath.IsAbs(tasksPath) {
		cwd, err := os.Getwd()
		if err != nil {
			return clierr.Wrap(clierr.ExitFailure, "resolving working directory", err)
		}
		tasksPath = filepath.Join(cwd, tasksPath)
	}

	catalog, err := checklist.DefaultCatalog()
	if err != nil {
		return clierr.Wrap(clierr.ExitFailure, "loading phase catalog", err)
	}

	res, err := checklist.NewParser(catalog).ParseFile(tasksPath)
	if err != nil {
		if os.IsNotExist(err) {
			return clierr.Newf(clierr.ExitFailure, "File not found: %s", tasksPath)
		}
		return clierr.Wrap(clierr.ExitFailure, fmt.Sprintf("reading %s", tasksPath), err)
	}

	if verbose {
		errOut := cmd.ErrOrStderr()
		_, _ = fmt.Fprintf(errOut, "parsed %s\n", tasksPath)
		if res.Orphaned > 0 {
			_, _ = fmt.Fprintf(errOut, "skipped %d task line(s) outside a recognised phase\n", res.Orphaned)
		}
		if res.Unmarked > 0 {
			_, _ = fmt.Fprintf(errOut, "skipped %d task line(s) without ✅ or [ ]\n", res.Unmarked)
		}
	}

	specName := filepath.Base(filepath.Dir(tasksPath))
	if err := report.New(cmd.OutOrStdout()).Print(specName, res.Table); err != nil {
		return clierr.Wrap(clierr.ExitFailure, "printing report", err)
	}
	return nil
}
