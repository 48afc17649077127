// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Taskstatus - milestone task completion reporting for spec-driven projects.
It reads a tasks.md checklist and prints per-phase progress bars with status indicators.

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/taskstatus/cmd/taskstatus/internal/clierr"
)

// NewRootCmd constructs the taskstatus root Cobra command.
// The root command itself prints the report; subcommands are auxiliary.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("TASKSTATUS_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:   "taskstatus [tasks.md]",
		Short: "Print a milestone task completion report",
		Long: `Print a per-phase task completion report for a milestone tasks.md checklist.

Tasks are list items ("- ") under a recognised phase heading. A task containing ✅
counts as done, a task containing "[ ]" counts as open. The spec name shown in the
report is the name of the checklist's parent directory.

When no path is given, ` + defaultTasksPath + ` is used, relative to the
current directory.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return clierr.Wrap(clierr.ExitUsage, "usage", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReport,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "print parse diagnostics to stderr")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of taskstatus",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "taskstatus version %s\n", version)
		},
	})

	return cmd
}
