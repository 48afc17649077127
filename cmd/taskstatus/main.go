// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/bartekus/taskstatus/cmd/taskstatus/commands"
	"github.com/bartekus/taskstatus/cmd/taskstatus/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
