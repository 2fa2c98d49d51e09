// =============================================================================
// oss-this - List Command
// =============================================================================
//
// This file defines the 'list' command, which prints every template category
// with the files it copies. It never touches the destination.
//
// COMMAND USAGE:
//   oss-this list
//
// OUTPUT:
//   github           GitHub templates (PR, issues)
//     github/PULL_REQUEST_TEMPLATE.md -> .github/PULL_REQUEST_TEMPLATE.md
//     ...
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/ginjaninja78/oss-this/pkg/ossthis"
	"github.com/spf13/cobra"
)

// newListCmd creates the 'list' command.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List template categories and the files they add",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printCategories(cmd.OutOrStdout())
		},
	}
}

func printCategories(w io.Writer) {
	for _, c := range ossthis.AllCategories() {
		fmt.Fprintf(w, "%-16s %s\n", c, c.Description())
		for _, m := range c.Mappings() {
			fmt.Fprintf(w, "  %s -> %s\n", m.Source, m.Dest)
		}
	}
}
