package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asciidag/asciidag/internal/tui"
)

// viewCommand creates the "view" command, a read-only pager over a
// rendered ASCII art file.
func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view [file]",
		Short: "View a rendered ASCII art file in a scrollable pager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			return tui.Run(args[0], string(data))
		},
	}
}
