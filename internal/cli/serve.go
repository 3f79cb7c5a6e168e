package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asciidag/asciidag/internal/httpapi"
)

// serveCommand creates the "serve" command, running the render HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the render HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := c.newCache(false)
			if err != nil {
				return fmt.Errorf("init cache: %w", err)
			}
			defer ch.Close()

			st, err := c.newStore()
			if err != nil {
				return fmt.Errorf("init store: %w", err)
			}
			defer st.Close()

			srv := httpapi.NewServer(addr, ch, st, c.Logger)
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	return cmd
}
