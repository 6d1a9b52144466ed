package commands

import "github.com/spf13/cobra"

func (c *CLI) newCircuitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "circuits <file>",
		Short: "List the circuits defined by a design and its libraries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Circuits(cmd.Context(), args[0])
		},
	}
}
