package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bom/internal/app"
)

func (c *CLI) newPriceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price <file> <circuit>",
		Short: "Compute the bill of materials of a circuit",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var circuit string
			if len(args) == 2 {
				circuit = args[1]
			}

			opts := app.PriceOptions{}
			opts.ConfigPath, _ = cmd.Flags().GetString("config")
			opts.Trace, _ = cmd.Flags().GetBool("trace")

			// Only flags given explicitly override the settings file.
			flags := cmd.Flags()
			if flags.Changed("detailed") {
				v, _ := flags.GetBool("detailed")
				opts.Flags.Detailed = &v
			}
			if flags.Changed("limit") {
				v, _ := flags.GetInt64("limit")
				opts.Flags.Limit = &v
			}
			if flags.Changed("output") {
				v, _ := flags.GetString("output")
				opts.Flags.Output = &v
			}
			if flags.Changed("format") {
				v, _ := flags.GetString("format")
				opts.Flags.Format = &v
			}
			if flags.Changed("log-format") {
				v, _ := flags.GetString("log-format")
				opts.Flags.LogFormat = &v
			}

			return c.app.Price(cmd.Context(), args[0], circuit, opts)
		},
	}
	cmd.Flags().BoolP("detailed", "d", false, "Include a record of every priced instance")
	cmd.Flags().StringP("output", "o", "", "Write the bill to this file instead of stdout")
	cmd.Flags().Int64P("limit", "l", 0, "Fail when the total price is above this value (0 disables the check)")
	cmd.Flags().StringP("format", "f", "json", "Bill format: json or yaml")
	cmd.Flags().Bool("trace", false, "Print every circuit resolution to stderr")
	return cmd
}
