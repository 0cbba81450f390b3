package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func scatterCmd() *cobra.Command {
	var plot string
	cmd := &cobra.Command{
		Use:   "scatter",
		Short: "Plot the dataset points without a hull",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, skipped, err := appCtx.Pipeline.Scatter(cmd.Context(), input, plot)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plotted %d points (%d lines skipped). Image saved as '%s'.\n", len(points), len(skipped), plot)
			return nil
		},
	}
	cmd.Flags().StringVar(&plot, "plot", "result.png", "PNG output file")
	return cmd
}
