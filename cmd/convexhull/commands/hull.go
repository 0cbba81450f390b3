package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"convexhull/internal/services/pipeline"
)

// hull: read the dataset, compute and save its convex hull, then plot both.
func hullCmd() *cobra.Command {
	var (
		out    string
		plot   string
		verify bool
	)
	cmd := &cobra.Command{
		Use:   "hull",
		Short: "Compute the convex hull of the dataset and save it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := appCtx.Pipeline.Run(cmd.Context(), pipeline.Request{
				Input:  input,
				Output: out,
				Plot:   plot,
				Verify: verify,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Loaded %d points from '%s' (%d lines skipped).\n", len(res.Points), input, len(res.Skipped))
			fmt.Fprintf(w, "Convex hull consists of %d points.\n", len(res.Hull))
			fmt.Fprintf(w, "Area: %.2f  Perimeter: %.2f\n", res.Metrics.Area, res.Metrics.Perimeter)
			if out != "" {
				fmt.Fprintf(w, "Convex hull dataset saved to '%s'.\n", out)
			}
			if plot != "" {
				fmt.Fprintf(w, "Plot saved as '%s'.\n", plot)
			}
			fmt.Fprintf(w, "Fingerprint: %s\n", res.Fingerprint)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "hull_dataset.txt", "hull output file; empty to skip")
	cmd.Flags().StringVar(&plot, "plot", "result.png", "PNG plot of points and hull; empty to skip")
	cmd.Flags().BoolVar(&verify, "verify", false, "check the hull invariants before saving")
	return cmd
}
