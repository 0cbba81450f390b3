package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"convexhull/internal/services/pipeline"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the hull fingerprint of the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := appCtx.Pipeline.Run(cmd.Context(), pipeline.Request{Input: input})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", res.Fingerprint)
			return nil
		},
	}
}
