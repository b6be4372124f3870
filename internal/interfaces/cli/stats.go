package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newStatsCmd returns `retrosynth stats <smiles>`: runs build_tree and
// prints the engine's human-readable summary (PrintStats).
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <smiles>",
		Short: "Build the search graph and print engine statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			ctx := cmd.Context()

			res, err := buildEngine(ctx, cmd)
			if err != nil {
				return err
			}
			defer res.close()

			if err := res.engine.BuildTree(ctx, target); err != nil {
				return fmt.Errorf("build_tree failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.engine.PrintStats())
			return nil
		},
	}
}
