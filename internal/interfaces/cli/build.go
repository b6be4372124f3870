package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/retrosynth/internal/platform/logging"
)

// newBuildCmd returns `retrosynth build <smiles>`: runs build_tree to
// completion and reports how large the resulting expansion graph is.
func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <smiles>",
		Short: "Expand the AND/OR search graph for a target molecule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]

			res, err := buildEngine(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer res.close()

			if err := res.engine.BuildTree(cmd.Context(), target); err != nil {
				return fmt.Errorf("build_tree failed: %w", err)
			}

			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			cliCtx.Logger.Info("build_tree complete", logging.String("target", target))

			return PrintResult(cmd, buildSummary{
				Target:    target,
				Chemicals: res.engine.Graph().ChemicalCount(),
				Reactions: res.engine.Graph().ReactionCount(),
				Done:      res.engine.IsDone(),
			})
		},
	}
}

// buildSummary is the result shape printed by `retrosynth build`.
type buildSummary struct {
	Target    string `json:"target"`
	Chemicals int    `json:"chemicals"`
	Reactions int    `json:"reactions"`
	Done      bool   `json:"done"`
}

func (b buildSummary) String() string {
	return fmt.Sprintf("target: %s\nchemicals: %d\nreactions: %d\ndone: %t", b.Target, b.Chemicals, b.Reactions, b.Done)
}
