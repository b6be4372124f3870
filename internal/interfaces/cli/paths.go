package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/retrosynth/internal/retro"
)

// newPathsCmd returns `retrosynth paths <smiles> --format json|graph`: runs
// build_tree then streams every complete buyable route found.
func newPathsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "paths <smiles>",
		Short: "Build the search graph and enumerate buyable routes",
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

			ch, err := res.engine.GetBuyablePaths(ctx, format)
			if err != nil {
				return fmt.Errorf("get_buyable_paths failed: %w", err)
			}

			var out pathsOutput
			for r := range ch {
				if r.Err != nil {
					return fmt.Errorf("path enumeration failed: %w", r.Err)
				}
				out.Paths = append(out.Paths, renderPath(r.Tree, format))
			}

			return PrintResult(cmd, out)
		},
	}

	cmd.Flags().StringVar(&format, "format", retro.FormatJSON, "path rendering format (json, graph)")
	return cmd
}

// pathsOutput is the result shape printed by `retrosynth paths`.
type pathsOutput struct {
	Paths []interface{} `json:"paths"`
}

func (p pathsOutput) String() string {
	return fmt.Sprintf("%d route(s) found", len(p.Paths))
}

func renderPath(tree *retro.PathNode, format string) interface{} {
	if format == retro.FormatGraph {
		return tree.ToGraph()
	}
	return tree.ToJSON()
}
