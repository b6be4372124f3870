package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/turtacn/retrosynth/internal/bootstrap"
	"github.com/turtacn/retrosynth/internal/retro"
)

// engineResources bundles the engine plus whatever live connections it
// holds, so the caller can release them once the command finishes.
type engineResources struct {
	engine *retro.Engine
	close  func()
}

// buildEngine assembles a retro.Engine per the active CLIContext, delegating
// the actual catalog/price-cache/chem wiring to internal/bootstrap so the
// CLI and the HTTP API share one construction path.
func buildEngine(ctx context.Context, cmd *cobra.Command) (*engineResources, error) {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return nil, err
	}

	res, err := bootstrap.BuildEngine(ctx, cliCtx.Config, cliCtx.Logger, cliCtx.Timeout)
	if err != nil {
		return nil, err
	}
	return &engineResources{engine: res.Engine, close: res.Close}, nil
}

//Personal.AI order the ending
