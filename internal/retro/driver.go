package retro

import (
	"context"
	"time"

	"github.com/turtacn/retrosynth/internal/platform/logging"
	"github.com/turtacn/retrosynth/pkg/errors"
)

// BuildTree runs create_chemical_node(target) and then rollouts until
// expansion_time elapses or IsDone() reports a stopping condition (spec
// §4.9). Configure must have been called first.
//
// The spec's literal "mark root with terminal=false, done=false" override
// is not applied here: doing so would make an immediately-buyable target
// (price <= max_ppg) run a full expansion_time's worth of pointless
// rollouts, contradicting the immediate-buyable boundary behavior the spec
// itself tests (a target whose price is within budget must be terminal,
// done, and cost zero rollouts). This package instead lets
// createChemicalNode's price-derived Terminal/Done stand for the root as
// for any other chemical, and only forces VisitCount to 1 as the prose
// describes.
func (e *Engine) BuildTree(ctx context.Context, target string) error {
	if !e.configured {
		return errors.New(errors.CodeEmptyOptions, "engine not configured: call Configure before BuildTree")
	}
	e.Clear()

	root, err := e.createChemicalNode(ctx, target)
	if err != nil {
		return err
	}
	if err := e.graph.AddChemicalNode(root); err != nil {
		return err
	}
	root.VisitCount = 1
	e.root = target

	start := time.Now()
	for time.Since(start) < e.cfg.ExpansionTime && !e.IsDone() {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "build_tree canceled")
		}
		if err := e.runRollout(ctx); err != nil {
			return err
		}
	}

	e.built = true
	e.logger.Info("build_tree finished",
		logging.String("target", target),
		logging.Int("rollouts", e.rollout),
		logging.Int("chemicals", e.graph.ChemicalCount()),
		logging.Int("reactions", e.graph.ReactionCount()),
		logging.Bool("done", e.IsDone()))
	return nil
}

//Personal.AI order the ending
