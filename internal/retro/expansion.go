package retro

import (
	"context"
	"strings"

	"github.com/turtacn/retrosynth/internal/platform/logging"
	"github.com/turtacn/retrosynth/pkg/errors"
)

// expand applies templateIdx to the leaf of chemPath (spec §4.6). For each
// outcome returned by ApplyTemplate: a FastFilter call scores plausibility
// (errors here propagate); outcomes scoring below the configured threshold,
// or containing a reactant already on chemPath, are abandoned entirely
// (all-or-nothing per outcome — a single cyclic reactant rejects the whole
// outcome, not just that reactant). Surviving outcomes create or reuse
// chemical nodes for each reactant, and create or merge the corresponding
// reaction node, then connect the relevant edges (idempotently).
//
// ApplyTemplate errors are absorbed: a template that fails to apply simply
// yields zero outcomes rather than aborting the rollout.
func (e *Engine) expand(ctx context.Context, chemPath []string, templateIdx int) error {
	leaf := chemPath[len(chemPath)-1]
	c, ok := e.graph.GetChemical(leaf)
	if !ok {
		return errors.New(errors.CodeEmptyOptions, "expand: leaf chemical not found: "+leaf)
	}
	if c.IsExplored(templateIdx) {
		return nil
	}
	c.markExplored(templateIdx)

	prob, _ := c.TemplateProb(templateIdx)

	outcomes, err := e.adapter.ApplyTemplate(ctx, leaf, templateIdx)
	if err != nil {
		e.logger.Warn("apply_template failed, treating as no outcomes",
			logging.String("smiles", leaf), logging.Int("template", templateIdx), logging.Err(err))
		outcomes = nil
	}

	for _, reactants := range outcomes {
		if len(reactants) == 0 {
			continue
		}
		joined := strings.Join(reactants, ".")

		score, err := e.adapter.FastFilter(ctx, joined, leaf)
		if err != nil {
			return errors.Wrap(err, errors.CodeAdapterError, "fast_filter failed for "+joined+">>"+leaf)
		}
		if score < e.cfg.FastFilterThreshold {
			continue
		}

		cyclic := false
		for _, a := range reactants {
			if containsString(chemPath, a) {
				cyclic = true
				break
			}
		}
		if cyclic {
			e.logger.Debug("rejecting cyclic expansion outcome",
				logging.String("product", leaf), logging.String("reactants", joined))
			continue
		}

		for _, a := range reactants {
			if _, ok := e.graph.GetChemical(a); ok {
				continue
			}
			newNode, err := e.createChemicalNode(ctx, a)
			if err != nil {
				return err
			}
			if err := e.graph.AddChemicalNode(newNode); err != nil {
				return err
			}
		}

		rxnID := joined + ">>" + leaf
		if existing, ok := e.graph.GetReaction(rxnID); ok {
			if !containsInt(existing.Templates, templateIdx) {
				existing.Templates = append(existing.Templates, templateIdx)
			}
			if prob > existing.TemplateScore {
				existing.TemplateScore = prob
			}
		} else {
			rn := &ReactionNode{
				ID:              rxnID,
				Product:         leaf,
				Reactants:       reactants,
				Templates:       []int{templateIdx},
				TemplateScore:   prob,
				FastFilterScore: score,
			}
			if err := e.graph.AddReactionNode(rn); err != nil {
				return err
			}
		}

		if err := e.graph.AddEdge(leaf, rxnID); err != nil {
			return err
		}
		for _, a := range reactants {
			if err := e.graph.AddEdge(rxnID, a); err != nil {
				return err
			}
		}
	}

	c.Done = e.computeChemicalDone(c)
	return nil
}

func containsInt(haystack []int, needle int) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

//Personal.AI order the ending
