package retro

import (
	"context"

	"github.com/turtacn/retrosynth/internal/platform/logging"
	"github.com/turtacn/retrosynth/pkg/errors"
)

// createChemicalNode predicts templates and looks up a price for smiles,
// and builds a ChemicalNode with Terminal/Done already computed. It does
// not insert the node into the graph; callers do that so duplicate-SMILES
// detection stays centralized in Graph.AddChemicalNode.
//
// PredictTemplates errors propagate (CodeAdapterError); LookupPrice errors
// are absorbed and logged, treating the chemical as not purchasable.
func (e *Engine) createChemicalNode(ctx context.Context, smiles string) (*ChemicalNode, error) {
	indices, probs, err := e.adapter.PredictTemplates(ctx, smiles, e.cfg.TemplateMaxCount, e.cfg.TemplateMaxCumProb)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeAdapterError, "predict_templates failed for "+smiles)
	}
	if len(indices) != len(probs) {
		return nil, errors.New(errors.CodeAdapterError, "predict_templates returned mismatched indices/probs lengths")
	}

	templates := make([]TemplateProb, 0, len(indices))
	for i := range indices {
		if uint(len(templates)) >= e.cfg.TemplateMaxCount {
			break
		}
		templates = append(templates, TemplateProb{Index: indices[i], Prob: probs[i]})
	}

	price, err := e.adapter.LookupPrice(ctx, smiles)
	if err != nil {
		e.logger.Warn("lookup_price failed, treating chemical as not purchasable",
			logging.String("smiles", smiles), logging.Err(err))
		price = nil
	}

	node := NewChemicalNode(smiles, templates)
	node.PurchasePrice = price
	node.Terminal = price != nil && *price <= e.cfg.MaxPPG
	node.Done = e.computeChemicalDone(node)
	return node, nil
}

//Personal.AI order the ending
