package retro

import "context"

// ChemistryAdapter is the narrow seam between the search core and chemistry:
// every call the engine makes about molecules, templates, or prices goes
// through this interface. Implementations live outside this package (e.g.
// internal/chem, internal/infrastructure/pricecache) and may themselves call
// out to a model server, a rules engine, or a cache.
//
// Error handling follows the package's adapter contract: PredictTemplates
// and FastFilter errors are structural failures and must propagate to the
// caller; ApplyTemplate and LookupPrice errors are absorbed by the engine
// (treated as "no outcomes" / "no price found" respectively) since a single
// malformed template or catalog miss should not abort an entire rollout.
type ChemistryAdapter interface {
	// PredictTemplates returns template indices and relevance probabilities
	// for smiles, already ordered most-relevant-first and truncated to at
	// most maxCount entries whose probabilities sum to at most maxCumProb.
	// indices and probs must be the same length.
	PredictTemplates(ctx context.Context, smiles string, maxCount uint, maxCumProb float64) (indices []int, probs []float64, err error)

	// ApplyTemplate applies templateIndex to smiles, returning the set of
	// possible reactant-set outcomes (each a slice of reactant SMILES, in a
	// stable order). An empty result is a valid, non-error outcome.
	ApplyTemplate(ctx context.Context, smiles string, templateIndex int) (outcomes [][]string, err error)

	// FastFilter scores the plausibility of the reaction
	// reactantsJoined>>product in [0, 1].
	FastFilter(ctx context.Context, reactantsJoined, product string) (score float64, err error)

	// LookupPrice returns the per-gram price of smiles in the buyables
	// catalog, or nil if smiles is not purchasable at any price.
	LookupPrice(ctx context.Context, smiles string) (price *float64, err error)
}

//Personal.AI order the ending
