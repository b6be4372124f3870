package retro

import "context"

// mockAdapter is a hand-written, deterministic ChemistryAdapter double: each
// method consults a small in-memory table keyed by input, so tests can set
// up exact scenarios (spec §8) without depending on any real chemistry.
type mockAdapter struct {
	templates map[string][]TemplateProb
	outcomes  map[string]map[int][][]string // smiles -> template -> outcomes
	filter    map[string]float64            // "reactantsJoined>>product" -> score
	prices    map[string]float64            // smiles -> price; absent means not buyable

	predictErr    error
	applyErr      error
	fastFilterErr error
	lookupErr     error
}

func newMockAdapter() *mockAdapter {
	return &mockAdapter{
		templates: make(map[string][]TemplateProb),
		outcomes:  make(map[string]map[int][][]string),
		filter:    make(map[string]float64),
		prices:    make(map[string]float64),
	}
}

func (a *mockAdapter) setTemplates(smiles string, tps ...TemplateProb) {
	a.templates[smiles] = tps
}

func (a *mockAdapter) setOutcome(smiles string, templateIdx int, outcomes [][]string) {
	if a.outcomes[smiles] == nil {
		a.outcomes[smiles] = make(map[int][][]string)
	}
	a.outcomes[smiles][templateIdx] = outcomes
}

func (a *mockAdapter) setFilterScore(reactantsJoined, product string, score float64) {
	a.filter[reactantsJoined+">>"+product] = score
}

func (a *mockAdapter) setPrice(smiles string, price float64) {
	a.prices[smiles] = price
}

func (a *mockAdapter) PredictTemplates(ctx context.Context, smiles string, maxCount uint, maxCumProb float64) ([]int, []float64, error) {
	if a.predictErr != nil {
		return nil, nil, a.predictErr
	}
	tps := a.templates[smiles]
	indices := make([]int, 0, len(tps))
	probs := make([]float64, 0, len(tps))
	for _, tp := range tps {
		indices = append(indices, tp.Index)
		probs = append(probs, tp.Prob)
	}
	return indices, probs, nil
}

func (a *mockAdapter) ApplyTemplate(ctx context.Context, smiles string, templateIndex int) ([][]string, error) {
	if a.applyErr != nil {
		return nil, a.applyErr
	}
	return a.outcomes[smiles][templateIndex], nil
}

func (a *mockAdapter) FastFilter(ctx context.Context, reactantsJoined, product string) (float64, error) {
	if a.fastFilterErr != nil {
		return 0, a.fastFilterErr
	}
	if score, ok := a.filter[reactantsJoined+">>"+product]; ok {
		return score, nil
	}
	return 1.0, nil
}

func (a *mockAdapter) LookupPrice(ctx context.Context, smiles string) (*float64, error) {
	if a.lookupErr != nil {
		return nil, a.lookupErr
	}
	if p, ok := a.prices[smiles]; ok {
		price := p
		return &price, nil
	}
	return nil, nil
}

//Personal.AI order the ending
