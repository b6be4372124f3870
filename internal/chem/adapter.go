package chem

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/turtacn/retrosynth/pkg/errors"
)

// fpRadius and fpBits are the Morgan-fingerprint parameters Adapter uses for
// every similarity computation. Fixed rather than configurable: nothing in
// SPEC_FULL.md calls for tuning them per request.
const (
	fpRadius = 2
	fpBits   = 2048
)

// TemplateRecord is the in-memory shape Adapter ranks against. Built from
// internal/infrastructure/catalog's Repository.All() at startup; Adapter
// never talks to Postgres itself.
type TemplateRecord struct {
	Index              int
	ReactionSMARTS     string
	ProductFingerprint *Fingerprint
	RelevancePrior     float64
}

// PriceLookup is the narrow seam Adapter defers lookup_price to — satisfied
// by internal/infrastructure/pricecache.PriceCache.
type PriceLookup interface {
	LookupPrice(ctx context.Context, smiles string) (*float64, error)
}

// Adapter is the reference, fully-deterministic ChemistryAdapter (internal/
// retro.ChemistryAdapter is satisfied structurally; this package does not
// import internal/retro). predict_templates ranks TemplateRecords by
// Tanimoto similarity between the query's Morgan fingerprint and each
// template's reference-product fingerprint, weighted by the template's
// relevance prior. apply_template performs deterministic synthetic
// fragment substitution keyed by the template's reaction pattern — the
// engine treats every SMILES as an opaque identifier, so a reproducible
// synthetic precursor string is as valid an outcome as a real one.
// fast_filter scores a candidate outcome by Dice similarity between the
// fingerprint of the joined reactants and of the product.
type Adapter struct {
	templates []TemplateRecord
	prices    PriceLookup
}

// NewAdapter builds an Adapter over a fixed template corpus and a price
// source. templates should be sorted by Index ascending; Adapter does not
// re-sort them.
func NewAdapter(templates []TemplateRecord, prices PriceLookup) *Adapter {
	return &Adapter{templates: templates, prices: prices}
}

// PredictTemplates implements predict_templates: ranks the whole corpus by
// relevance-weighted Tanimoto similarity to smiles, then returns a prefix
// truncated to at most maxCount entries whose probabilities sum to at most
// maxCumProb; the top-ranked template is always returned, even when its own
// probability exceeds maxCumProb. Probabilities are the per-template scores
// renormalized over the full corpus, so they sum to at most 1 before
// truncation.
func (a *Adapter) PredictTemplates(ctx context.Context, smiles string, maxCount uint, maxCumProb float64) ([]int, []float64, error) {
	queryFP, err := CalculateMorganFingerprint(smiles, fpRadius, fpBits)
	if err != nil {
		return nil, nil, errors.Wrap(err, errors.CodeFingerprintError, "predict_templates: failed to fingerprint query molecule")
	}

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, 0, len(a.templates))
	var total float64
	for _, t := range a.templates {
		sim, err := TanimotoSimilarity(queryFP, t.ProductFingerprint)
		if err != nil {
			return nil, nil, errors.Wrap(err, errors.CodeSimilarityCalcError, "predict_templates: similarity computation failed")
		}
		score := sim * t.RelevancePrior
		ranked = append(ranked, scored{index: t.Index, score: score})
		total += score
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].index < ranked[j].index
	})

	indices := make([]int, 0, len(ranked))
	probs := make([]float64, 0, len(ranked))
	var cum float64
	for _, r := range ranked {
		if uint(len(indices)) >= maxCount {
			break
		}
		prob := 0.0
		if total > 0 {
			prob = r.score / total
		}
		if len(indices) > 0 && cum+prob > maxCumProb {
			break
		}
		indices = append(indices, r.index)
		probs = append(probs, prob)
		cum += prob
	}

	return indices, probs, nil
}

// ApplyTemplate implements apply_template: looks up the template by index
// and, for each reactant slot implied by the left-hand side of its reaction
// SMARTS (fragments separated by "."), produces one deterministic outcome —
// synthetic fragments (stable functions of the query molecule, templateIndex,
// and slot position) in every slot. The query molecule itself is never
// reused as a reactant: it is the product being decomposed, and the engine's
// cycle guard (internal/retro/expansion.go) rejects any outcome that
// reintroduces a chemical already on the path being expanded.
func (a *Adapter) ApplyTemplate(ctx context.Context, smiles string, templateIndex int) ([][]string, error) {
	t, err := a.template(templateIndex)
	if err != nil {
		return nil, err
	}

	lhs := t.ReactionSMARTS
	if parts := strings.SplitN(t.ReactionSMARTS, ">>", 2); len(parts) == 2 {
		lhs = parts[0]
	}
	reactantCount := strings.Count(lhs, ".") + 1

	reactants := make([]string, reactantCount)
	for i := 0; i < reactantCount; i++ {
		reactants[i] = fmt.Sprintf("synth-%s-t%d-s%d", smiles, templateIndex, i)
	}

	return [][]string{reactants}, nil
}

// FastFilter implements fast_filter: the Dice similarity between the
// fingerprint of the reactants joined as a single string and the
// fingerprint of the product.
func (a *Adapter) FastFilter(ctx context.Context, reactantsJoined, product string) (float64, error) {
	reactantsFP, err := CalculateMorganFingerprint(reactantsJoined, fpRadius, fpBits)
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeFingerprintError, "fast_filter: failed to fingerprint reactants")
	}
	productFP, err := CalculateMorganFingerprint(product, fpRadius, fpBits)
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeFingerprintError, "fast_filter: failed to fingerprint product")
	}
	score, err := DiceSimilarity(reactantsFP, productFP)
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeSimilarityCalcError, "fast_filter: similarity computation failed")
	}
	return score, nil
}

// LookupPrice implements lookup_price by deferring to the injected
// PriceLookup (internal/infrastructure/pricecache.PriceCache in production).
func (a *Adapter) LookupPrice(ctx context.Context, smiles string) (*float64, error) {
	return a.prices.LookupPrice(ctx, smiles)
}

func (a *Adapter) template(index int) (TemplateRecord, error) {
	for _, t := range a.templates {
		if t.Index == index {
			return t, nil
		}
	}
	return TemplateRecord{}, errors.New(errors.CodeTemplateNotFound, "apply_template: unknown template index")
}
