package retro

import "github.com/turtacn/retrosynth/pkg/errors"

// selectionResult is the outcome of one selection walk: the chemical path
// and reaction path descended, plus the new template index chosen to expand
// at the leaf chemical.
type selectionResult struct {
	chemPath    []string
	rxnPath     []string
	templateIdx int
}

// selectionWalk descends from root, at each chemical choosing the
// highest-scored option across its reaction children and its unexplored
// templates (spec §4.5). Choosing an existing reaction appends it to
// rxnPath and recurses into its lowest-visit-count non-done precursor
// child; choosing a template index stops the walk and returns it for
// expansion.
//
// A chemical with no viable option (every reaction child done or cyclic,
// and no unexplored template) is an invariant violation — it should have
// been marked done — and returns CodeEmptyOptions, a hard failure per the
// package's error taxonomy.
func (e *Engine) selectionWalk(root string) (*selectionResult, error) {
	chemPath := []string{root}
	var rxnPath []string
	current := root

	for {
		outDeg := e.graph.OutDegree(current)
		reactions := e.reactionOptions(current, chemPath)

		var templates []TemplateOption
		if uint(outDeg) < e.cfg.MaxBranching {
			templates = e.templateOptions(current)
		}

		isReaction, rxnID, templateIdx, ok := pickBest(reactions, templates)
		if !ok {
			return nil, errors.New(errors.CodeEmptyOptions, "no selectable option at chemical "+current)
		}

		if !isReaction {
			return &selectionResult{chemPath: chemPath, rxnPath: rxnPath, templateIdx: templateIdx}, nil
		}

		rxnPath = append(rxnPath, rxnID)

		nextChem := ""
		minVisits := -1
		for _, cid := range e.graph.Successors(rxnID) {
			cn, ok := e.graph.GetChemical(cid)
			if !ok || cn.Done {
				continue
			}
			if minVisits == -1 || cn.VisitCount < minVisits || (cn.VisitCount == minVisits && cid < nextChem) {
				minVisits = cn.VisitCount
				nextChem = cid
			}
		}
		if nextChem == "" {
			return nil, errors.New(errors.CodeEmptyOptions, "reaction "+rxnID+" has no non-done precursor child")
		}

		chemPath = append(chemPath, nextChem)
		current = nextChem
	}
}

// pickBest compares the top-scored reaction option against the top-scored
// template option (both pre-sorted descending) and returns whichever wins.
func pickBest(reactions []ReactionOption, templates []TemplateOption) (isReaction bool, rxnID string, templateIdx int, ok bool) {
	haveReaction := len(reactions) > 0
	haveTemplate := len(templates) > 0
	switch {
	case !haveReaction && !haveTemplate:
		return false, "", 0, false
	case haveReaction && !haveTemplate:
		return true, reactions[0].ReactionID, 0, true
	case !haveReaction && haveTemplate:
		return false, "", templates[0].TemplateIndex, true
	default:
		if reactions[0].Score >= templates[0].Score {
			return true, reactions[0].ReactionID, 0, true
		}
		return false, "", templates[0].TemplateIndex, true
	}
}

//Personal.AI order the ending
