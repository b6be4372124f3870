package retro

import (
	"math"
	"sort"
)

// ReactionOption is one candidate in the selection walk's "descend into an
// existing reaction" branch, scored per spec §4.4.
type ReactionOption struct {
	ReactionID string
	Score      float64
}

// TemplateOption is one candidate in the selection walk's "apply a new
// template" branch, scored per spec §4.4.
type TemplateOption struct {
	TemplateIndex int
	Score         float64
}

// reactionOptions scores every non-done, non-cycling reaction child of the
// chemical chemID. path is the chem_path accumulated so far in the current
// selection walk; a reaction is rejected outright (not merely scored low)
// if any of its precursor children already appears in path, since
// descending into it could never close to a complete, acyclic route.
func (e *Engine) reactionOptions(chemID string, path []string) []ReactionOption {
	c, ok := e.graph.GetChemical(chemID)
	if !ok {
		return nil
	}
	var opts []ReactionOption
	for _, rid := range e.graph.Successors(chemID) {
		if e.reactionDone(rid) {
			continue
		}
		if e.cyclesWithPath(rid, path) {
			continue
		}
		rn, ok := e.graph.GetReaction(rid)
		if !ok {
			continue
		}

		qsa := -rn.RewardAvg
		p := 0.0
		for _, t := range rn.Templates {
			if prob, ok := c.TemplateProb(t); ok {
				p += prob
			}
		}
		usa := p * float64(c.VisitCount) / (1 + float64(rn.VisitCount))
		score := qsa + e.cfg.ExplorationWeight*usa

		opts = append(opts, ReactionOption{ReactionID: rid, Score: score})
	}
	sort.SliceStable(opts, func(i, j int) bool {
		if opts[i].Score != opts[j].Score {
			return opts[i].Score > opts[j].Score
		}
		return opts[i].ReactionID < opts[j].ReactionID
	})
	return opts
}

// cyclesWithPath reports whether any precursor child of reaction rid already
// appears in path, the cycle-prevention rule used both during selection
// (here) and during expansion (expansion.go's per-reactant guard).
func (e *Engine) cyclesWithPath(rid string, path []string) bool {
	for _, child := range e.graph.Successors(rid) {
		if containsString(path, child) {
			return true
		}
	}
	return false
}

// templateOptions scores every not-yet-explored template of the chemical
// chemID, per spec §4.4's template-option formula.
func (e *Engine) templateOptions(chemID string) []TemplateOption {
	c, ok := e.graph.GetChemical(chemID)
	if !ok {
		return nil
	}

	m := 0.0
	for _, rid := range e.graph.Successors(chemID) {
		if rn, ok := e.graph.GetReaction(rid); ok && rn.RewardAvg > m {
			m = rn.RewardAvg
		}
	}

	var opts []TemplateOption
	for _, tp := range c.Templates {
		if c.IsExplored(tp.Index) {
			continue
		}
		qsa := -(m + 0.1)
		usa := tp.Prob * (1 + math.Sqrt(float64(c.VisitCount)))
		score := qsa + e.cfg.ExplorationWeight*usa
		opts = append(opts, TemplateOption{TemplateIndex: tp.Index, Score: score})
	}
	sort.SliceStable(opts, func(i, j int) bool {
		if opts[i].Score != opts[j].Score {
			return opts[i].Score > opts[j].Score
		}
		return opts[i].TemplateIndex < opts[j].TemplateIndex
	})
	return opts
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

//Personal.AI order the ending
