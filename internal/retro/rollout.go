package retro

import "context"

// rollout runs one select -> expand -> back-update cycle (spec §4.8-4.9).
func (e *Engine) runRollout(ctx context.Context) error {
	result, err := e.selectionWalk(e.root)
	if err != nil {
		return err
	}
	if err := e.expand(ctx, result.chemPath, result.templateIdx); err != nil {
		return err
	}
	e.backUpdate(ctx, result.chemPath, result.rxnPath)
	e.rollout++
	return nil
}

// backUpdate walks chem_path in reverse, pairing each chemical with its
// parent reaction (rxnPath[i-1] for chemPath[i], i>0; the root has none).
// For each chemical: bump visit_count, tighten min_depth, recompute and
// cache done. For the parent reaction, if any: bump visit_count. When a
// RewardFunc is configured, the single reward it returns for this rollout
// is also accumulated into both chemicals' and reactions' reward_tot/avg.
func (e *Engine) backUpdate(ctx context.Context, chemPath []string, rxnPath []string) {
	var reward float64
	hasReward := e.rewardFunc != nil
	if hasReward {
		reward = e.rewardFunc(ctx, e.graph, chemPath, rxnPath)
	}

	for i := len(chemPath) - 1; i >= 0; i-- {
		c, ok := e.graph.GetChemical(chemPath[i])
		if !ok {
			continue
		}
		c.VisitCount++
		if hasReward {
			c.RewardTot += reward
			c.RewardAvg = c.RewardTot / float64(c.VisitCount)
		}
		if c.MinDepth == nil || i < *c.MinDepth {
			depth := i
			c.MinDepth = &depth
		}
		c.Done = e.computeChemicalDone(c)

		if i > 0 {
			rxnID := rxnPath[i-1]
			if rn, ok := e.graph.GetReaction(rxnID); ok {
				rn.VisitCount++
				if hasReward {
					rn.RewardTot += reward
					rn.RewardAvg = rn.RewardTot / float64(rn.VisitCount)
				}
			}
		}
	}
}

//Personal.AI order the ending
