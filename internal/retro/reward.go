package retro

import "context"

// RewardFunc computes the scalar reward back-propagated along a completed
// rollout's chem_path/rxn_path. The spec leaves the reward source
// unspecified (§9, open question): this package only defines where a
// reward would be consulted, not what it should measure. Leave it unset to
// run pure-visit-count MCTS, where reward_avg stays at zero and only
// visit_count/min_depth/done drive the UCB formulas of ucb.go.
//
// A plausible concrete RewardFunc might score route cost, precursor
// availability, or step count once chemPath's leaf has been expanded; none
// of those are implemented here since the spec does not define one.
type RewardFunc func(ctx context.Context, g *Graph, chemPath []string, rxnPath []string) float64

//Personal.AI order the ending
