package bootstrap

import (
	"github.com/turtacn/retrosynth/internal/infrastructure/graphexport"
	"github.com/turtacn/retrosynth/internal/retro"
)

// ExportSnapshot flattens a retro.Graph into the node/edge shape
// internal/infrastructure/graphexport expects. A reaction node with more
// than one predecessor chemical is exported once per predecessor, since
// graphexport identifies a reaction by its parent chemical plus template
// index rather than by the reaction ID retro.Graph uses internally. When a reaction merged more than one
// template onto the same reactant set, only the first (primary) template
// index is exported.
func ExportSnapshot(g *retro.Graph) ([]graphexport.ChemicalNode, []graphexport.ReactionNode, []graphexport.Edge) {
	var chemicals []graphexport.ChemicalNode
	var reactions []graphexport.ReactionNode
	var edges []graphexport.Edge

	seenReactions := make(map[string]bool)

	for _, n := range g.AllNodes() {
		if n.Kind != retro.KindChemical {
			continue
		}
		c := n.Chemical
		chemicals = append(chemicals, graphexport.ChemicalNode{
			SMILES:     c.SMILES,
			Terminal:   c.Terminal,
			Done:       c.Done,
			VisitCount: c.VisitCount,
			RewardAvg:  c.RewardAvg,
		})
	}

	for _, n := range g.AllNodes() {
		if n.Kind != retro.KindReaction {
			continue
		}
		r := n.Reaction
		templateIdx := 0
		if len(r.Templates) > 0 {
			templateIdx = r.Templates[0]
		}
		// retro.ReactionNode stores no done flag: a reaction is done when it
		// has at least one precursor and every precursor chemical is done.
		done := len(g.Successors(r.ID)) > 0
		for _, precursorSMILES := range g.Successors(r.ID) {
			if c, ok := g.GetChemical(precursorSMILES); !ok || !c.Done {
				done = false
				break
			}
		}

		for _, parentSMILES := range g.Predecessors(r.ID) {
			key := parentSMILES + "#" + r.ID
			if !seenReactions[key] {
				seenReactions[key] = true
				reactions = append(reactions, graphexport.ReactionNode{
					ParentSMILES:  parentSMILES,
					TemplateIndex: templateIdx,
					Done:          done,
					VisitCount:    r.VisitCount,
					RewardAvg:     r.RewardAvg,
				})
				edges = append(edges, graphexport.Edge{
					Kind:            graphexport.EdgePrecursorOf,
					FromSMILES:      parentSMILES,
					ToSMILES:        parentSMILES,
					ToTemplateIndex: templateIdx,
				})
			}

			for _, precursorSMILES := range g.Successors(r.ID) {
				edges = append(edges, graphexport.Edge{
					Kind:              graphexport.EdgeMakes,
					FromSMILES:        parentSMILES,
					FromTemplateIndex: templateIdx,
					ToSMILES:          precursorSMILES,
				})
			}
		}
	}

	return chemicals, reactions, edges
}

//Personal.AI order the ending
