package retro

import (
	"context"

	"github.com/turtacn/retrosynth/pkg/errors"
)

// Path output formats accepted by GetBuyablePaths.
const (
	FormatJSON  = "json"
	FormatGraph = "graph"
)

// PathNode is one occurrence of a chemical or reaction in an unfolded route
// tree: the DAG is re-expanded into a tree so that the same underlying
// chemical or reaction appearing on two different routes gets a distinct
// PathNode per occurrence.
type PathNode struct {
	Kind NodeKind

	// SMILES identifies a chemical PathNode (Kind == KindChemical).
	SMILES   string
	Terminal bool

	// ReactionID identifies a reaction PathNode (Kind == KindReaction).
	ReactionID string

	// Children holds, for a chemical node, the single chosen reaction
	// child (OR semantics); for a reaction node, every precursor child
	// (AND semantics, one per reactant).
	Children []*PathNode
}

// PathResult is one item streamed from GetBuyablePaths: exactly one of Tree
// or Err is set.
type PathResult struct {
	Tree *PathNode
	Err  error
}

// GetBuyablePaths lazily enumerates every complete, all-terminal-leaf route
// from the root to buyable precursors (spec §4.10). The returned channel is
// pull-based: the consumer may stop ranging over it (or cancel ctx) before
// it is exhausted, in which case the background producer stops without
// completing enumeration.
//
// Internally, per-reactant candidate subtrees are still collected eagerly
// before their cartesian product is streamed (a full lazy cartesian-product
// generator was judged not worth the added complexity for this exercise —
// see DESIGN.md); the property this method guarantees is that distinct
// complete trees are emitted one at a time and early consumer stop is
// honored, not that the very first collectSubtrees call itself streams.
func (e *Engine) GetBuyablePaths(ctx context.Context, format string) (<-chan PathResult, error) {
	if format != FormatJSON && format != FormatGraph {
		return nil, errors.New(errors.CodeBadFormat, "unsupported path format: "+format)
	}
	if !e.built {
		return nil, errors.New(errors.CodeEngineNotBuilt, "build_tree has not produced a tree yet")
	}

	out := make(chan PathResult)
	go func() {
		defer close(out)
		trees := e.collectSubtrees(e.root, 0)
		for _, tree := range trees {
			select {
			case out <- PathResult{Tree: tree}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// collectSubtrees returns every valid OR-expansion of the chemical chemID
// at depth, as tree nodes: a chemical node tagged with source==chemID that
// is either a terminal leaf, or wraps one chosen reaction child.
func (e *Engine) collectSubtrees(chemID string, depth uint) []*PathNode {
	c, ok := e.graph.GetChemical(chemID)
	if !ok {
		return nil
	}

	var out []*PathNode
	if c.Terminal {
		out = append(out, &PathNode{Kind: KindChemical, SMILES: chemID, Terminal: true})
	}

	if depth < e.cfg.MaxDepth {
		for _, rid := range e.graph.Successors(chemID) {
			rn, ok := e.graph.GetReaction(rid)
			if !ok {
				continue
			}
			for _, rxnSubtree := range e.collectReactionSubtrees(rn, depth+1) {
				out = append(out, &PathNode{
					Kind:     KindChemical,
					SMILES:   chemID,
					Terminal: false,
					Children: []*PathNode{rxnSubtree},
				})
			}
		}
	}
	return out
}

// collectReactionSubtrees returns every valid AND-expansion of reaction rn:
// the cartesian product, across all its precursor reactants, of each
// reactant's own collectSubtrees. A reaction with any reactant lacking a
// valid subtree contributes nothing (an incomplete route is not a route).
func (e *Engine) collectReactionSubtrees(rn *ReactionNode, depth uint) []*PathNode {
	reactants := e.graph.Successors(rn.ID)
	if len(reactants) == 0 {
		return nil
	}

	perReactant := make([][]*PathNode, len(reactants))
	for i, rid := range reactants {
		perReactant[i] = e.collectSubtrees(rid, depth)
		if len(perReactant[i]) == 0 {
			return nil
		}
	}

	var combos []*PathNode
	var build func(i int, acc []*PathNode)
	build = func(i int, acc []*PathNode) {
		if i == len(perReactant) {
			children := make([]*PathNode, len(acc))
			copy(children, acc)
			combos = append(combos, &PathNode{Kind: KindReaction, ReactionID: rn.ID, Children: children})
			return
		}
		for _, option := range perReactant[i] {
			build(i+1, append(acc, option))
		}
	}
	build(0, nil)
	return combos
}

// PathJSON is the json-format rendering of a PathNode tree.
type PathJSON struct {
	Source   string     `json:"source,omitempty"`
	Terminal bool       `json:"terminal,omitempty"`
	Reaction string     `json:"reaction,omitempty"`
	Children []PathJSON `json:"children,omitempty"`
}

// ToJSON renders the tree rooted at n as nested PathJSON objects.
func (n *PathNode) ToJSON() PathJSON {
	pj := PathJSON{}
	switch n.Kind {
	case KindChemical:
		pj.Source = n.SMILES
		pj.Terminal = n.Terminal
	case KindReaction:
		pj.Reaction = n.ReactionID
	}
	for _, ch := range n.Children {
		pj.Children = append(pj.Children, ch.ToJSON())
	}
	return pj
}

// GraphEdge is one edge of the graph-format rendering of a PathNode tree.
type GraphEdge struct {
	From string
	To   string
}

// ToGraph flattens the tree rooted at n into an edge list suitable for
// rendering with a graph visualization tool.
func (n *PathNode) ToGraph() []GraphEdge {
	var edges []GraphEdge
	var walk func(node *PathNode)
	walk = func(node *PathNode) {
		for _, ch := range node.Children {
			edges = append(edges, GraphEdge{From: nodeID(node), To: nodeID(ch)})
			walk(ch)
		}
	}
	walk(n)
	return edges
}

func nodeID(n *PathNode) string {
	if n.Kind == KindChemical {
		return n.SMILES
	}
	return n.ReactionID
}

//Personal.AI order the ending
