// Package retro implements the AND/OR expansion-graph search core described
// by the retrosynthesis route-finding specification: a Monte Carlo tree
// search over a bipartite chemical/reaction DAG, driven by a pluggable
// ChemistryAdapter and bounded by a small set of Configure options.
//
// The package has no knowledge of SMILES chemistry beyond treating it as an
// opaque string identifier; all chemistry (template prediction, template
// application, plausibility filtering, buyability pricing) is delegated to
// the ChemistryAdapter supplied at construction time.
package retro

import (
	"github.com/turtacn/retrosynth/pkg/errors"
)

// NodeKind discriminates the two node variants sharing the Graph's identifier
// space: chemicals (OR nodes) and reactions (AND nodes).
type NodeKind int

const (
	KindChemical NodeKind = iota
	KindReaction
)

// TemplateProb pairs a template corpus index with the relevance probability
// the adapter assigned it for one specific chemical.
type TemplateProb struct {
	Index int
	Prob  float64
}

// ChemicalNode is an OR node of the search DAG: one molecule, identified by
// its canonical SMILES, together with the template-relevance distribution
// predicted for it and the MCTS statistics accumulated across rollouts.
type ChemicalNode struct {
	SMILES string

	// Templates is the ordered, already-truncated list of candidate
	// templates returned by PredictTemplates, most relevant first.
	Templates []TemplateProb

	// Explored records, in the order templates were applied, which
	// template indices have already been expanded from this chemical.
	Explored []int

	// MinDepth is the smallest chem_path index at which this chemical has
	// ever been visited (nil until the first visit). It only ever shrinks.
	MinDepth *int

	VisitCount int
	RewardTot  float64
	RewardAvg  float64

	// PurchasePrice is the adapter's lookup_price result: nil means "not
	// found in the buyables catalog", not "zero cost".
	PurchasePrice *float64

	Terminal bool
	Done     bool

	templateIndex map[int]float64
	exploredSet   map[int]bool
}

// NewChemicalNode builds a ChemicalNode around an already-predicted template
// list; callers (node.go's factory) are responsible for invoking the
// adapter and computing Terminal/Done before inserting it into a Graph.
func NewChemicalNode(smiles string, templates []TemplateProb) *ChemicalNode {
	idx := make(map[int]float64, len(templates))
	for _, t := range templates {
		idx[t.Index] = t.Prob
	}
	return &ChemicalNode{
		SMILES:        smiles,
		Templates:     templates,
		templateIndex: idx,
		exploredSet:   make(map[int]bool),
	}
}

// TemplateProb looks up the relevance probability the adapter predicted for
// templateIndex on this chemical; ok is false if the template was never
// offered (e.g. truncated by TemplateMaxCount/TemplateMaxCumProb).
func (c *ChemicalNode) TemplateProb(templateIndex int) (prob float64, ok bool) {
	prob, ok = c.templateIndex[templateIndex]
	return prob, ok
}

// IsExplored reports whether templateIndex has already been applied to this
// chemical in a previous expansion.
func (c *ChemicalNode) IsExplored(templateIndex int) bool {
	return c.exploredSet[templateIndex]
}

func (c *ChemicalNode) markExplored(templateIndex int) {
	if c.exploredSet == nil {
		c.exploredSet = make(map[int]bool)
	}
	if !c.exploredSet[templateIndex] {
		c.exploredSet[templateIndex] = true
		c.Explored = append(c.Explored, templateIndex)
	}
}

// ReactionNode is an AND node of the search DAG: one application of a
// template to a chemical, producing a fixed set of precursor reactants. Its
// identity (ID) is the joined reactant SMILES plus the product, so that two
// templates yielding the same reactant set merge into a single node.
type ReactionNode struct {
	// ID is reactants-joined-by-"."+">>"+product, the canonical reaction
	// SMILES used as this node's identifier in the Graph.
	ID        string
	Product   string
	Reactants []string

	// Templates is the set of template indices that have produced this
	// exact reactant set, in the order they were first applied.
	Templates []int

	// TemplateScore is the maximum relevance probability, across
	// Templates, that the parent chemical assigned any of them.
	TemplateScore float64

	// FastFilterScore is the plausibility score fast_filter returned the
	// first time this reaction was proposed.
	FastFilterScore float64

	VisitCount int
	RewardTot  float64
	RewardAvg  float64
}

// Node is the tagged-union view of a single Graph entry.
type Node struct {
	Kind     NodeKind
	Chemical *ChemicalNode
	Reaction *ReactionNode
}

// ID returns the node's identifier in its owning Graph.
func (n *Node) ID() string {
	if n.Kind == KindChemical {
		return n.Chemical.SMILES
	}
	return n.Reaction.ID
}

// Graph is the in-memory, non-persistent, single-goroutine DAG store shared
// by the engine's chemical and reaction nodes. Edges always run
// chemical->reaction (the chemical is the product the reaction makes) or
// reaction->chemical (the chemical is one of the reaction's precursors).
type Graph struct {
	nodes  map[string]*Node
	out    map[string][]string
	in     map[string][]string
	outSet map[string]map[string]bool
}

// NewGraph returns an empty graph store.
func NewGraph() *Graph {
	return &Graph{
		nodes:  make(map[string]*Node),
		out:    make(map[string][]string),
		in:     make(map[string][]string),
		outSet: make(map[string]map[string]bool),
	}
}

// AddChemicalNode inserts a new chemical node. It returns a CodeConflict
// AppError if a node with the same SMILES already exists.
func (g *Graph) AddChemicalNode(c *ChemicalNode) error {
	if _, exists := g.nodes[c.SMILES]; exists {
		return errors.New(errors.CodeConflict, "duplicate chemical node: "+c.SMILES)
	}
	g.nodes[c.SMILES] = &Node{Kind: KindChemical, Chemical: c}
	return nil
}

// AddReactionNode inserts a new reaction node. It returns a CodeConflict
// AppError if a node with the same ID already exists; callers expanding an
// already-present reaction should mutate the existing ReactionNode instead
// of calling AddReactionNode again.
func (g *Graph) AddReactionNode(r *ReactionNode) error {
	if _, exists := g.nodes[r.ID]; exists {
		return errors.New(errors.CodeConflict, "duplicate reaction node: "+r.ID)
	}
	g.nodes[r.ID] = &Node{Kind: KindReaction, Reaction: r}
	return nil
}

// AddEdge inserts a directed edge between two already-present nodes.
// Duplicate-edge insertion is idempotent: calling it twice with the same
// (from, to) pair has no additional effect.
func (g *Graph) AddEdge(from, to string) error {
	if _, ok := g.nodes[from]; !ok {
		return errors.New(errors.CodeNotFound, "edge source node not found: "+from)
	}
	if _, ok := g.nodes[to]; !ok {
		return errors.New(errors.CodeNotFound, "edge target node not found: "+to)
	}
	if g.outSet[from] == nil {
		g.outSet[from] = make(map[string]bool)
	}
	if g.outSet[from][to] {
		return nil
	}
	g.outSet[from][to] = true
	g.out[from] = append(g.out[from], to)
	g.in[to] = append(g.in[to], from)
	return nil
}

// GetNode returns the node with the given identifier.
func (g *Graph) GetNode(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// GetChemical returns the chemical node with the given SMILES.
func (g *Graph) GetChemical(smiles string) (*ChemicalNode, bool) {
	n, ok := g.nodes[smiles]
	if !ok || n.Kind != KindChemical {
		return nil, false
	}
	return n.Chemical, true
}

// GetReaction returns the reaction node with the given ID.
func (g *Graph) GetReaction(id string) (*ReactionNode, bool) {
	n, ok := g.nodes[id]
	if !ok || n.Kind != KindReaction {
		return nil, false
	}
	return n.Reaction, true
}

// Successors returns the outgoing neighbors of id in insertion order.
func (g *Graph) Successors(id string) []string {
	return g.out[id]
}

// Predecessors returns the incoming neighbors of id in insertion order.
func (g *Graph) Predecessors(id string) []string {
	return g.in[id]
}

// OutDegree returns the number of outgoing edges from id.
func (g *Graph) OutDegree(id string) int {
	return len(g.out[id])
}

// InDegree returns the number of incoming edges to id.
func (g *Graph) InDegree(id string) int {
	return len(g.in[id])
}

// NodeCount returns the total number of chemical and reaction nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the total number of directed edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, succs := range g.out {
		total += len(succs)
	}
	return total
}

// ChemicalCount returns the number of chemical nodes currently stored.
func (g *Graph) ChemicalCount() int {
	n := 0
	for _, node := range g.nodes {
		if node.Kind == KindChemical {
			n++
		}
	}
	return n
}

// ReactionCount returns the number of reaction nodes currently stored.
func (g *Graph) ReactionCount() int {
	n := 0
	for _, node := range g.nodes {
		if node.Kind == KindReaction {
			n++
		}
	}
	return n
}

// AllNodes returns every node currently stored, in no particular order. Used
// by callers that mirror or export the full graph (e.g.
// internal/infrastructure/graphexport) rather than traverse it.
func (g *Graph) AllNodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

// AllEdges returns every directed edge currently stored as (from, to) pairs,
// in no particular order.
func (g *Graph) AllEdges() [][2]string {
	edges := make([][2]string, 0, g.EdgeCount())
	for from, succs := range g.out {
		for _, to := range succs {
			edges = append(edges, [2]string{from, to})
		}
	}
	return edges
}

// Clear resets the graph to empty, releasing all nodes and edges.
func (g *Graph) Clear() {
	g.nodes = make(map[string]*Node)
	g.out = make(map[string][]string)
	g.in = make(map[string][]string)
	g.outSet = make(map[string]map[string]bool)
}

//Personal.AI order the ending
