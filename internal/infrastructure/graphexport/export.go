package graphexport

import (
	"context"

	"github.com/turtacn/retrosynth/internal/platform/logging"
	"github.com/turtacn/retrosynth/pkg/errors"
)

// ChemicalNode is the exported shape of an engine OR node: identified by its
// canonical SMILES, so re-running an export against the same database
// upserts rather than duplicates.
type ChemicalNode struct {
	SMILES     string
	Terminal   bool
	Done       bool
	VisitCount int
	RewardAvg  float64
}

// ReactionNode is the exported shape of an engine AND node: identified by
// the SMILES of its parent chemical plus its template index, since a
// template may legitimately be explored from more than one chemical.
type ReactionNode struct {
	ParentSMILES  string
	TemplateIndex int
	Done          bool
	VisitCount    int
	RewardAvg     float64
}

// Edge connects a chemical to a reaction (PRECURSOR_OF, from the parent
// chemical the reaction was proposed for) or a reaction to a chemical (MAKES,
// reaction produces the chemical as a precursor one layer further from the
// root). Kind must be one of EdgePrecursorOf or EdgeMakes.
type Edge struct {
	FromSMILES        string
	FromTemplateIndex int
	ToSMILES          string
	ToTemplateIndex   int
	Kind              string
}

const (
	EdgePrecursorOf = "PRECURSOR_OF"
	EdgeMakes       = "MAKES"
)

// Exporter mirrors one engine DAG snapshot into Neo4j using a Driver.
type Exporter struct {
	driver *Driver
	logger logging.Logger
}

// NewExporter wraps an already-connected Driver.
func NewExporter(driver *Driver, logger logging.Logger) *Exporter {
	return &Exporter{driver: driver, logger: logger}
}

// ExportDAG upserts every chemical node, reaction node, and edge in a single
// write transaction. Safe to call against a partially-built (not yet done)
// DAG — the exporter makes no assumption the search has finished.
func (e *Exporter) ExportDAG(ctx context.Context, chemicals []ChemicalNode, reactions []ReactionNode, edges []Edge) error {
	_, err := e.driver.executeWrite(ctx, func(tx Transaction) (any, error) {
		for _, c := range chemicals {
			if _, err := tx.Run(ctx, `
				MERGE (c:Chemical {smiles: $smiles})
				SET c.terminal = $terminal, c.done = $done,
				    c.visit_count = $visit_count, c.reward_avg = $reward_avg
			`, map[string]any{
				"smiles":      c.SMILES,
				"terminal":    c.Terminal,
				"done":        c.Done,
				"visit_count": c.VisitCount,
				"reward_avg":  c.RewardAvg,
			}); err != nil {
				return nil, err
			}
		}

		for _, r := range reactions {
			if _, err := tx.Run(ctx, `
				MERGE (r:Reaction {parent_smiles: $parent_smiles, template_index: $template_index})
				SET r.done = $done, r.visit_count = $visit_count, r.reward_avg = $reward_avg
			`, map[string]any{
				"parent_smiles":  r.ParentSMILES,
				"template_index": r.TemplateIndex,
				"done":           r.Done,
				"visit_count":    r.VisitCount,
				"reward_avg":     r.RewardAvg,
			}); err != nil {
				return nil, err
			}
		}

		for _, edge := range edges {
			if err := e.runEdge(ctx, tx, edge); err != nil {
				return nil, err
			}
		}

		return nil, nil
	})
	if err != nil {
		return err
	}

	e.logger.Info("exported engine dag to neo4j",
		logging.Int("chemical_nodes", len(chemicals)),
		logging.Int("reaction_nodes", len(reactions)),
		logging.Int("edges", len(edges)))
	return nil
}

func (e *Exporter) runEdge(ctx context.Context, tx Transaction, edge Edge) error {
	switch edge.Kind {
	case EdgePrecursorOf:
		_, err := tx.Run(ctx, `
			MATCH (c:Chemical {smiles: $from_smiles})
			MATCH (r:Reaction {parent_smiles: $to_smiles, template_index: $to_template_index})
			MERGE (c)-[:PRECURSOR_OF]->(r)
		`, map[string]any{
			"from_smiles":       edge.FromSMILES,
			"to_smiles":         edge.ToSMILES,
			"to_template_index": edge.ToTemplateIndex,
		})
		return err
	case EdgeMakes:
		_, err := tx.Run(ctx, `
			MATCH (r:Reaction {parent_smiles: $from_smiles, template_index: $from_template_index})
			MATCH (c:Chemical {smiles: $to_smiles})
			MERGE (r)-[:MAKES]->(c)
		`, map[string]any{
			"from_smiles":         edge.FromSMILES,
			"from_template_index": edge.FromTemplateIndex,
			"to_smiles":           edge.ToSMILES,
		})
		return err
	default:
		return errors.New(errors.CodeInvalidParam, "unknown edge kind")
	}
}

//Personal.AI order the ending
