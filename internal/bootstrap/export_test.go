package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/retrosynth/internal/infrastructure/graphexport"
	"github.com/turtacn/retrosynth/internal/retro"
)

func TestExportSnapshot_SingleParentReaction(t *testing.T) {
	g := retro.NewGraph()
	require.NoError(t, g.AddChemicalNode(&retro.ChemicalNode{SMILES: "CCO", Terminal: false}))
	require.NoError(t, g.AddChemicalNode(&retro.ChemicalNode{SMILES: "CC", Terminal: true, Done: true}))
	require.NoError(t, g.AddReactionNode(&retro.ReactionNode{ID: "CC.O>>CCO", Templates: []int{3}}))
	require.NoError(t, g.AddEdge("CCO", "CC.O>>CCO"))
	require.NoError(t, g.AddEdge("CC.O>>CCO", "CC"))

	chemicals, reactions, edges := ExportSnapshot(g)

	assert.Len(t, chemicals, 2)
	require.Len(t, reactions, 1)
	assert.Equal(t, "CCO", reactions[0].ParentSMILES)
	assert.Equal(t, 3, reactions[0].TemplateIndex)

	var precursorOf, makes int
	for _, e := range edges {
		switch e.Kind {
		case graphexport.EdgePrecursorOf:
			precursorOf++
			assert.Equal(t, "CCO", e.FromSMILES)
		case graphexport.EdgeMakes:
			makes++
			assert.Equal(t, "CC", e.ToSMILES)
		}
	}
	assert.Equal(t, 1, precursorOf)
	assert.Equal(t, 1, makes)
}

func TestExportSnapshot_SharedReactionExportedPerParent(t *testing.T) {
	g := retro.NewGraph()
	require.NoError(t, g.AddChemicalNode(&retro.ChemicalNode{SMILES: "A"}))
	require.NoError(t, g.AddChemicalNode(&retro.ChemicalNode{SMILES: "B"}))
	require.NoError(t, g.AddChemicalNode(&retro.ChemicalNode{SMILES: "shared_precursor", Terminal: true, Done: true}))
	require.NoError(t, g.AddReactionNode(&retro.ReactionNode{ID: "shared_precursor>>shared", Templates: []int{1}}))
	require.NoError(t, g.AddEdge("A", "shared_precursor>>shared"))
	require.NoError(t, g.AddEdge("B", "shared_precursor>>shared"))
	require.NoError(t, g.AddEdge("shared_precursor>>shared", "shared_precursor"))

	_, reactions, _ := ExportSnapshot(g)

	assert.Len(t, reactions, 2, "a reaction reachable from two parents exports once per parent")
}

//Personal.AI order the ending
