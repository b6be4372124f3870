// Package chem_test provides unit tests for molecular similarity calculations.
package chem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turtacn/retrosynth/internal/chem"
)

// ─────────────────────────────────────────────────────────────────────────────
// TestTanimotoSimilarity
// ─────────────────────────────────────────────────────────────────────────────

func TestTanimotoSimilarity_IdenticalFingerprints(t *testing.T) {
	t.Parallel()

	fp, err := chem.CalculateMorganFingerprint("c1ccccc1", 2, 2048)
	require.NoError(t, err)

	sim, err := chem.TanimotoSimilarity(fp, fp)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9, "identical fingerprints should have Tanimoto = 1.0")
}

func TestTanimotoSimilarity_BothZero(t *testing.T) {
	t.Parallel()

	// Create two empty fingerprints
	bits := make([]byte, 256) // all zeros
	fp1 := chem.NewFingerprint(chem.FPMorgan, bits, 2048)
	fp2 := chem.NewFingerprint(chem.FPMorgan, bits, 2048)

	sim, err := chem.TanimotoSimilarity(fp1, fp2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, sim, "two empty fingerprints should be considered identical")
}

func TestTanimotoSimilarity_KnownValue(t *testing.T) {
	t.Parallel()

	// Create fingerprints with known bit patterns
	bits1 := make([]byte, 32)
	bits1[0] = 0xFF // 8 bits set
	bits1[1] = 0x0F // 4 bits set
	// Total: 12 bits set

	bits2 := make([]byte, 32)
	bits2[0] = 0xF0 // 4 bits set
	bits2[1] = 0x0F // 4 bits set
	// Total: 8 bits set

	// Intersection:
	// bits1[0] & bits2[0] = 0xFF & 0xF0 = 0xF0 (4 bits)
	// bits1[1] & bits2[1] = 0x0F & 0x0F = 0x0F (4 bits)
	// Total Intersection = 8 bits
	// Union: 12 + 8 - 8 = 12 bits
	// Tanimoto: 8 / 12 = 0.6667

	fp1 := chem.NewFingerprint(chem.FPMorgan, bits1, 256)
	fp2 := chem.NewFingerprint(chem.FPMorgan, bits2, 256)

	sim, err := chem.TanimotoSimilarity(fp1, fp2)
	require.NoError(t, err)
	assert.InDelta(t, 0.6667, sim, 0.01)
}

func TestTanimotoSimilarity_DifferentMolecules(t *testing.T) {
	t.Parallel()

	fp1, err := chem.CalculateMorganFingerprint("c1ccccc1", 2, 2048) // benzene
	require.NoError(t, err)

	fp2, err := chem.CalculateMorganFingerprint("CCO", 2, 2048) // ethanol
	require.NoError(t, err)

	sim, err := chem.TanimotoSimilarity(fp1, fp2)
	require.NoError(t, err)

	assert.Less(t, sim, 1.0, "different molecules should have similarity < 1.0")
	assert.GreaterOrEqual(t, sim, 0.0, "similarity should be non-negative")
}

func TestTanimotoSimilarity_LengthMismatch(t *testing.T) {
	t.Parallel()

	fp1, err := chem.CalculateMorganFingerprint("c1ccccc1", 2, 2048)
	require.NoError(t, err)

	fp2, err := chem.CalculateMorganFingerprint("c1ccccc1", 2, 1024)
	require.NoError(t, err)

	_, err = chem.TanimotoSimilarity(fp1, fp2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same length")
}

func TestTanimotoSimilarity_TypeMismatch(t *testing.T) {
	t.Parallel()

	fp1, err := chem.CalculateMorganFingerprint("c1ccccc1", 2, 2048)
	require.NoError(t, err)

	fp2, err := chem.CalculateMACCSFingerprint("c1ccccc1")
	require.NoError(t, err)

	// Length will also be different, but type check should happen first or together
	_, err = chem.TanimotoSimilarity(fp1, fp2)
	require.Error(t, err)
}

// ─────────────────────────────────────────────────────────────────────────────
// TestCosineSimilarity
// ─────────────────────────────────────────────────────────────────────────────

func TestCosineSimilarity_IdenticalFingerprints(t *testing.T) {
	t.Parallel()

	fp, err := chem.CalculateMorganFingerprint("c1ccccc1", 2, 2048)
	require.NoError(t, err)

	sim, err := chem.CosineSimilarity(fp, fp)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestCosineSimilarity_ZeroFingerprint(t *testing.T) {
	t.Parallel()

	bits := make([]byte, 256)
	fp1 := chem.NewFingerprint(chem.FPMorgan, bits, 2048) // all zeros

	fp2, err := chem.CalculateMorganFingerprint("c1ccccc1", 2, 2048)
	require.NoError(t, err)

	sim, err := chem.CosineSimilarity(fp1, fp2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sim, "cosine similarity with zero vector should be 0")
}

func TestCosineSimilarity_RelationToTanimoto(t *testing.T) {
	t.Parallel()

	fp1, err := chem.CalculateMorganFingerprint("c1ccccc1", 2, 2048)
	require.NoError(t, err)

	fp2, err := chem.CalculateMorganFingerprint("c1ccc2ccccc2c1", 2, 2048)
	require.NoError(t, err)

	tanimoto, err := chem.TanimotoSimilarity(fp1, fp2)
	require.NoError(t, err)

	cosine, err := chem.CosineSimilarity(fp1, fp2)
	require.NoError(t, err)

	// For binary vectors, cosine is typically >= Tanimoto
	assert.GreaterOrEqual(t, cosine, tanimoto)
}

// ─────────────────────────────────────────────────────────────────────────────
// TestDiceSimilarity
// ─────────────────────────────────────────────────────────────────────────────

func TestDiceSimilarity_IdenticalFingerprints(t *testing.T) {
	t.Parallel()

	fp, err := chem.CalculateMorganFingerprint("c1ccccc1", 2, 2048)
	require.NoError(t, err)

	sim, err := chem.DiceSimilarity(fp, fp)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestDiceSimilarity_KnownValue(t *testing.T) {
	t.Parallel()

	bits1 := make([]byte, 32)
	bits1[0] = 0xFF // 8 bits
	// Total: 8 bits set

	bits2 := make([]byte, 32)
	bits2[0] = 0xF0 // 4 bits
	// Total: 4 bits set

	// Intersection: 0xFF & 0xF0 = 0xF0 = 4 bits
	// Dice: 2 * 4 / (8 + 4) = 8 / 12 = 0.6667

	fp1 := chem.NewFingerprint(chem.FPMorgan, bits1, 256)
	fp2 := chem.NewFingerprint(chem.FPMorgan, bits2, 256)

	sim, err := chem.DiceSimilarity(fp1, fp2)
	require.NoError(t, err)
	assert.InDelta(t, 0.6667, sim, 0.01)
}

func TestDiceSimilarity_GreaterThanOrEqualTanimoto(t *testing.T) {
	t.Parallel()

	fp1, err := chem.CalculateMorganFingerprint("c1ccccc1", 2, 2048)
	require.NoError(t, err)

	fp2, err := chem.CalculateMorganFingerprint("c1ccc2ccccc2c1", 2, 2048)
	require.NoError(t, err)

	tanimoto, err := chem.TanimotoSimilarity(fp1, fp2)
	require.NoError(t, err)

	dice, err := chem.DiceSimilarity(fp1, fp2)
	require.NoError(t, err)

	// Dice is always >= Tanimoto
	assert.GreaterOrEqual(t, dice, tanimoto)
}

// ─────────────────────────────────────────────────────────────────────────────
// TestTverskySimilarity
// ─────────────────────────────────────────────────────────────────────────────

func TestTverskySimilarity_AlphaBeta1_EqualsTanimoto(t *testing.T) {
	t.Parallel()

	fp1, err := chem.CalculateMorganFingerprint("c1ccccc1", 2, 2048)
	require.NoError(t, err)

	fp2, err := chem.CalculateMorganFingerprint("c1ccc2ccccc2c1", 2, 2048)
	require.NoError(t, err)

	tanimoto, err := chem.TanimotoSimilarity(fp1, fp2)
	require.NoError(t, err)

	// Tversky: |A ∩ B| / (|A ∩ B| + α|A - B| + β|B - A|)
	// When α = β = 1:
	// |A ∩ B| / (|A ∩ B| + |A - B| + |B - A|)
	// = |A ∩ B| / (|A ∩ B| + |A| - |A ∩ B| + |B| - |A ∩ B|)
	// = |A ∩ B| / (|A| + |B| - |A ∩ B|)
	// This is Tanimoto!

	// So alpha = beta = 1 should give Tanimoto
	tversky1_1, err := chem.TverskySimilarity(fp1, fp2, 1.0, 1.0)
	require.NoError(t, err)

	assert.InDelta(t, tanimoto, tversky1_1, 1e-6)
}

func TestTverskySimilarity_NegativeParameters(t *testing.T) {
	t.Parallel()

	fp1, err := chem.CalculateMorganFingerprint("c1ccccc1", 2, 2048)
	require.NoError(t, err)

	fp2, err := chem.CalculateMorganFingerprint("CCO", 2, 2048)
	require.NoError(t, err)

	_, err = chem.TverskySimilarity(fp1, fp2, -0.5, 0.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestTverskySimilarity_AsymmetricWeighting(t *testing.T) {
	t.Parallel()

	fp1, err := chem.CalculateMorganFingerprint("c1ccccc1", 2, 2048)
	require.NoError(t, err)

	fp2, err := chem.CalculateMorganFingerprint("c1ccc2ccccc2c1", 2, 2048)
	require.NoError(t, err)

	// Alpha emphasizes fp1
	tvAlpha, err := chem.TverskySimilarity(fp1, fp2, 0.8, 0.2)
	require.NoError(t, err)

	// Beta emphasizes fp2
	tvBeta, err := chem.TverskySimilarity(fp1, fp2, 0.2, 0.8)
	require.NoError(t, err)

	// Results should be different
	assert.NotEqual(t, tvAlpha, tvBeta)
}

//Personal.AI order the ending
