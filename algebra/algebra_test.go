package algebra_test

import (
	"testing"

	"github.com/diagrammatic/hyperwire/algebra"
	"github.com/diagrammatic/hyperwire/hypergraph"
	"github.com/stretchr/testify/require"
)

var f11 = hypergraph.BasicSignature{Name: "f", K: 1, N: 1}
var g21 = hypergraph.BasicSignature{Name: "g", K: 2, N: 1}

// wired returns a single-generator diagram of sig, fully connected to both
// boundaries (every input fed from the left boundary at the same index,
// every output fed to the right boundary at the same index).
func wired(sig hypergraph.BasicSignature) *hypergraph.Hypergraph {
	g := hypergraph.Empty()
	e, g := g.AddEdge(sig)
	for i := 0; i < sig.K; i++ {
		g = g.Connect(hypergraph.SourcePort(hypergraph.Boundary(), i), hypergraph.TargetPort(hypergraph.Gen(e), i))
	}
	for i := 0; i < sig.N; i++ {
		g = g.Connect(hypergraph.SourcePort(hypergraph.Gen(e), i), hypergraph.TargetPort(hypergraph.Boundary(), i))
	}

	return g
}

func TestTensorAddsBoundaryWidths(t *testing.T) {
	a := wired(f11)
	b := wired(g21)

	result := algebra.Tensor(a, b)
	in, out := result.Size()
	require.Equal(t, 3, in, "1 (f) + 2 (g)")
	require.Equal(t, 2, out, "1 (f) + 1 (g)")
	require.Len(t, result.Edges(), 2)
	require.NoError(t, result.Validate())
}

func TestTensorKeepsGeneratorIdsDisjoint(t *testing.T) {
	a := wired(f11)
	b := wired(f11)

	result := algebra.Tensor(a, b)
	edges := result.Edges()
	require.Len(t, edges, 2)
	require.NotEqual(t, edges[0], edges[1])
}

func TestTensorWithIdentityIsStacking(t *testing.T) {
	id := hypergraph.Identity(2)
	a := wired(f11)

	result := algebra.Tensor(id, a)
	in, out := result.Size()
	require.Equal(t, 3, in)
	require.Equal(t, 3, out)
}

func TestSequenceOfMatchingWidthsSplicesDirectly(t *testing.T) {
	a := wired(f11)
	b := wired(f11)

	result := algebra.Sequence(a, b)
	in, out := result.Size()
	require.Equal(t, 1, in)
	require.Equal(t, 1, out)
	require.NoError(t, result.Validate())

	// The composite should carry exactly one wire straight through the
	// boundary into a's generator, one internal a->b splice, and one wire
	// out of b's generator to the final right boundary.
	require.Len(t, result.Wires(), 3)
}

func TestSequenceWithIdentityLeftIsNoOp(t *testing.T) {
	id := hypergraph.Identity(1)
	b := wired(f11)

	result := algebra.Sequence(id, b)
	in, out := result.Size()
	require.Equal(t, 1, in)
	require.Equal(t, 1, out)
	require.Len(t, result.Wires(), 2, "one boundary->generator, one generator->boundary")
}

func TestSequenceWiderLeftPassesExtraOutputsThrough(t *testing.T) {
	// a: 1 -> 2 (generator g21 has 2 inputs but only 1 output, so build a
	// 2-output generator directly).
	twoOut := hypergraph.BasicSignature{Name: "h", K: 1, N: 2}
	a := wired(twoOut) // boundary widths (1, 2)
	b := wired(f11)    // boundary widths (1, 1)

	result := algebra.Sequence(a, b)
	in, out := result.Size()
	require.Equal(t, 1, in, "a's own input width")
	require.Equal(t, 2, out, "1 leftover output from a, plus b's 1 output")

	// This is end-to-end scenario 3: a's higher-indexed output (the
	// "lower" one) feeds b, and a's lower-indexed output (the "upper"
	// one) bypasses b directly onto the right boundary at index 0.
	aGen := a.Edges()[0]
	bGen := hypergraph.HyperEdgeId(1) // b's sole generator, shifted past a's one edge

	bypassSource, ok := result.SourceOf(hypergraph.TargetPort(hypergraph.Boundary(), 0))
	require.True(t, ok)
	require.Equal(t, hypergraph.SourcePort(hypergraph.Gen(aGen), 0), bypassSource,
		"a's lower-indexed output (index 0) should bypass straight to the right boundary")

	splicedTarget, ok := result.TargetOf(hypergraph.SourcePort(hypergraph.Gen(aGen), 1))
	require.True(t, ok)
	require.Equal(t, hypergraph.TargetPort(hypergraph.Gen(bGen), 0), splicedTarget,
		"a's higher-indexed output (index 1) should splice into b's input")
}

func TestSequenceWiderRightExtendsInputs(t *testing.T) {
	twoIn := hypergraph.BasicSignature{Name: "h", K: 2, N: 1}
	a := wired(f11) // boundary widths (1, 1)
	b := wired(twoIn)

	result := algebra.Sequence(a, b)
	in, out := result.Size()
	require.Equal(t, 2, in, "a's 1 input, plus 1 leftover input routed straight into b")
	require.Equal(t, 1, out)

	// Symmetric to scenario 3: a's only output is its highest-indexed one
	// by definition, so it splices into b's higher-indexed input (index
	// 1); b's lower-indexed input (index 0) has no counterpart in a and
	// is routed straight from the new left boundary's extra index.
	aGen := a.Edges()[0]
	bGen := hypergraph.HyperEdgeId(1)

	bypassSource, ok := result.SourceOf(hypergraph.TargetPort(hypergraph.Gen(bGen), 0))
	require.True(t, ok)
	require.Equal(t, hypergraph.SourcePort(hypergraph.Boundary(), 1), bypassSource,
		"b's lower-indexed input (index 0) should be fed from the new left boundary's extra port")

	splicedSource, ok := result.SourceOf(hypergraph.TargetPort(hypergraph.Gen(bGen), 1))
	require.True(t, ok)
	require.Equal(t, hypergraph.SourcePort(hypergraph.Gen(aGen), 0), splicedSource,
		"b's higher-indexed input (index 1) should splice to a's output")
}
