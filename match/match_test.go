package match_test

import (
	"testing"

	"github.com/diagrammatic/hyperwire/hypergraph"
	"github.com/diagrammatic/hyperwire/match"
	"github.com/stretchr/testify/require"
)

var f11 = hypergraph.BasicSignature{Name: "f", K: 1, N: 1}
var g11 = hypergraph.BasicSignature{Name: "g", K: 1, N: 1}

// singleGenerator builds a host with a single generator of sig, wired
// straight through both boundaries.
func singleGenerator(sig hypergraph.BasicSignature) (*hypergraph.Hypergraph, hypergraph.HyperEdgeId) {
	h := hypergraph.Empty()
	e, h := h.AddEdge(sig)
	h = h.Connect(hypergraph.SourcePort(hypergraph.Boundary(), 0), hypergraph.TargetPort(hypergraph.Gen(e), 0))
	h = h.Connect(hypergraph.SourcePort(hypergraph.Gen(e), 0), hypergraph.TargetPort(hypergraph.Boundary(), 0))

	return h, e
}

func TestOccurrencesFindsSingleGeneratorMatch(t *testing.T) {
	pattern, _ := singleGenerator(f11)
	host, hostEdge := singleGenerator(f11)

	it := match.Occurrences(pattern, host)
	defer it.Stop()

	ms, ok := it.Next()
	require.True(t, ok)
	require.Len(t, ms.Edges, 1)
	for _, he := range ms.Edges {
		require.Equal(t, hostEdge, he)
	}

	_, ok = it.Next()
	require.False(t, ok, "only one generator in host, so only one occurrence")
}

func TestOccurrencesRejectsSignatureMismatch(t *testing.T) {
	pattern, _ := singleGenerator(g11)
	host, _ := singleGenerator(f11)

	it := match.Occurrences(pattern, host)
	defer it.Stop()

	_, ok := it.Next()
	require.False(t, ok)
}

func TestOccurrencesRespectsChainWiring(t *testing.T) {
	// Pattern: f -> g, chained. Host: f -> g chained the same way, plus an
	// unrelated lone f generator that must not be mistaken for a match.
	pattern := hypergraph.Empty()
	pf, pattern := pattern.AddEdge(f11)
	pg, pattern := pattern.AddEdge(g11)
	pattern = pattern.Connect(hypergraph.SourcePort(hypergraph.Boundary(), 0), hypergraph.TargetPort(hypergraph.Gen(pf), 0))
	pattern = pattern.Connect(hypergraph.SourcePort(hypergraph.Gen(pf), 0), hypergraph.TargetPort(hypergraph.Gen(pg), 0))
	pattern = pattern.Connect(hypergraph.SourcePort(hypergraph.Gen(pg), 0), hypergraph.TargetPort(hypergraph.Boundary(), 0))

	host := hypergraph.Empty()
	lone, host := host.AddEdge(f11)
	hf, host := host.AddEdge(f11)
	hg, host := host.AddEdge(g11)
	host = host.Connect(hypergraph.SourcePort(hypergraph.Boundary(), 0), hypergraph.TargetPort(hypergraph.Gen(lone), 0))
	host = host.Connect(hypergraph.SourcePort(hypergraph.Gen(lone), 0), hypergraph.TargetPort(hypergraph.Boundary(), 0))
	host = host.Connect(hypergraph.SourcePort(hypergraph.Boundary(), 1), hypergraph.TargetPort(hypergraph.Gen(hf), 0))
	host = host.Connect(hypergraph.SourcePort(hypergraph.Gen(hf), 0), hypergraph.TargetPort(hypergraph.Gen(hg), 0))
	host = host.Connect(hypergraph.SourcePort(hypergraph.Gen(hg), 0), hypergraph.TargetPort(hypergraph.Boundary(), 1))

	it := match.Occurrences(pattern, host)
	defer it.Stop()

	ms, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, hf, ms.Edges[pf])
	require.Equal(t, hg, ms.Edges[pg])

	_, ok = it.Next()
	require.False(t, ok, "lone f cannot extend into a chained match")
}

func TestStopAbandonsSearchWithoutBlocking(t *testing.T) {
	pattern, _ := singleGenerator(f11)
	host, _ := singleGenerator(f11)

	it := match.Occurrences(pattern, host)
	it.Stop()
}
