package persist_test

import (
	"testing"

	"github.com/diagrammatic/hyperwire/hypergraph"
	"github.com/diagrammatic/hyperwire/layout"
	"github.com/diagrammatic/hyperwire/persist"
	"github.com/stretchr/testify/require"
)

var f11 = hypergraph.BasicSignature{Name: "f", K: 1, N: 1}

func wired() *hypergraph.Hypergraph {
	g := hypergraph.Empty()
	e, g := g.AddEdge(f11)
	g = g.Connect(hypergraph.SourcePort(hypergraph.Boundary(), 0), hypergraph.TargetPort(hypergraph.Gen(e), 0))
	g = g.Connect(hypergraph.SourcePort(hypergraph.Gen(e), 0), hypergraph.TargetPort(hypergraph.Boundary(), 0))

	return g
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	l, err := layout.New(wired())
	require.NoError(t, err)

	revision, err := persist.NewRevision()
	require.NoError(t, err)

	doc := persist.Encode(l, revision)
	require.Equal(t, revision, doc.Revision)
	require.Len(t, doc.Generators, 1)
	require.Len(t, doc.Wires, 2)

	data, err := persist.Marshal(doc)
	require.NoError(t, err)

	parsed, err := persist.Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, doc.Revision, parsed.Revision)
	require.Equal(t, doc.Generators, parsed.Generators)
	require.Equal(t, doc.Wires, parsed.Wires)

	l2, err := persist.ToLayout(parsed)
	require.NoError(t, err)
	require.NoError(t, l2.Graph().Validate())

	in, out := l2.Graph().Size()
	require.Equal(t, 1, in)
	require.Equal(t, 1, out)
}

func TestUnmarshalRejectsUnknownField(t *testing.T) {
	_, err := persist.Unmarshal([]byte("revision: abc\nbogus_field: 1\n"))
	require.Error(t, err)
}

func TestNewRevisionProducesDistinctTags(t *testing.T) {
	a, err := persist.NewRevision()
	require.NoError(t, err)
	b, err := persist.NewRevision()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
