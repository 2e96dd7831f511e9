package grid_test

import (
	"testing"

	"github.com/diagrammatic/hyperwire/grid"
	"github.com/stretchr/testify/require"
)

func TestPlaceNoOverlapKeepsRequestedPosition(t *testing.T) {
	g := grid.New[string]()
	require.NoError(t, g.Place("a", grid.V2{X: 0, Y: 0}, 1))
	require.NoError(t, g.Place("b", grid.V2{X: 0, Y: 5}, 1))

	pa, _ := g.Position("a")
	pb, _ := g.Position("b")
	require.Equal(t, grid.V2{X: 0, Y: 0}, pa)
	require.Equal(t, grid.V2{X: 0, Y: 5}, pb)
}

func TestPlaceShiftsOverlappingTileDown(t *testing.T) {
	g := grid.New[string]()
	require.NoError(t, g.Place("tall", grid.V2{X: 0, Y: 0}, 3))
	require.NoError(t, g.Place("short", grid.V2{X: 0, Y: 1}, 1))

	pShort, _ := g.Position("short")
	require.Equal(t, grid.V2{X: 0, Y: 3}, pShort, "short must be pushed below tall's bottom")
}

func TestPlaceCascadesThroughColumn(t *testing.T) {
	g := grid.New[string]()
	require.NoError(t, g.Place("a", grid.V2{X: 0, Y: 5}, 1))
	require.NoError(t, g.Place("b", grid.V2{X: 0, Y: 6}, 1))
	// Inserting a height-3 tile at y=5 must push both a and b down in turn.
	require.NoError(t, g.Place("tall", grid.V2{X: 0, Y: 5}, 3))

	pa, _ := g.Position("a")
	pb, _ := g.Position("b")
	require.Equal(t, 8, pa.Y)
	require.Equal(t, 9, pb.Y)
}

func TestLookupMatchesPlacement(t *testing.T) {
	g := grid.New[string]()
	require.NoError(t, g.Place("a", grid.V2{X: 2, Y: 1}, 2))

	tile, ok := g.Lookup(grid.V2{X: 2, Y: 2})
	require.True(t, ok)
	require.Equal(t, "a", tile)

	_, ok = g.Lookup(grid.V2{X: 2, Y: 3})
	require.False(t, ok)
}

func TestRemoveTileClearsInverseLookup(t *testing.T) {
	g := grid.New[string]()
	require.NoError(t, g.Place("a", grid.V2{X: 0, Y: 0}, 1))
	g.RemoveTile("a")

	_, ok := g.Position("a")
	require.False(t, ok)
	_, ok = g.Lookup(grid.V2{X: 0, Y: 0})
	require.False(t, ok)
}

func TestInsertLayerShiftsLaterColumns(t *testing.T) {
	g := grid.New[string]()
	require.NoError(t, g.Place("a", grid.V2{X: 0, Y: 0}, 1))
	require.NoError(t, g.Place("b", grid.V2{X: 2, Y: 0}, 1))

	g.InsertLayer(1, 3)

	pa, _ := g.Position("a")
	pb, _ := g.Position("b")
	require.Equal(t, 0, pa.X)
	require.Equal(t, 5, pb.X)
}

func TestRemovePseudonodeOnlyLayersClosesGap(t *testing.T) {
	g := grid.New[string]()
	require.NoError(t, g.Place("a", grid.V2{X: 0, Y: 0}, 1))
	require.NoError(t, g.Place("p", grid.V2{X: 1, Y: 0}, 1))
	require.NoError(t, g.Place("b", grid.V2{X: 2, Y: 0}, 1))

	isPseudo := func(tile string) bool { return tile == "p" }
	g.RemovePseudonodeOnlyLayers(isPseudo)

	pa, _ := g.Position("a")
	pb, ok := g.Position("b")
	require.True(t, ok)
	require.Equal(t, 0, pa.X)
	require.Equal(t, 1, pb.X)
	_, stillThere := g.Position("p")
	require.False(t, stillThere, "the dropped column's pseudonode tile goes with it")
}

func TestNegativeHeightRejected(t *testing.T) {
	g := grid.New[string]()
	require.ErrorIs(t, g.Place("a", grid.V2{}, 0), grid.ErrNegativeHeight)
}
