// Package grid implements 2-D placement of variable-height tiles with
// shift-to-make-space semantics: placing a tile that would overlap another
// pushes the overlapping tiles (and anything further down the same column
// that would then overlap) downward by the minimum amount needed to open
// space.
//
// Grounded on gridgraph/types.go + gridgraph/gridgraph.go (Cell, Options,
// the rectangular-grid style), generalized from a fixed land/water raster
// to an open-ended, variable-height tile placement surface; Grid, unlike
// hypergraph.Hypergraph, mutates in place — it models an editor's live
// canvas, not a pure value.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrNegativeHeight indicates a tile was placed with height < 1.
	ErrNegativeHeight = errors.New("grid: tile height must be >= 1")
	// ErrUnknownTile indicates an operation referenced a tile not on the grid.
	ErrUnknownTile = errors.New("grid: unknown tile")
)

// V2 is an integer 2-D position or extent.
type V2 struct {
	X, Y int
}

// Add returns the componentwise sum of v and w.
func (v V2) Add(w V2) V2 { return V2{X: v.X + w.X, Y: v.Y + w.Y} }

// cell is one tile's placement record within a column.
type cell[T comparable] struct {
	tile T
	y    int
	h    int
}

// bottom is the first unoccupied row below this cell.
func (c cell[T]) bottom() int { return c.y + c.h }
