package grid

import "sort"

// Grid is a mapping from tile identity (T) to a 2-D position plus a
// per-tile height. A tile occupies cells (x,y)..(x,y+h-1). Grid maintains,
// per column, the tiles in ascending-y order, an inverse lookup from
// position to tile, and running total width/height.
type Grid[T comparable] struct {
	columns map[int][]cell[T]
	height  map[T]int
	pos     map[T]V2
	inverse map[V2]T
	width   int
	maxY    int
}

// New returns an empty Grid.
func New[T comparable]() *Grid[T] {
	return &Grid[T]{
		columns: make(map[int][]cell[T]),
		height:  make(map[T]int),
		pos:     make(map[T]V2),
		inverse: make(map[V2]T),
	}
}

// Place puts tile at pos with the given height, shifting any tiles in the
// same column that would otherwise overlap it (and, transitively, anything
// beneath those) downward by the minimum amount needed. A tile that starts
// above pos and reaches into it stays where it is; the placed tile is
// pushed below it instead. If tile is already on the grid, it is relocated
// first (removed from its old column, then placed anew) so that Place
// doubles as Move.
//
// Complexity: O(k log k) where k is the size of the destination column.
func (g *Grid[T]) Place(tile T, pos V2, h int) error {
	if h < 1 {
		return ErrNegativeHeight
	}

	g.removeFromColumn(tile)

	// The placed cell goes first so the stable sort keeps it ahead of any
	// existing cell starting at the same y, which is then pushed below it.
	col := append([]cell[T]{{tile: tile, y: pos.Y, h: h}}, g.columns[pos.X]...)
	sort.SliceStable(col, func(i, j int) bool { return col[i].y < col[j].y })
	resolveOverlaps(col)
	g.columns[pos.X] = col
	g.syncColumn(pos.X)

	return nil
}

// resolveOverlaps walks a y-sorted column and pushes each cell down to the
// bottom of its predecessor whenever it would otherwise start above it.
// This is a single forward pass, so any push cascades automatically into
// every cell beneath it.
func resolveOverlaps[T comparable](col []cell[T]) {
	for i := 1; i < len(col); i++ {
		if floor := col[i-1].bottom(); col[i].y < floor {
			col[i].y = floor
		}
	}
}

// syncColumn rebuilds pos/height/inverse for every cell currently in
// column x, and refreshes the grid's total width/height bookkeeping.
func (g *Grid[T]) syncColumn(x int) {
	for _, c := range g.columns[x] {
		g.pos[c.tile] = V2{X: x, Y: c.y}
		g.height[c.tile] = c.h
		for dy := 0; dy < c.h; dy++ {
			g.inverse[V2{X: x, Y: c.y + dy}] = c.tile
			if c.y+dy+1 > g.maxY {
				g.maxY = c.y + dy + 1
			}
		}
	}
	if x+1 > g.width {
		g.width = x + 1
	}
}

// removeFromColumn deletes tile from whichever column currently holds it,
// clearing its inverse-lookup cells. It does not shift remaining tiles to
// close the gap.
//
// width/maxY are recomputed whenever the removed tile could have been the
// one defining either extent, so Dimensions stays accurate after deletion.
func (g *Grid[T]) removeFromColumn(tile T) {
	old, ok := g.pos[tile]
	if !ok {
		return
	}
	h := g.height[tile]
	bottom := old.Y + h
	for dy := 0; dy < h; dy++ {
		delete(g.inverse, V2{X: old.X, Y: old.Y + dy})
	}
	col := g.columns[old.X]
	for i, c := range col {
		if c.tile == tile {
			g.columns[old.X] = append(col[:i], col[i+1:]...)

			break
		}
	}
	delete(g.pos, tile)
	delete(g.height, tile)

	if len(g.columns[old.X]) == 0 {
		delete(g.columns, old.X)
	}

	if old.X+1 >= g.width || bottom >= g.maxY {
		g.recomputeExtents()
	}
}

// recomputeExtents rescans every remaining column to re-derive width and
// maxY from scratch. Confined to removal paths that could have shrunk an
// extent, so Dimensions itself stays an O(1) field read.
func (g *Grid[T]) recomputeExtents() {
	width, maxY := 0, 0
	for x, col := range g.columns {
		if len(col) == 0 {
			continue
		}
		if x+1 > width {
			width = x + 1
		}
		for _, c := range col {
			if c.bottom() > maxY {
				maxY = c.bottom()
			}
		}
	}
	g.width, g.maxY = width, maxY
}

// RemoveTile takes tile off the grid entirely. A no-op if tile is not
// currently placed.
// Complexity: O(k) where k is the size of tile's column.
func (g *Grid[T]) RemoveTile(tile T) {
	g.removeFromColumn(tile)
}

// Position reports tile's current top-left cell.
func (g *Grid[T]) Position(tile T) (V2, bool) {
	p, ok := g.pos[tile]

	return p, ok
}

// Height reports tile's current height.
func (g *Grid[T]) Height(tile T) (int, bool) {
	h, ok := g.height[tile]

	return h, ok
}

// Lookup returns the tile occupying pos, if any.
// Complexity: O(1).
func (g *Grid[T]) Lookup(pos V2) (T, bool) {
	t, ok := g.inverse[pos]

	return t, ok
}

// Column returns the tiles in column x, in ascending-y order. The caller
// must not mutate the returned cells' identities; this is a read-only
// snapshot for layout/iteration use.
func (g *Grid[T]) Column(x int) []T {
	col := g.columns[x]
	out := make([]T, len(col))
	for i, c := range col {
		out[i] = c.tile
	}

	return out
}

// Tiles returns every placed tile, in no particular order.
func (g *Grid[T]) Tiles() []T {
	out := make([]T, 0, len(g.pos))
	for t := range g.pos {
		out = append(out, t)
	}

	return out
}

// Positions returns a snapshot of every tile's current position.
func (g *Grid[T]) Positions() map[T]V2 {
	out := make(map[T]V2, len(g.pos))
	for t, p := range g.pos {
		out[t] = p
	}

	return out
}

// Dimensions reports the grid's total (width, height): one past the
// highest occupied column and one past the highest occupied row.
// Complexity: O(1).
func (g *Grid[T]) Dimensions() V2 { return V2{X: g.width, Y: g.maxY} }

// InsertLayer shifts every tile in columns >= x right by n, opening a gap
// of n empty columns at x.
// Complexity: O(|tiles|).
func (g *Grid[T]) InsertLayer(x, n int) {
	if n <= 0 {
		return
	}

	shifted := make(map[int][]cell[T], len(g.columns))
	for cx, col := range g.columns {
		if cx >= x {
			shifted[cx+n] = col
		} else {
			shifted[cx] = col
		}
	}
	g.columns = shifted

	g.pos = make(map[T]V2, len(g.pos))
	g.inverse = make(map[V2]T, len(g.inverse))
	g.width = 0
	g.maxY = 0
	for cx := range g.columns {
		g.syncColumn(cx)
	}
}

// RemovePseudonodeOnlyLayers deletes every column x for which isPseudoOnly
// reports true for all of that column's tiles, closing the resulting gaps
// by shifting later columns left. Columns with no tiles at all are left
// alone (there is nothing to tidy).
// Complexity: O(|tiles| log |tiles|).
func (g *Grid[T]) RemovePseudonodeOnlyLayers(isPseudoOnly func(tile T) bool) {
	cols := make([]int, 0, len(g.columns))
	for x := range g.columns {
		cols = append(cols, x)
	}
	sort.Ints(cols)

	drop := make(map[int]struct{})
	for _, x := range cols {
		col := g.columns[x]
		if len(col) == 0 {
			continue
		}
		allPseudo := true
		for _, c := range col {
			if !isPseudoOnly(c.tile) {
				allPseudo = false

				break
			}
		}
		if allPseudo {
			drop[x] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return
	}

	remap := make(map[int]int, len(cols))
	shift := 0
	for _, x := range cols {
		if _, gone := drop[x]; gone {
			shift++

			continue
		}
		remap[x] = x - shift
	}

	newColumns := make(map[int][]cell[T], len(g.columns))
	for x, col := range g.columns {
		if _, gone := drop[x]; gone {
			continue
		}
		newColumns[remap[x]] = col
	}
	g.columns = newColumns

	g.pos = make(map[T]V2, len(g.pos))
	g.inverse = make(map[V2]T, len(g.inverse))
	g.width = 0
	g.maxY = 0
	for x := range g.columns {
		g.syncColumn(x)
	}
}
