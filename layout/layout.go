// File: layout.go
// Role: editor-facing mutable view over a Hypergraph: a 2-D placement of
// every generator and every multi-column wire's pseudonodes, kept
// consistent with the underlying wiring as the user edits.
// Policy:
//   - Every wiring mutator re-derives layering via traversal.Layer, and
//     ConnectPorts rejects a wire that would introduce a cycle; the
//     Hypergraph itself never enforces acyclicity, so Layout is where that
//     invariant lives. PlaceGenerator, Move and the layer operations work
//     on the grid directly without re-layering.
//   - Layout is not value-typed like Hypergraph: it owns one mutable grid
//     and swaps its underlying Hypergraph pointer in place on each edit.

package layout

import (
	"errors"
	"sync"

	"github.com/diagrammatic/hyperwire/grid"
	"github.com/diagrammatic/hyperwire/hypergraph"
	"github.com/diagrammatic/hyperwire/traversal"
)

// ErrWouldCycle indicates a requested wire would make the generator
// dependency graph cyclic, which Layout refuses since it cannot then be
// column-assigned.
var ErrWouldCycle = errors.New("layout: connection would introduce a cycle")

// ErrUnknownTile indicates a tile id not currently present on the grid.
var ErrUnknownTile = errors.New("layout: unknown tile")

// TileKind distinguishes a generator tile from a pseudonode tile.
type TileKind int8

const (
	// TileGenerator is a tile that is a real hypergraph generator.
	TileGenerator TileKind = iota
	// TilePseudo is a tile inserted purely to carry a wire through the
	// intermediate columns it spans, so every wire occupies exactly one
	// cell per column it crosses.
	TilePseudo
)

// Tile identifies one placed cell: either a generator (Gen set, Pseudo
// zero) or a pseudonode (Pseudo set, Gen zero). Tile is comparable, so it
// can key a grid.Grid directly.
type Tile struct {
	Kind   TileKind
	Gen    hypergraph.HyperEdgeId
	Pseudo pseudoID
}

type pseudoID int

// generatorTile constructs a Tile for generator e.
func generatorTile(e hypergraph.HyperEdgeId) Tile { return Tile{Kind: TileGenerator, Gen: e} }

// Layout is a mutable 2-D arrangement of a Hypergraph's generators.
// The zero value is not usable; construct with New.
type Layout struct {
	mu sync.RWMutex

	g          *hypergraph.Hypergraph
	grid       *grid.Grid[Tile]
	nextPseudo pseudoID
	pseudoWire map[pseudoID]hypergraph.Wire
}

// New builds a Layout over g, auto-placing every generator by longest-path
// column and by BFS-from-boundary row order within its column.
func New(g *hypergraph.Hypergraph) (*Layout, error) {
	l := &Layout{
		g:          g,
		grid:       grid.New[Tile](),
		pseudoWire: make(map[pseudoID]hypergraph.Wire),
	}

	if err := l.autoPlace(); err != nil {
		return nil, err
	}

	return l, nil
}

// autoPlace assigns every generator a column via traversal.Layer and a row
// via the order BFSPorts first reaches it in, then drops a pseudonode tile
// in every intermediate column any wire spans.
func (l *Layout) autoPlace() error {
	columns, err := traversal.Layer(l.g)
	if err != nil {
		return err
	}

	nextRow := make(map[int]int)
	order := make([]hypergraph.HyperEdgeId, 0, len(columns))
	placed := make(map[hypergraph.HyperEdgeId]bool)

	visit := func(e hypergraph.HyperEdgeId) {
		if placed[e] {
			return
		}
		placed[e] = true
		order = append(order, e)
	}

	_ = traversal.BFSPorts(l.g, func(p hypergraph.Port, depth int) error {
		if e, isGen := p.Owner.Edge(); isGen {
			visit(e)
		}

		return nil
	}, nil)
	for _, e := range l.g.Edges() {
		visit(e) // any generator BFS never reached (fully disconnected) still gets placed.
	}

	for _, e := range order {
		col := columns[e]
		row := nextRow[col]
		nextRow[col] = row + 1
		if err := l.grid.Place(generatorTile(e), grid.V2{X: col, Y: row}, 1); err != nil {
			return err
		}
	}

	l.g.EachWire(func(s, t hypergraph.Port) {
		l.layPseudonodes(s, t, columns)
	})

	return nil
}

// columnOf reports the column a port's owner occupies: a boundary port on
// the Source (left) role sits one column before column 0's generators, a
// boundary port on the Target (right) role sits one column after the
// widest generator column in use.
func (l *Layout) columnOf(p hypergraph.Port, columns map[hypergraph.HyperEdgeId]int, maxCol int) int {
	if e, isGen := p.Owner.Edge(); isGen {
		return columns[e]
	}
	if p.Role == hypergraph.Source {
		return -1
	}

	return maxCol + 1
}

// layPseudonodes drops one pseudonode tile in every column strictly
// between s's and t's columns, so the wire between them occupies one cell
// per column it crosses.
func (l *Layout) layPseudonodes(s, t hypergraph.Port, columns map[hypergraph.HyperEdgeId]int) {
	maxCol := 0
	for _, c := range columns {
		if c > maxCol {
			maxCol = c
		}
	}

	l.layPseudonodesAt(s, t, func(p hypergraph.Port) int { return l.columnOf(p, columns, maxCol) })
}

// layPseudonodesAt is the shared pseudonode-laying core: given a way to
// compute either endpoint's column, it drops one pseudonode tile per
// column strictly between them. layPseudonodes derives columns from a
// fresh traversal.Layer result; Move, which repositions tiles without
// re-layering, derives them straight from the grid's current placement.
func (l *Layout) layPseudonodesAt(s, t hypergraph.Port, colOf func(hypergraph.Port) int) {
	cs := colOf(s)
	ct := colOf(t)
	lo, hi := cs, ct
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi-lo <= 1 {
		return
	}

	for x := lo + 1; x < hi; x++ {
		id := l.nextPseudo
		l.nextPseudo++
		l.pseudoWire[id] = hypergraph.Wire{Source: s, Target: t}
		row := len(l.grid.Column(x))
		_ = l.grid.Place(Tile{Kind: TilePseudo, Pseudo: id}, grid.V2{X: x, Y: row}, 1)
	}
}

// Graph returns the Layout's current underlying Hypergraph. The returned
// value is safe to read concurrently with further Layout edits, since
// Hypergraph is value-typed and Layout only ever replaces its reference
// under lock.
func (l *Layout) Graph() *hypergraph.Hypergraph {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.g
}

// Lookup returns the tile occupying pos, if any.
func (l *Layout) Lookup(pos grid.V2) (Tile, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.grid.Lookup(pos)
}

// Position reports tile's current grid cell.
func (l *Layout) Position(tile Tile) (grid.V2, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.grid.Position(tile)
}

// Tiles returns every tile currently on the grid, generator and
// pseudonode alike, in no particular order. persist uses this to
// serialize the full placement.
func (l *Layout) Tiles() []Tile {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.grid.Tiles()
}

// Positions returns a snapshot of every placed tile's current cell.
func (l *Layout) Positions() map[Tile]grid.V2 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.grid.Positions()
}

// Dimensions reports the layout's total extent, including the two
// boundary columns that sit just outside the grid's own tile columns (at
// x == -1 and x == the grid's width) but are never themselves tiles.
func (l *Layout) Dimensions() grid.V2 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	raw := l.grid.Dimensions()

	return grid.V2{X: raw.X + 2, Y: raw.Y}
}

// PortLookup reports the port(s) that live at pos, distinct from Lookup's
// tile-oriented answer. Left boundary cells (x == -1) give a source port
// and no target; right boundary cells (x == the grid's width) give a
// target port and no source; a pseudonode cell gives both ends of the
// wire it carries. A generator cell gives neither: a generator tile is a
// single cell regardless of how many ports it has, so no one port can be
// singled out by position alone.
func (l *Layout) PortLookup(pos grid.V2) (target hypergraph.Port, hasTarget bool, source hypergraph.Port, hasSource bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	raw := l.grid.Dimensions()
	if pos.X == -1 {
		return hypergraph.Port{}, false, hypergraph.SourcePort(hypergraph.Boundary(), pos.Y), true
	}
	if pos.X == raw.X {
		return hypergraph.TargetPort(hypergraph.Boundary(), pos.Y), true, hypergraph.Port{}, false
	}

	tile, ok := l.grid.Lookup(pos)
	if !ok || tile.Kind != TilePseudo {
		return hypergraph.Port{}, false, hypergraph.Port{}, false
	}
	w := l.pseudoWire[tile.Pseudo]

	return w.Target, true, w.Source, true
}

// PortPosition reports the cell a port resolves to: -1 for a left
// boundary source, the grid's width for a right boundary target, or the
// owning generator's current tile position otherwise.
func (l *Layout) PortPosition(port hypergraph.Port) (grid.V2, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if port.Owner.IsBoundary() {
		if port.Role == hypergraph.Source {
			return grid.V2{X: -1, Y: port.Index}, true
		}

		return grid.V2{X: l.grid.Dimensions().X, Y: port.Index}, true
	}

	e, ok := port.Owner.Edge()
	if !ok {
		return grid.V2{}, false
	}

	return l.grid.Position(generatorTile(e))
}
