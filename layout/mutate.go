// File: mutate.go
// Role: the editor's mutating operations. The wiring mutators
// (ConnectPorts, DisconnectSource, DisconnectTarget, DeleteGenerator)
// re-derive layering and, on success, swap l.g and l.grid together so the
// two never drift out of sync; PlaceGenerator, Move, InsertLayer and
// RemovePseudonodeOnlyLayers edit the grid in place without re-layering.

package layout

import (
	"github.com/diagrammatic/hyperwire/grid"
	"github.com/diagrammatic/hyperwire/hypergraph"
	"github.com/diagrammatic/hyperwire/traversal"
)

// PlaceGenerator adds a new generator of sig to the underlying hypergraph
// and drops it, unconnected, at pos on the grid.
func (l *Layout) PlaceGenerator(sig hypergraph.Signature, pos grid.V2) (hypergraph.HyperEdgeId, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, next := l.g.AddEdge(sig)
	if err := l.grid.Place(generatorTile(e), pos, 1); err != nil {
		return 0, err
	}
	l.g = next

	return e, nil
}

// CanConnectPorts reports whether wiring s->t on the current graph would
// keep the generator dependency graph acyclic. It does not mutate the
// Layout.
func (l *Layout) CanConnectPorts(s, t hypergraph.Port) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	candidate := l.g.Connect(s, t)
	_, err := traversal.Layer(candidate)

	return err == nil
}

// ConnectPorts wires s->t, re-derives layering, keeps every existing
// generator at its current cell, and relays every pseudonode from the new
// layering's columns. Fails without mutating the Layout if the wire would
// introduce a cycle.
func (l *Layout) ConnectPorts(s, t hypergraph.Port) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	candidate := l.g.Connect(s, t)
	if _, err := traversal.Layer(candidate); err != nil {
		return ErrWouldCycle
	}

	return l.relayout(candidate)
}

// DisconnectSource removes the wire whose tail is s, if any.
func (l *Layout) DisconnectSource(s hypergraph.Port) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.relayout(l.g.DisconnectSource(s))
}

// DisconnectTarget removes the wire whose head is t, if any.
func (l *Layout) DisconnectTarget(t hypergraph.Port) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.relayout(l.g.DisconnectTarget(t))
}

// DeleteGenerator removes e and every wire touching it.
func (l *Layout) DeleteGenerator(e hypergraph.HyperEdgeId) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.relayout(l.g.DeleteEdge(e))
}

// Move relocates tile to pos. A pseudonode only carries a y coordinate;
// any x it is given is ignored and it keeps its current column, since a
// pseudonode's column is derived from the wire it sits on, not chosen
// directly. A generator tile may move to any column freely, but doing so
// can break I5 for wires it touches (the source generator's column must
// stay strictly less than the target's); any wire left violating I5 by
// the move is dropped, and multi-column wire pseudonodes are relaid from
// the tiles' new positions.
func (l *Layout) Move(tile Tile, pos grid.V2) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	current, ok := l.grid.Position(tile)
	if !ok {
		return ErrUnknownTile
	}

	if tile.Kind == TilePseudo {
		pos.X = current.X
	}

	if err := l.grid.Place(tile, pos, 1); err != nil {
		return err
	}

	if tile.Kind != TileGenerator {
		return nil
	}

	return l.dropI5Violations()
}

// dropI5Violations removes every wire whose source generator's current
// tile column is not strictly less than its target generator's, then
// relays every surviving wire's pseudonodes from the tiles' current
// positions. Wires touching a boundary are exempt: a boundary's column,
// by convention, always sits on the correct side of any generator's.
func (l *Layout) dropI5Violations() error {
	var offenders []hypergraph.Wire

	l.g.EachWire(func(s, t hypergraph.Port) {
		se, sIsGen := s.Owner.Edge()
		te, tIsGen := t.Owner.Edge()
		if !sIsGen || !tIsGen {
			return
		}

		sp, ok := l.grid.Position(generatorTile(se))
		if !ok {
			return
		}
		tp, ok := l.grid.Position(generatorTile(te))
		if !ok {
			return
		}

		if sp.X >= tp.X {
			offenders = append(offenders, hypergraph.Wire{Source: s, Target: t})
		}
	})

	next := l.g
	for _, w := range offenders {
		next = next.DisconnectSource(w.Source)
	}
	l.g = next

	l.rebuildPseudonodesFromPositions()

	return nil
}

// rebuildPseudonodesFromPositions drops every pseudonode tile and relays
// them from the current wire set and the tiles' current grid positions,
// rather than from a fresh traversal.Layer result: Move repositions
// tiles without re-layering, so columns must be read off the grid
// directly.
func (l *Layout) rebuildPseudonodesFromPositions() {
	for _, t := range l.grid.Tiles() {
		if t.Kind == TilePseudo {
			l.grid.RemoveTile(t)
		}
	}
	l.pseudoWire = make(map[pseudoID]hypergraph.Wire)
	l.nextPseudo = 0

	raw := l.grid.Dimensions()
	maxCol := raw.X - 1
	colOf := func(p hypergraph.Port) int {
		if e, isGen := p.Owner.Edge(); isGen {
			if pos, ok := l.grid.Position(generatorTile(e)); ok {
				return pos.X
			}

			return 0
		}
		if p.Role == hypergraph.Source {
			return -1
		}

		return maxCol + 1
	}

	l.g.EachWire(func(s, t hypergraph.Port) {
		l.layPseudonodesAt(s, t, colOf)
	})
}

// InsertLayer opens n empty columns at column x, shifting every tile at or
// past x to the right. Used when the user wants manual room to route a
// wire rather than relying on auto-placement.
func (l *Layout) InsertLayer(x, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.grid.InsertLayer(x, n)
}

// RemovePseudonodeOnlyLayers drops every column whose tiles are entirely
// pseudonodes, closing the resulting gaps.
func (l *Layout) RemovePseudonodeOnlyLayers() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.grid.RemovePseudonodeOnlyLayers(func(t Tile) bool { return t.Kind == TilePseudo })
}

// relayout replaces l.g with next and fully rebuilds the grid's
// pseudonode placement, preserving every generator's current position.
// Called by every wiring-affecting mutator.
func (l *Layout) relayout(next *hypergraph.Hypergraph) error {
	positions := make(map[hypergraph.HyperEdgeId]grid.V2, len(l.g.Edges()))
	for _, e := range l.g.Edges() {
		if p, ok := l.grid.Position(generatorTile(e)); ok {
			positions[e] = p
		}
	}

	columns, err := traversal.Layer(next)
	if err != nil {
		return ErrWouldCycle
	}

	newGrid := grid.New[Tile]()
	for _, e := range next.Edges() {
		pos, ok := positions[e]
		if !ok {
			pos = grid.V2{X: columns[e], Y: 0}
		}
		if err := newGrid.Place(generatorTile(e), pos, 1); err != nil {
			return err
		}
	}

	l.g = next
	l.grid = newGrid
	l.pseudoWire = make(map[pseudoID]hypergraph.Wire)
	l.nextPseudo = 0
	next.EachWire(func(s, t hypergraph.Port) {
		l.layPseudonodes(s, t, columns)
	})

	return nil
}
