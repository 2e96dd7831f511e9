// File: api.go
// Role: thin, deterministic public facade exposing queries over a Hypergraph.
// Policy:
//   - No mutation here; mutators live in methods.go.
//   - Every exported function documents its complexity.

package hypergraph

import "sort"

// Signature looks up e's generator signature.
//
// Implementation:
//   - Stage 1: acquire muSig.RLock.
//   - Stage 2: map lookup.
//
// Returns:
//   - (sig, true) if e is known; (nil, false) otherwise.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Hypergraph) Signature(e HyperEdgeId) (Signature, bool) {
	g.muSig.RLock()
	defer g.muSig.RUnlock()

	s, ok := g.sigs[e]

	return s, ok
}

// Edges returns every allocated HyperEdgeId in ascending order.
//
// Implementation:
//   - Stage 1: snapshot keys of the signature catalog under muSig.RLock.
//   - Stage 2: sort ascending (catalog-id order is the host's canonical
//     enumeration order used by the matching engine).
//
// Complexity:
//   - Time O(E log E), Space O(E).
func (g *Hypergraph) Edges() []HyperEdgeId {
	g.muSig.RLock()
	ids := make([]HyperEdgeId, 0, len(g.sigs))
	for id := range g.sigs {
		ids = append(ids, id)
	}
	g.muSig.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// NextID reports the smallest unused HyperEdgeId.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Hypergraph) NextID() HyperEdgeId {
	g.muSig.RLock()
	defer g.muSig.RUnlock()

	return g.next
}

// Size reports (inWidth, outWidth): the width of the left boundary (the
// diagram's domain — the highest Boundary Source index used, plus one,
// since a left-boundary port is the tail of the wire that feeds the
// diagram) and the right boundary (the diagram's codomain — the highest
// Boundary Target index used, plus one). A boundary port in the
// wire-beginning (Source) role is always the diagram's input side, and one
// in the wire-ending (Target) role is always its output side, regardless
// of which generator or boundary sits at the other end of the wire.
// Returns (0, 0) if no boundary ports are in use on that side.
//
// Implementation:
//   - Stage 1: walk every wire once under muConn.RLock.
//   - Stage 2: track the maximum boundary index seen per role.
//
// Complexity:
//   - Time O(|connections|), Space O(1).
func (g *Hypergraph) Size() (inWidth, outWidth int) {
	g.muConn.RLock()
	defer g.muConn.RUnlock()

	g.conns.each(func(s, t Port) {
		if s.Owner.IsBoundary() && s.Index+1 > inWidth {
			inWidth = s.Index + 1
		}
		if t.Owner.IsBoundary() && t.Index+1 > outWidth {
			outWidth = t.Index + 1
		}
	})

	return inWidth, outWidth
}

// InputWires returns, for each target port index of edge e (0..k-1), the
// wire ending there, or nil if that port is unconnected. The slice has
// exactly Signature(e).Inputs() entries.
//
// Complexity:
//   - Time O(k log n), Space O(k).
func (g *Hypergraph) InputWires(e HyperEdgeId) []*Wire {
	sig, ok := g.Signature(e)
	if !ok {
		return nil
	}

	g.muConn.RLock()
	defer g.muConn.RUnlock()

	out := make([]*Wire, sig.Inputs())
	for i := 0; i < sig.Inputs(); i++ {
		t := TargetPort(Gen(e), i)
		if s, found := g.conns.source(t); found {
			out[i] = &Wire{Source: s, Target: t}
		}
	}

	return out
}

// OutputWires returns, for each source port index of edge e (0..n-1), the
// wire beginning there, or nil if that port is unconnected. The slice has
// exactly Signature(e).Outputs() entries.
//
// Complexity:
//   - Time O(n log n), Space O(n).
func (g *Hypergraph) OutputWires(e HyperEdgeId) []*Wire {
	sig, ok := g.Signature(e)
	if !ok {
		return nil
	}

	g.muConn.RLock()
	defer g.muConn.RUnlock()

	out := make([]*Wire, sig.Outputs())
	for i := 0; i < sig.Outputs(); i++ {
		s := SourcePort(Gen(e), i)
		if t, found := g.conns.target(s); found {
			out[i] = &Wire{Source: s, Target: t}
		}
	}

	return out
}

// Wire is a materialized connection, source to target.
type Wire struct {
	Source Port
	Target Port
}

// Wires returns every wire in the hypergraph, ordered by ascending source
// port (the bimap's natural order).
//
// Complexity:
//   - Time O(|connections|), Space O(|connections|).
func (g *Hypergraph) Wires() []Wire {
	g.muConn.RLock()
	defer g.muConn.RUnlock()

	out := make([]Wire, 0, g.conns.len())
	g.conns.each(func(s, t Port) { out = append(out, Wire{Source: s, Target: t}) })

	return out
}

// EachWire calls fn(s, t) for every wire, in ascending source-port order.
// It is the iteration hook layout and persist use for wire rendering.
//
// Complexity:
//   - Time O(|connections|) plus the cost of fn, Space O(1).
func (g *Hypergraph) EachWire(fn func(s, t Port)) {
	g.muConn.RLock()
	defer g.muConn.RUnlock()

	g.conns.each(fn)
}
