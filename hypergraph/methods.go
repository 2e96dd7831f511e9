// Package hypergraph: mutators.
//
// Every mutator here (AddEdge, Connect, DisconnectSource,
// DisconnectTarget, DeleteEdge) reads the receiver under its read locks,
// builds a clone, applies one change to the clone, and returns the clone.
// None of them mutate the receiver. Complexity figures assume the gods red-black
// tree's O(log n) Get/Put/Remove.
package hypergraph

// cloneInto produces an unlocked, independent copy of g's signature catalog
// and connection bimap. Callers hold g's read locks while calling this.
func (g *Hypergraph) cloneInto() *Hypergraph {
	sigs := make(map[HyperEdgeId]Signature, len(g.sigs))
	for id, s := range g.sigs {
		sigs[id] = s
	}

	return &Hypergraph{
		conns: g.conns.clone(),
		sigs:  sigs,
		next:  g.next,
	}
}

// Empty returns the zero-object hypergraph: no edges, no wires.
// Complexity: O(1).
func Empty() *Hypergraph {
	return &Hypergraph{
		conns: newPortBiMap(),
		sigs:  make(map[HyperEdgeId]Signature),
		next:  0,
	}
}

// Identity returns the hypergraph with a single wire from boundary source
// index i to boundary target index i for each i in 0..width-1: the
// identity morphism on width wires. Identity(0) is Empty().
// Complexity: O(width log width).
func Identity(width int) *Hypergraph {
	g := Empty()
	for i := 0; i < width; i++ {
		g = g.connect(SourcePort(Boundary(), i), TargetPort(Boundary(), i))
	}

	return g
}

// AddEdge allocates a fresh HyperEdgeId, records sig for it, and leaves the
// new edge unconnected. The returned id is strictly greater than every id
// previously allocated by g's lineage.
// Complexity: O(|signatures|) to clone the catalog.
func (g *Hypergraph) AddEdge(sig Signature) (HyperEdgeId, *Hypergraph) {
	g.muSig.RLock()
	g.muConn.RLock()
	clone := g.cloneInto()
	g.muConn.RUnlock()
	g.muSig.RUnlock()

	id := clone.next
	clone.sigs[id] = sig
	clone.next++

	return id, clone
}

// connect is the unlocked core of Connect; callers already hold whatever
// locks they need on the receiver (or operate on an already-private clone).
func (g *Hypergraph) connect(s, t Port) *Hypergraph {
	clone := g.cloneInto()
	clone.conns.put(s, t)

	return clone
}

// Connect inserts the wire s->t. If s already had a target, that wire is
// removed; if t already had a source, that wire is removed too: every port
// carries at most one wire by construction, since put never leaves either
// endpoint with two.
// Complexity: O(log n) tree operations plus O(|connections| + |signatures|)
// to clone the catalogs.
func (g *Hypergraph) Connect(s, t Port) *Hypergraph {
	g.muConn.RLock()
	g.muSig.RLock()
	defer g.muSig.RUnlock()
	defer g.muConn.RUnlock()

	return g.connect(s, t)
}

// DisconnectSource removes the wire whose tail is s, if any; a no-op
// otherwise.
// Complexity: O(log n) plus the clone cost.
func (g *Hypergraph) DisconnectSource(s Port) *Hypergraph {
	g.muConn.RLock()
	g.muSig.RLock()
	clone := g.cloneInto()
	g.muSig.RUnlock()
	g.muConn.RUnlock()

	clone.conns.deleteSource(s)

	return clone
}

// DisconnectTarget removes the wire whose head is t, if any; a no-op
// otherwise.
// Complexity: O(log n) plus the clone cost.
func (g *Hypergraph) DisconnectTarget(t Port) *Hypergraph {
	g.muConn.RLock()
	g.muSig.RLock()
	clone := g.cloneInto()
	g.muSig.RUnlock()
	g.muConn.RUnlock()

	clone.conns.deleteTarget(t)

	return clone
}

// SourceOf returns the Source port connected to target port t, if any.
// Complexity: O(log n).
func (g *Hypergraph) SourceOf(t Port) (Port, bool) {
	g.muConn.RLock()
	defer g.muConn.RUnlock()

	return g.conns.source(t)
}

// TargetOf returns the Target port connected to source port s, if any.
// Complexity: O(log n).
func (g *Hypergraph) TargetOf(s Port) (Port, bool) {
	g.muConn.RLock()
	defer g.muConn.RUnlock()

	return g.conns.target(s)
}

// DeleteEdge removes e's signature and every wire touching any of e's
// ports. Deleting an unknown edge is a no-op (never an error): callers that
// need to know whether e existed should check Signature(e) first.
// Complexity: O(n_k + n_n) wire lookups plus the clone cost, where n_k/n_n
// are e's input/output arities.
func (g *Hypergraph) DeleteEdge(e HyperEdgeId) *Hypergraph {
	g.muSig.RLock()
	g.muConn.RLock()
	clone := g.cloneInto()
	g.muConn.RUnlock()
	g.muSig.RUnlock()

	sig, ok := clone.sigs[e]
	if !ok {
		return clone
	}
	for i := 0; i < sig.Inputs(); i++ {
		clone.conns.deleteTarget(TargetPort(Gen(e), i))
	}
	for i := 0; i < sig.Outputs(); i++ {
		clone.conns.deleteSource(SourcePort(Gen(e), i))
	}
	delete(clone.sigs, e)

	return clone
}
