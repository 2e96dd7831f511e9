package hypergraph

// Equal reports whether g and other are structurally identical modulo
// edge-identifier renaming: there exists a bijection between their
// HyperEdgeIds under which every signature matches and every wire
// corresponds. Both graphs are canonicalized independently by walking
// source ports breadth-first from the left boundary (ties broken by
// boundary/port index, then by original id for edges boundary BFS never
// reaches) and comparing the canonicalized wire sets and signature
// sequences.
//
// Grounded on core/methods_clone.go's deep-copy walk, adapted here to
// comparison instead of copying.
//
// Complexity: O((|connections| + |signatures|) log(|signatures|)).
func (g *Hypergraph) Equal(other *Hypergraph) bool {
	if g == nil || other == nil {
		return g == other
	}

	gIn, gOut := g.Size()
	oIn, oOut := other.Size()
	if gIn != oIn || gOut != oOut {
		return false
	}

	gCanon := canonicalOrder(g)
	oCanon := canonicalOrder(other)
	if len(gCanon) != len(oCanon) {
		return false
	}

	for i := range gCanon {
		gs, _ := g.Signature(gCanon[i])
		os, _ := other.Signature(oCanon[i])
		if !gs.SignatureEqual(os) {
			return false
		}
	}

	gRank := rankOf(gCanon)
	oRank := rankOf(oCanon)

	gWires := canonicalWireSet(g, gRank)
	oWires := canonicalWireSet(other, oRank)
	if len(gWires) != len(oWires) {
		return false
	}
	for w := range gWires {
		if _, ok := oWires[w]; !ok {
			return false
		}
	}

	return true
}

// rankOf inverts an id-order slice into id -> position.
func rankOf(order []HyperEdgeId) map[HyperEdgeId]int {
	rank := make(map[HyperEdgeId]int, len(order))
	for i, id := range order {
		rank[id] = i
	}

	return rank
}

// canonicalOrder assigns a deterministic rank to every edge of g: BFS
// discovery order over source ports reachable from the left boundary,
// then any remaining (unreachable) edges by ascending original id.
func canonicalOrder(g *Hypergraph) []HyperEdgeId {
	seen := make(map[HyperEdgeId]struct{})
	order := make([]HyperEdgeId, 0)

	visit := func(e HyperEdgeId) {
		if _, ok := seen[e]; !ok {
			seen[e] = struct{}{}
			order = append(order, e)
		}
	}

	inW, _ := g.Size()
	queue := make([]Port, 0, inW)
	for i := 0; i < inW; i++ {
		queue = append(queue, SourcePort(Boundary(), i))
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		t, ok := g.TargetOf(s)
		if !ok {
			continue
		}
		e, isGen := t.Owner.Edge()
		if !isGen {
			continue
		}
		if _, already := seen[e]; already {
			continue
		}
		visit(e)
		sig, _ := g.Signature(e)
		for i := 0; i < sig.Outputs(); i++ {
			queue = append(queue, SourcePort(Gen(e), i))
		}
	}

	rest := g.Edges()
	for _, e := range rest {
		visit(e)
	}

	return order
}

// canonicalPort rewrites a generator-owned port's edge id through rank,
// leaving boundary ports untouched.
func canonicalPort(p Port, rank map[HyperEdgeId]int) Port {
	e, isGen := p.Owner.Edge()
	if !isGen {
		return p
	}

	return Port{Role: p.Role, Owner: Gen(HyperEdgeId(rank[e])), Index: p.Index}
}

// canonicalWireSet rewrites every wire of g through rank and returns it as
// a set keyed by the canonical (source, target) pair.
func canonicalWireSet(g *Hypergraph, rank map[HyperEdgeId]int) map[[2]Port]struct{} {
	out := make(map[[2]Port]struct{})
	g.EachWire(func(s, t Port) {
		out[[2]Port{canonicalPort(s, rank), canonicalPort(t, rank)}] = struct{}{}
	})

	return out
}
