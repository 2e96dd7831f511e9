package hypergraph

// FromParts assembles a Hypergraph directly from a signature catalog, a
// wire list, and an explicit next-id counter, bypassing the incremental
// clone-per-mutation cost of repeated AddEdge/Connect calls. algebra and
// rewrite use this once they already know the final wiring of a composed
// or rewritten graph.
//
// sigs is copied; wires are inserted via the bimap's usual put semantics,
// so a malformed caller-supplied wire list that reuses an endpoint simply
// evicts the earlier wire, exactly as Connect would.
//
// Complexity: O(|sigs| + |wires| log |wires|).
func FromParts(sigs map[HyperEdgeId]Signature, wires []Wire, next HyperEdgeId) *Hypergraph {
	g := Empty()
	for id, s := range sigs {
		g.sigs[id] = s
	}
	g.next = next
	for _, w := range wires {
		g.conns.put(w.Source, w.Target)
	}

	return g
}

// RemapPort rewrites p under an edge-id shift and a pair of boundary-index
// shifts, one per role. Boundary ports are shifted by shiftSource or
// shiftTarget according to their role; generator-owned ports keep their
// index and have their owning edge id increased by edgeShift. This is the
// single primitive algebra.Tensor and algebra.Sequence use to build a
// disjoint-unioned, reindexed copy of a hypergraph's ports.
func RemapPort(p Port, edgeShift HyperEdgeId, shiftSource, shiftTarget int) Port {
	if e, isGen := p.Owner.Edge(); isGen {
		return Port{Role: p.Role, Owner: Gen(e + edgeShift), Index: p.Index}
	}
	if p.Role == Source {
		return Port{Role: Source, Owner: Boundary(), Index: p.Index + shiftSource}
	}

	return Port{Role: Target, Owner: Boundary(), Index: p.Index + shiftTarget}
}
