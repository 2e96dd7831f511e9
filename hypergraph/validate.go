package hypergraph

// Validate checks invariants I2 (port validity) and I3 (dense boundaries)
// against the current snapshot of g. I1 (monogamy) holds unconditionally by
// construction of portBiMap and is not re-derived here; I4 (identifier
// monotonicity) holds unconditionally by construction of AddEdge. Validate
// exists for tests; nothing in the module's non-test code calls it.
//
// Complexity: O(|connections| + |signatures|).
func (g *Hypergraph) Validate() error {
	g.muSig.RLock()
	sigs := g.sigs
	g.muSig.RUnlock()

	g.muConn.RLock()
	defer g.muConn.RUnlock()

	leftUsed := make(map[int]struct{})  // Source-boundary indices (left/domain boundary)
	rightUsed := make(map[int]struct{}) // Target-boundary indices (right/codomain boundary)

	checkPort := func(p Port) error {
		e, isGen := p.Owner.Edge()
		if !isGen {
			return nil
		}
		sig, ok := sigs[e]
		if !ok {
			return ErrUnknownEdge
		}
		n := sig.Inputs()
		if p.Role == Source {
			n = sig.Outputs()
		}
		if p.Index < 0 || p.Index >= n {
			return ErrPortOutOfRange
		}

		return nil
	}

	var err error
	g.conns.each(func(s, t Port) {
		if err != nil {
			return
		}
		if e := checkPort(s); e != nil {
			err = e

			return
		}
		if e := checkPort(t); e != nil {
			err = e

			return
		}
		if s.Owner.IsBoundary() {
			leftUsed[s.Index] = struct{}{}
		}
		if t.Owner.IsBoundary() {
			rightUsed[t.Index] = struct{}{}
		}
	})
	if err != nil {
		return err
	}

	if !isDensePrefix(leftUsed) || !isDensePrefix(rightUsed) {
		return ErrBoundaryGap
	}

	return nil
}

// isDensePrefix reports whether used is exactly {0, 1, ..., len(used)-1}.
func isDensePrefix(used map[int]struct{}) bool {
	for i := 0; i < len(used); i++ {
		if _, ok := used[i]; !ok {
			return false
		}
	}

	return true
}
