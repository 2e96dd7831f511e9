package algebra

import "github.com/diagrammatic/hyperwire/hypergraph"

// Sequence composes a then b horizontally (a → b): a's right boundary is
// spliced onto b's left boundary, port for port, aligned from the highest
// index downward.
//
// The two boundaries need not be the same width. If a's right boundary is
// wider than b's left boundary, a's lowest-indexed outputs have nothing to
// splice into and pass straight through as the first ports of the result's
// right boundary, ahead of b's own outputs; a's highest-indexed outputs are
// the ones that feed b. Symmetrically, if b's left boundary is wider, its
// lowest-indexed inputs become extra ports on the result's left boundary,
// appended after a's own inputs, and feed straight into b; b's
// highest-indexed inputs are the ones a feeds. This affine behavior means
// Sequence never fails on a width mismatch; it degrades to a partial,
// bypassed composition instead.
func Sequence(a, b *hypergraph.Hypergraph) *hypergraph.Hypergraph {
	ai, ao := a.Size()
	bi, _ := b.Size()

	overlap := ao
	if bi < overlap {
		overlap = bi
	}
	// aBypass counts a's outputs with no counterpart on b's side: they
	// bypass b and land on the result's right boundary ahead of b's own
	// outputs. bBypass counts b's inputs with no counterpart on a's side:
	// they become extra ports on the result's left boundary, appended
	// after a's own inputs.
	aBypass := ao - overlap
	bBypass := bi - overlap

	edgeShiftB := a.NextID()

	sigs := make(map[hypergraph.HyperEdgeId]hypergraph.Signature)
	copySignatures(a, 0, sigs)
	copySignatures(b, edgeShiftB, sigs)

	var wires []hypergraph.Wire

	// a's wires: generator-to-generator and left-boundary-to-generator
	// wires pass through unshifted. Wires ending at a's right boundary are
	// either spliced (index >= aBypass, one of a's highest-indexed
	// outputs) or passed through onto the result's right boundary at the
	// same index (index < aBypass, one of a's lowest-indexed outputs,
	// ahead of b's own outputs).
	a.EachWire(func(s, t hypergraph.Port) {
		if t.Owner.IsBoundary() && t.Role == hypergraph.Target {
			if t.Index >= aBypass {
				return // spliced below
			}
			wires = append(wires, hypergraph.Wire{
				Source: s,
				Target: hypergraph.TargetPort(hypergraph.Boundary(), t.Index),
			})

			return
		}
		wires = append(wires, hypergraph.Wire{Source: s, Target: t})
	})

	// b's wires: generator-to-generator and generator-to-right-boundary
	// wires pass through shifted by edgeShiftB (ids) and aBypass (right
	// boundary indices, to make room for a's leftover outputs ahead of
	// them). Wires starting at b's left boundary are either spliced
	// (index >= bBypass, one of b's highest-indexed inputs) or passed
	// through onto the result's left boundary, appended after a's own
	// inputs (index < bBypass, one of b's lowest-indexed inputs).
	b.EachWire(func(s, t hypergraph.Port) {
		shiftedTarget := hypergraph.RemapPort(t, edgeShiftB, 0, aBypass)
		if s.Owner.IsBoundary() && s.Role == hypergraph.Source {
			if s.Index >= bBypass {
				return // spliced below
			}
			wires = append(wires, hypergraph.Wire{
				Source: hypergraph.SourcePort(hypergraph.Boundary(), ai+s.Index),
				Target: shiftedTarget,
			})

			return
		}
		wires = append(wires, hypergraph.Wire{
			Source: hypergraph.RemapPort(s, edgeShiftB, 0, aBypass),
			Target: shiftedTarget,
		})
	})

	// Splice: pair a's highest aBypass..ao-1 outputs with b's highest
	// bBypass..bi-1 inputs, index for index, joining the two interior
	// endpoints directly.
	for j := 0; j < overlap; j++ {
		aSource, ok := a.SourceOf(hypergraph.TargetPort(hypergraph.Boundary(), aBypass+j))
		if !ok {
			continue
		}
		bTarget, ok := b.TargetOf(hypergraph.SourcePort(hypergraph.Boundary(), bBypass+j))
		if !ok {
			continue
		}
		wires = append(wires, hypergraph.Wire{
			Source: aSource,
			Target: hypergraph.RemapPort(bTarget, edgeShiftB, 0, aBypass),
		})
	}

	return hypergraph.FromParts(sigs, wires, a.NextID()+b.NextID())
}
