package algebra

import "github.com/diagrammatic/hyperwire/hypergraph"

// Tensor stacks a and b side by side (a ⊗ b): the result's left boundary is
// a's left boundary followed by b's left boundary, and likewise for the
// right boundary. Neither a's nor b's internal wiring is touched; only b's
// generator ids and boundary indices are shifted to make room.
//
// If a has boundary widths (aIn, aOut) and b has (bIn, bOut), the result
// has boundary widths (aIn+bIn, aOut+bOut). b's boundary Source (left)
// ports shift by aIn, b's boundary Target (right) ports shift by aOut, and
// every one of b's generator ids shifts by a.NextID() so the two
// generator-id spaces stay disjoint.
func Tensor(a, b *hypergraph.Hypergraph) *hypergraph.Hypergraph {
	sigs := make(map[hypergraph.HyperEdgeId]hypergraph.Signature)
	var wires []hypergraph.Wire

	aIn, aOut := a.Size()

	relabel(a, 0, 0, 0, sigs, &wires)
	relabel(b, a.NextID(), aIn, aOut, sigs, &wires)

	return hypergraph.FromParts(sigs, wires, a.NextID()+b.NextID())
}
