// Package algebra implements the two composition operators of the
// symmetric-monoidal-category structure on hypergraphs: Tensor (parallel
// stacking, written a ⊗ b) and Sequence (affine horizontal composition,
// written a → b). Both operators are pure: they never mutate either
// argument, and always return a freshly built *hypergraph.Hypergraph whose
// generator ids are a disjoint renumbering of the inputs' ids.
package algebra

import "github.com/diagrammatic/hyperwire/hypergraph"

// copySignatures copies every signature of g into sigs, shifting generator
// ids by edgeShift.
func copySignatures(
	g *hypergraph.Hypergraph,
	edgeShift hypergraph.HyperEdgeId,
	sigs map[hypergraph.HyperEdgeId]hypergraph.Signature,
) {
	for _, e := range g.Edges() {
		sig, _ := g.Signature(e)
		sigs[e+edgeShift] = sig
	}
}

// relabel copies every wire of g into wires, shifting generator ids by
// edgeShift and boundary indices per role by shiftSource/shiftTarget. It
// also copies g's signatures, so it is the whole-graph case Tensor needs;
// Sequence instead calls copySignatures and walks wires itself, since it
// must splice some boundary wires together rather than copy them as-is.
func relabel(
	g *hypergraph.Hypergraph,
	edgeShift hypergraph.HyperEdgeId,
	shiftSource, shiftTarget int,
	sigs map[hypergraph.HyperEdgeId]hypergraph.Signature,
	wires *[]hypergraph.Wire,
) {
	copySignatures(g, edgeShift, sigs)
	g.EachWire(func(s, t hypergraph.Port) {
		*wires = append(*wires, hypergraph.Wire{
			Source: hypergraph.RemapPort(s, edgeShift, shiftSource, shiftTarget),
			Target: hypergraph.RemapPort(t, edgeShift, shiftSource, shiftTarget),
		})
	})
}
