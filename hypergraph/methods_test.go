// Package hypergraph_test verifies Hypergraph lifecycle and invariant
// contracts (mirrors core/methods_test.go's structure: deterministic
// fixtures, stdlib-only assertions, one behavior per test).
package hypergraph_test

import (
	"testing"

	"github.com/diagrammatic/hyperwire/hypergraph"
)

var f11 = hypergraph.BasicSignature{Name: "f", K: 1, N: 1}

// TestEmpty_ZeroObject verifies Empty() has no edges, no wires, size (0,0).
func TestEmpty_ZeroObject(t *testing.T) {
	g := hypergraph.Empty()
	mustEqualInt(t, len(g.Edges()), 0, "Empty().Edges()")
	in, out := g.Size()
	mustEqualInt(t, in, 0, "Empty().Size().in")
	mustEqualInt(t, out, 0, "Empty().Size().out")
	mustNoError(t, g.Validate(), "Empty().Validate()")
}

// TestIdentity_SingleWire verifies identity has exactly one wire
// B/S0->B/T0, no signatures, size (1,1).
func TestIdentity_SingleWire(t *testing.T) {
	g := hypergraph.Identity(1)
	wires := g.Wires()
	mustEqualInt(t, len(wires), 1, "Identity(1).Wires()")
	mustTrue(t, wires[0].Source == hypergraph.SourcePort(hypergraph.Boundary(), 0), "Identity(1) source endpoint")
	mustTrue(t, wires[0].Target == hypergraph.TargetPort(hypergraph.Boundary(), 0), "Identity(1) target endpoint")
	in, out := g.Size()
	mustEqualInt(t, in, 1, "Identity(1).Size().in")
	mustEqualInt(t, out, 1, "Identity(1).Size().out")
}

// TestAddEdge_SimpleGenerator verifies that adding a single f:1->1
// generator and wiring it between the two boundaries yields size (1,1)
// with two wires.
func TestAddEdge_SimpleGenerator(t *testing.T) {
	g := hypergraph.Empty()
	e, g := g.AddEdge(f11)
	mustEqualInt(t, int(e), 0, "AddEdge first id")

	g = g.Connect(hypergraph.SourcePort(hypergraph.Boundary(), 0), hypergraph.TargetPort(hypergraph.Gen(e), 0))
	g = g.Connect(hypergraph.SourcePort(hypergraph.Gen(e), 0), hypergraph.TargetPort(hypergraph.Boundary(), 0))

	in, out := g.Size()
	mustEqualInt(t, in, 1, "size.in")
	mustEqualInt(t, out, 1, "size.out")
	mustEqualInt(t, len(g.Wires()), 2, "wire count")
	mustNoError(t, g.Validate(), "Validate after wiring")
}

// TestConnect_EvictsStaleWire verifies that reconnecting a source port
// drops its previous wire, and reconnecting a target port drops its
// previous wire — every port carries at most one wire at a time.
func TestConnect_EvictsStaleWire(t *testing.T) {
	g := hypergraph.Empty()
	e0, g := g.AddEdge(f11)
	e1, g := g.AddEdge(f11)

	s := hypergraph.SourcePort(hypergraph.Boundary(), 0)
	t0 := hypergraph.TargetPort(hypergraph.Gen(e0), 0)
	t1 := hypergraph.TargetPort(hypergraph.Gen(e1), 0)

	g = g.Connect(s, t0)
	mustEqualInt(t, len(g.Wires()), 1, "after first connect")

	g = g.Connect(s, t1)
	mustEqualInt(t, len(g.Wires()), 1, "after rewiring same source")
	got, ok := g.TargetOf(s)
	mustTrue(t, ok, "TargetOf(s) present")
	mustTrue(t, got == t1, "source rewired to t1")

	_, hadOld := g.SourceOf(t0)
	mustTrue(t, !hadOld, "old target t0 has no source")
}

// TestDeleteEdge_RemovesTouchingWires verifies deleteEdge removes the
// signature and every wire incident to the edge's ports, and is a no-op on
// an unknown edge.
func TestDeleteEdge_RemovesTouchingWires(t *testing.T) {
	g := hypergraph.Empty()
	e, g := g.AddEdge(f11)
	g = g.Connect(hypergraph.SourcePort(hypergraph.Boundary(), 0), hypergraph.TargetPort(hypergraph.Gen(e), 0))
	g = g.Connect(hypergraph.SourcePort(hypergraph.Gen(e), 0), hypergraph.TargetPort(hypergraph.Boundary(), 0))

	g = g.DeleteEdge(e)
	mustEqualInt(t, len(g.Wires()), 0, "wires after delete")
	mustEqualInt(t, len(g.Edges()), 0, "edges after delete")

	same := g.DeleteEdge(e) // no-op on unknown edge
	mustEqualInt(t, len(same.Wires()), 0, "delete-unknown is a no-op")
}

// TestValidate_PortOutOfRange verifies I2: a port index beyond a
// generator's declared arity is rejected by Validate.
func TestValidate_PortOutOfRange(t *testing.T) {
	g := hypergraph.Empty()
	e, g := g.AddEdge(f11)
	// f11 has exactly one output (index 0); wiring index 1 violates I2.
	g = g.Connect(hypergraph.SourcePort(hypergraph.Gen(e), 1), hypergraph.TargetPort(hypergraph.Boundary(), 0))
	mustErrorIs(t, g.Validate(), hypergraph.ErrPortOutOfRange, "Validate rejects out-of-range port")
}

// TestValidate_BoundaryGap verifies I3: a boundary with a gap (index 1 used
// but index 0 unused) is rejected.
func TestValidate_BoundaryGap(t *testing.T) {
	g := hypergraph.Empty()
	e, g := g.AddEdge(f11)
	g = g.Connect(hypergraph.SourcePort(hypergraph.Boundary(), 1), hypergraph.TargetPort(hypergraph.Gen(e), 0))
	mustErrorIs(t, g.Validate(), hypergraph.ErrBoundaryGap, "Validate rejects a boundary gap")
}

// TestEqual_ModuloRenaming verifies that two hypergraphs built with
// different underlying edge ids, but the same structure, compare Equal.
func TestEqual_ModuloRenaming(t *testing.T) {
	a := hypergraph.Empty()
	ea, a := a.AddEdge(f11)
	a = a.Connect(hypergraph.SourcePort(hypergraph.Boundary(), 0), hypergraph.TargetPort(hypergraph.Gen(ea), 0))
	a = a.Connect(hypergraph.SourcePort(hypergraph.Gen(ea), 0), hypergraph.TargetPort(hypergraph.Boundary(), 0))

	b := hypergraph.Empty()
	_, b = b.AddEdge(f11) // burn id 0 so f11 lands on id 1 in b
	eb, b := b.AddEdge(f11)
	b = b.Connect(hypergraph.SourcePort(hypergraph.Boundary(), 0), hypergraph.TargetPort(hypergraph.Gen(eb), 0))
	b = b.Connect(hypergraph.SourcePort(hypergraph.Gen(eb), 0), hypergraph.TargetPort(hypergraph.Boundary(), 0))
	b = b.DeleteEdge(0)

	mustTrue(t, a.Equal(b), "a.Equal(b) modulo renaming")
}
