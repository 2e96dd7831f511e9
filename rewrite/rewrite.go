// Package rewrite applies double-pushout graph transformation rules to a
// hypergraph: given an occurrence of a rule's left-hand side inside a
// host, it deletes the matched generators, embeds a freshly renumbered
// copy of the right-hand side, and splices the host's surrounding context
// onto the new generators' boundary-facing ports.
package rewrite

import (
	"errors"

	"github.com/diagrammatic/hyperwire/hypergraph"
	"github.com/diagrammatic/hyperwire/match"
	"github.com/google/uuid"
)

// ErrInterfaceMismatch indicates LHS and RHS do not share a boundary
// width: a rule's two sides must agree on how wide an interface they
// splice into the host.
var ErrInterfaceMismatch = errors.New("rewrite: LHS/RHS boundary widths differ")

// ErrBoundaryThroughWire indicates a rule's LHS or RHS routes a boundary
// port directly to another boundary port (an identity bypass) rather than
// through a generator. Apply requires every interface port to anchor on a
// generator, since that anchor is what identifies the host's surrounding
// context to splice onto.
var ErrBoundaryThroughWire = errors.New("rewrite: boundary port must anchor on a generator")

// ErrUnmatchedBoundaryAnchor indicates an occurrence's generator mapping
// does not cover the generator a rule's boundary port anchors on, or that
// generator's anchor port has no host-side wire at all. Either means occ
// is not actually a valid occurrence of r.LHS.
var ErrUnmatchedBoundaryAnchor = errors.New("rewrite: occurrence does not cover a boundary anchor")

// Rule is a named double-pushout rewrite rule: replace an occurrence of
// LHS with a freshly instantiated copy of RHS, preserving whatever the
// host wired to the matched subgraph's interface.
type Rule struct {
	ID   uuid.UUID
	Name string
	LHS  *hypergraph.Hypergraph
	RHS  *hypergraph.Hypergraph
}

// NewRule validates that lhs and rhs share a boundary width and mints a
// fresh, time-sortable identity for the rule.
func NewRule(name string, lhs, rhs *hypergraph.Hypergraph) (Rule, error) {
	li, lo := lhs.Size()
	ri, ro := rhs.Size()
	if li != ri || lo != ro {
		return Rule{}, ErrInterfaceMismatch
	}

	id, err := uuid.NewV7()
	if err != nil {
		return Rule{}, err
	}

	return Rule{ID: id, Name: name, LHS: lhs, RHS: rhs}, nil
}

// Apply rewrites host at the given occurrence of r.LHS, returning the
// resulting hypergraph. host and occ are not mutated.
func Apply(host *hypergraph.Hypergraph, r Rule, occ match.MatchState) (*hypergraph.Hypergraph, error) {
	li, lo := r.LHS.Size()

	sourceContext := make([]hypergraph.Port, li)
	for i := 0; i < li; i++ {
		q, ok := r.LHS.TargetOf(hypergraph.SourcePort(hypergraph.Boundary(), i))
		if !ok || q.Owner.IsBoundary() {
			return nil, ErrBoundaryThroughWire
		}
		qEdge, _ := q.Owner.Edge()
		hostEdge, ok := occ.Edges[qEdge]
		if !ok {
			return nil, ErrUnmatchedBoundaryAnchor
		}
		hostPort := hypergraph.TargetPort(hypergraph.Gen(hostEdge), q.Index)
		ctx, ok := host.SourceOf(hostPort)
		if !ok {
			return nil, ErrUnmatchedBoundaryAnchor
		}
		sourceContext[i] = ctx
	}

	targetContext := make([]hypergraph.Port, lo)
	for i := 0; i < lo; i++ {
		q, ok := r.LHS.SourceOf(hypergraph.TargetPort(hypergraph.Boundary(), i))
		if !ok || q.Owner.IsBoundary() {
			return nil, ErrBoundaryThroughWire
		}
		qEdge, _ := q.Owner.Edge()
		hostEdge, ok := occ.Edges[qEdge]
		if !ok {
			return nil, ErrUnmatchedBoundaryAnchor
		}
		hostPort := hypergraph.SourcePort(hypergraph.Gen(hostEdge), q.Index)
		ctx, ok := host.TargetOf(hostPort)
		if !ok {
			return nil, ErrUnmatchedBoundaryAnchor
		}
		targetContext[i] = ctx
	}

	matchedHostEdges := make(map[hypergraph.HyperEdgeId]bool, len(occ.Edges))
	for _, he := range occ.Edges {
		matchedHostEdges[he] = true
	}

	sigs := make(map[hypergraph.HyperEdgeId]hypergraph.Signature)
	for _, e := range host.Edges() {
		if matchedHostEdges[e] {
			continue
		}
		sig, _ := host.Signature(e)
		sigs[e] = sig
	}

	var wires []hypergraph.Wire
	host.EachWire(func(s, t hypergraph.Port) {
		if portTouchesMatch(s, matchedHostEdges) || portTouchesMatch(t, matchedHostEdges) {
			return
		}
		wires = append(wires, hypergraph.Wire{Source: s, Target: t})
	})

	edgeShift := host.NextID()
	for _, e := range r.RHS.Edges() {
		sig, _ := r.RHS.Signature(e)
		sigs[e+edgeShift] = sig
	}
	r.RHS.EachWire(func(s, t hypergraph.Port) {
		if s.Owner.IsBoundary() || t.Owner.IsBoundary() {
			return // spliced onto host context below, not copied verbatim.
		}
		wires = append(wires, hypergraph.Wire{
			Source: hypergraph.RemapPort(s, edgeShift, 0, 0),
			Target: hypergraph.RemapPort(t, edgeShift, 0, 0),
		})
	})

	for i := 0; i < li; i++ {
		q, ok := r.RHS.TargetOf(hypergraph.SourcePort(hypergraph.Boundary(), i))
		if !ok || q.Owner.IsBoundary() {
			return nil, ErrBoundaryThroughWire
		}
		rhsTarget := hypergraph.RemapPort(q, edgeShift, 0, 0)
		wires = append(wires, hypergraph.Wire{Source: sourceContext[i], Target: rhsTarget})
	}
	for i := 0; i < lo; i++ {
		q, ok := r.RHS.SourceOf(hypergraph.TargetPort(hypergraph.Boundary(), i))
		if !ok || q.Owner.IsBoundary() {
			return nil, ErrBoundaryThroughWire
		}
		rhsSource := hypergraph.RemapPort(q, edgeShift, 0, 0)
		wires = append(wires, hypergraph.Wire{Source: rhsSource, Target: targetContext[i]})
	}

	next := host.NextID() + r.RHS.NextID()

	return hypergraph.FromParts(sigs, wires, next), nil
}

// portTouchesMatch reports whether p belongs to one of the matched
// generators being deleted.
func portTouchesMatch(p hypergraph.Port, matched map[hypergraph.HyperEdgeId]bool) bool {
	e, isGen := p.Owner.Edge()

	return isGen && matched[e]
}
