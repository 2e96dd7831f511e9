// Package match finds occurrences of a small pattern hypergraph inside a
// larger host hypergraph: assignments of pattern generators to host
// generators that preserve signatures and internal wiring. rewrite uses
// these occurrences as the left-hand side of a double-pushout rule
// application.
//
// A pattern wire with one end on the pattern's own boundary is an open
// interface port, not a constraint: it marks where the matched subgraph
// may be spliced into (or out of) its surrounding context, and is not
// required to correspond to any particular host wire.
package match

import (
	"context"
	"sort"

	"github.com/diagrammatic/hyperwire/equivalence"
	"github.com/diagrammatic/hyperwire/hypergraph"
)

// MatchState is one occurrence of pattern inside host: a bijection from
// pattern generator ids to host generator ids, plus the induced port
// mapping for every port belonging to a matched generator.
type MatchState struct {
	Edges map[hypergraph.HyperEdgeId]hypergraph.HyperEdgeId
	Ports map[hypergraph.Port]hypergraph.Port
}

// clone returns a deep copy, so the search can extend a state along one
// branch without perturbing sibling branches that still hold a reference
// to the same parent state.
func (m MatchState) clone() MatchState {
	edges := make(map[hypergraph.HyperEdgeId]hypergraph.HyperEdgeId, len(m.Edges))
	for k, v := range m.Edges {
		edges[k] = v
	}
	ports := make(map[hypergraph.Port]hypergraph.Port, len(m.Ports))
	for k, v := range m.Ports {
		ports[k] = v
	}

	return MatchState{Edges: edges, Ports: ports}
}

// engine holds the immutable search configuration: the two graphs, the
// pattern's edges in deterministic ascending order, and the channel the
// backtracking search reports completed states on.
type engine struct {
	pattern, host *hypergraph.Hypergraph
	patternEdges  []hypergraph.HyperEdgeId
	results       chan MatchState
	ctx           context.Context

	// sigClasses groups host.Edges() by signature equality, so search can
	// fetch the candidates for a pattern edge's signature directly instead
	// of re-scanning every host edge at each branch point. sigReps holds
	// one representative edge per class, in the order classes were first
	// seen.
	sigClasses *equivalence.Equivalence[hypergraph.HyperEdgeId]
	sigReps    []hypergraph.HyperEdgeId
}

// buildSignatureClasses buckets host's edges into equivalence classes by
// SignatureEqual, so repeated candidate lookups for the same pattern
// signature don't each re-walk every host edge.
func buildSignatureClasses(host *hypergraph.Hypergraph) (*equivalence.Equivalence[hypergraph.HyperEdgeId], []hypergraph.HyperEdgeId) {
	classes := equivalence.New[hypergraph.HyperEdgeId]()
	var reps []hypergraph.HyperEdgeId

	for _, he := range host.Edges() {
		hSig, _ := host.Signature(he)
		placed := false
		for _, rep := range reps {
			repSig, _ := host.Signature(rep)
			if repSig.SignatureEqual(hSig) {
				classes.Union(rep, he)
				placed = true

				break
			}
		}
		if !placed {
			classes.NewClass(he)
			reps = append(reps, he)
		}
	}

	return classes, reps
}

// candidatesFor returns every host edge whose signature matches pSig, in
// ascending id order.
func (e *engine) candidatesFor(pSig hypergraph.Signature) []hypergraph.HyperEdgeId {
	for _, rep := range e.sigReps {
		repSig, _ := e.host.Signature(rep)
		if !repSig.SignatureEqual(pSig) {
			continue
		}

		id, _ := e.sigClasses.ClassOf(rep)
		members := e.sigClasses.Members(id)
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })

		return members
	}

	return nil
}

// Iterator is a lazy, abandonable stream of MatchState values. Call Next
// repeatedly until it reports ok == false; call Stop early to discard the
// remaining search without waiting for it to exhaust itself.
type Iterator struct {
	results chan MatchState
	cancel  context.CancelFunc
	done    chan struct{}
}

// Next blocks until another occurrence is found or the search is
// exhausted (ok == false).
func (it *Iterator) Next() (MatchState, bool) {
	ms, ok := <-it.results
	if !ok {
		<-it.done
	}

	return ms, ok
}

// Stop abandons the remaining search. Safe to call more than once, and
// safe to call after Next has already reported exhaustion.
func (it *Iterator) Stop() {
	it.cancel()
	for range it.results {
		// Drain so the search goroutine's blocked send, if any, unblocks
		// and the goroutine observes cancellation and exits.
	}
	<-it.done
}

// Occurrences searches host for every occurrence of pattern, returning a
// lazy Iterator. Host generators are tried in ascending id order at each
// branch point, so occurrences are enumerated in a fixed, reproducible
// order across runs.
func Occurrences(pattern, host *hypergraph.Hypergraph) *Iterator {
	ctx, cancel := context.WithCancel(context.Background())

	sigClasses, sigReps := buildSignatureClasses(host)
	e := &engine{
		pattern:      pattern,
		host:         host,
		patternEdges: pattern.Edges(),
		results:      make(chan MatchState),
		ctx:          ctx,
		sigClasses:   sigClasses,
		sigReps:      sigReps,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(e.results)
		e.search(MatchState{Edges: map[hypergraph.HyperEdgeId]hypergraph.HyperEdgeId{}, Ports: map[hypergraph.Port]hypergraph.Port{}}, 0)
	}()

	return &Iterator{results: e.results, cancel: cancel, done: done}
}

// search extends partial by assigning patternEdges[i] to every host
// generator that is still unused and signature-compatible, verifies the
// tentative assignment is wiring-consistent with every previously assigned
// edge (including itself, for self-loops), and recurses. At i ==
// len(patternEdges) the assignment is complete and is reported.
func (e *engine) search(partial MatchState, i int) {
	select {
	case <-e.ctx.Done():
		return
	default:
	}

	if i == len(e.patternEdges) {
		select {
		case e.results <- partial.clone():
		case <-e.ctx.Done():
		}

		return
	}

	pe := e.patternEdges[i]
	pSig, _ := e.pattern.Signature(pe)

	used := make(map[hypergraph.HyperEdgeId]bool, len(partial.Edges))
	for _, he := range partial.Edges {
		used[he] = true
	}

	for _, he := range e.candidatesFor(pSig) {
		select {
		case <-e.ctx.Done():
			return
		default:
		}

		if used[he] {
			continue
		}

		next := partial.clone()
		next.Edges[pe] = he
		portsForEdge(e.pattern, pe, he, next.Ports)

		if consistent(e.pattern, e.host, pe, next) {
			e.search(next, i+1)
		}
	}
}

// portsForEdge records, for every local port of pattern generator pe, the
// corresponding port on host generator he: same role and index, owner
// Gen(he).
func portsForEdge(pattern *hypergraph.Hypergraph, pe, he hypergraph.HyperEdgeId, ports map[hypergraph.Port]hypergraph.Port) {
	sig, ok := pattern.Signature(pe)
	if !ok {
		return
	}
	for i := 0; i < sig.Inputs(); i++ {
		p := hypergraph.TargetPort(hypergraph.Gen(pe), i)
		ports[p] = hypergraph.TargetPort(hypergraph.Gen(he), i)
	}
	for i := 0; i < sig.Outputs(); i++ {
		p := hypergraph.SourcePort(hypergraph.Gen(pe), i)
		ports[p] = hypergraph.SourcePort(hypergraph.Gen(he), i)
	}
}

// consistent reports whether every pattern wire touching pe, whose other
// endpoint is also on an already-assigned pattern generator, has a
// matching wire in host between the two generators' images. Wires
// touching the pattern's own boundary are exempt: they are the matched
// subgraph's open interface, not a structural constraint.
func consistent(pattern, host *hypergraph.Hypergraph, pe hypergraph.HyperEdgeId, state MatchState) bool {
	sig, ok := pattern.Signature(pe)
	if !ok {
		return false
	}

	checkWire := func(patternPort hypergraph.Port) bool {
		var other hypergraph.Port
		var found bool
		if patternPort.Role == hypergraph.Target {
			other, found = pattern.SourceOf(patternPort)
		} else {
			other, found = pattern.TargetOf(patternPort)
		}
		if !found || other.Owner.IsBoundary() {
			return true
		}
		otherEdge, _ := other.Owner.Edge()
		if _, assigned := state.Edges[otherEdge]; !assigned {
			return true // that generator hasn't been placed yet; nothing to check.
		}

		hostPort, ok := state.Ports[patternPort]
		if !ok {
			return false
		}
		hostOther, ok := state.Ports[other]
		if !ok {
			return false
		}

		var actualHostOther hypergraph.Port
		var actualFound bool
		if hostPort.Role == hypergraph.Target {
			actualHostOther, actualFound = host.SourceOf(hostPort)
		} else {
			actualHostOther, actualFound = host.TargetOf(hostPort)
		}

		return actualFound && actualHostOther == hostOther
	}

	for i := 0; i < sig.Inputs(); i++ {
		if !checkWire(hypergraph.TargetPort(hypergraph.Gen(pe), i)) {
			return false
		}
	}
	for i := 0; i < sig.Outputs(); i++ {
		if !checkWire(hypergraph.SourcePort(hypergraph.Gen(pe), i)) {
			return false
		}
	}

	return true
}
