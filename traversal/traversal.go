// Package traversal walks the dependency graph induced by a hypergraph's
// wiring: generator e depends on generator e' when some wire runs from one
// of e''s source ports into one of e's target ports. layout uses this to
// assign each generator a column (its layer) and to detect the cycles a
// Hypergraph itself never rejects, since acyclic layering is an editor-time
// concern, not a wiring-validity one.
package traversal

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/diagrammatic/hyperwire/hypergraph"
)

// ErrCycleDetected indicates the generator dependency graph is not a DAG,
// so no layering exists.
var ErrCycleDetected = errors.New("traversal: generator dependency cycle detected")

// dependencyGraph is the adjacency list of the generator-only DAG: deps[e]
// holds every generator that feeds a target port of e directly.
type dependencyGraph map[hypergraph.HyperEdgeId][]hypergraph.HyperEdgeId

// buildDependencies scans every wire once and records, for each generator,
// which other generators feed it.
func buildDependencies(g *hypergraph.Hypergraph) dependencyGraph {
	deps := make(dependencyGraph)
	for _, e := range g.Edges() {
		deps[e] = nil
	}
	g.EachWire(func(s, t hypergraph.Port) {
		te, tIsGen := t.Owner.Edge()
		se, sIsGen := s.Owner.Edge()
		if tIsGen && sIsGen {
			deps[te] = append(deps[te], se)
		}
	})

	return deps
}

// Layer assigns each generator a column equal to the length of the longest
// dependency chain ending at it: a generator with no incoming wires from
// other generators sits at column 0, and any generator fed (directly or
// transitively) by a column-k generator sits at column k+1 or later.
//
// Complexity: O(V + E).
func Layer(g *hypergraph.Hypergraph) (map[hypergraph.HyperEdgeId]int, error) {
	deps := buildDependencies(g)

	const (
		white = 0
		gray  = 1
		black = 2
	)
	state := make(map[hypergraph.HyperEdgeId]int, len(deps))
	column := make(map[hypergraph.HyperEdgeId]int, len(deps))

	var visit func(e hypergraph.HyperEdgeId) error
	visit = func(e hypergraph.HyperEdgeId) error {
		switch state[e] {
		case gray:
			return fmt.Errorf("%w: generator %d", ErrCycleDetected, e)
		case black:
			return nil
		}
		state[e] = gray

		best := -1
		for _, dep := range deps[e] {
			if err := visit(dep); err != nil {
				return err
			}
			if column[dep] > best {
				best = column[dep]
			}
		}
		column[e] = best + 1
		state[e] = black

		return nil
	}

	ids := make([]hypergraph.HyperEdgeId, 0, len(deps))
	for e := range deps {
		ids = append(ids, e)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, e := range ids {
		if state[e] == white {
			if err := visit(e); err != nil {
				return nil, err
			}
		}
	}

	return column, nil
}

// PortVisitFunc is called once per port reached by BFS, in breadth-first
// order, paired with its distance (in wire hops) from the start.
type PortVisitFunc func(p hypergraph.Port, depth int) error

// BFSOptions configures BFSPorts.
type BFSOptions struct {
	// Ctx allows cancellation; if nil, context.Background() is used.
	Ctx context.Context
}

// BFSPorts walks the wire graph breadth-first starting from every boundary
// Source port, in ascending index order, visiting each reachable port
// exactly once via fn. This is the traversal layout's auto-placement pass
// uses to assign initial rows: generators reachable earlier, and via
// shorter chains, get placed nearer the top.
//
// Complexity: O(|connections|).
func BFSPorts(g *hypergraph.Hypergraph, fn PortVisitFunc, opts *BFSOptions) error {
	ctx := context.Background()
	if opts != nil && opts.Ctx != nil {
		ctx = opts.Ctx
	}

	inWidth, _ := g.Size()
	type item struct {
		port  hypergraph.Port
		depth int
	}
	queue := make([]item, 0, inWidth)
	visited := make(map[hypergraph.Port]bool)

	for i := 0; i < inWidth; i++ {
		start := hypergraph.SourcePort(hypergraph.Boundary(), i)
		if !visited[start] {
			visited[start] = true
			queue = append(queue, item{port: start, depth: 0})
		}
	}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]
		if err := fn(cur.port, cur.depth); err != nil {
			return err
		}

		for _, next := range neighborsOf(g, cur.port) {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, item{port: next, depth: cur.depth + 1})
			}
		}
	}

	return nil
}

// neighborsOf returns the ports one wire-hop away from p: if p is a Source
// port, that is the Target port its wire ends at, plus every Target port
// on the same generator (so BFS flows across a generator body once any one
// of its inputs is reached); if p is a Target port, that is the Source
// port its wire begins at, plus every Source port on the same generator.
func neighborsOf(g *hypergraph.Hypergraph, p hypergraph.Port) []hypergraph.Port {
	var out []hypergraph.Port

	if p.Role == hypergraph.Source {
		if t, ok := g.TargetOf(p); ok {
			out = append(out, t)
		}
	} else {
		if s, ok := g.SourceOf(p); ok {
			out = append(out, s)
		}
	}

	if e, isGen := p.Owner.Edge(); isGen {
		sig, ok := g.Signature(e)
		if ok {
			if p.Role == hypergraph.Target {
				for i := 0; i < sig.Outputs(); i++ {
					out = append(out, hypergraph.SourcePort(hypergraph.Gen(e), i))
				}
			} else {
				for i := 0; i < sig.Inputs(); i++ {
					out = append(out, hypergraph.TargetPort(hypergraph.Gen(e), i))
				}
			}
		}
	}

	return out
}
