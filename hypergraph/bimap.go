package hypergraph

import "github.com/emirpasic/gods/trees/redblacktree"

// portBiMap is the bijective, order-backed mapping from Source ports to
// Target ports that backs Hypergraph.conns. It keeps two red-black trees
// (fwd keyed by Source port, rev keyed by Target port) in lockstep so that
// both directions resolve in O(log n).
type portBiMap struct {
	fwd *redblacktree.Tree // Port(Source) -> Port(Target)
	rev *redblacktree.Tree // Port(Target) -> Port(Source)
}

// comparePorts totally orders ports by (role, owner-kind, edge id, index).
// Role is constant within a single tree (fwd only ever holds Source keys,
// rev only ever holds Target keys) but is included so the comparator is
// well-defined for any pair of ports.
func comparePorts(a, b interface{}) int {
	pa, pb := a.(Port), b.(Port)
	if pa.Role != pb.Role {
		return int(pa.Role) - int(pb.Role)
	}
	if pa.Owner.kind != pb.Owner.kind {
		return int(pa.Owner.kind) - int(pb.Owner.kind)
	}
	if pa.Owner.edge != pb.Owner.edge {
		return int(pa.Owner.edge - pb.Owner.edge)
	}

	return pa.Index - pb.Index
}

// newPortBiMap returns an empty bimap.
func newPortBiMap() *portBiMap {
	return &portBiMap{
		fwd: redblacktree.NewWith(comparePorts),
		rev: redblacktree.NewWith(comparePorts),
	}
}

// put inserts the wire s->t, evicting any prior wire that used either
// endpoint, so neither tree ever holds two entries for the same key.
func (m *portBiMap) put(s, t Port) {
	if oldT, ok := m.fwd.Get(s); ok {
		m.rev.Remove(oldT)
	}
	if oldS, ok := m.rev.Get(t); ok {
		m.fwd.Remove(oldS)
	}
	m.fwd.Put(s, t)
	m.rev.Put(t, s)
}

// target returns the wire's head for source port s, if any. O(log n).
func (m *portBiMap) target(s Port) (Port, bool) {
	v, ok := m.fwd.Get(s)
	if !ok {
		return Port{}, false
	}

	return v.(Port), true
}

// source returns the wire's tail for target port t, if any. O(log n).
func (m *portBiMap) source(t Port) (Port, bool) {
	v, ok := m.rev.Get(t)
	if !ok {
		return Port{}, false
	}

	return v.(Port), true
}

// deleteSource removes the wire whose tail is s, if any.
func (m *portBiMap) deleteSource(s Port) {
	if t, ok := m.fwd.Get(s); ok {
		m.fwd.Remove(s)
		m.rev.Remove(t)
	}
}

// deleteTarget removes the wire whose head is t, if any.
func (m *portBiMap) deleteTarget(t Port) {
	if s, ok := m.rev.Get(t); ok {
		m.rev.Remove(t)
		m.fwd.Remove(s)
	}
}

// len reports the number of wires currently stored.
func (m *portBiMap) len() int { return m.fwd.Size() }

// each calls fn(s, t) for every wire, in ascending source-port order.
func (m *portBiMap) each(fn func(s, t Port)) {
	it := m.fwd.Iterator()
	for it.Next() {
		fn(it.Key().(Port), it.Value().(Port))
	}
}

// clone returns a deep, independent copy.
func (m *portBiMap) clone() *portBiMap {
	out := newPortBiMap()
	m.each(func(s, t Port) { out.put(s, t) })

	return out
}
