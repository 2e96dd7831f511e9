// Package hypergraph defines the central Hypergraph, Port, and Signature
// types, and provides thread-safe primitives for building, querying, and
// cloning open hypergraphs.
//
// All core APIs use separate sync.RWMutex locks internally (muSig for the
// edge/signature catalog, muConn for the port-to-port wire bijection), so a
// mutator can snapshot a consistent view of the receiver under read locks
// while it builds the new value it returns. Hypergraphs are value-typed:
// every exported mutator returns a new *Hypergraph rather than changing the
// receiver in place.
//
// This file declares HyperEdgeId, PortRole, PortOwner, Port, Signature,
// Hypergraph, and the sentinel errors.
//
// Errors:
//
//	ErrUnknownEdge     - a port referenced an edge absent from the signature catalog.
//	ErrPortOutOfRange  - a port's index is not within its owner's declared arity.
//	ErrBoundaryGap     - a boundary's used indices are not a dense 0..W-1 prefix.
//	ErrIdentifierReuse - nextHyperEdgeId would not exceed every allocated id.
package hypergraph

import (
	"errors"
	"sync"
)

// Sentinel errors for hypergraph invariant checks (see Validate).
var (
	// ErrUnknownEdge indicates a port named an edge that has no entry in the
	// signature catalog.
	ErrUnknownEdge = errors.New("hypergraph: unknown edge")

	// ErrPortOutOfRange indicates a port index exceeds its owner's declared
	// arity for that role.
	ErrPortOutOfRange = errors.New("hypergraph: port index out of range")

	// ErrBoundaryGap indicates the boundary indices in use are not a dense
	// 0..W-1 prefix for some side/role.
	ErrBoundaryGap = errors.New("hypergraph: boundary indices are not dense")

	// ErrIdentifierReuse indicates nextHyperEdgeId failed to exceed the
	// largest allocated edge id.
	ErrIdentifierReuse = errors.New("hypergraph: identifier monotonicity violated")
)

// HyperEdgeId is a strictly ordered integer identifier, locally unique
// within a single Hypergraph. Ids are never reused within a Hypergraph's
// lineage: every value returned by AddEdge is strictly greater than any id
// previously allocated by that lineage.
type HyperEdgeId int

// PortRole tags a port as the tail (Source) or head (Target) of a wire.
// This is wire-relative, not generator-relative: a wire always runs from a
// Source port to a Target port.
type PortRole int8

const (
	// Source denotes an output of a producer: the tail of a wire.
	Source PortRole = iota
	// Target denotes an input of a consumer: the head of a wire.
	Target
)

// String renders the role for diagnostics.
func (r PortRole) String() string {
	if r == Source {
		return "Source"
	}

	return "Target"
}

// ownerKind distinguishes a boundary port from a generator port.
type ownerKind int8

const (
	ownerBoundary ownerKind = iota
	ownerGenerator
)

// PortOwner is either the diagram's outer Boundary or a specific generator
// Gen(e). Use Boundary() and Gen(e) to construct values; the zero value is
// Boundary().
type PortOwner struct {
	kind ownerKind
	edge HyperEdgeId // meaningful only when kind == ownerGenerator
}

// Boundary returns the owner representing the outer interface of an open
// hypergraph (a dangling port).
func Boundary() PortOwner { return PortOwner{kind: ownerBoundary} }

// Gen returns the owner representing a port belonging to generator e.
func Gen(e HyperEdgeId) PortOwner { return PortOwner{kind: ownerGenerator, edge: e} }

// IsBoundary reports whether this owner is the diagram boundary.
func (o PortOwner) IsBoundary() bool { return o.kind == ownerBoundary }

// Edge returns the owning generator's id and reports whether o is a
// generator owner at all (false for the boundary).
func (o PortOwner) Edge() (HyperEdgeId, bool) {
	return o.edge, o.kind == ownerGenerator
}

// Port is the triple (role, owner, index) identifying one wire endpoint.
// Indices on a generator are dense 0..k-1 (Target) or 0..n-1 (Source).
// Indices on the boundary are dense but their width is implicit: it is the
// highest observed index plus one.
type Port struct {
	Role  PortRole
	Owner PortOwner
	Index int
}

// SourcePort is a convenience constructor for a Port with Role == Source.
func SourcePort(owner PortOwner, index int) Port { return Port{Role: Source, Owner: owner, Index: index} }

// TargetPort is a convenience constructor for a Port with Role == Target.
func TargetPort(owner PortOwner, index int) Port { return Port{Role: Target, Owner: owner, Index: index} }

// Signature is the opaque type tag of a generator: it carries at minimum
// the generator's input/output arity and supports a decidable total order
// and equality. Implementations of Signature are supplied by the caller;
// this package imposes no further structure and never compares signatures
// by address identity.
type Signature interface {
	// Inputs is k, the number of target (input) ports.
	Inputs() int
	// Outputs is n, the number of source (output) ports.
	Outputs() int
	// SignatureEqual reports whether two signatures denote the same
	// generator for matching purposes.
	SignatureEqual(other Signature) bool
	// SignatureLess gives the decidable total order used to keep
	// Hypergraph.signatures deterministic across traversals.
	SignatureLess(other Signature) bool
}

// Hypergraph is an open hypergraph: a monogamous bijection between source
// and target ports, a catalog of generator signatures, and a monotonically
// non-decreasing next-id counter. The zero value is not usable; construct
// with Empty() or Identity(width).
type Hypergraph struct {
	muConn sync.RWMutex // guards conns
	muSig  sync.RWMutex // guards sigs and next

	conns *portBiMap
	sigs  map[HyperEdgeId]Signature
	next  HyperEdgeId
}
