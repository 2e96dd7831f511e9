// Package hyperwire is the hypergraph core of a string-diagram editor for
// symmetric monoidal categories — the data model, algebra, matcher, rewriter
// and layout engine underneath a diagram editor, without any of the
// rendering, UI or persistence-to-disk surfaces that sit on top of it.
//
// What is hyperwire?
//
//	A library of value-typed hypergraphs and the algorithms over them that
//	brings together:
//		• hypergraph — monogamous open hypergraphs: generators, ports, wires
//		• algebra    — ⊗ (tensor) and → (affine sequential) composition
//		• equivalence — a disjoint-set-like element/class map
//		• grid       — 2-D tile placement with shift-to-make-space semantics
//		• traversal  — BFS over ports, longest-path layering
//		• match      — a lazy, backtracking subgraph matcher
//		• rewrite    — double-pushout rule application at a match site
//		• layout     — hypergraph + grid + pseudonodes + editor-safe mutations
//		• persist    — a round-trippable YAML encoding of a laid-out diagram
//
// Why hyperwire?
//
//   - Pure data transformations on hypergraphs — every Hypergraph mutator
//     returns a new value; grid.Grid and layout.Layout are the editor's
//     mutable canvas and change in place, and match runs its search on a
//     goroutine behind an iterator
//   - No execution semantics assigned to generators; this is structure, not interpretation
//   - Deterministic matching and layering: same input, same output, every time
//   - Small dependency surface: one ordered-map library, one UUID library, one YAML codec
//
// Under the hood, everything is organized under nine subpackages:
//
//	hypergraph/  — generators, ports, wires, boundaries, monogamous wiring
//	algebra/     — tensor and sequential composition
//	equivalence/ — element/class-tag bookkeeping used by match
//	grid/        — 2-D tile placement
//	traversal/   — BFS port ordering and column assignment
//	match/       — pattern-in-host embedding search
//	rewrite/     — DPO rule application
//	layout/      — the editable, renderable diagram
//	persist/     — save/load of a laid-out diagram
//
// Quick ASCII example — two generators in sequence, one bypass wire:
//
//	   ┌───┐
//	 0→│ a │0──────────────→0   (affine bypass: a's first output passes b by)
//	   │   │1─┐   ┌───┐
//	   └───┘  └──→│ b │→1
//	              └───┘
//
// Dive into SPEC_FULL.md for the full module-by-module contract.
//
//	go get github.com/diagrammatic/hyperwire
package hyperwire
