// Package hypergraph_test contains test helpers for hyperwire/hypergraph.
//
// Purpose:
//   - Provide small, deterministic assertion utilities.
//   - Keep these tests stdlib-only (no third-party assertion framework),
//     matching how the most foundational package of the corpus this was
//     grounded on tests itself.
package hypergraph_test

import (
	"errors"
	"testing"
)

func mustNoError(t *testing.T, err error, op string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

func mustErrorIs(t *testing.T, err, target error, op string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
	}
}

func mustTrue(t *testing.T, cond bool, op string) {
	t.Helper()
	if !cond {
		t.Fatalf("%s: predicate is false", op)
	}
}

func mustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", op, got, want)
	}
}
