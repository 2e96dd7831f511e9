package equivalence_test

import (
	"testing"

	"github.com/diagrammatic/hyperwire/equivalence"
	"github.com/stretchr/testify/require"
)

func TestUnionMergesClasses(t *testing.T) {
	e := equivalence.New[string]()
	e.NewClass("a")
	e.NewClass("b")
	idA, _ := e.ClassOf("a")
	idB, _ := e.ClassOf("b")
	require.NotEqual(t, idA, idB)

	merged := e.Union("a", "b")
	gotA, _ := e.ClassOf("a")
	gotB, _ := e.ClassOf("b")
	require.Equal(t, merged, gotA)
	require.Equal(t, merged, gotB)
	require.Len(t, e.Members(merged), 2)
}

func TestUnionIsIdempotent(t *testing.T) {
	e := equivalence.New[int]()
	e.Union(1, 2)
	before := e.Len()
	e.Union(1, 2)
	require.Equal(t, before, e.Len())
}

func TestRemoveDeletesEmptyClass(t *testing.T) {
	e := equivalence.New[int]()
	id := e.NewClass(42)
	require.Equal(t, 1, e.Len())

	e.Remove(42)
	require.Equal(t, 0, e.Len())
	_, ok := e.ClassOf(42)
	require.False(t, ok)
	require.Empty(t, e.Members(id))
}

func TestRemoveOneOfManyKeepsClass(t *testing.T) {
	e := equivalence.New[int]()
	e.Union(1, 2)
	id, _ := e.ClassOf(1)

	e.Remove(1)
	require.Equal(t, 1, e.Len())
	require.ElementsMatch(t, []int{2}, e.Members(id))
}
