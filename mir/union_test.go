package mir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Invariant 4: for every Union, all ancestor emit-lists have equal length
// equal to output column count.
func TestNewUnionSameColumns_EmitListsEqualLength(t *testing.T) {
	require := require.New(t)
	a := newParent("a", "x", "y")
	b := newParent("b", "x", "y")

	u := NewUnionSameColumns("u", 0, []*MirNode{a, b}, a.Columns)

	require.Equal(KindUnion, u.Kind.Tag())
	uk := u.Kind.(UnionKind)
	require.Len(uk.Emit, 2)
	for _, e := range uk.Emit {
		require.Len(e, len(u.Columns))
	}
}

func TestNewUnion_FewerThanTwoAncestorsPanics(t *testing.T) {
	require := require.New(t)
	a := newParent("a", "x")
	require.Panics(func() { NewUnion("u", 0, []*MirNode{a}) })
}

// NewUnion keeps only columns present by name in every ancestor.
func TestNewUnion_IntersectsColumnsByName(t *testing.T) {
	require := require.New(t)
	a := newParent("a", "x", "y")
	b := newParent("b", "x")

	u := NewUnion("u", 0, []*MirNode{a, b})

	require.Len(u.Columns, 1)
	require.Equal("x", u.Columns[0].Name)
}
