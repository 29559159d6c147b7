package mir

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leikang123/noria/ast"
)

// Invariant 5: for every Join/LeftJoin, |on_left| = |on_right|.
func TestNewJoin_ColumnLengthMismatchPanics(t *testing.T) {
	require := require.New(t)
	left := newParent("l", "a", "b")
	right := newParent("r", "c")

	require.Panics(func() {
		NewJoin("j", 0, []ast.Column{{Table: "l", Name: "a"}, {Table: "l", Name: "b"}}, []ast.Column{{Table: "r", Name: "c"}}, left, right)
	})
}

// Output columns are left.columns ++ right.columns, duplicates preserved.
func TestNewJoin_OutputColumnsConcatenated(t *testing.T) {
	require := require.New(t)
	left := newParent("l", "a", "b")
	right := newParent("r", "b")

	j := NewJoin("j", 0, []ast.Column{{Table: "l", Name: "a"}}, []ast.Column{{Table: "r", Name: "b"}}, left, right)

	require.Equal(KindJoin, j.Kind.Tag())
	require.Len(j.Columns, 3)
	require.Equal("a", j.Columns[0].Name)
	require.Equal("b", j.Columns[1].Name)
	require.Equal("b", j.Columns[2].Name)
	require.Equal([]*MirNode{left, right}, j.Ancestors)
}

func TestNewLeftJoin_TagsAsLeftJoin(t *testing.T) {
	require := require.New(t)
	left := newParent("l", "a")
	right := newParent("r", "b")

	lj := NewLeftJoin("lj", 0, []ast.Column{{Table: "l", Name: "a"}}, []ast.Column{{Table: "r", Name: "b"}}, left, right)
	require.Equal(KindLeftJoin, lj.Kind.Tag())
}
