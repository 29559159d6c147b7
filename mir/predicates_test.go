package mir

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leikang123/noria/ast"
)

func newParent(name string, cols ...string) *MirNode {
	columns := make([]ast.Column, len(cols))
	for i, c := range cols {
		columns[i] = ast.Column{Table: name, Name: c}
	}
	return NewBase(name, 0, nil, nil, false).withColumns(columns)
}

// withColumns is a test-only helper that rewrites a node's column list in
// place, used to build bare fixture nodes without going through a real
// CREATE TABLE lowering.
func (n *MirNode) withColumns(cols []ast.Column) *MirNode {
	n.Columns = cols
	return n
}

func eq(col ast.Column, v int64) *ast.ConditionExpression {
	return ast.NewComparisonOp(ast.OpEqual, ast.NewFieldExpr(col), ast.NewLiteralExpr(ast.NewIntegerLiteral(v)))
}

// Invariant 10: an OR predicate tree's generated subgraph contains a Union
// whose two ancestors are the tails of the left and right Filter chains,
// and both chains share the same parent.
func TestMakePredicateNodes_Or(t *testing.T) {
	require := require.New(t)
	c := NewConverter()

	parent := newParent("t", "a", "b")
	b := ast.Column{Table: "t", Name: "b"}

	ce := ast.NewLogicalOp(ast.OpOr, eq(b, 1), eq(b, 2))
	nodes := c.MakePredicateNodes("q", parent, ce, 0)

	require.Len(nodes, 3)
	union := nodes[2]
	require.Equal(KindUnion, union.Kind.Tag())
	require.Len(union.Ancestors, 2)
	require.Same(parent, union.Ancestors[0].Ancestors[0])
	require.Same(parent, union.Ancestors[1].Ancestors[0])
}

// Invariant 11: an AND predicate tree's generated Filter chain length equals
// the number of comparison leaves.
func TestMakePredicateNodes_And(t *testing.T) {
	require := require.New(t)
	c := NewConverter()

	parent := newParent("t", "a", "b", "c")
	b := ast.Column{Table: "t", Name: "b"}
	cc := ast.Column{Table: "t", Name: "c"}

	ce := ast.NewLogicalOp(ast.OpAnd, eq(b, 1), eq(cc, 2))
	nodes := c.MakePredicateNodes("q", parent, ce, 0)

	require.Len(nodes, 2)
	for _, n := range nodes {
		require.Equal(KindFilter, n.Kind.Tag())
	}
	require.Same(parent, nodes[0].Ancestors[0])
	require.Same(nodes[0], nodes[1].Ancestors[0])
}

// Reaching a negation in the predicate builder is a bug: it must have been
// eliminated by an upstream normalization pass.
func TestMakePredicateNodes_NegationPanics(t *testing.T) {
	require := require.New(t)
	c := NewConverter()
	parent := newParent("t", "a")

	ce := ast.NewNegationOp(eq(ast.Column{Table: "t", Name: "a"}, 1))
	require.Panics(func() { c.MakePredicateNodes("q", parent, ce, 0) })
}
