package mir

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leikang123/noria/ast"
	"github.com/leikang123/noria/querygraph"
)

func eqEdge(leftCol, rightCol ast.Column) *ast.ConditionTree {
	return &ast.ConditionTree{
		Operator: ast.OpEqual,
		Left:     ast.NewFieldExpr(leftCol),
		Right:    ast.NewFieldExpr(rightCol),
	}
}

// MakeJoins processes edges in the query graph's own order, chaining a later
// edge off the join node an earlier edge already produced for a shared
// relation, and names nodes "{prefix}_n{counter}" in that same order (spec
// §4.6, §5 determinism).
func TestMakeJoins_ChainsAcrossSharedRelation(t *testing.T) {
	require := require.New(t)
	c := NewConverter()

	tNode := newParent("t", "a")
	uNode := newParent("u", "a", "b")
	vNode := newParent("v", "b")

	nodeForRel := map[string]*MirNode{
		"t": tNode,
		"u": uNode,
		"v": vNode,
	}

	qg := &querygraph.QueryGraph{
		Edges: []querygraph.Edge{
			{
				Left: "t", Right: "u",
				Predicate: eqEdge(ast.Column{Table: "t", Name: "a"}, ast.Column{Table: "u", Name: "a"}),
				Kind:      querygraph.JoinInner,
			},
			{
				Left: "u", Right: "v",
				Predicate: eqEdge(ast.Column{Table: "u", Name: "b"}, ast.Column{Table: "v", Name: "b"}),
				Kind:      querygraph.JoinLeft,
			},
		},
	}

	joins := c.MakeJoins("q", qg, nodeForRel, 0)

	require.Len(joins, 2)
	require.Equal(KindJoin, joins[0].Kind.Tag())
	require.Equal(KindLeftJoin, joins[1].Kind.Tag())
	require.Equal("q_n0", joins[0].Name)
	require.Equal("q_n1", joins[1].Name)

	// The second edge's left side ("u") was rewritten to the first join by
	// the time it was processed.
	require.Same(joins[0], joins[1].Ancestors[0])
	require.Same(vNode, joins[1].Ancestors[1])

	// Both relations the first join touched, and the relation the second
	// join added, now resolve to the chain's final tail.
	require.Same(joins[1], nodeForRel["t"])
	require.Same(joins[1], nodeForRel["u"])
	require.Same(joins[1], nodeForRel["v"])
}

// An unsupported join predicate operator is a fatal, explicit refusal.
func TestMakeJoins_NonEquiPredicatePanics(t *testing.T) {
	require := require.New(t)
	c := NewConverter()

	tNode := newParent("t", "a")
	uNode := newParent("u", "a")
	nodeForRel := map[string]*MirNode{"t": tNode, "u": uNode}

	qg := &querygraph.QueryGraph{
		Edges: []querygraph.Edge{
			{
				Left: "t", Right: "u",
				Predicate: &ast.ConditionTree{
					Operator: ast.OpLess,
					Left:     ast.NewFieldExpr(ast.Column{Table: "t", Name: "a"}),
					Right:    ast.NewFieldExpr(ast.Column{Table: "u", Name: "a"}),
				},
				Kind: querygraph.JoinInner,
			},
		},
	}

	require.Panics(func() { c.MakeJoins("q", qg, nodeForRel, 0) })
}
