package mir

import (
	"fmt"

	"github.com/leikang123/noria/ast"
	"github.com/leikang123/noria/querygraph"
)

// MakeJoins implements JoinPlanner (spec §4.6): orders and emits
// Join/LeftJoin nodes for a query graph's edges, in the query graph's own
// edge order (deterministic, spec §5). nodeForRel is read for each edge's
// two relations and mutated in place: every relation that resolved to
// either side of the edge (including relations folded into that side by an
// earlier join) now resolves to the new join node, so later edges (and the
// caller's subsequent predicate/group lowering) see the whole join chain.
func (c *Converter) MakeJoins(namePrefix string, qg *querygraph.QueryGraph, nodeForRel map[string]*MirNode, startCounter int) []*MirNode {
	var joins []*MirNode
	counter := startCounter

	for _, edge := range qg.Edges {
		left := nodeForRel[edge.Left]
		right := nodeForRel[edge.Right]

		onLeft, onRight := joinColumns(edge.Predicate)

		var joinNode *MirNode
		name := fmt.Sprintf("%s_n%d", namePrefix, counter)
		switch edge.Kind {
		case querygraph.JoinInner:
			joinNode = NewJoin(name, c.store.schemaVersion, onLeft, onRight, left, right)
		case querygraph.JoinLeft:
			joinNode = NewLeftJoin(name, c.store.schemaVersion, onLeft, onRight, left, right)
		default:
			panic(ErrUnsupportedJoinPredicate.New(fmt.Sprintf("unknown join kind %v", edge.Kind)))
		}

		c.log.WithField("node", name).Debug("added join node")

		for rel, n := range nodeForRel {
			if n == left || n == right {
				nodeForRel[rel] = joinNode
			}
		}
		nodeForRel[edge.Left] = joinNode
		nodeForRel[edge.Right] = joinNode

		joins = append(joins, joinNode)
		counter++
	}

	return joins
}

// joinColumns extracts the single equi-join column pair from a join edge's
// predicate. Only one pair of join columns per edge is supported — no
// multi-level join expressions (spec §4.6).
func joinColumns(jp *ast.ConditionTree) ([]ast.Column, []ast.Column) {
	if jp.Operator != ast.OpEqual && jp.Operator != ast.OpIn {
		panic(ErrUnsupportedJoinPredicate.New("join predicate must be an equi-condition (= or IN)"))
	}
	l, ok := fieldOperand(jp.Left)
	if !ok {
		panic(ErrUnsupportedJoinPredicate.New("left side of join predicate must be a column reference"))
	}
	r, ok := fieldOperand(jp.Right)
	if !ok {
		panic(ErrUnsupportedJoinPredicate.New("right side of join predicate must be a column reference"))
	}
	return []ast.Column{l}, []ast.Column{r}
}
