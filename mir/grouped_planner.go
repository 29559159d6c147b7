package mir

import (
	"fmt"

	"github.com/leikang123/noria/ast"
	"github.com/leikang123/noria/querygraph"
)

// MakePredicatesAboveGrouped implements the reorder half of GroupPlanner
// (spec §4.7 step 1): for every column any aggregate's over-column refers
// to, any predicate trees that mention that column are materialized as
// filter chains *before* the aggregate is built, and recorded in the
// returned created set so the main predicate pass (run later, over the
// whole query) skips them.
func (c *Converter) MakePredicatesAboveGrouped(
	namePrefix string,
	qg *querygraph.QueryGraph,
	columnToPredicates map[ast.Column][]*ast.ConditionExpression,
	prevNode **MirNode,
) (map[*ast.ConditionExpression]bool, []*MirNode) {
	created := map[*ast.ConditionExpression]bool{}
	var all []*MirNode
	seenOverCols := map[ast.Column]bool{}

	for _, col := range qg.Computed {
		if col.Function == nil {
			continue
		}
		over := col.Function.Over
		if seenOverCols[over] {
			continue
		}
		seenOverCols[over] = true

		nodes := c.predicatesAboveGroupBy(namePrefix, columnToPredicates, over, *prevNode, created)
		if len(nodes) > 0 {
			*prevNode = nodes[len(nodes)-1]
			all = append(all, nodes...)
		}
	}

	return created, all
}

func (c *Converter) predicatesAboveGroupBy(
	namePrefix string,
	columnToPredicates map[ast.Column][]*ast.ConditionExpression,
	overCol ast.Column,
	parent *MirNode,
	created map[*ast.ConditionExpression]bool,
) []*MirNode {
	var nodes []*MirNode
	prev := parent

	for _, ce := range columnToPredicates[overCol] {
		if created[ce] {
			continue
		}
		mpns := c.MakePredicateNodes(fmt.Sprintf("%s_mp%d", namePrefix, len(nodes)), prev, ce, 0)
		if len(mpns) == 0 {
			panic(ErrUnexpectedConditionNode.New("predicate reorder produced no nodes"))
		}
		prev = mpns[len(mpns)-1]
		nodes = append(nodes, mpns...)
		created[ce] = true
	}

	return nodes
}

// MakeGrouped implements the emission half of GroupPlanner (spec §4.7 step
// 2): for each computed (aggregate) output column, emit the matching
// Aggregation/Extremum/GroupConcat node, stacking each one on top of the
// last so a query with more than one aggregate chains them in order.
func (c *Converter) MakeGrouped(namePrefix string, qg *querygraph.QueryGraph, startCounter int, prevNode **MirNode) []*MirNode {
	var nodes []*MirNode
	counter := startCounter
	parent := *prevNode

	for _, col := range qg.Computed {
		if col.Function == nil {
			continue
		}
		name := fmt.Sprintf("%s_n%d", namePrefix, counter)
		node := c.makeFunctionNode(name, col, qg.GroupBy, parent)
		nodes = append(nodes, node)
		parent = node
		counter++
	}

	*prevNode = parent
	return nodes
}

func (c *Converter) makeFunctionNode(name string, funcCol ast.Column, groupBy []ast.Column, parent *MirNode) *MirNode {
	fn := funcCol.Function
	switch fn.Kind {
	case ast.FuncSum:
		return NewAggregation(name, c.store.schemaVersion, parent, funcCol, fn.Over, groupBy, AggSum)
	case ast.FuncCount:
		return NewAggregation(name, c.store.schemaVersion, parent, funcCol, fn.Over, groupBy, AggCount)
	case ast.FuncCountStar:
		// COUNT(*) must have been rewritten to COUNT(col) by an upstream
		// pass; this isn't entirely faithful to COUNT(*) semantics
		// (it's supposed to count rows with NULLs too), but there's no
		// mechanism here to do that, and reaching this branch at all is
		// a bug in the upstream rewrite.
		panic(ErrCountStarNotRewritten.New())
	case ast.FuncMax:
		return NewExtremum(name, c.store.schemaVersion, parent, funcCol, fn.Over, groupBy, ExtMax)
	case ast.FuncMin:
		return NewExtremum(name, c.store.schemaVersion, parent, funcCol, fn.Over, groupBy, ExtMin)
	case ast.FuncGroupConcat:
		return NewGroupConcat(name, c.store.schemaVersion, parent, funcCol, fn.Over, groupBy, fn.Separator)
	default:
		panic(ErrUnsupportedFunction.New(fn.Kind))
	}
}
