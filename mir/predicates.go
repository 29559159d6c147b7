package mir

import (
	"fmt"

	"github.com/leikang123/noria/ast"
)

// makeFilterNode implements "make_filter_node": a single Filter over
// parent, lowering cond via ToConditions.
func (c *Converter) makeFilterNode(name string, parent *MirNode, cond *ast.ConditionTree) *MirNode {
	fields := append([]ast.Column(nil), parent.Columns...)
	filter := ToConditions(cond, &fields, parent)
	c.log.WithField("node", name).WithField("conditions", len(filter)).Debug("added filter node")
	return NewFilter(name, c.store.schemaVersion, fields, filter, parent)
}

// MakePredicateNodes implements PredicateBuilder (spec §4.5): turns an
// arbitrary boolean condition tree into a chain of Filter nodes, returning
// the ordered sequence built, the last of which is the chain's exit.
//
// And builds the left chain then continues the right chain from the left's
// tail. Or builds both chains from the same parent and reconciles their
// tails with a Union projecting the parent's column list. A bare comparison
// becomes a single Filter node named "{name}_f{counter}". Reaching a
// Negation or dangling Base here is a bug: both must have been eliminated
// by an upstream normalization pass.
func (c *Converter) MakePredicateNodes(name string, parent *MirNode, ce *ast.ConditionExpression, counter int) []*MirNode {
	var predNodes []*MirNode
	outputCols := append([]ast.Column(nil), parent.Columns...)

	switch ce.Kind {
	case ast.CondLogicalOp:
		ct := ce.Tree
		switch ct.Operator {
		case ast.OpAnd:
			left := c.MakePredicateNodes(name, parent, ct.Left, counter)
			right := c.MakePredicateNodes(name, left[len(left)-1], ct.Right, counter+len(left))
			predNodes = append(predNodes, left...)
			predNodes = append(predNodes, right...)
		case ast.OpOr:
			left := c.MakePredicateNodes(name, parent, ct.Left, counter)
			right := c.MakePredicateNodes(name, parent, ct.Right, counter+len(left))

			c.log.WithField("node", name).Debug("creating union node for `or` predicate")

			lastLeft := left[len(left)-1]
			lastRight := right[len(right)-1]
			union := NewUnionSameColumns(fmt.Sprintf("%s_un", name), c.store.schemaVersion, []*MirNode{lastLeft, lastRight}, outputCols)

			predNodes = append(predNodes, left...)
			predNodes = append(predNodes, right...)
			predNodes = append(predNodes, union)
		default:
			panic(ErrUnexpectedConditionNode.New(fmt.Sprintf("LogicalOp operator %v", ct.Operator)))
		}
	case ast.CondComparisonOp:
		f := c.makeFilterNode(fmt.Sprintf("%s_f%d", name, counter), parent, ce.Tree)
		predNodes = append(predNodes, f)
	case ast.CondNegationOp:
		panic(ErrUnexpectedConditionNode.New("negation should have been removed earlier"))
	case ast.CondBase:
		panic(ErrUnexpectedConditionNode.New("dangling base predicate"))
	default:
		panic(ErrUnexpectedConditionNode.New("unknown condition expression kind"))
	}

	return predNodes
}

// PredicateColumns returns the set of columns referenced anywhere in ce,
// used for the group planner's reorder analysis (spec §4.5, §4.7).
func PredicateColumns(ce *ast.ConditionExpression) map[ast.Column]bool {
	cols := map[ast.Column]bool{}
	collectPredicateColumns(ce, cols)
	return cols
}

func collectPredicateColumns(ce *ast.ConditionExpression, into map[ast.Column]bool) {
	switch ce.Kind {
	case ast.CondLogicalOp, ast.CondComparisonOp:
		collectPredicateColumns(ce.Tree.Left, into)
		collectPredicateColumns(ce.Tree.Right, into)
	case ast.CondBase:
		if ce.Base.Kind == ast.BaseField {
			into[ce.Base.Field] = true
		}
	case ast.CondNegationOp:
		panic(ErrUnexpectedConditionNode.New("negations should have been eliminated"))
	}
}
