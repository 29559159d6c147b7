// Package querygraph models the output of the prior query-graph pass: a
// grouping of a SELECT's relations, predicates and output columns. The pass
// itself (turning a parsed SelectStatement into this shape) is an external
// collaborator out of scope for the lowering core (spec.md §1); this package
// only defines the shape the core reads.
package querygraph

import (
	"sort"

	"github.com/leikang123/noria/ast"
)

// OutputColumnKind tags which projection shape an OutputColumn carries.
type OutputColumnKind int

const (
	OutputData OutputColumnKind = iota
	OutputArithmetic
	OutputLiteral
)

// ArithmeticColumn names a computed projection expression.
type ArithmeticColumn struct {
	Name       string
	Expression ast.ArithmeticExpression
}

// LiteralColumn names a constant projection value.
type LiteralColumn struct {
	Name  string
	Value ast.Literal
}

// OutputColumn is one column a SELECT projects: a plain column reference, an
// arithmetic expression, or a literal constant.
type OutputColumn struct {
	Kind       OutputColumnKind
	Data       ast.Column
	Arithmetic ArithmeticColumn
	Literal    LiteralColumn
}

// NewDataColumn builds a Data output column.
func NewDataColumn(c ast.Column) OutputColumn { return OutputColumn{Kind: OutputData, Data: c} }

// NewArithmeticColumn builds an Arithmetic output column.
func NewArithmeticColumn(name string, expr ast.ArithmeticExpression) OutputColumn {
	return OutputColumn{Kind: OutputArithmetic, Arithmetic: ArithmeticColumn{Name: name, Expression: expr}}
}

// NewLiteralColumn builds a Literal output column.
func NewLiteralColumn(name string, v ast.Literal) OutputColumn {
	return OutputColumn{Kind: OutputLiteral, Literal: LiteralColumn{Name: name, Value: v}}
}

// RelationNode is one relation (base table or derived view) participating
// in a query graph: the predicates that apply to it, and the columns it
// contributes.
type RelationNode struct {
	Predicates []*ast.ConditionExpression
	Columns    []ast.Column
}

// Edge is a join edge between two relations in the query graph, carrying
// the join predicate and join kind.
type Edge struct {
	Left, Right string
	Predicate   *ast.ConditionTree
	Kind        JoinKind
}

// JoinKind distinguishes inner from left-outer joins.
type JoinKind int

const (
	JoinInner JoinKind = iota
	JoinLeft
)

// QueryGraph is a grouping of a SELECT's relations by relation name, plus
// the join edges between them and the projected output columns.
//
// "computed_columns" is a synthetic relation name reserved for
// function/arithmetic projections that aren't tied to a single base
// relation; the lowering core skips it when iterating real relations
// (spec §4.9 step 1).
type QueryGraph struct {
	Relations map[string]*RelationNode
	Edges     []Edge
	Columns   []OutputColumn
	Params    []ast.Column

	// GroupBy holds the SELECT's GROUP BY columns, if any. The group
	// planner emits each computed column's output as GroupBy followed by
	// the computed column itself (spec §4.7).
	GroupBy []ast.Column

	// Computed holds the output columns that carry an aggregate/scalar
	// function (spec §4.7's "for each computed column").
	Computed []ast.Column

	sig *Signature
}

const ComputedColumnsRelation = "computed_columns"

// SortedRelationNames returns relation names in deterministic (lexical)
// order, skipping the synthetic computed_columns relation. Iteration order
// over relations must be deterministic so generated node names are stable
// across runs (spec §5, §9).
func (qg *QueryGraph) SortedRelationNames() []string {
	names := make([]string, 0, len(qg.Relations))
	for name := range qg.Relations {
		if name == ComputedColumnsRelation {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parameters returns the query's parameter columns (columns a downstream
// reader must supply values for, e.g. from a WHERE equality against a
// bind variable). Order is significant: it determines a Leaf's key order.
func (qg *QueryGraph) Parameters() []ast.Column {
	return qg.Params
}

// Signature returns (computing and caching, if necessary) the query graph's
// stable structural signature, used to name reusable subgraphs.
func (qg *QueryGraph) Signature() Signature {
	if qg.sig == nil {
		s := computeSignature(qg)
		qg.sig = &s
	}
	return *qg.sig
}
