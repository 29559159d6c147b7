package ast

// Operator is a comparison or logical operator appearing in a condition
// tree or join predicate.
type Operator int

const (
	OpEqual Operator = iota
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpIn
	OpAnd
	OpOr
)

// ConditionExprKind tags the shape of a ConditionExpression node.
type ConditionExprKind int

const (
	CondLogicalOp ConditionExprKind = iota
	CondComparisonOp
	CondBase
	CondNegationOp
)

// ConditionTree is a binary operator node: `Left <Operator> Right`. It is
// shared by both LogicalOp (And/Or) and ComparisonOp nodes, distinguished by
// the Operator value and by which ConditionExpression variant wraps it.
type ConditionTree struct {
	Operator Operator
	Left     *ConditionExpression
	Right    *ConditionExpression
}

// ConditionBaseKind tags the leaf shape of a condition's operand.
type ConditionBaseKind int

const (
	BaseField ConditionBaseKind = iota
	BaseLiteral
	BaseLiteralList
)

// ConditionBase is a leaf operand: a column reference or a literal.
type ConditionBase struct {
	Kind       ConditionBaseKind
	Field      Column
	Literal    Literal
	LiteralList []Literal
}

// ConditionExpression is the parser's boolean condition tree. Only one
// level of nesting is supported directly by the core's condition lowering
// (ConditionLowering, spec §4.4); compound boolean structure (And/Or) is
// handled a level up by the predicate builder (spec §4.5).
type ConditionExpression struct {
	Kind ConditionExprKind
	Tree *ConditionTree        // set for CondLogicalOp, CondComparisonOp
	Base *ConditionBase        // set for CondBase
	Neg  *ConditionExpression  // set for CondNegationOp
}

// NewLogicalOp builds an And/Or node.
func NewLogicalOp(op Operator, left, right *ConditionExpression) *ConditionExpression {
	return &ConditionExpression{Kind: CondLogicalOp, Tree: &ConditionTree{Operator: op, Left: left, Right: right}}
}

// NewComparisonOp builds a comparison leaf (field <op> literal/list).
func NewComparisonOp(op Operator, left, right *ConditionExpression) *ConditionExpression {
	return &ConditionExpression{Kind: CondComparisonOp, Tree: &ConditionTree{Operator: op, Left: left, Right: right}}
}

// NewFieldExpr wraps a column reference as a condition operand.
func NewFieldExpr(c Column) *ConditionExpression {
	return &ConditionExpression{Kind: CondBase, Base: &ConditionBase{Kind: BaseField, Field: c}}
}

// NewLiteralExpr wraps a scalar literal as a condition operand.
func NewLiteralExpr(l Literal) *ConditionExpression {
	return &ConditionExpression{Kind: CondBase, Base: &ConditionBase{Kind: BaseLiteral, Literal: l}}
}

// NewLiteralListExpr wraps a literal list (`IN (...)`) as a condition operand.
func NewLiteralListExpr(ls []Literal) *ConditionExpression {
	return &ConditionExpression{Kind: CondBase, Base: &ConditionBase{Kind: BaseLiteralList, LiteralList: ls}}
}

// NewNegationOp wraps a negated condition. The core never expects to see
// these: negation is eliminated by an upstream normalization pass, and
// reaching one in PredicateBuilder or ConditionLowering is a bug (spec §4.5,
// §7).
func NewNegationOp(inner *ConditionExpression) *ConditionExpression {
	return &ConditionExpression{Kind: CondNegationOp, Neg: inner}
}
