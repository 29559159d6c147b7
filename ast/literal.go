package ast

import "github.com/shopspring/decimal"

// LiteralKind tags the payload carried by a Literal.
type LiteralKind int

const (
	LiteralInteger LiteralKind = iota
	LiteralString
	LiteralDecimal
	LiteralList
)

// Literal is a constant value appearing in a condition or projection.
//
// Numeric literals that need exact fixed-point precision (money-like
// columns, DECIMAL types) carry a decimal.Decimal rather than a float, the
// way the teacher's expression package represents them throughout
// sql/expression.
type Literal struct {
	Kind    LiteralKind
	Integer int64
	String  string
	Decimal decimal.Decimal
	List    []Literal
}

// NewIntegerLiteral builds an integer literal.
func NewIntegerLiteral(v int64) Literal { return Literal{Kind: LiteralInteger, Integer: v} }

// NewStringLiteral builds a string literal.
func NewStringLiteral(v string) Literal { return Literal{Kind: LiteralString, String: v} }

// NewDecimalLiteral builds a decimal literal.
func NewDecimalLiteral(v decimal.Decimal) Literal { return Literal{Kind: LiteralDecimal, Decimal: v} }

// NewListLiteral builds a literal list, used for `IN (...)` membership.
func NewListLiteral(vs []Literal) Literal { return Literal{Kind: LiteralList, List: vs} }

// Equals compares two literals structurally.
func (l Literal) Equals(o Literal) bool {
	if l.Kind != o.Kind {
		return false
	}
	switch l.Kind {
	case LiteralInteger:
		return l.Integer == o.Integer
	case LiteralString:
		return l.String == o.String
	case LiteralDecimal:
		return l.Decimal.Equal(o.Decimal)
	case LiteralList:
		if len(l.List) != len(o.List) {
			return false
		}
		for i := range l.List {
			if !l.List[i].Equals(o.List[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
