package mir

import "github.com/leikang123/noria/ast"

// FilterConditionKind tags the comparison shape a FilterCondition applies
// to one column.
type FilterConditionKind int

const (
	// FilterEquality compares a column against a single scalar literal
	// with the given operator (=, !=, <, etc).
	FilterEquality FilterConditionKind = iota
	// FilterIn tests set membership against a list of literals.
	FilterIn
)

// FilterCondition is the per-column predicate a Filter node applies. A nil
// *FilterCondition at a given column position means "no condition on this
// column".
type FilterCondition struct {
	Kind     FilterConditionKind
	Operator ast.Operator
	Value    ast.Literal   // set for FilterEquality
	Values   []ast.Literal // set for FilterIn
}

// NewEqualityCondition builds an equality/comparison FilterCondition.
func NewEqualityCondition(op ast.Operator, v ast.Literal) *FilterCondition {
	return &FilterCondition{Kind: FilterEquality, Operator: op, Value: v}
}

// NewInCondition builds a membership FilterCondition.
func NewInCondition(values []ast.Literal) *FilterCondition {
	return &FilterCondition{Kind: FilterIn, Values: values}
}

// FilterKind is the payload of a Filter node: a per-column vector of
// optional conditions, aligned to the ancestor's column positions (and
// possibly extended by one, spec §3.5).
type FilterKind struct {
	Conditions []*FilterCondition
}

func (FilterKind) Tag() KindTag { return KindFilter }

// NewFilter constructs a Filter node over parent with the given per-column
// conditions and output columns (conditions and columns may be longer than
// parent.Columns by exactly one, when ConditionLowering appends a
// synthetic column — spec §4.4).
func NewFilter(name string, version uint64, columns []ast.Column, conditions []*FilterCondition, parent *MirNode) *MirNode {
	return newNode(name, version, columns, FilterKind{
		Conditions: append([]*FilterCondition(nil), conditions...),
	}, []*MirNode{parent})
}
