package mir

import (
	"fmt"

	"github.com/leikang123/noria/ast"
)

// ToConditions translates a single-level condition tree into a vector of
// optional FilterConditions aligned to ancestor's column positions,
// appending a synthetic trailing column if the left-hand field isn't one of
// ancestor's existing columns (e.g. filtering on an aggregate's computed
// column isn't always present verbatim upstream) (spec §4.4).
//
// columns is both read and mutated: callers pass the working column list
// for the Filter node being built (typically a copy of ancestor.Columns),
// and ToConditions may append to it.
func ToConditions(ct *ast.ConditionTree, columns *[]ast.Column, ancestor *MirNode) []*FilterCondition {
	left, ok := fieldOperand(ct.Left)
	if !ok {
		panic(ErrUnsupportedConditionShape.New("left side must be a column reference"))
	}

	cond := conditionFromOperand(ct.Operator, ct.Right)

	absoluteColumnIDs := make([]int, len(*columns))
	maxID := -1
	for i, c := range *columns {
		id := ancestor.ColumnIDForColumn(c)
		absoluteColumnIDs[i] = id
		if id > maxID {
			maxID = id
		}
	}

	numColumns := len(*columns)
	if maxID+1 > numColumns {
		numColumns = maxID + 1
	}
	filters := make([]*FilterCondition, numColumns)

	pos := -1
	for i := len(*columns) - 1; i >= 0; i-- {
		if (*columns)[i].Name == left.Name {
			pos = i
			break
		}
	}

	if pos == -1 {
		*columns = append(*columns, left)
		filters = append(filters, cond)
	} else {
		filters[absoluteColumnIDs[pos]] = cond
	}

	return filters
}

func fieldOperand(ce *ast.ConditionExpression) (ast.Column, bool) {
	if ce.Kind == ast.CondBase && ce.Base.Kind == ast.BaseField {
		return ce.Base.Field, true
	}
	return ast.Column{}, false
}

func conditionFromOperand(op ast.Operator, ce *ast.ConditionExpression) *FilterCondition {
	if ce.Kind != ast.CondBase {
		panic(ErrUnsupportedConditionShape.New(fmt.Sprintf("right side kind %d", ce.Kind)))
	}
	switch ce.Base.Kind {
	case ast.BaseLiteral:
		lit := ce.Base.Literal
		switch lit.Kind {
		case ast.LiteralInteger, ast.LiteralString, ast.LiteralDecimal:
			return NewEqualityCondition(op, lit)
		default:
			panic(ErrUnsupportedConditionShape.New("unsupported literal kind in comparison"))
		}
	case ast.BaseLiteralList:
		return NewInCondition(append([]ast.Literal(nil), ce.Base.LiteralList...))
	default:
		panic(ErrUnsupportedConditionShape.New("right side must be a literal or literal list"))
	}
}
