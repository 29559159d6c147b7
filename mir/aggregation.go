package mir

import "github.com/leikang123/noria/ast"

// AggregationFn is the set of supported running-aggregate kinds.
type AggregationFn int

const (
	AggSum AggregationFn = iota
	AggCount
)

// ExtremumFn is the set of supported extremum kinds.
type ExtremumFn int

const (
	ExtMax ExtremumFn = iota
	ExtMin
)

// AggregationKind is the payload of an Aggregation node (SUM/COUNT).
type AggregationKind struct {
	Over    ast.Column
	GroupBy []ast.Column
	Fn      AggregationFn
}

func (AggregationKind) Tag() KindTag { return KindAggregation }

// ExtremumKind is the payload of an Extremum node (MAX/MIN).
type ExtremumKind struct {
	Over    ast.Column
	GroupBy []ast.Column
	Fn      ExtremumFn
}

func (ExtremumKind) Tag() KindTag { return KindExtremum }

// GroupConcatKind is the payload of a GroupConcat node. Unlike Aggregation
// and Extremum, the group-by columns are not part of the node's payload
// (spec §3.5) even though they still determine its output column list.
type GroupConcatKind struct {
	Over      ast.Column
	Separator string
}

func (GroupConcatKind) Tag() KindTag { return KindGroupConcat }

// groupedOutputColumns builds a grouped node's output columns: the group-by
// columns followed by the computed column, renaming the computed column
// from its alias if it has one (alias promoted to name, spec §4.7).
func groupedOutputColumns(groupBy []ast.Column, computed ast.Column) (ast.Column, []ast.Column) {
	if computed.HasAlias() {
		computed = ast.Column{Name: computed.Alias, Function: computed.Function}
	}
	cols := make([]ast.Column, 0, len(groupBy)+1)
	cols = append(cols, groupBy...)
	cols = append(cols, computed)
	return computed, cols
}

// NewAggregation constructs a SUM/COUNT node over parent.
func NewAggregation(name string, version uint64, parent *MirNode, computed ast.Column, over ast.Column, groupBy []ast.Column, fn AggregationFn) *MirNode {
	_, cols := groupedOutputColumns(groupBy, computed)
	return newNode(name, version, cols, AggregationKind{
		Over:    over,
		GroupBy: append([]ast.Column(nil), groupBy...),
		Fn:      fn,
	}, []*MirNode{parent})
}

// NewExtremum constructs a MAX/MIN node over parent.
func NewExtremum(name string, version uint64, parent *MirNode, computed ast.Column, over ast.Column, groupBy []ast.Column, fn ExtremumFn) *MirNode {
	_, cols := groupedOutputColumns(groupBy, computed)
	return newNode(name, version, cols, ExtremumKind{
		Over:    over,
		GroupBy: append([]ast.Column(nil), groupBy...),
		Fn:      fn,
	}, []*MirNode{parent})
}

// NewGroupConcat constructs a GROUP_CONCAT node over parent.
func NewGroupConcat(name string, version uint64, parent *MirNode, computed ast.Column, over ast.Column, groupBy []ast.Column, separator string) *MirNode {
	_, cols := groupedOutputColumns(groupBy, computed)
	return newNode(name, version, cols, GroupConcatKind{
		Over:      over,
		Separator: separator,
	}, []*MirNode{parent})
}
