package mir

import "github.com/leikang123/noria/ast"

// AdaptedOver records that a Base node was produced by adapting a prior
// version's schema in place rather than building fresh (spec §3.5, §4.3).
type AdaptedOver struct {
	Prior   *MirNode
	Added   []ast.ColumnSpecification
	Removed []ast.ColumnSpecification
}

// BaseKind is the payload of a Base node: a persistent table.
type BaseKind struct {
	ColumnSpecs []ast.ColumnSpecification
	// PrimaryKey holds at most one column, per the design's "no
	// multi-column primary key" non-goal (spec §1). Empty if the table
	// declares no primary key.
	PrimaryKey    []ast.Column
	Transactional bool
	AdaptedOver   *AdaptedOver
}

func (BaseKind) Tag() KindTag { return KindBase }

// NewBase constructs a fresh Base node. Callers needing schema-version
// reuse or in-place adaptation should go through BaseSchemaAdapter
// ((*Converter).makeBaseNode) instead of calling this directly (spec §4.3).
func NewBase(name string, version uint64, specs []ast.ColumnSpecification, primaryKey []ast.Column, transactional bool) *MirNode {
	if len(primaryKey) > 1 {
		panic(ErrMultiColumnPrimaryKey.New())
	}
	cols := make([]ast.Column, len(specs))
	for i, cs := range specs {
		cols[i] = cs.Column
	}
	return newNode(name, version, cols, BaseKind{
		ColumnSpecs:   append([]ast.ColumnSpecification(nil), specs...),
		PrimaryKey:    append([]ast.Column(nil), primaryKey...),
		Transactional: transactional,
	}, nil)
}

// newAdaptedBase constructs a Base node that extends a prior version's
// column list by Added and Removed, recording the lineage via AdaptedOver
// (spec §4.3 step 1).
func newAdaptedBase(name string, version uint64, columns []ast.Column, specs []ast.ColumnSpecification, prior *MirNode, added, removed []ast.ColumnSpecification, transactional bool) *MirNode {
	priorBase := prior.Kind.(BaseKind)
	n := newNode(name, version, columns, BaseKind{
		ColumnSpecs:   specs,
		PrimaryKey:    priorBase.PrimaryKey,
		Transactional: transactional,
		AdaptedOver: &AdaptedOver{
			Prior:   prior,
			Added:   added,
			Removed: removed,
		},
	}, nil)
	return n
}
