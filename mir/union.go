package mir

import "github.com/leikang123/noria/ast"

// UnionKind is the payload of a Union node: one emit column list per
// ancestor, all the same length as the output column count (spec §3.5,
// §8 property 4).
type UnionKind struct {
	Emit [][]ast.Column
}

func (UnionKind) Tag() KindTag { return KindUnion }

// NewUnion constructs a Union over ancestors by intersecting their column
// names: only columns present (by name) in every ancestor are kept, in the
// order the first ancestor declares them, and each ancestor's emit list is
// filtered/deduped down to that same set (spec's make_union_node — used,
// e.g., for the query-graph-level reconciliation of policy clones and
// group-view ancestors, spec §4.9 step 8).
func NewUnion(name string, version uint64, ancestors []*MirNode) *MirNode {
	if len(ancestors) < 2 {
		panic(ErrTooFewUnionAncestors.New())
	}

	selected := map[string]bool{}
	for _, c := range ancestors[0].Columns {
		presentInAll := true
		for _, a := range ancestors {
			if !columnNamePresent(a.Columns, c.Name) {
				presentInAll = false
				break
			}
		}
		if presentInAll {
			selected[c.Name] = true
		}
	}

	emit := make([][]ast.Column, len(ancestors))
	for i, a := range ancestors {
		var acols []ast.Column
		seen := map[string]bool{}
		for _, c := range a.Columns {
			if selected[c.Name] && !seen[c.Name] {
				acols = append(acols, c)
				seen[c.Name] = true
			}
		}
		emit[i] = acols
	}

	return buildUnion(name, version, ancestors, emit, append([]ast.Column(nil), emit[0]...))
}

// NewUnionSameColumns constructs a Union over ancestors where every
// ancestor emits the identical columns list (spec's
// make_union_from_same_base — used when reconciling the two tails of an OR
// predicate's filter chains, which share a single parent and therefore a
// single column list, spec §4.5).
func NewUnionSameColumns(name string, version uint64, ancestors []*MirNode, columns []ast.Column) *MirNode {
	if len(ancestors) < 2 {
		panic(ErrTooFewUnionAncestors.New())
	}
	emit := make([][]ast.Column, len(ancestors))
	for i := range ancestors {
		emit[i] = append([]ast.Column(nil), columns...)
	}
	return buildUnion(name, version, ancestors, emit, append([]ast.Column(nil), columns...))
}

func buildUnion(name string, version uint64, ancestors []*MirNode, emit [][]ast.Column, outputColumns []ast.Column) *MirNode {
	for _, e := range emit {
		if len(e) != len(outputColumns) {
			panic(ErrUnionColumnMismatch.New())
		}
	}
	return newNode(name, version, outputColumns, UnionKind{Emit: emit}, ancestors)
}

func columnNamePresent(cols []ast.Column, name string) bool {
	for _, c := range cols {
		if c.Name == name {
			return true
		}
	}
	return false
}
