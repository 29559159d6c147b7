package mir

import "github.com/leikang123/noria/ast"

// CompoundQueryToMir implements compound_query_to_mir (spec §4.11): unions
// the leaves of multiple already-lowered child queries into one query. Only
// CompoundUnion is supported; anything else is a fatal, explicit refusal.
//
// The union is named name if the compound as a whole needs neither a leaf
// nor a limit, else "{name}_union". A present limit stacks a TopK on top
// ("{name}" or "{name}_topk"); a requested leaf stacks a Leaf with empty
// keys on top of that. Each emitted node is registered once, under its own
// name; these names are distinct in every case, and since NodeStore's
// Register only inserts at a (name, version) key that is still empty, a
// repeated registration would be a no-op rather than a double-write (spec
// §9 Open Question (c)).
func (c *Converter) CompoundQueryToMir(
	name string,
	children []MirQuery,
	op ast.CompoundSelectOperator,
	hasLeaf bool,
	limit *ast.LimitClause,
	order *ast.OrderClause,
) MirQuery {
	if op != ast.CompoundUnion {
		panic(ErrUnsupportedCompoundOperator.New(op))
	}

	unionName := name
	if hasLeaf || limit != nil {
		unionName = name + "_union"
	}

	leaves := make([]*MirNode, len(children))
	var roots []*MirNode
	for i, child := range children {
		leaves[i] = child.Leaf
		roots = append(roots, child.Roots...)
	}

	tail := NewUnion(unionName, c.store.SchemaVersion(), leaves)
	c.store.Register(unionName, tail, c.store.SchemaVersion())

	if limit != nil {
		topkName := name
		if hasLeaf {
			topkName = name + "_topk"
		}
		var orderBy []ast.Column
		if order != nil {
			orderBy = order.Columns
		}
		tail = NewTopK(topkName, c.store.SchemaVersion(), tail, nil, orderBy, limit.Limit, 0)
		c.store.Register(topkName, tail, c.store.SchemaVersion())
	}

	if hasLeaf {
		leafCols := sanitizeLeafColumns(tail.Columns, name)
		tail = NewLeaf(name, c.store.SchemaVersion(), leafCols, tail, nil)
		c.store.Register(name, tail, c.store.SchemaVersion())
	}

	return MirQuery{Name: name, Roots: roots, Leaf: tail}
}
