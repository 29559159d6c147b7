package mir

import "github.com/leikang123/noria/ast"

// AddLeafBelow implements add_leaf_below (spec §4.10): attaches a new
// incremental reader to a prior leaf, keyed on params.
//
// If projectColumns is non-nil, an intermediate "{name}_reproject" Project
// is emitted with columns = projectColumns ++ params; otherwise an
// "{name}_id" Identity reusing the parent's columns stands in. A Leaf named
// name is emitted on top, keyed on params, with output columns sanitized
// via sanitizeLeafColumn.
func (c *Converter) AddLeafBelow(name string, priorLeaf string, params []ast.Column, projectColumns []ast.Column) MirQuery {
	parent := c.store.GetView(priorLeaf)

	var mid *MirNode
	if projectColumns != nil {
		cols := make([]ast.Column, 0, len(projectColumns)+len(params))
		cols = append(cols, projectColumns...)
		cols = append(cols, params...)
		mid = NewProject(name+"_reproject", c.store.SchemaVersion(), parent, cols, nil, nil, ProjectOptions{})
	} else {
		mid = NewIdentity(name+"_id", c.store.SchemaVersion(), parent.Columns, parent)
	}

	leafCols := sanitizeLeafColumns(mid.Columns, name)
	keys := sanitizeLeafColumns(params, name)
	leaf := NewLeaf(name, c.store.SchemaVersion(), leafCols, mid, keys)

	c.store.Register(name, leaf, c.store.SchemaVersion())

	return MirQuery{Name: name, Roots: []*MirNode{parent}, Leaf: leaf}
}
