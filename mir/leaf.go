package mir

import "github.com/leikang123/noria/ast"

// LeafKind is the payload of a Leaf node: the single outward-facing reader
// of a query, keyed on its parameter columns.
type LeafKind struct {
	Node *MirNode
	Keys []ast.Column
}

func (LeafKind) Tag() KindTag { return KindLeaf }

// NewLeaf constructs a Leaf node over parent, keyed on keys. columns is the
// leaf's externally-visible column list, which callers are expected to have
// already run through sanitizeLeafColumn(s).
func NewLeaf(name string, version uint64, columns []ast.Column, parent *MirNode, keys []ast.Column) *MirNode {
	return newNode(name, version, columns, LeafKind{
		Node: parent,
		Keys: append([]ast.Column(nil), keys...),
	}, []*MirNode{parent})
}
