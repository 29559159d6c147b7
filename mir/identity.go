package mir

import "github.com/leikang123/noria/ast"

// IdentityKind is a pass-through node with no payload, used by
// AddLeafBelow when a prior leaf's columns already match what the new
// reader needs (spec §4.10).
type IdentityKind struct{}

func (IdentityKind) Tag() KindTag { return KindIdentity }

// NewIdentity constructs an Identity node over parent, reusing its columns
// unchanged.
func NewIdentity(name string, version uint64, columns []ast.Column, parent *MirNode) *MirNode {
	return newNode(name, version, columns, IdentityKind{}, []*MirNode{parent})
}
