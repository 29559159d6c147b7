package mir

import "github.com/leikang123/noria/ast"

// JoinKind is the payload shared by Join and LeftJoin nodes: the aligned
// join-key column lists and the concatenated projection (spec §3.5).
type JoinKind struct {
	OnLeft  []ast.Column
	OnRight []ast.Column
	Project []ast.Column
	left    bool // true for a LeftJoin
}

func (j JoinKind) Tag() KindTag {
	if j.left {
		return KindLeftJoin
	}
	return KindJoin
}

// NewJoin constructs an inner Join node. len(onLeft) must equal
// len(onRight) (spec §3.5, §8 property 5).
func NewJoin(name string, version uint64, onLeft, onRight []ast.Column, left, right *MirNode) *MirNode {
	return newJoin(name, version, onLeft, onRight, left, right, false)
}

// NewLeftJoin constructs a LeftJoin node. len(onLeft) must equal
// len(onRight).
func NewLeftJoin(name string, version uint64, onLeft, onRight []ast.Column, left, right *MirNode) *MirNode {
	return newJoin(name, version, onLeft, onRight, left, right, true)
}

func newJoin(name string, version uint64, onLeft, onRight []ast.Column, left, right *MirNode, isLeft bool) *MirNode {
	if len(onLeft) != len(onRight) {
		panic(ErrJoinColumnMismatch.New())
	}
	project := make([]ast.Column, 0, len(left.Columns)+len(right.Columns))
	project = append(project, left.Columns...)
	project = append(project, right.Columns...)

	return newNode(name, version, project, JoinKind{
		OnLeft:  append([]ast.Column(nil), onLeft...),
		OnRight: append([]ast.Column(nil), onRight...),
		Project: project,
		left:    isLeft,
	}, []*MirNode{left, right})
}
