package mir

import "github.com/leikang123/noria/ast"

// TopKKind is the payload of a TopK node. Offset is always 0 (spec §3.5,
// §8 property 6); non-zero offsets are not supported.
type TopKKind struct {
	OrderBy []ast.Column // nil if the query had no ORDER BY
	GroupBy []ast.Column
	K       uint64
	Offset  uint64
}

func (TopKKind) Tag() KindTag { return KindTopK }

// NewTopK constructs a TopK node over parent. offset must be 0.
func NewTopK(name string, version uint64, parent *MirNode, groupBy []ast.Column, orderBy []ast.Column, k, offset uint64) *MirNode {
	if offset != 0 {
		panic(ErrTopKOffsetUnsupported.New())
	}
	return newNode(name, version, append([]ast.Column(nil), parent.Columns...), TopKKind{
		OrderBy: orderBy,
		GroupBy: append([]ast.Column(nil), groupBy...),
		K:       k,
		Offset:  0,
	}, []*MirNode{parent})
}
