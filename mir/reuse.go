package mir

import "github.com/leikang123/noria/ast"

// ReuseKind wraps a previously built node, letting a query reference it
// without copying the subgraph (spec §9 "Reuse as a first-class variant").
// Downstream passes are expected to see through Reuse while preserving the
// target's identity.
type ReuseKind struct {
	Target *MirNode
}

func (ReuseKind) Tag() KindTag { return KindReuse }

// NewReuse wraps target in a Reuse node at the given schema version. The
// wrapper has the same columns as its target and no ancestors of its own —
// it is a sibling reference, not a descendant (matching the original's
// `MirNode::reuse`, which does not register the wrapper as the target's
// child).
func NewReuse(target *MirNode, version uint64) *MirNode {
	return &MirNode{
		Name:    target.Name,
		Version: version,
		Columns: append([]ast.Column(nil), target.Columns...),
		Kind:    ReuseKind{Target: target},
	}
}
