// Package mir implements the SQL-to-MIR lowering core: translation of a
// parsed SQL schema and query representation into a Materialized
// Intermediate Representation, a directed acyclic graph of relational
// operators (spec.md §1).
package mir

import (
	"fmt"
	"strings"

	"github.com/leikang123/noria/ast"
)

// KindTag is the closed, enumerable set of MIR node variants (spec §3.5).
// The set of kinds is modeled as a tagged variant rather than a class
// hierarchy (spec §9): Kind is a NodeKind interface, and operations that
// need variant-specific behavior switch on Tag().
type KindTag int

const (
	KindBase KindTag = iota
	KindIdentity
	KindFilter
	KindProject
	KindJoin
	KindLeftJoin
	KindUnion
	KindAggregation
	KindExtremum
	KindGroupConcat
	KindTopK
	KindLeaf
	KindReuse
)

func (t KindTag) String() string {
	switch t {
	case KindBase:
		return "Base"
	case KindIdentity:
		return "Identity"
	case KindFilter:
		return "Filter"
	case KindProject:
		return "Project"
	case KindJoin:
		return "Join"
	case KindLeftJoin:
		return "LeftJoin"
	case KindUnion:
		return "Union"
	case KindAggregation:
		return "Aggregation"
	case KindExtremum:
		return "Extremum"
	case KindGroupConcat:
		return "GroupConcat"
	case KindTopK:
		return "TopK"
	case KindLeaf:
		return "Leaf"
	case KindReuse:
		return "Reuse"
	default:
		return "Unknown"
	}
}

// NodeKind is the payload of a MirNode, one concrete type per KindTag.
type NodeKind interface {
	Tag() KindTag
}

// MirNode is an MIR operator node (spec §3.3).
//
// MirNode has shared ownership with interior mutability of Children,
// FlowNode and (for an adapted Base) its Columns list: descendants append
// themselves to an ancestor's Children as they're constructed, and the
// next compiler pass fills in FlowNode later. Because construction is
// single-threaded and strictly bottom-up (spec §5), a plain pointer and
// direct field mutation stand in for the reference-counted/interior-mutable
// cell the original uses — no synchronization is required, and cycles are
// structurally impossible because ancestors must already exist when a node
// is built.
type MirNode struct {
	Name      string
	Version   uint64
	Columns   []ast.Column
	Kind      NodeKind
	Ancestors []*MirNode
	Children  []*MirNode

	// FlowNode is the downstream physical address, set by the next pass.
	// nil until then.
	FlowNode *uint64
}

// newNode constructs a node, records its ancestors, and registers it as a
// child of each of them. This is the one place all NodeFactory
// constructors funnel through (spec §4.2).
func newNode(name string, version uint64, columns []ast.Column, kind NodeKind, ancestors []*MirNode) *MirNode {
	n := &MirNode{
		Name:      name,
		Version:   version,
		Columns:   append([]ast.Column(nil), columns...),
		Kind:      kind,
		Ancestors: append([]*MirNode(nil), ancestors...),
	}
	for _, a := range ancestors {
		a.Children = append(a.Children, n)
	}
	return n
}

// ColumnIDForColumn returns the position of c within n's output columns,
// comparing by (Table, Name) per Column.Equals. Panics via ErrColumnNotFound
// if absent — resolving against a node's own columns is expected to always
// succeed for well-formed input.
func (n *MirNode) ColumnIDForColumn(c ast.Column) int {
	for i, oc := range n.Columns {
		if oc.Equals(c) {
			return i
		}
	}
	panic(ErrColumnNotFound.New(c.Table, c.Name, n.Name))
}

// HasColumn reports whether c is present among n's output columns.
func (n *MirNode) HasColumn(c ast.Column) bool {
	for _, oc := range n.Columns {
		if oc.Equals(c) {
			return true
		}
	}
	return false
}

// IsRoot reports whether n has no ancestors.
func (n *MirNode) IsRoot() bool { return len(n.Ancestors) == 0 }

// IsLeaf reports whether n has no children, i.e. nothing built on top of it
// yet (the §3.4 invariant for a query's terminal node, spec §4.9 step 11).
func (n *MirNode) IsLeaf() bool { return len(n.Children) == 0 }

// String renders "name@version[Kind](col,col,...)": the node's name and
// version, its kind tag and its output column names. Grounded on the teacher's
// use of custom String()/%+v rendering throughout sql/plan's tests for
// readable assertion output.
func (n *MirNode) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s@%d[%s](", n.Name, n.Version, n.Kind.Tag())
	names := make([]string, len(n.Columns))
	for i, c := range n.Columns {
		names[i] = c.Name
	}
	b.WriteString(strings.Join(names, ","))
	b.WriteString(")")
	return b.String()
}
