// Package security models the access-control context the lowering core
// rewrites queries under: universes, the groups a universe belongs to, and
// the row-level security policies that apply to it. The policy store and
// group-membership resolution are external collaborators (spec.md §1,
// §6.1); this package defines the narrow shape the core consumes.
package security

import (
	"github.com/google/uuid"
	"github.com/leikang123/noria/ast"
)

// UniverseID is a UUID type for identifying a universe (an access-control
// tenant). Universe.ID itself is a plain string; the global, policy-free
// universe is named by GlobalUniverseName.
type UniverseID = uuid.UUID

// GlobalUniverseName is the reserved id naming the policy-free universe; a
// query lowered under it gets no "_u{uid}" node-name suffix (spec §4.9).
const GlobalUniverseName = "global"

// Universe carries a policy identifier and the groups the universe is a
// member of. member_of maps a group name to the group ids within it that
// this universe belongs to (spec §3.6, §4.9 step 6).
type Universe struct {
	ID       string // "global" for the default, policy-free universe
	ParentID *string
	MemberOf map[string][]string
}

// NewGlobalUniverse returns the default, policy-free universe.
func NewGlobalUniverse() Universe {
	return Universe{ID: GlobalUniverseName, MemberOf: map[string][]string{}}
}

// IsGlobal reports whether u is the policy-free universe.
func (u Universe) IsGlobal() bool {
	return u.ID == "" || u.ID == GlobalUniverseName
}

// Policy is a single security-rewrite rule: the relation it restricts and
// the predicate filter to intersect with that relation's rows.
type Policy struct {
	Relation  string
	Predicate *ast.ConditionExpression
}

// PolicyChain is an ordered sequence of policies to apply, one after
// another, to build a single policy-clone of the query subgraph
// (spec §4.8 step 2).
type PolicyChain []Policy

// PolicyProvider resolves the policy chains applicable to a universe. A
// universe with no applicable policies yields an empty slice, in which case
// SecurityBoundary is a no-op (spec §4.8 step 1).
type PolicyProvider interface {
	PoliciesFor(u Universe) []PolicyChain
}

// NoPolicies is a PolicyProvider that never applies any security rewrite,
// suitable for the global universe or for tests exercising the
// non-universe code paths.
type NoPolicies struct{}

func (NoPolicies) PoliciesFor(Universe) []PolicyChain { return nil }
