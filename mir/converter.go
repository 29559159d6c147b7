package mir

import (
	"github.com/sirupsen/logrus"

	"github.com/leikang123/noria/ast"
	"github.com/leikang123/noria/querygraph"
	"github.com/leikang123/noria/security"
)

// Converter is the SQL-to-MIR lowering driver (spec §5, §6.3): the single
// long-lived instance holding the NodeStore, the active logger and the
// security policy provider, passed explicitly to every helper rather than
// relying on process-wide state. It is not safe for concurrent use from
// multiple goroutines, matching the single-threaded discipline the design
// requires (spec §5).
type Converter struct {
	store    *NodeStore
	log      *logrus.Entry
	policies security.PolicyProvider
}

// NewConverter returns a Converter at schema version 0, under the global
// universe, with no applicable security policies. Pass a PolicyProvider via
// WithPolicies if the caller's universes carry row-level security rules.
func NewConverter() *Converter {
	return &Converter{
		store:    NewNodeStore(),
		log:      newDiscardLogger(),
		policies: security.NoPolicies{},
	}
}

// WithLogger attaches log as the Converter's diagnostic sink (spec §6.3
// with_logger), grounded on the teacher's auth/audit.go NewAuditLog pattern.
func (c *Converter) WithLogger(log *logrus.Entry) *Converter {
	c.log = log
	return c
}

// WithPolicies attaches the PolicyProvider consulted by SecurityBoundary.
func (c *Converter) WithPolicies(p security.PolicyProvider) *Converter {
	c.policies = p
	return c
}

// SetUniverse sets the universe subsequent lowering happens under (spec
// §6.3 set_universe).
func (c *Converter) SetUniverse(u security.Universe) { c.store.SetUniverse(u) }

// ClearUniverse resets the Converter to the policy-free global universe
// (spec §6.3 clear_universe).
func (c *Converter) ClearUniverse() { c.store.ClearUniverse() }

// UpgradeSchema advances the store's schema version (spec §6.3
// upgrade_schema); newVersion must be strictly greater than the current one.
func (c *Converter) UpgradeSchema(newVersion uint64) { c.store.UpgradeSchema(newVersion) }

// GetLeaf returns the downstream physical address registered under name, if
// any (spec §6.3 get_leaf).
func (c *Converter) GetLeaf(name string) *uint64 { return c.store.GetLeaf(name) }

// GetFlowNodeAddress returns the downstream physical address registered at
// (name, version), if any (spec §6.3 get_flow_node_address).
func (c *Converter) GetFlowNodeAddress(name string, version uint64) *uint64 {
	return c.store.GetFlowNodeAddress(name, version)
}

// NamedBaseToMir lowers a CREATE TABLE into a Base node and registers it
// under name (spec §6.3 named_base_to_mir). sq must carry a CreateTable;
// anything else is a fatal, explicit refusal.
func (c *Converter) NamedBaseToMir(name string, sq ast.SqlQuery, transactional bool) MirQuery {
	if sq.Kind != ast.SqlQueryCreateTable || sq.CreateTable == nil {
		panic(ErrExpectedCreateTable.New())
	}
	ct := sq.CreateTable
	node := c.makeBaseNode(name, ct.Fields, ct.Keys, transactional)
	c.store.Register(name, node, c.store.SchemaVersion())
	return singletonQuery(name, node)
}

// NamedQueryToMir lowers a SELECT into a full MIR subgraph and registers its
// terminal node under name (spec §6.3 named_query_to_mir, §4.9
// SelectionLowering).
//
// universeID is the call's own (uid, parent_uid?) pair (spec §3.6 "Universe:
// (uid, parent_uid?)"), distinct from the Converter's active
// security.Universe (set via SetUniverse, consulted for policies and
// member_of). A nil universeID.ParentID means this call is the top-level
// lowering for its universe; a non-nil one means it's building a
// group-derived ancestor view for a member universe on behalf of a parent
// call. The distinction drives step 9's projection branch and is
// independent of hasLeaf.
func (c *Converter) NamedQueryToMir(name string, sq *ast.SelectStatement, qg *querygraph.QueryGraph, hasLeaf bool, universeID security.Universe) MirQuery {
	roots, terminal := c.makeNodesForSelection(name, sq, qg, hasLeaf, universeID)
	c.store.Register(name, terminal, c.store.SchemaVersion())
	return MirQuery{Name: name, Roots: roots, Leaf: terminal}
}
