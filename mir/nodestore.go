package mir

import (
	"sort"

	"github.com/leikang123/noria/ast"
	"github.com/leikang123/noria/security"
)

type nodeKey struct {
	name    string
	version uint64
}

// baseSchemaEntry is one recorded schema for a base table: the version it
// was introduced at, and its column specifications.
type baseSchemaEntry struct {
	version uint64
	columns []ast.ColumnSpecification
}

// NodeStore is the versioned registry keyed by (view_name, schema_version)
// described in spec §3.6. For every name in current[v], (name, v) must
// exist in nodes; schema_version only moves forward.
type NodeStore struct {
	baseSchemas map[string][]baseSchemaEntry
	current     map[string]uint64
	nodes       map[nodeKey]*MirNode

	schemaVersion uint64
	universe      security.Universe
}

// NewNodeStore returns an empty store at schema version 0, under the
// default global universe.
func NewNodeStore() *NodeStore {
	return &NodeStore{
		baseSchemas: map[string][]baseSchemaEntry{},
		current:     map[string]uint64{},
		nodes:       map[nodeKey]*MirNode{},
		universe:    security.NewGlobalUniverse(),
	}
}

// SchemaVersion returns the store's current schema version.
func (s *NodeStore) SchemaVersion() uint64 { return s.schemaVersion }

// Universe returns the store's active universe.
func (s *NodeStore) Universe() security.Universe { return s.universe }

// SetUniverse sets the universe in which subsequent lowering happens.
func (s *NodeStore) SetUniverse(u security.Universe) { s.universe = u }

// ClearUniverse resets the store to the policy-free global universe.
func (s *NodeStore) ClearUniverse() { s.universe = security.NewGlobalUniverse() }

// GetView returns a Reuse wrapper over the latest registered node with the
// given name at the current schema version. Fatals via ErrUnknownView or
// ErrInconsistentStore if the bookkeeping is broken (spec §4.1).
func (s *NodeStore) GetView(name string) *MirNode {
	v, ok := s.current[name]
	if !ok {
		panic(ErrUnknownView.New(name))
	}
	existing, ok := s.nodes[nodeKey{name, v}]
	if !ok {
		panic(ErrInconsistentStore.New(name, v))
	}
	return NewReuse(existing, s.schemaVersion)
}

// HasView reports whether name is currently registered, without panicking.
func (s *NodeStore) HasView(name string) bool {
	_, ok := s.current[name]
	return ok
}

// Register inserts n into the store keyed by (name, version) if absent, and
// sets current[name] to version. Re-registering at
// an already-populated (name, version) key is a no-op (spec §4.1, §8
// property 7).
func (s *NodeStore) Register(name string, n *MirNode, version uint64) {
	key := nodeKey{name, version}
	if _, exists := s.nodes[key]; !exists {
		s.nodes[key] = n
	}
	s.current[name] = version
}

// UpgradeSchema advances the store's schema version. newVersion must be
// strictly greater than the current one (spec §3.6 invariant, §8 property
// 8).
func (s *NodeStore) UpgradeSchema(newVersion uint64) {
	if newVersion <= s.schemaVersion {
		panic(ErrSchemaVersionRegression.New(s.schemaVersion, newVersion))
	}
	s.schemaVersion = newVersion
}

// GetLeaf returns the downstream physical address of the latest node
// registered under name, or nil if none has been set yet.
func (s *NodeStore) GetLeaf(name string) *uint64 {
	v, ok := s.current[name]
	if !ok {
		return nil
	}
	return s.GetFlowNodeAddress(name, v)
}

// GetFlowNodeAddress returns the downstream physical address of the node
// registered as (name, version), or nil if none has been set.
func (s *NodeStore) GetFlowNodeAddress(name string, version uint64) *uint64 {
	n, ok := s.nodes[nodeKey{name, version}]
	if !ok {
		return nil
	}
	return n.FlowNode
}

// recordBaseSchema appends (version, cols) to base_schemas[name] (spec §4.3
// step 4).
func (s *NodeStore) recordBaseSchema(name string, version uint64, cols []ast.ColumnSpecification) {
	s.baseSchemas[name] = append(s.baseSchemas[name], baseSchemaEntry{version: version, columns: cols})
}

// schemasNewestFirst returns name's recorded schemas sorted by version,
// newest first, as BaseSchemaAdapter's exact-match scan requires (spec
// §4.3 step 1).
func (s *NodeStore) schemasNewestFirst(name string) []baseSchemaEntry {
	entries := append([]baseSchemaEntry(nil), s.baseSchemas[name]...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].version > entries[j].version })
	return entries
}
