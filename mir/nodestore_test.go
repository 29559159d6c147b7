package mir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Invariant 7: register at an existing (name, version) is a no-op.
func TestNodeStore_RegisterIdempotent(t *testing.T) {
	require := require.New(t)
	s := NewNodeStore()

	first := NewBase("x", 0, nil, nil, false)
	s.Register("x", first, 0)

	second := NewBase("x", 0, nil, nil, false)
	s.Register("x", second, 0)

	require.Same(first, s.nodes[nodeKey{"x", 0}])
}

// Invariant 8: upgrade_schema(v) with v <= schema_version is rejected.
func TestNodeStore_UpgradeSchemaRejectsNonIncreasing(t *testing.T) {
	require := require.New(t)
	s := NewNodeStore()

	s.UpgradeSchema(5)
	require.Equal(uint64(5), s.SchemaVersion())

	require.Panics(func() { s.UpgradeSchema(5) })
	require.Panics(func() { s.UpgradeSchema(3) })
}

// GetView on a name with no registered node is a fatal programmer error.
func TestNodeStore_GetViewUnknown(t *testing.T) {
	require := require.New(t)
	s := NewNodeStore()
	require.Panics(func() { s.GetView("nope") })
	require.False(s.HasView("nope"))
}

// GetView wraps the latest registered node in a Reuse at the current
// schema version.
func TestNodeStore_GetViewWrapsReuse(t *testing.T) {
	require := require.New(t)
	s := NewNodeStore()

	n := NewBase("v", 0, nil, nil, false)
	s.Register("v", n, 0)

	s.UpgradeSchema(1)
	got := s.GetView("v")

	require.Equal(KindReuse, got.Kind.Tag())
	require.Equal(uint64(1), got.Version)
	rk := got.Kind.(ReuseKind)
	require.Same(n, rk.Target)
}
