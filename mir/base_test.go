package mir

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leikang123/noria/ast"
)

func intCol(table, name string) ast.Column { return ast.Column{Table: table, Name: name} }

func spec(table, name string, typ ast.SQLType) ast.ColumnSpecification {
	return ast.ColumnSpecification{Column: intCol(table, name), Type: typ}
}

// S1: CREATE TABLE t (a INT PRIMARY KEY, b INT) yields one Base node with
// columns [a, b] and a single-column primary key [a].
func TestMakeBaseNode_FreshTable(t *testing.T) {
	require := require.New(t)
	c := NewConverter()

	specs := []ast.ColumnSpecification{spec("t", "a", ast.TypeInt), spec("t", "b", ast.TypeInt)}
	keys := []ast.TableKey{{Kind: ast.PrimaryKey, Columns: []ast.Column{intCol("t", "a")}}}

	node := c.makeBaseNode("t", specs, keys, false)

	require.Equal(KindBase, node.Kind.Tag())
	require.Len(node.Columns, 2)
	require.Equal("a", node.Columns[0].Name)
	require.Equal("b", node.Columns[1].Name)

	bk := node.Kind.(BaseKind)
	require.Len(bk.PrimaryKey, 1)
	require.Equal("a", bk.PrimaryKey[0].Name)
	require.Nil(bk.AdaptedOver)
}

// S2 + invariant 12: adding a column to an existing table's schema produces
// an adapted Base whose columns are the prior list with the new column
// appended, and adapted_over.added = [c], removed = [].
func TestMakeBaseNode_AdaptedAddColumn(t *testing.T) {
	require := require.New(t)
	c := NewConverter()

	v1 := []ast.ColumnSpecification{spec("t", "a", ast.TypeInt), spec("t", "b", ast.TypeInt)}
	keys := []ast.TableKey{{Kind: ast.PrimaryKey, Columns: []ast.Column{intCol("t", "a")}}}
	c.store.Register("t", c.makeBaseNode("t", v1, keys, false), c.store.SchemaVersion())

	c.UpgradeSchema(2)

	v2 := []ast.ColumnSpecification{spec("t", "a", ast.TypeInt), spec("t", "b", ast.TypeInt), spec("t", "c", ast.TypeInt)}
	adapted := c.makeBaseNode("t", v2, keys, false)

	require.Equal(KindBase, adapted.Kind.Tag())
	require.Len(adapted.Columns, 3)
	require.Equal([]string{"a", "b", "c"}, columnNames(adapted.Columns))

	bk := adapted.Kind.(BaseKind)
	require.NotNil(bk.AdaptedOver)
	require.Len(bk.AdaptedOver.Added, 1)
	require.Equal("c", bk.AdaptedOver.Added[0].Column.Name)
	require.Empty(bk.AdaptedOver.Removed)
}

// An exact-match schema reuses the existing Base via a Reuse wrapper rather
// than building a new node.
func TestMakeBaseNode_IdenticalSchemaReused(t *testing.T) {
	require := require.New(t)
	c := NewConverter()

	v1 := []ast.ColumnSpecification{spec("t", "a", ast.TypeInt)}
	first := c.makeBaseNode("t", v1, nil, false)
	c.store.Register("t", first, c.store.SchemaVersion())

	c.UpgradeSchema(2)
	second := c.makeBaseNode("t", v1, nil, false)

	require.Equal(KindReuse, second.Kind.Tag())
	rk := second.Kind.(ReuseKind)
	require.Same(first, rk.Target)
}

// A table declaring more than one PRIMARY KEY constraint is a fatal
// programmer error.
func TestMakeBaseNode_MultiplePrimaryKeysRejected(t *testing.T) {
	require := require.New(t)
	c := NewConverter()

	specs := []ast.ColumnSpecification{spec("t", "a", ast.TypeInt), spec("t", "b", ast.TypeInt)}
	keys := []ast.TableKey{
		{Kind: ast.PrimaryKey, Columns: []ast.Column{intCol("t", "a")}},
		{Kind: ast.PrimaryKey, Columns: []ast.Column{intCol("t", "b")}},
	}

	require.Panics(func() { c.makeBaseNode("t", specs, keys, false) })
}
