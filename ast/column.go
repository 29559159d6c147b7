// Package ast defines the parser-produced types the lowering core consumes.
//
// These types stand in for the SQL parser's AST (table definitions, select
// statements, condition trees) named as an external collaborator in the
// specification: the core never constructs a parser, it only reads these
// shapes.
package ast

// Column is a reference to a column, optionally qualified by table, aliased,
// or computed by a scalar/aggregate function.
//
// Two columns compare equal on (Table, Name); Alias is cosmetic and ignored
// by Equals.
type Column struct {
	Name     string
	Table    string // empty if unqualified
	Alias    string // empty if none
	Function *FunctionExpression
}

// Equals compares two columns on (Table, Name) only.
func (c Column) Equals(o Column) bool {
	return c.Table == o.Table && c.Name == o.Name
}

// HasTable reports whether the column is table-qualified.
func (c Column) HasTable() bool {
	return c.Table != ""
}

// HasAlias reports whether the column carries a display alias.
func (c Column) HasAlias() bool {
	return c.Alias != ""
}

// SQLType is a minimal stand-in for a parsed SQL column type.
type SQLType int

const (
	TypeInt SQLType = iota
	TypeBigInt
	TypeVarchar
	TypeText
	TypeDecimal
	TypeBool
	TypeTimestamp
)

// ColumnSpecification is a column declaration: the column reference plus its
// SQL type and constraint flags.
type ColumnSpecification struct {
	Column     Column
	Type       SQLType
	NotNull    bool
	Default    *Literal
	AutoInc    bool
}

// Equals compares two column specifications structurally; used by the base
// schema adapter's exact-match check.
func (cs ColumnSpecification) Equals(o ColumnSpecification) bool {
	if !cs.Column.Equals(o.Column) || cs.Type != o.Type || cs.NotNull != o.NotNull || cs.AutoInc != o.AutoInc {
		return false
	}
	if (cs.Default == nil) != (o.Default == nil) {
		return false
	}
	if cs.Default != nil && !cs.Default.Equals(*o.Default) {
		return false
	}
	return true
}

// ColumnSpecsEqual compares two column specification lists for exact
// (order-sensitive) equality, as used by the base schema adapter's
// newest-first exact-match scan.
func ColumnSpecsEqual(a, b []ColumnSpecification) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

// ColumnSpecsContain reports whether cs is present (by Equals) in specs.
func ColumnSpecsContain(specs []ColumnSpecification, cs ColumnSpecification) bool {
	for _, s := range specs {
		if s.Equals(cs) {
			return true
		}
	}
	return false
}
