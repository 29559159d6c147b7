package ast

// TableKeyKind tags the kind of key constraint declared on a CREATE TABLE.
type TableKeyKind int

const (
	PrimaryKey TableKeyKind = iota
	UniqueKey
	Key
)

// TableKey is a key constraint from a CREATE TABLE statement. The core only
// ever looks at PrimaryKey entries (spec §4.3 step 3); other kinds are
// ignored, and more than one PrimaryKey is a fatal programmer error (the
// design explicitly does not support multi-column primary keys beyond a
// single PrimaryKey declaration, spec §1 Non-goals).
type TableKey struct {
	Kind    TableKeyKind
	Columns []Column
}

// CreateTable is the subset of a CREATE TABLE statement the core needs.
type CreateTable struct {
	TableName string
	Fields    []ColumnSpecification
	Keys      []TableKey
}

// OrderClause is a SELECT's ORDER BY clause.
type OrderClause struct {
	Columns []Column
}

// LimitClause is a SELECT's LIMIT clause. Offset must be 0; non-zero
// offsets are not supported (spec §3.5, TopK invariant).
type LimitClause struct {
	Limit  uint64
	Offset uint64
}

// ArithmeticExpression is a computed projection expression, e.g. `a + b`.
// The core treats it opaquely: it is threaded through to the emitted
// Project node's arithmetic list unevaluated.
type ArithmeticExpression struct {
	Left     Column
	Operator Operator
	Right    Column
}

// SelectStatement is the subset of a parsed SELECT the core consumes:
// its ORDER BY and LIMIT clauses. Relation and predicate information has
// already been distilled into a QueryGraph by the prior query-graph pass
// (out of scope here, spec §1).
type SelectStatement struct {
	Order *OrderClause
	Limit *LimitClause
}

// CompoundSelectOperator is the set operator joining compound SELECTs. Only
// Union is supported by compound_query_to_mir (spec §4.11); anything else is
// a fatal, explicit refusal.
type CompoundSelectOperator int

const (
	CompoundUnion CompoundSelectOperator = iota
	CompoundIntersect
	CompoundExcept
)

// SqlQueryKind tags which statement shape a SqlQuery carries.
type SqlQueryKind int

const (
	SqlQueryCreateTable SqlQueryKind = iota
	SqlQuerySelect
)

// SqlQuery is the narrow parser-output union the core's base-table lowering
// entry point (named_base_to_mir) consumes: today only CreateTable is
// accepted; any other shape is a fatal "expected CREATE TABLE query"
// programmer error (spec §6.3, §7).
type SqlQuery struct {
	Kind        SqlQueryKind
	CreateTable *CreateTable
}
