package mir

import "gopkg.in/src-d/go-errors.v1"

// Every error here is a programmer error, not a recoverable condition
// (spec §7): there is no retry and no partial success, and a failed
// lowering is expected to abort the overall compilation. Grounded on
// auth/auth.go and auth/native.go in the teacher, which define their fatal
// error kinds the same way with errors.NewKind.
var (
	// ErrUnknownView is raised when a query refers to a view/base with no
	// registered node at the current schema version.
	ErrUnknownView = errors.NewKind("query refers to unknown view %q")

	// ErrInconsistentStore is raised when `current` names a version for
	// which `nodes` holds nothing — a NodeStore bookkeeping bug.
	ErrInconsistentStore = errors.NewKind("inconsistency: view %q does not exist at v%d")

	// ErrSchemaVersionRegression is raised when UpgradeSchema is called
	// with a version that does not strictly increase the current one.
	ErrSchemaVersionRegression = errors.NewKind("schema version must increase: have v%d, requested v%d")

	// ErrUnsupportedConditionShape is raised by ConditionLowering when a
	// condition's left or right side is not one of the shapes it
	// understands (spec §4.4).
	ErrUnsupportedConditionShape = errors.NewKind("unsupported condition shape: %s")

	// ErrUnexpectedConditionNode is raised by PredicateBuilder when it
	// encounters a NegationOp or dangling Base node, both of which must
	// have been eliminated by an upstream normalization pass (spec §4.5).
	ErrUnexpectedConditionNode = errors.NewKind("unexpected condition node reached predicate builder: %s")

	// ErrUnsupportedJoinPredicate is raised when a join edge's predicate
	// is not a simple equi-condition between two field references
	// (spec §4.6).
	ErrUnsupportedJoinPredicate = errors.NewKind("unsupported join predicate shape: %s")

	// ErrCountStarNotRewritten is raised when a COUNT(*) function
	// expression reaches the group planner without having been rewritten
	// to COUNT(col) by an upstream pass (spec §4.7).
	ErrCountStarNotRewritten = errors.NewKind("COUNT(*) should have been rewritten earlier")

	// ErrUnsupportedFunction is raised for a function expression kind the
	// group planner does not know how to lower.
	ErrUnsupportedFunction = errors.NewKind("unsupported function expression: %v")

	// ErrUnsupportedCompoundOperator is raised by CompoundQueryToMir for
	// any operator other than Union (spec §4.11).
	ErrUnsupportedCompoundOperator = errors.NewKind("unsupported compound select operator: %v")

	// ErrTooFewUnionAncestors is raised when constructing a Union with
	// fewer than two ancestors (spec §3.5, §4.2).
	ErrTooFewUnionAncestors = errors.NewKind("union must have more than 1 ancestor")

	// ErrUnionColumnMismatch is raised when a Union's per-ancestor emit
	// lists are not all the same length as the output column count.
	ErrUnionColumnMismatch = errors.NewKind("all ancestors' emit columns must have the same size")

	// ErrJoinColumnMismatch is raised when a Join/LeftJoin's on_left and
	// on_right column lists differ in length.
	ErrJoinColumnMismatch = errors.NewKind("join on_left and on_right must have the same length")

	// ErrTopKOffsetUnsupported is raised when a TopK node would need a
	// non-zero offset.
	ErrTopKOffsetUnsupported = errors.NewKind("non-zero TopK offset is not supported")

	// ErrMultiColumnPrimaryKey is raised when a base table declares a
	// primary key spanning more than one column (spec §1 Non-goals).
	ErrMultiColumnPrimaryKey = errors.NewKind("multi-column primary keys are not supported")

	// ErrMultiplePrimaryKeys is raised when a base table declares more
	// than one PRIMARY KEY constraint.
	ErrMultiplePrimaryKeys = errors.NewKind("at most one PRIMARY KEY is supported, table %q declares more")

	// ErrBaseColumnTableMismatch is raised when a base column's Table
	// does not equal the base's own name.
	ErrBaseColumnTableMismatch = errors.NewKind("base %q: column %q has table %q")

	// ErrAdaptedColumnCountMismatch is raised when an adapted Base's
	// final column count doesn't equal prior + added - removed.
	ErrAdaptedColumnCountMismatch = errors.NewKind("base %q: adapted column count mismatch")

	// ErrColumnNotFound is raised when resolving a column id against a
	// node whose columns do not contain it.
	ErrColumnNotFound = errors.NewKind("column %s.%s not found on node %q")

	// ErrExpectedCreateTable is raised when named_base_to_mir is called
	// with a SqlQuery that is not a CREATE TABLE.
	ErrExpectedCreateTable = errors.NewKind("expected CREATE TABLE query")

	// ErrUnexpectedLeafCount describes a selection whose node graph does
	// not resolve to exactly one leaf (spec §3.4 invariant). No code path
	// in this package raises it.
	ErrUnexpectedLeafCount = errors.NewKind("expected exactly one leaf, got %d")
)
