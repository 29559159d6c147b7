package mir

import (
	"fmt"
	"strings"

	"github.com/leikang123/noria/ast"
	"github.com/leikang123/noria/querygraph"
	"github.com/leikang123/noria/security"
)

// makeNodesForSelection implements SelectionLowering (spec §4.9): the
// top-level driver stitching NodeStore, JoinPlanner, GroupPlanner,
// SecurityBoundary and PredicateBuilder into one query per SelectStatement.
// Canonical ordering: B -> J -> G-above-predicates -> Security ->
// {G, F, TopK} per policy clone -> Reconcile -> Project -> Leaf.
//
// Returns the query's roots (base reuses plus any group-derived view
// ancestors) and its single terminal node (the Leaf if hasLeaf, else the
// Project).
func (c *Converter) makeNodesForSelection(
	name string,
	sq *ast.SelectStatement,
	qg *querygraph.QueryGraph,
	hasLeaf bool,
	universeID security.Universe,
) ([]*MirNode, *MirNode) {
	u := c.store.Universe()
	uformat := ""
	if !u.IsGlobal() {
		uformat = "_u" + u.ID
	}
	namePrefix := fmt.Sprintf("q_%x%s", qg.Signature().Hash, uformat)

	nodeForRel := map[string]*MirNode{}
	var baseNodes []*MirNode

	// Step 1: sorted relations -> base reuse.
	relNames := qg.SortedRelationNames()
	for _, rel := range relNames {
		base := c.store.GetView(rel)
		nodeForRel[rel] = base
		baseNodes = append(baseNodes, base)
	}

	// Step 2: joins.
	joins := c.MakeJoins(namePrefix, qg, nodeForRel, 0)

	var prev *MirNode
	switch {
	case len(joins) > 0:
		prev = joins[len(joins)-1]
	case len(baseNodes) > 0:
		prev = baseNodes[0]
	}

	// Step 3: column -> predicates.
	columnToPredicates := map[ast.Column][]*ast.ConditionExpression{}
	for _, rel := range relNames {
		rn := qg.Relations[rel]
		for _, pred := range rn.Predicates {
			for col := range PredicateColumns(pred) {
				columnToPredicates[col] = append(columnToPredicates[col], pred)
			}
		}
	}

	// Step 4: reorder & emit predicates above group-by.
	created, _ := c.MakePredicatesAboveGrouped(namePrefix, qg, columnToPredicates, &prev)

	// Step 5: security boundary.
	lastPolicyNodes, _ := c.MakeSecurityBoundary(u, nodeForRel, prev, namePrefix)

	// Step 6: group-derived view ancestors. A universe's member_of maps a
	// group name to the ids it belongs to within that group; each (name,
	// id) pair names a derived view "{root}_{gname}{gid}" where root is
	// the query's own name with its universe suffix stripped.
	var groupAncestors []*MirNode
	if !u.IsGlobal() {
		root := strings.TrimSuffix(name, uformat)
		for gname, gids := range u.MemberOf {
			for _, gid := range gids {
				viewName := fmt.Sprintf("%s_%s%s", root, gname, gid)
				if c.store.HasView(viewName) {
					groupAncestors = append(groupAncestors, c.store.GetView(viewName))
				}
			}
		}
	}

	// Step 7: per policy-clone frontier.
	var reconcileAncestors []*MirNode
	for pi, n := range lastPolicyNodes {
		tail := n
		cloneName := fmt.Sprintf("%s_c%d", namePrefix, pi)

		c.MakeGrouped(cloneName, qg, 0, &tail)

		for _, rel := range relNames {
			rn := qg.Relations[rel]
			for pidx, pred := range rn.Predicates {
				if created[pred] {
					continue
				}
				nodes := c.MakePredicateNodes(fmt.Sprintf("%s_%s_p%d", cloneName, rel, pidx), tail, pred, 0)
				if len(nodes) > 0 {
					tail = nodes[len(nodes)-1]
				}
				created[pred] = true
			}
		}

		if sq != nil && sq.Limit != nil {
			var orderBy []ast.Column
			if sq.Order != nil {
				orderBy = sq.Order.Columns
			}
			tail = NewTopK(fmt.Sprintf("%s_topk", cloneName), c.store.SchemaVersion(), tail, qg.Parameters(), orderBy, sq.Limit.Limit, 0)
		}

		reconcileAncestors = append(reconcileAncestors, tail)
	}
	reconcileAncestors = append(reconcileAncestors, groupAncestors...)

	// Step 8: reconcile.
	var finalNode *MirNode
	if len(reconcileAncestors) > 1 {
		finalNode = NewUnion(fmt.Sprintf("%s_reconcile", namePrefix), c.store.SchemaVersion(), reconcileAncestors)
	} else {
		finalNode = reconcileAncestors[0]
	}

	// Step 9: projection. Branches on whether this call has a parent
	// universe (it's building a group-derived ancestor view on behalf of a
	// member-universe call), not on hasLeaf: a parented call always
	// projects the final node's full column list so the parent call can
	// reconcile it, regardless of whether this call itself also emits a
	// leaf (spec §3.6, §4.9 step 9; original_source's named_query_to_mir
	// branches on `universe.1.is_none()` alone).
	var projCols []ast.Column
	var arithmetic []ArithmeticProjection
	var literals []LiteralProjection

	if universeID.ParentID != nil {
		projCols = append(projCols, finalNode.Columns...)
	} else {
		for _, oc := range qg.Columns {
			switch oc.Kind {
			case querygraph.OutputData:
				projCols = append(projCols, oc.Data)
			case querygraph.OutputArithmetic:
				arithmetic = append(arithmetic, ArithmeticProjection{Name: oc.Arithmetic.Name, Expression: oc.Arithmetic.Expression})
			case querygraph.OutputLiteral:
				literals = append(literals, LiteralProjection{Name: oc.Literal.Name, Value: oc.Literal.Value})
			}
		}
	}

	params := qg.Parameters()
	for _, p := range params {
		present := false
		for _, pc := range projCols {
			if pc.Equals(p) {
				present = true
				break
			}
		}
		if !present {
			projCols = append(projCols, p)
		}
	}

	var leafKeys []ast.Column
	if hasLeaf {
		if len(params) == 0 {
			literals = append(literals, LiteralProjection{Name: "bogokey", Value: ast.NewIntegerLiteral(0)})
			leafKeys = []ast.Column{{Name: "bogokey"}}
		} else {
			leafKeys = params
		}
	}

	// Step 10: Project, then Leaf if requested. With a Leaf, the Project
	// carries the hash-derived internal name and the Leaf (the query's
	// externally visible node) carries the caller's own name; without one,
	// the Project itself carries the caller's name.
	projectName := name
	if hasLeaf {
		projectName = namePrefix + "_p"
	}
	project := NewProject(projectName, c.store.SchemaVersion(), finalNode, projCols, arithmetic, literals, ProjectOptions{IsLeaf: hasLeaf})

	terminal := project
	if hasLeaf {
		leafCols := sanitizeLeafColumns(project.Columns, name)
		keys := sanitizeLeafColumns(leafKeys, name)
		terminal = NewLeaf(name, c.store.SchemaVersion(), leafCols, project, keys)
	}

	// Step 11: roots = base reuses plus any group-view ancestors.
	roots := append([]*MirNode(nil), baseNodes...)
	roots = append(roots, groupAncestors...)

	return roots, terminal
}
