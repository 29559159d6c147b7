package mir

import (
	"fmt"

	"github.com/leikang123/noria/security"
)

// MakeSecurityBoundary implements SecurityBoundary (spec §4.8): for each
// applicable policy chain it stacks that chain's predicate filters on top of
// prevNode, producing one tail per chain, and redirects nodeForRel for the
// policy's named relation to the policy-filtered tail so any later lookup by
// relation name sees the restricted view. The subgraph below prevNode is
// not copied: every chain's filters share it, and they filter prevNode's
// (already joined) rows rather than the named relation's base rows.
//
// If the universe has no applicable policies, this is a no-op: it returns
// prevNode as the sole frontier and adds nothing.
func (c *Converter) MakeSecurityBoundary(
	u security.Universe,
	nodeForRel map[string]*MirNode,
	prevNode *MirNode,
	namePrefix string,
) ([]*MirNode, []*MirNode) {
	chains := c.policies.PoliciesFor(u)
	if len(chains) == 0 {
		return []*MirNode{prevNode}, nil
	}

	var frontier []*MirNode
	var added []*MirNode

	for ci, chain := range chains {
		cur := prevNode
		for pi, policy := range chain {
			name := fmt.Sprintf("%s_sec%d_p%d", namePrefix, ci, pi)
			nodes := c.MakePredicateNodes(name, cur, policy.Predicate, 0)
			if len(nodes) == 0 {
				continue
			}
			cur = nodes[len(nodes)-1]
			added = append(added, nodes...)
			if _, ok := nodeForRel[policy.Relation]; ok {
				nodeForRel[policy.Relation] = cur
			}
			c.log.WithField("chain", ci).WithField("policy", pi).Debug("applied security policy filter")
		}
		frontier = append(frontier, cur)
	}

	return frontier, added
}
