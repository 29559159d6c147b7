package querygraph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Signature is a stable structural identifier for a query graph's shape,
// used to name the reusable MIR subgraph the lowering core emits for a
// query (spec §4.9: `q_{hex_hash}{uformat}`).
//
// The signature/hash pass is formally an external collaborator (spec.md
// §1); this implementation exists so the module is runnable end to end, but
// the lowering core never inspects anything beyond Hash.
type Signature struct {
	Hash uint64
}

// computeSignature derives a deterministic hash from the query graph's
// relation names, predicate count per relation, and projected column
// names — sufficient for two structurally-identical queries (same
// relations, same predicate shape, same projection) to collide, and for
// the core's node-naming determinism property (spec §8, property 3) to
// hold given identical inputs.
func computeSignature(qg *QueryGraph) Signature {
	var b strings.Builder

	names := qg.SortedRelationNames()
	for _, name := range names {
		rel := qg.Relations[name]
		fmt.Fprintf(&b, "rel:%s;preds:%d;cols:%d|", name, len(rel.Predicates), len(rel.Columns))
	}

	edges := make([]string, len(qg.Edges))
	for i, e := range qg.Edges {
		edges[i] = fmt.Sprintf("%s-%s-%d", e.Left, e.Right, e.Kind)
	}
	sort.Strings(edges)
	for _, e := range edges {
		fmt.Fprintf(&b, "edge:%s|", e)
	}

	for _, oc := range qg.Columns {
		fmt.Fprintf(&b, "out:%d:%s.%s|", oc.Kind, oc.Data.Table, oc.Data.Name)
	}

	return Signature{Hash: xxhash.Sum64String(b.String())}
}
