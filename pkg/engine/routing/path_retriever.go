package routing

import (
	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
	"github.com/lintang-b-s/Wayfindx/pkg/util"
)

// RetrievePath walks the predecessors of tree back from its target to the vertex without one,
// and returns the path in forward order. the first step carries no edge.
// found is false when the target was never reached.
func RetrievePath(graph *da.Graph, tree *ShortestPathTree) (path []da.PathStep, found bool) {
	if !tree.Found() {
		return []da.PathStep{}, false
	}

	reversed := make([]da.PathStep, 0)
	cur := tree.GetTarget()
	for {
		info, ok := tree.getInfo(cur)
		if !ok {
			return []da.PathStep{}, false
		}
		node, ok := graph.GetNode(cur)
		if !ok {
			return []da.PathStep{}, false
		}

		parent := info.GetParent()
		reversed = append(reversed, da.NewPathStep(node, parent.getEdge()))
		if parent.isRoot() {
			break
		}
		if len(reversed) > graph.NumberOfVertices() {
			// a predecessor cycle can only come from a corrupted tree
			return []da.PathStep{}, false
		}
		cur = parent.getVertex()
	}

	return util.ReverseG(reversed), true
}
