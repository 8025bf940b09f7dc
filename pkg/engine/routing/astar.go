package routing

import (
	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
)

// Astar single-target A* ordered by fScore = gScore + heuristic(v, target).
// a settled vertex is reopened when a strictly shorter gScore reaches it, so the result stays
// optimal for heuristics that are admissible but not consistent.
type Astar struct {
	graph       *da.Graph
	preferences Preferences
	heuristic   Heuristic

	forwardInfo map[string]*VertexInfo
	closed      map[string]struct{}
	pq          *da.MinHeap[queryKey]

	numSettledNodes int
}

func NewAstar(graph *da.Graph, preferences Preferences, heuristic Heuristic) *Astar {
	return &Astar{
		graph:       graph,
		preferences: preferences,
		heuristic:   heuristic,
		forwardInfo: make(map[string]*VertexInfo, graph.NumberOfVertices()),
		closed:      make(map[string]struct{}, graph.NumberOfVertices()),
		pq:          da.NewBinaryHeap[queryKey](),
	}
}

func (us *Astar) ShortestPath(s, t string) *ShortestPathTree {
	sNode, sOk := us.graph.GetNode(s)
	tNode, tOk := us.graph.GetNode(t)
	if !sOk || !tOk {
		return noPathTree(s, t)
	}

	us.pq.Preallocate(us.graph.NumberOfEdges() + 1)
	us.forwardInfo[s] = NewVertexInfo(0, newVertexEdgePair("", nil))
	us.pq.Insert(da.NewPriorityQueueNode(us.heuristic.Estimate(sNode, tNode), newQueryKey(s, 0)))

	finish := false
	for !us.pq.IsEmpty() {
		if finish {
			break
		}
		finish = us.graphSearchUni(tNode)
	}

	return newShortestPathTree(s, t, us.forwardInfo, us.numSettledNodes)
}

func (us *Astar) graphSearchUni(target *da.Node) bool {
	queryKey, _ := us.pq.ExtractMin()
	uItem := queryKey.GetItem()
	uId := uItem.node

	uGScore := us.forwardInfo[uId].GetTravelDist()
	if _, closed := us.closed[uId]; closed || uItem.gScore > uGScore {
		// stale heap entry
		return false
	}
	us.closed[uId] = struct{}{}
	us.numSettledNodes++

	if uId == target.GetID() {
		return true
	}

	us.graph.ForOutEdgesOf(uId, func(e *da.Edge) {
		if !MeetsPreference(e, us.preferences) {
			return
		}
		vId := e.GetTo()

		tentativeGScore := uGScore + e.GetWeight()

		vInfo, vAlreadyLabelled := us.forwardInfo[vId]
		if vAlreadyLabelled && tentativeGScore >= vInfo.GetTravelDist() {
			return
		}

		us.forwardInfo[vId] = NewVertexInfo(tentativeGScore, newVertexEdgePair(uId, e))
		delete(us.closed, vId)

		vNode, _ := us.graph.GetNode(vId)
		fScore := tentativeGScore + us.heuristic.Estimate(vNode, target)
		us.pq.Insert(da.NewPriorityQueueNode(fScore, newQueryKey(vId, tentativeGScore)))
	})

	return false
}
