package routing

import (
	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
)

// Dijkstra single-target dijkstra with early termination. edges failing the preference filter
// are skipped during relaxation.
type Dijkstra struct {
	graph       *da.Graph
	preferences Preferences

	forwardInfo map[string]*VertexInfo
	visited     map[string]struct{}
	pq          *da.MinHeap[queryKey]

	numSettledNodes int
}

func NewDijkstra(graph *da.Graph, preferences Preferences) *Dijkstra {
	return &Dijkstra{
		graph:       graph,
		preferences: preferences,
		forwardInfo: make(map[string]*VertexInfo, graph.NumberOfVertices()),
		visited:     make(map[string]struct{}, graph.NumberOfVertices()),
		pq:          da.NewBinaryHeap[queryKey](),
	}
}

// ShortestPath search from s until t is settled. an unknown s or t, or an unreachable t,
// gives a tree whose target distance is pkg.INF_WEIGHT.
func (us *Dijkstra) ShortestPath(s, t string) *ShortestPathTree {
	if !us.graph.HasNode(s) || !us.graph.HasNode(t) {
		return noPathTree(s, t)
	}

	us.pq.Preallocate(us.graph.NumberOfEdges() + 1)
	us.forwardInfo[s] = NewVertexInfo(0, newVertexEdgePair("", nil))
	us.pq.Insert(da.NewPriorityQueueNode(0, newQueryKey(s, 0)))

	finish := false
	for !us.pq.IsEmpty() {
		if finish {
			break
		}
		finish = us.graphSearchUni(t)
	}

	return newShortestPathTree(s, t, us.forwardInfo, us.numSettledNodes)
}

func (us *Dijkstra) graphSearchUni(target string) bool {
	queryKey, _ := us.pq.ExtractMin()
	uId := queryKey.GetItem().node

	if _, settled := us.visited[uId]; settled {
		// stale heap entry
		return false
	}
	us.visited[uId] = struct{}{}
	us.numSettledNodes++

	if uId == target {
		return true
	}

	uDist := us.forwardInfo[uId].GetTravelDist()

	us.graph.ForOutEdgesOf(uId, func(e *da.Edge) {
		vId := e.GetTo()
		if _, settled := us.visited[vId]; settled {
			return
		}
		if !MeetsPreference(e, us.preferences) {
			return
		}

		newDist := uDist + e.GetWeight()

		vInfo, vAlreadyLabelled := us.forwardInfo[vId]
		if vAlreadyLabelled && newDist >= vInfo.GetTravelDist() {
			// newDist is not better, do nothing
			return
		}

		us.forwardInfo[vId] = NewVertexInfo(newDist, newVertexEdgePair(uId, e))
		us.pq.Insert(da.NewPriorityQueueNode(newDist, newQueryKey(vId, newDist)))
	})

	return false
}
