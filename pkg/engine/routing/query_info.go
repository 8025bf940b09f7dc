package routing

import (
	"github.com/lintang-b-s/Wayfindx/pkg"
	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
)

// vertexEdgePair predecessor of a vertex in the shortest path tree and the edge used to reach it.
type vertexEdgePair struct {
	vertex string
	edge   *da.Edge
}

func newVertexEdgePair(vertex string, edge *da.Edge) vertexEdgePair {
	return vertexEdgePair{vertex: vertex, edge: edge}
}

func (ve vertexEdgePair) getVertex() string {
	return ve.vertex
}

func (ve vertexEdgePair) getEdge() *da.Edge {
	return ve.edge
}

func (ve vertexEdgePair) isRoot() bool {
	return ve.edge == nil
}

type VertexInfo struct {
	travelDist float64
	parent     vertexEdgePair
}

func NewVertexInfo(travelDist float64, parent vertexEdgePair) *VertexInfo {
	return &VertexInfo{
		travelDist: travelDist,
		parent:     parent,
	}
}

func (vi *VertexInfo) GetTravelDist() float64 {
	return vi.travelDist
}

func (vi *VertexInfo) GetParent() vertexEdgePair {
	return vi.parent
}

// queryKey heap item. gScore is the tentative distance at push time, used to detect stale entries.
type queryKey struct {
	node   string
	gScore float64
}

func newQueryKey(node string, gScore float64) queryKey {
	return queryKey{node: node, gScore: gScore}
}

// ShortestPathTree result of a single-target search: distance labels and predecessors of every
// labelled vertex.
type ShortestPathTree struct {
	source, target  string
	forwardInfo     map[string]*VertexInfo
	numSettledNodes int
}

func newShortestPathTree(source, target string, forwardInfo map[string]*VertexInfo, numSettledNodes int) *ShortestPathTree {
	return &ShortestPathTree{
		source:          source,
		target:          target,
		forwardInfo:     forwardInfo,
		numSettledNodes: numSettledNodes,
	}
}

func noPathTree(source, target string) *ShortestPathTree {
	return newShortestPathTree(source, target, map[string]*VertexInfo{}, 0)
}

// GetDistance tentative distance from the source to v, pkg.INF_WEIGHT if v was never labelled.
func (t *ShortestPathTree) GetDistance(v string) float64 {
	info, ok := t.forwardInfo[v]
	if !ok {
		return pkg.INF_WEIGHT
	}
	return info.GetTravelDist()
}

func (t *ShortestPathTree) GetTargetDistance() float64 {
	return t.GetDistance(t.target)
}

func (t *ShortestPathTree) Found() bool {
	return t.GetTargetDistance() < pkg.INF_WEIGHT
}

func (t *ShortestPathTree) GetNumSettledNodes() int {
	return t.numSettledNodes
}

func (t *ShortestPathTree) GetTarget() string {
	return t.target
}

func (t *ShortestPathTree) getInfo(v string) (*VertexInfo, bool) {
	info, ok := t.forwardInfo[v]
	return info, ok
}
