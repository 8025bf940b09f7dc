package routing

import (
	"context"

	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
)

// BuildingRepository read-only access to building data. GetActiveGraphData returns the active landmarks
// of a building and the active paths whose endpoints are both among them.
type BuildingRepository interface {
	GetActiveGraphData(ctx context.Context, buildingID string) ([]da.Landmark, []da.Path, error)
}

type Router interface {
	ShortestPath(s, t string) *ShortestPathTree
}
