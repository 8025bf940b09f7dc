package routing

import (
	"context"

	"github.com/lintang-b-s/Wayfindx/pkg"
	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
	"github.com/lintang-b-s/Wayfindx/pkg/guidance"
	"github.com/lintang-b-s/Wayfindx/pkg/metrics"
	"github.com/lintang-b-s/Wayfindx/pkg/util"
	"go.uber.org/zap"
)

// RoutingEngine computes routes inside one building. it keeps no per-building state: every query
// fetches a snapshot, builds a private graph and discards it, so queries may run concurrently.
type RoutingEngine struct {
	repository   BuildingRepository
	logger       *zap.Logger
	heuristic    Heuristic
	walkingSpeed float64
}

func NewRoutingEngine(repository BuildingRepository, logger *zap.Logger, floorPenalty, walkingSpeed float64) *RoutingEngine {
	return &RoutingEngine{
		repository:   repository,
		logger:       logger,
		heuristic:    NewHeuristic(floorPenalty),
		walkingSpeed: walkingSpeed,
	}
}

// ComputeRoute route from landmark `from` to landmark `to` of buildingID.
// errors carry util codes: ErrInvalidEndpoint/ErrInvalidAlgorithm with util.ErrBadParamInput,
// ErrNoPathFound with util.ErrNotFound, and util.ErrTimeout when ctx is done after the fetch.
func (re *RoutingEngine) ComputeRoute(ctx context.Context, buildingID, from, to string, preferences Preferences,
	algorithm pkg.Algorithm) (*da.Route, error) {
	alg, ok := pkg.GetAlgorithm(string(algorithm))
	if !ok {
		return nil, util.WrapErrorf(ErrInvalidAlgorithm, util.ErrBadParamInput, "algorithm %q", algorithm)
	}
	algorithm = alg

	landmarks, paths, err := re.repository.GetActiveGraphData(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	if util.StopConcurrentOperation(ctx) {
		return nil, util.WrapErrorf(ctx.Err(), util.ErrTimeout, "route computation for building %s", buildingID)
	}

	graph := BuildGraph(landmarks, paths, re.walkingSpeed, re.logger)
	metrics.ObserveGraphSize(graph.NumberOfEdges())

	origin, ok := graph.GetNode(from)
	if !ok {
		return nil, util.WrapErrorf(ErrInvalidEndpoint, util.ErrBadParamInput,
			"origin %s is not an active landmark of building %s", from, buildingID)
	}
	if !graph.HasNode(to) {
		return nil, util.WrapErrorf(ErrInvalidEndpoint, util.ErrBadParamInput,
			"destination %s is not an active landmark of building %s", to, buildingID)
	}

	if from == to {
		return guidance.NewRouteBuilder(string(algorithm)).AlreadyAtDestination(origin), nil
	}

	tree, err := re.ShortestPath(graph, from, to, preferences, algorithm)
	if err != nil {
		return nil, err
	}
	metrics.ObserveSettledNodes(string(algorithm), tree.GetNumSettledNodes())

	path, found := RetrievePath(graph, tree)
	if !found {
		return nil, util.WrapErrorf(ErrNoPathFound, util.ErrNotFound,
			"no path from %s to %s in building %s", from, to, buildingID)
	}

	re.logger.Debug("route computed", zap.String("building_id", buildingID),
		zap.String("algorithm", string(algorithm)), zap.Bool("constrained", !preferences.IsEmpty()),
		zap.Int("settled_nodes", tree.GetNumSettledNodes()), zap.Int("steps", len(path)))

	return guidance.NewRouteBuilder(string(algorithm)).BuildRoute(path), nil
}

// ShortestPath runs the solver for algorithm on an already built graph.
func (re *RoutingEngine) ShortestPath(graph *da.Graph, from, to string, preferences Preferences,
	algorithm pkg.Algorithm) (*ShortestPathTree, error) {
	router, err := re.newRouter(graph, preferences, algorithm)
	if err != nil {
		return nil, err
	}
	return router.ShortestPath(from, to), nil
}

func (re *RoutingEngine) newRouter(graph *da.Graph, preferences Preferences, algorithm pkg.Algorithm) (Router, error) {
	alg, ok := pkg.GetAlgorithm(string(algorithm))
	if !ok {
		return nil, util.WrapErrorf(ErrInvalidAlgorithm, util.ErrBadParamInput, "algorithm %q", algorithm)
	}

	switch alg {
	case pkg.ASTAR:
		return NewAstar(graph, preferences, re.heuristic), nil
	default:
		return NewDijkstra(graph, preferences), nil
	}
}
