package usecases

import (
	"errors"

	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
	"github.com/lintang-b-s/Wayfindx/pkg/engine/routing"
	"github.com/lintang-b-s/Wayfindx/pkg/metrics"
	"github.com/lintang-b-s/Wayfindx/pkg/spatialindex"
	"github.com/lintang-b-s/Wayfindx/pkg/util"
	"go.uber.org/zap"
)

func (rs *RoutingService) nearestLandmark(landmarks []da.Landmark, buildingID, floor string, x, y float64) (da.Landmark,
	float64, error) {
	// landmarks change on reload, the index is rebuilt per request
	index := spatialindex.NewRtree()
	index.Build(landmarks, rs.log)

	entry, dist, found := index.Nearest(floor, x, y, rs.searchRadius)
	if !found {
		return da.Landmark{}, 0, util.WrapErrorf(ErrNoLandmarkNearby, util.ErrNotFound,
			"no landmark on floor %s of building %s within %.1f of (%.2f, %.2f)", floor, buildingID, rs.searchRadius, x, y)
	}

	for _, l := range landmarks {
		if l.ID == entry.GetID() {
			return l, dist, nil
		}
	}

	rs.log.Error("indexed landmark missing from snapshot", zap.String("landmark_id", entry.GetID()))
	return da.Landmark{}, 0, util.WrapErrorf(ErrNoLandmarkNearby, util.ErrInternalServerError,
		"landmark %s", entry.GetID())
}

func resultLabel(route *da.Route, err error) string {
	switch {
	case err == nil && route != nil && len(route.Steps) == 1:
		return metrics.RESULT_SAME_ENDPOINT
	case err == nil:
		return metrics.RESULT_FOUND
	case errors.Is(err, routing.ErrNoPathFound):
		return metrics.RESULT_NO_PATH
	case errors.Is(err, routing.ErrInvalidEndpoint):
		return metrics.RESULT_INVALID_ENDPOINT
	default:
		return metrics.RESULT_ERROR
	}
}
