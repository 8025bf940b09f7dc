package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/lintang-b-s/Wayfindx/pkg"
	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
	"github.com/lintang-b-s/Wayfindx/pkg/engine/routing"
	"github.com/lintang-b-s/Wayfindx/pkg/metrics"
	"github.com/lintang-b-s/Wayfindx/pkg/storage"
	"github.com/lintang-b-s/Wayfindx/pkg/util"
	"go.uber.org/zap"
)

var ErrNoLandmarkNearby = errors.New("no landmark found near the given position")

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	landmarks    LandmarkRepository
	history      HistoryRecorder
	timeout      time.Duration
	searchRadius float64
}

// NewRoutingService history may be nil, then no navigation history is kept.
func NewRoutingService(log *zap.Logger, engine RoutingEngine, landmarks LandmarkRepository, history HistoryRecorder,
	timeout time.Duration, searchRadius float64) *RoutingService {
	return &RoutingService{
		log:          log,
		engine:       engine,
		landmarks:    landmarks,
		history:      history,
		timeout:      timeout,
		searchRadius: searchRadius,
	}
}

// ComputeRoute computes a route under the service timeout and records it in the history of userID
// when userID is not empty.
func (rs *RoutingService) ComputeRoute(ctx context.Context, userID, buildingID, from, to string,
	preferences routing.Preferences, algorithm string) (*da.Route, error) {
	if rs.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rs.timeout)
		defer cancel()
	}

	alg, ok := pkg.GetAlgorithm(algorithm)
	if !ok {
		metrics.ObserveRouteCompute(algorithm, metrics.RESULT_ERROR, 0)
		return nil, util.WrapErrorf(routing.ErrInvalidAlgorithm, util.ErrBadParamInput, "algorithm %q", algorithm)
	}

	start := time.Now()
	route, err := rs.engine.ComputeRoute(ctx, buildingID, from, to, preferences, alg)
	metrics.ObserveRouteCompute(string(alg), resultLabel(route, err), time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && util.ErrorCode(err) != util.ErrTimeout {
			return nil, util.WrapErrorf(err, util.ErrTimeout, "route computation for building %s", buildingID)
		}
		return nil, err
	}

	if userID != "" && rs.history != nil {
		entry := storage.NewHistoryEntry(buildingID, from, to, route.Algorithm, route.TotalDistance,
			route.TotalTime, len(route.Steps))
		if err := rs.history.Record(ctx, userID, entry); err != nil {
			rs.log.Warn("failed to record navigation history", zap.String("user_id", userID), zap.Error(err))
		}
	}

	return route, nil
}

// NearestLandmark the active landmark of floor closest to (x, y), and its distance.
func (rs *RoutingService) NearestLandmark(ctx context.Context, buildingID, floor string, x, y float64) (da.Landmark,
	float64, error) {
	if rs.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rs.timeout)
		defer cancel()
	}

	landmarks, err := rs.landmarks.GetActiveLandmarks(ctx, buildingID)
	if err != nil {
		return da.Landmark{}, 0, err
	}

	return rs.nearestLandmark(landmarks, buildingID, floor, x, y)
}

// History recent routes of userID, newest first.
func (rs *RoutingService) History(userID string) []storage.HistoryEntry {
	if rs.history == nil {
		return []storage.HistoryEntry{}
	}
	return rs.history.Recent(userID)
}
