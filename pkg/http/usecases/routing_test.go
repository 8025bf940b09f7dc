package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lintang-b-s/Wayfindx/pkg"
	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
	"github.com/lintang-b-s/Wayfindx/pkg/engine/routing"
	"github.com/lintang-b-s/Wayfindx/pkg/metrics"
	"github.com/lintang-b-s/Wayfindx/pkg/storage"
	"github.com/lintang-b-s/Wayfindx/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEngine struct {
	route         *da.Route
	err           error
	gotAlgorithm  pkg.Algorithm
	gotDeadline   bool
	waitForCancel bool
}

func (f *fakeEngine) ComputeRoute(ctx context.Context, buildingID, from, to string, preferences routing.Preferences,
	algorithm pkg.Algorithm) (*da.Route, error) {
	f.gotAlgorithm = algorithm
	_, f.gotDeadline = ctx.Deadline()
	if f.waitForCancel {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.route, f.err
}

type fakeLandmarks struct {
	landmarks []da.Landmark
	err       error
}

func (f *fakeLandmarks) GetActiveLandmarks(ctx context.Context, buildingID string) ([]da.Landmark, error) {
	return f.landmarks, f.err
}

func newTestRoute(algorithm string) *da.Route {
	return &da.Route{
		Steps:         []da.RouteStep{{StepNumber: 1}, {StepNumber: 2}},
		TotalDistance: 20,
		TotalTime:     14.29,
		Algorithm:     algorithm,
	}
}

func newTestHistory(t *testing.T) *storage.HistoryStore {
	t.Helper()
	hs, err := storage.NewHistoryStore(16, 5)
	require.NoError(t, err)
	return hs
}

func TestComputeRouteRecordsHistory(t *testing.T) {
	engine := &fakeEngine{route: newTestRoute("astar")}
	history := newTestHistory(t)
	rs := NewRoutingService(zap.NewNop(), engine, &fakeLandmarks{}, history, time.Second, 50)

	route, err := rs.ComputeRoute(context.Background(), "alice", "eng", "lobby", "lab", routing.Preferences{}, "A*")
	require.NoError(t, err)
	assert.Equal(t, 20.0, route.TotalDistance)
	assert.Equal(t, pkg.ASTAR, engine.gotAlgorithm)
	assert.True(t, engine.gotDeadline)

	entries := rs.History("alice")
	require.Len(t, entries, 1)
	assert.Equal(t, "eng", entries[0].BuildingID)
	assert.Equal(t, "lobby", entries[0].From)
	assert.Equal(t, "lab", entries[0].To)
	assert.Equal(t, "astar", entries[0].Algorithm)
	assert.Equal(t, 2, entries[0].NumSteps)

	// anonymous requests are not recorded
	_, err = rs.ComputeRoute(context.Background(), "", "eng", "lobby", "lab", routing.Preferences{}, "")
	require.NoError(t, err)
	assert.Equal(t, pkg.DIJKSTRA, engine.gotAlgorithm)
	assert.Len(t, rs.History("alice"), 1)
}

func TestComputeRouteErrors(t *testing.T) {
	engineErr := util.WrapErrorf(routing.ErrNoPathFound, util.ErrNotFound, "no path")

	testCases := []struct {
		name      string
		engine    *fakeEngine
		algorithm string
		wantErr   error
		wantCode  error
	}{
		{name: "invalid algorithm", engine: &fakeEngine{}, algorithm: "floyd",
			wantErr: routing.ErrInvalidAlgorithm, wantCode: util.ErrBadParamInput},
		{name: "engine error is passed through", engine: &fakeEngine{err: engineErr},
			wantErr: routing.ErrNoPathFound, wantCode: util.ErrNotFound},
		{name: "deadline becomes a timeout", engine: &fakeEngine{waitForCancel: true},
			wantErr: context.DeadlineExceeded, wantCode: util.ErrTimeout},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			history := newTestHistory(t)
			rs := NewRoutingService(zap.NewNop(), tt.engine, &fakeLandmarks{}, history, 20*time.Millisecond, 50)

			route, err := rs.ComputeRoute(context.Background(), "alice", "eng", "lobby", "lab",
				routing.Preferences{}, tt.algorithm)
			assert.Nil(t, route)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, util.ErrorCode(err))
			assert.Empty(t, rs.History("alice"))
		})
	}
}

func TestNearestLandmark(t *testing.T) {
	landmarks := &fakeLandmarks{landmarks: []da.Landmark{
		{ID: "lobby", Name: "Lobby", Floor: "1", Coordinates: da.NewCoordinates(0, 0)},
		{ID: "lab", Name: "Lab", Floor: "1", Coordinates: da.NewCoordinates(30, 40)},
		{ID: "office", Name: "Office", Floor: "2", Coordinates: da.NewCoordinates(1, 1)},
	}}
	rs := NewRoutingService(zap.NewNop(), &fakeEngine{}, landmarks, nil, time.Second, 20)

	l, dist, err := rs.NearestLandmark(context.Background(), "eng", "1", 3, 4)
	require.NoError(t, err)
	assert.Equal(t, "lobby", l.ID)
	assert.Equal(t, "Lobby", l.Name)
	assert.InDelta(t, 5, dist, 1e-9)

	_, _, err = rs.NearestLandmark(context.Background(), "eng", "1", 100, 100)
	assert.ErrorIs(t, err, ErrNoLandmarkNearby)
	assert.Equal(t, util.ErrNotFound, util.ErrorCode(err))

	repoErr := errors.New("building not found")
	rs = NewRoutingService(zap.NewNop(), &fakeEngine{}, &fakeLandmarks{err: repoErr}, nil, time.Second, 20)
	_, _, err = rs.NearestLandmark(context.Background(), "eng", "1", 0, 0)
	assert.ErrorIs(t, err, repoErr)
}

func TestHistoryWithoutRecorder(t *testing.T) {
	rs := NewRoutingService(zap.NewNop(), &fakeEngine{route: newTestRoute("dijkstra")}, &fakeLandmarks{}, nil,
		time.Second, 20)

	_, err := rs.ComputeRoute(context.Background(), "alice", "eng", "a", "b", routing.Preferences{}, "dijkstra")
	require.NoError(t, err)
	assert.Empty(t, rs.History("alice"))
}

func TestResultLabel(t *testing.T) {
	testCases := []struct {
		name  string
		route *da.Route
		err   error
		want  string
	}{
		{name: "found", route: newTestRoute("astar"), want: metrics.RESULT_FOUND},
		{name: "same endpoint", route: &da.Route{Steps: []da.RouteStep{{StepNumber: 1}}}, want: metrics.RESULT_SAME_ENDPOINT},
		{name: "no path", err: util.WrapErrorf(routing.ErrNoPathFound, util.ErrNotFound, "x"), want: metrics.RESULT_NO_PATH},
		{name: "invalid endpoint", err: util.WrapErrorf(routing.ErrInvalidEndpoint, util.ErrBadParamInput, "x"),
			want: metrics.RESULT_INVALID_ENDPOINT},
		{name: "other", err: errors.New("boom"), want: metrics.RESULT_ERROR},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resultLabel(tt.route, tt.err))
		})
	}
}
