package usecases

import (
	"context"

	"github.com/lintang-b-s/Wayfindx/pkg"
	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
	"github.com/lintang-b-s/Wayfindx/pkg/engine/routing"
	"github.com/lintang-b-s/Wayfindx/pkg/storage"
)

type RoutingEngine interface {
	ComputeRoute(ctx context.Context, buildingID, from, to string, preferences routing.Preferences,
		algorithm pkg.Algorithm) (*da.Route, error)
}

type LandmarkRepository interface {
	GetActiveLandmarks(ctx context.Context, buildingID string) ([]da.Landmark, error)
}

type HistoryRecorder interface {
	Record(ctx context.Context, userID string, entry storage.HistoryEntry) error
	Recent(userID string) []storage.HistoryEntry
}
