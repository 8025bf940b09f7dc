package controllers

import (
	"context"

	"github.com/lintang-b-s/Wayfindx/pkg/datastructure"
	"github.com/lintang-b-s/Wayfindx/pkg/engine/routing"
	"github.com/lintang-b-s/Wayfindx/pkg/storage"
)

type RoutingService interface {
	ComputeRoute(ctx context.Context, userID, buildingID, from, to string, preferences routing.Preferences,
		algorithm string) (*datastructure.Route, error)
	NearestLandmark(ctx context.Context, buildingID, floor string, x, y float64) (datastructure.Landmark, float64, error)
	History(userID string) []storage.HistoryEntry
}

type BuildingCatalog interface {
	ListBuildings() []storage.BuildingInfo
}
