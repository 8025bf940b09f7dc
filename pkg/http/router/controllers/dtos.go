package controllers

import (
	"time"

	"github.com/lintang-b-s/Wayfindx/pkg/datastructure"
	"github.com/lintang-b-s/Wayfindx/pkg/storage"
)

type routeRequest struct {
	BuildingID           string `json:"building_id" validate:"required"`
	From                 string `json:"from" validate:"required"`
	To                   string `json:"to" validate:"required"`
	Algorithm            string `json:"algorithm" validate:"omitempty,oneof=dijkstra astar a*"`
	AvoidStairs          bool   `json:"avoid_stairs"`
	WheelchairAccessible bool   `json:"wheelchair_accessible"`
	AvoidElevators       bool   `json:"avoid_elevators"`
	MaxDifficulty        string `json:"max_difficulty" validate:"omitempty,oneof=easy medium hard"`
}

type nearestLandmarkRequest struct {
	BuildingID string  `json:"building_id" validate:"required"`
	Floor      string  `json:"floor" validate:"required"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

type coordinatesResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func newCoordinatesResponse(c *datastructure.Coordinates) *coordinatesResponse {
	if c == nil {
		return nil
	}
	return &coordinatesResponse{X: c.X, Y: c.Y}
}

type landmarkResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Type        string               `json:"type,omitempty"`
	RoomNumber  string               `json:"roomNumber,omitempty"`
	Floor       string               `json:"floor"`
	Coordinates *coordinatesResponse `json:"coordinates,omitempty"`
}

func newLandmarkRefResponse(l datastructure.LandmarkRef) landmarkResponse {
	return landmarkResponse{
		ID:          l.ID,
		Name:        l.Name,
		Type:        l.Type,
		RoomNumber:  l.RoomNumber,
		Floor:       l.Floor,
		Coordinates: newCoordinatesResponse(l.Coordinates),
	}
}

type accessibilityResponse struct {
	WheelchairAccessible bool `json:"wheelchairAccessible"`
	RequiresElevator     bool `json:"requiresElevator"`
	RequiresStairs       bool `json:"requiresStairs"`
}

type routeStepResponse struct {
	StepNumber    int                    `json:"stepNumber"`
	Landmark      landmarkResponse       `json:"landmark"`
	Instructions  string                 `json:"instructions"`
	Distance      float64                `json:"distance"`
	EstimatedTime float64                `json:"estimatedTime"`
	Difficulty    string                 `json:"difficulty,omitempty"`
	Accessibility *accessibilityResponse `json:"accessibility,omitempty"`
	Images        []string               `json:"images"`
}

type routeResponse struct {
	Steps         []routeStepResponse `json:"steps"`
	TotalDistance float64             `json:"totalDistance"`
	TotalTime     float64             `json:"totalTime"`
	Algorithm     string              `json:"algorithm"`
	Polyline      string              `json:"polyline,omitempty"`
	FloorsVisited []string            `json:"floorsVisited"`
}

func NewRouteResponse(route *datastructure.Route) routeResponse {
	steps := make([]routeStepResponse, 0, len(route.Steps))
	for _, s := range route.Steps {
		step := routeStepResponse{
			StepNumber:    s.StepNumber,
			Landmark:      newLandmarkRefResponse(s.Landmark),
			Instructions:  s.Instructions,
			Distance:      s.Distance,
			EstimatedTime: s.EstimatedTime,
			Images:        s.Images,
		}
		if s.Difficulty != datastructure.DIFFICULTY_UNSPECIFIED {
			step.Difficulty = s.Difficulty.String()
		}
		if s.Accessibility != nil {
			step.Accessibility = &accessibilityResponse{
				WheelchairAccessible: s.Accessibility.WheelchairAccessible,
				RequiresElevator:     s.Accessibility.RequiresElevator,
				RequiresStairs:       s.Accessibility.RequiresStairs,
			}
		}
		if step.Images == nil {
			step.Images = []string{}
		}
		steps = append(steps, step)
	}

	return routeResponse{
		Steps:         steps,
		TotalDistance: route.TotalDistance,
		TotalTime:     route.TotalTime,
		Algorithm:     route.Algorithm,
		Polyline:      route.Polyline,
		FloorsVisited: route.FloorsVisited,
	}
}

type nearestLandmarkResponse struct {
	Landmark landmarkResponse `json:"landmark"`
	Distance float64          `json:"distance"`
}

func NewNearestLandmarkResponse(l datastructure.Landmark, dist float64) nearestLandmarkResponse {
	return nearestLandmarkResponse{
		Landmark: landmarkResponse{
			ID:          l.ID,
			Name:        l.Name,
			Type:        l.Type,
			RoomNumber:  l.RoomNumber,
			Floor:       l.Floor,
			Coordinates: newCoordinatesResponse(l.Coordinates),
		},
		Distance: dist,
	}
}

type historyEntryResponse struct {
	ID            string    `json:"id"`
	BuildingID    string    `json:"buildingId"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Algorithm     string    `json:"algorithm"`
	TotalDistance float64   `json:"totalDistance"`
	TotalTime     float64   `json:"totalTime"`
	NumSteps      int       `json:"numSteps"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewHistoryResponse(entries []storage.HistoryEntry) []historyEntryResponse {
	resp := make([]historyEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, historyEntryResponse{
			ID:            e.ID,
			BuildingID:    e.BuildingID,
			From:          e.From,
			To:            e.To,
			Algorithm:     e.Algorithm,
			TotalDistance: e.TotalDistance,
			TotalTime:     e.TotalTime,
			NumSteps:      e.NumSteps,
			CreatedAt:     e.CreatedAt,
		})
	}
	return resp
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type buildingResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	NumLandmarks  int    `json:"numLandmarks"`
	NumPaths      int    `json:"numPaths"`
	NumComponents int    `json:"numComponents"`
}

func NewBuildingsResponse(infos []storage.BuildingInfo) []buildingResponse {
	resp := make([]buildingResponse, 0, len(infos))
	for _, b := range infos {
		resp = append(resp, buildingResponse{
			ID:            b.ID,
			Name:          b.Name,
			NumLandmarks:  b.NumLandmarks,
			NumPaths:      b.NumPaths,
			NumComponents: b.NumComponents,
		})
	}
	return resp
}
