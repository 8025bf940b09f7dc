package storage

import (
	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
)

// yaml layout of the building data file.

type buildingFile struct {
	Buildings []buildingRecord `yaml:"buildings"`
}

type buildingRecord struct {
	ID        string           `yaml:"id"`
	Name      string           `yaml:"name"`
	Landmarks []landmarkRecord `yaml:"landmarks"`
	Paths     []pathRecord     `yaml:"paths"`
}

type coordinatesRecord struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type landmarkRecord struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	RoomNumber  string             `yaml:"room_number"`
	Floor       string             `yaml:"floor"`
	Coordinates *coordinatesRecord `yaml:"coordinates"`
	Images      []string           `yaml:"images"`
	Active      *bool              `yaml:"active"`
}

type accessibilityRecord struct {
	WheelchairAccessible bool `yaml:"wheelchair_accessible"`
	RequiresElevator     bool `yaml:"requires_elevator"`
	RequiresStairs       bool `yaml:"requires_stairs"`
}

type pathRecord struct {
	ID                  string               `yaml:"id"`
	From                string               `yaml:"from"`
	To                  string               `yaml:"to"`
	Distance            float64              `yaml:"distance"`
	Instructions        string               `yaml:"instructions"`
	ReverseInstructions string               `yaml:"reverse_instructions"`
	Difficulty          string               `yaml:"difficulty"`
	Accessibility       *accessibilityRecord `yaml:"accessibility"`
	Bidirectional       bool                 `yaml:"bidirectional"`
	EstimatedTime       float64              `yaml:"estimated_time"`
	Images              []string             `yaml:"images"`
	Active              *bool                `yaml:"active"`
}

func isActive(active *bool) bool {
	return active == nil || *active
}

func (lr landmarkRecord) toLandmark() da.Landmark {
	var coords *da.Coordinates
	if lr.Coordinates != nil {
		coords = da.NewCoordinates(lr.Coordinates.X, lr.Coordinates.Y)
	}
	return da.Landmark{
		ID:          lr.ID,
		Name:        lr.Name,
		Type:        lr.Type,
		RoomNumber:  lr.RoomNumber,
		Floor:       lr.Floor,
		Coordinates: coords,
		Images:      lr.Images,
	}
}

func (pr pathRecord) toPath(difficulty da.Difficulty) da.Path {
	var acc *da.Accessibility
	if pr.Accessibility != nil {
		acc = &da.Accessibility{
			WheelchairAccessible: pr.Accessibility.WheelchairAccessible,
			RequiresElevator:     pr.Accessibility.RequiresElevator,
			RequiresStairs:       pr.Accessibility.RequiresStairs,
		}
	}
	return da.Path{
		ID:                  pr.ID,
		From:                pr.From,
		To:                  pr.To,
		Distance:            pr.Distance,
		Instructions:        pr.Instructions,
		ReverseInstructions: pr.ReverseInstructions,
		Difficulty:          difficulty,
		Accessibility:       acc,
		Bidirectional:       pr.Bidirectional,
		EstimatedTime:       pr.EstimatedTime,
		Images:              pr.Images,
	}
}
