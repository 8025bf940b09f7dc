package routing

import (
	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
	"go.uber.org/zap"
)

// BuildGraph builds a fresh graph from a building snapshot. paths with a negative distance or an
// endpoint outside landmarks are dropped. a path without an estimated time gets
// distance / walkingSpeed seconds when walkingSpeed > 0.
func BuildGraph(landmarks []da.Landmark, paths []da.Path, walkingSpeed float64, log *zap.Logger) *da.Graph {
	g := da.NewGraphWithSize(len(landmarks))

	for _, l := range landmarks {
		if _, ok := FloorOrdinal(l.Floor); !ok {
			log.Debug("non-numeric floor label treated as floor 0 by the A* heuristic",
				zap.String("landmark_id", l.ID), zap.String("floor", l.Floor))
		}
		g.AddNode(l.ID, da.NewNodeFromLandmark(l))
	}

	for _, p := range paths {
		if p.Distance < 0 {
			log.Warn("dropping path with negative distance", zap.String("path_id", p.ID),
				zap.Float64("distance", p.Distance))
			continue
		}

		estimatedTime := p.EstimatedTime
		if estimatedTime <= 0 && walkingSpeed > 0 {
			estimatedTime = p.Distance / walkingSpeed
		}

		added := g.AddEdge(p.From, p.To, p.Distance, da.EdgeData{
			PathID:              p.ID,
			Instructions:        p.Instructions,
			ReverseInstructions: p.ReverseInstructions,
			Difficulty:          p.Difficulty,
			Accessibility:       p.Accessibility,
			Bidirectional:       p.Bidirectional,
			EstimatedTime:       estimatedTime,
			Images:              p.Images,
		})
		if !added {
			log.Debug("dropping path with dangling endpoint", zap.String("path_id", p.ID),
				zap.String("from", p.From), zap.String("to", p.To))
		}
	}

	return g
}
