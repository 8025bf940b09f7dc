package routing

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lintang-b-s/Wayfindx/pkg"
	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
	"github.com/lintang-b-s/Wayfindx/pkg/geo"
)

func newTestLandmark(id, floor string, x, y float64) da.Landmark {
	return da.Landmark{ID: id, Name: "Room " + id, Floor: floor, Coordinates: da.NewCoordinates(x, y)}
}

func newTestPath(id, from, to string, distance float64, bidirectional bool) da.Path {
	return da.Path{
		ID:            id,
		From:          from,
		To:            to,
		Distance:      distance,
		Instructions:  fmt.Sprintf("Walk from %s to %s", from, to),
		Bidirectional: bidirectional,
		EstimatedTime: distance,
	}
}

func buildTestGraph(landmarks []da.Landmark, paths []da.Path) *da.Graph {
	g := da.NewGraphWithSize(len(landmarks))
	for _, l := range landmarks {
		g.AddNode(l.ID, da.NewNodeFromLandmark(l))
	}
	for _, p := range paths {
		g.AddEdge(p.From, p.To, p.Distance, da.EdgeData{
			PathID:        p.ID,
			Instructions:  p.Instructions,
			Difficulty:    p.Difficulty,
			Accessibility: p.Accessibility,
			Bidirectional: p.Bidirectional,
			EstimatedTime: p.EstimatedTime,
		})
	}
	return g
}

// squareBuilding 4 landmarks on one floor at the corners of a 10x10 square, sides only.
func squareBuilding() ([]da.Landmark, []da.Path) {
	landmarks := []da.Landmark{
		newTestLandmark("A", "1", 0, 0),
		newTestLandmark("B", "1", 10, 0),
		newTestLandmark("C", "1", 10, 10),
		newTestLandmark("D", "1", 0, 10),
	}
	paths := []da.Path{
		newTestPath("AB", "A", "B", 10, true),
		newTestPath("BC", "B", "C", 10, true),
		newTestPath("CD", "C", "D", 10, true),
		newTestPath("DA", "D", "A", 10, true),
	}
	return landmarks, paths
}

// bruteForceDistance minimum distance over all simple paths from s to t using only edges that pass
// preferences, pkg.INF_WEIGHT when there is none.
func bruteForceDistance(g *da.Graph, s, t string, preferences Preferences) float64 {
	best := pkg.INF_WEIGHT
	visited := map[string]bool{s: true}

	var dfs func(u string, dist float64)
	dfs = func(u string, dist float64) {
		if u == t {
			best = math.Min(best, dist)
			return
		}
		g.ForOutEdgesOf(u, func(e *da.Edge) {
			v := e.GetTo()
			if visited[v] || !MeetsPreference(e, preferences) {
				return
			}
			visited[v] = true
			dfs(v, dist+e.GetWeight())
			visited[v] = false
		})
	}
	dfs(s, 0)
	return best
}

// randomBuilding small multi-floor building whose path lengths never undercut the A* heuristic.
func randomBuilding(rng *rand.Rand, n, m int, floorPenalty float64) ([]da.Landmark, []da.Path) {
	landmarks := make([]da.Landmark, n)
	for i := 0; i < n; i++ {
		landmarks[i] = newTestLandmark(fmt.Sprintf("L%d", i), fmt.Sprintf("%d", rng.IntN(3)),
			float64(rng.IntN(30)), float64(rng.IntN(30)))
	}

	difficulties := []da.Difficulty{da.DIFFICULTY_UNSPECIFIED, da.EASY, da.MEDIUM, da.HARD}
	paths := make([]da.Path, 0, m)
	for i := 0; i < m; i++ {
		u := landmarks[rng.IntN(n)]
		v := landmarks[rng.IntN(n)]
		if u.ID == v.ID {
			continue
		}
		lowerBound := geo.CalculateEuclideanDistance(u.Coordinates.X, u.Coordinates.Y, v.Coordinates.X, v.Coordinates.Y) +
			math.Abs(float64(ParseFloorOrdinal(u.Floor)-ParseFloorOrdinal(v.Floor)))*floorPenalty

		p := newTestPath(fmt.Sprintf("P%d", i), u.ID, v.ID, lowerBound+float64(rng.IntN(10)), rng.IntN(2) == 0)
		p.Difficulty = difficulties[rng.IntN(len(difficulties))]
		if rng.IntN(3) > 0 {
			p.Accessibility = &da.Accessibility{
				WheelchairAccessible: rng.IntN(2) == 0,
				RequiresElevator:     rng.IntN(4) == 0,
				RequiresStairs:       rng.IntN(4) == 0,
			}
		}
		paths = append(paths, p)
	}
	return landmarks, paths
}

func randomPreferences(rng *rand.Rand) Preferences {
	return Preferences{
		AvoidStairs:          rng.IntN(2) == 0,
		WheelchairAccessible: rng.IntN(4) == 0,
		AvoidElevators:       rng.IntN(4) == 0,
		MaxDifficulty:        da.Difficulty(rng.IntN(4)),
	}
}
