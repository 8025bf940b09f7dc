package spatialindex

import (
	"math"

	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
	"github.com/lintang-b-s/Wayfindx/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

const initialSearchRadius = 1.0

type LandmarkEntry struct {
	id    string
	floor string
	x, y  float64
}

func (le LandmarkEntry) GetID() string {
	return le.id
}

func (le LandmarkEntry) GetFloor() string {
	return le.floor
}

func (le LandmarkEntry) GetX() float64 {
	return le.x
}

func (le LandmarkEntry) GetY() float64 {
	return le.y
}

// Rtree one r-tree of landmark points per floor label.
type Rtree struct {
	floors map[string]*rtree.RTreeG[LandmarkEntry]
	size   int
}

func NewRtree() *Rtree {
	return &Rtree{
		floors: make(map[string]*rtree.RTreeG[LandmarkEntry]),
	}
}

// Build insert every landmark that has coordinates. landmarks without coordinates are skipped.
func (rt *Rtree) Build(landmarks []da.Landmark, log *zap.Logger) {
	skipped := 0
	for _, l := range landmarks {
		if l.Coordinates == nil {
			skipped++
			continue
		}
		tr, ok := rt.floors[l.Floor]
		if !ok {
			var newTr rtree.RTreeG[LandmarkEntry]
			tr = &newTr
			rt.floors[l.Floor] = tr
		}
		p := [2]float64{l.Coordinates.X, l.Coordinates.Y}
		tr.Insert(p, p, LandmarkEntry{id: l.ID, floor: l.Floor, x: l.Coordinates.X, y: l.Coordinates.Y})
		rt.size++
	}

	if skipped > 0 {
		log.Debug("landmarks without coordinates are not indexed", zap.Int("skipped", skipped))
	}
}

func (rt *Rtree) Size() int {
	return rt.size
}

// SearchWithinRadius all landmarks of floor inside the square of half-side radius centered at (x, y).
func (rt *Rtree) SearchWithinRadius(floor string, x, y, radius float64) []LandmarkEntry {
	results := make([]LandmarkEntry, 0, 10)
	tr, ok := rt.floors[floor]
	if !ok {
		return results
	}

	tr.Search([2]float64{x - radius, y - radius}, [2]float64{x + radius, y + radius},
		func(min, max [2]float64, data LandmarkEntry) bool {
			results = append(results, data)
			return true
		})
	return results
}

// Nearest landmark of floor to (x, y) within maxRadius. the search square starts small and doubles,
// then is widened once to the best candidate distance so a closer point in the square corners is not missed.
func (rt *Rtree) Nearest(floor string, x, y, maxRadius float64) (LandmarkEntry, float64, bool) {
	if _, ok := rt.floors[floor]; !ok || maxRadius <= 0 {
		return LandmarkEntry{}, 0, false
	}

	radius := math.Min(initialSearchRadius, maxRadius)
	for {
		cands := rt.SearchWithinRadius(floor, x, y, radius)
		if len(cands) > 0 {
			best, bestDist := closest(cands, x, y)
			if bestDist > radius {
				best, bestDist = closest(rt.SearchWithinRadius(floor, x, y, bestDist), x, y)
			}
			if bestDist > maxRadius {
				return LandmarkEntry{}, 0, false
			}
			return best, bestDist, true
		}
		if radius >= maxRadius {
			return LandmarkEntry{}, 0, false
		}
		radius = math.Min(radius*2, maxRadius)
	}
}

func closest(cands []LandmarkEntry, x, y float64) (LandmarkEntry, float64) {
	best := cands[0]
	bestDist := geo.CalculateEuclideanDistance(x, y, best.x, best.y)
	for _, c := range cands[1:] {
		d := geo.CalculateEuclideanDistance(x, y, c.x, c.y)
		if d < bestDist || (d == bestDist && c.id < best.id) {
			best, bestDist = c, d
		}
	}
	return best, bestDist
}
