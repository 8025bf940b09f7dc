package geo

import (
	"math"

	"github.com/twpayne/go-polyline"
)

// Point position in building-local units (same units as path distances).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// CalculateEuclideanDistance straight-line distance between (x1,y1) and (x2,y2) in building-local units.
func CalculateEuclideanDistance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// PolylineFromPoints encodes points with the google polyline algorithm (precision 1e5),
// x in the longitude slot and y in the latitude slot.
func PolylineFromPoints(points []Point) string {
	if len(points) == 0 {
		return ""
	}
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Y, p.X}
	}
	return string(polyline.EncodeCoords(coords))
}
