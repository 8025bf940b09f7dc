package routing

import (
	"math"
	"strings"

	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
	"github.com/lintang-b-s/Wayfindx/pkg/geo"
)

// ParseFloorOrdinal parses the leading (optionally signed) integer of a floor label:
// "3" -> 3, "-1" -> -1, "2F" -> 2. labels without a leading integer ("B1", "Ground", "") are floor 0.
func ParseFloorOrdinal(label string) int {
	ordinal, _ := FloorOrdinal(label)
	return ordinal
}

// FloorOrdinal is ParseFloorOrdinal that also reports whether the label had a leading integer.
func FloorOrdinal(label string) (int, bool) {
	s := strings.TrimSpace(label)
	if s == "" {
		return 0, false
	}

	sign := 1
	switch s[0] {
	case '-':
		sign = -1
		s = s[1:]
	case '+':
		s = s[1:]
	}

	ordinal := 0
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		if ordinal > (math.MaxInt32-9)/10 {
			// absurdly long labels are not floors
			return 0, false
		}
		ordinal = ordinal*10 + int(s[digits]-'0')
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	return sign * ordinal, true
}

// Heuristic lower bound on the remaining walking distance used by A*:
// planar euclidean distance plus floorPenalty per floor of separation, or the floor term alone
// when either node has no coordinates. it is admissible as long as no path between floors is
// shorter than floorPenalty per floor crossed plus its planar displacement.
type Heuristic struct {
	floorPenalty float64
}

func NewHeuristic(floorPenalty float64) Heuristic {
	if floorPenalty < 0 {
		floorPenalty = 0
	}
	return Heuristic{floorPenalty: floorPenalty}
}

func (h Heuristic) Estimate(u, v *da.Node) float64 {
	deltaFloor := math.Abs(float64(ParseFloorOrdinal(u.GetFloor()) - ParseFloorOrdinal(v.GetFloor())))
	vertical := deltaFloor * h.floorPenalty

	if !u.HasCoordinates() || !v.HasCoordinates() {
		return vertical
	}
	uc, vc := u.GetCoordinates(), v.GetCoordinates()
	return geo.CalculateEuclideanDistance(uc.X, uc.Y, vc.X, vc.Y) + vertical
}
