package routing

import (
	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
)

// Preferences caller constraints on which edges a route may use. the zero value imposes none.
type Preferences struct {
	AvoidStairs          bool
	WheelchairAccessible bool
	AvoidElevators       bool
	// MaxDifficulty ceiling on edge difficulty. DIFFICULTY_UNSPECIFIED means no ceiling.
	MaxDifficulty da.Difficulty
}

func (p Preferences) IsEmpty() bool {
	return p == Preferences{}
}

// MeetsPreference reports whether edge may be traversed under p. an edge without accessibility data
// is never rejected by the accessibility flags, and an edge without a difficulty never exceeds the ceiling.
func MeetsPreference(edge *da.Edge, p Preferences) bool {
	if acc := edge.GetAccessibility(); acc != nil {
		if p.AvoidStairs && acc.RequiresStairs {
			return false
		}
		if p.WheelchairAccessible && !acc.WheelchairAccessible {
			return false
		}
		if p.AvoidElevators && acc.RequiresElevator {
			return false
		}
	}

	if p.MaxDifficulty != da.DIFFICULTY_UNSPECIFIED && edge.GetDifficulty() > p.MaxDifficulty {
		return false
	}
	return true
}
