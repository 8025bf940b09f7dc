package pkg

import "strings"

const (
	INF_WEIGHT float64 = 1e15

	// building-local distance units charged per floor of vertical separation in the A* heuristic
	DEFAULT_FLOOR_PENALTY = 5.0
	// building-local distance units per second, used when a path carries no estimated time
	DEFAULT_WALKING_SPEED = 1.4
)

const (
	START_INSTRUCTION_PREFIX   = "Start at "
	ALREADY_AT_DESTINATION     = "You are already at your destination!"
	REVERSE_INSTRUCTION_PREFIX = "Return via: "
)

type Algorithm string

const (
	DIJKSTRA Algorithm = "dijkstra"
	ASTAR    Algorithm = "astar"
)

func GetAlgorithm(name string) (Algorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dijkstra":
		return DIJKSTRA, true
	case "astar", "a*":
		return ASTAR, true
	default:
		return "", false
	}
}
