package datastructure

import "strings"

// Difficulty ordinal of a walkable segment. DIFFICULTY_UNSPECIFIED sorts below easy so it never exceeds a ceiling.
type Difficulty uint8

const (
	DIFFICULTY_UNSPECIFIED Difficulty = iota
	EASY
	MEDIUM
	HARD
)

func (d Difficulty) String() string {
	switch d {
	case EASY:
		return "easy"
	case MEDIUM:
		return "medium"
	case HARD:
		return "hard"
	default:
		return ""
	}
}

// ParseDifficulty maps easy/medium/hard (case-insensitive) to its ordinal.
// ok is false for any other label, in which case DIFFICULTY_UNSPECIFIED is returned.
func ParseDifficulty(label string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "easy":
		return EASY, true
	case "medium":
		return MEDIUM, true
	case "hard":
		return HARD, true
	default:
		return DIFFICULTY_UNSPECIFIED, false
	}
}

type Coordinates struct {
	X float64
	Y float64
}

func NewCoordinates(x, y float64) *Coordinates {
	return &Coordinates{X: x, Y: y}
}

// Accessibility flags of a path. a nil *Accessibility means the data source had none.
type Accessibility struct {
	WheelchairAccessible bool
	RequiresElevator     bool
	RequiresStairs       bool
}

// Landmark is one active point of interest of a building, as read from the data source.
type Landmark struct {
	ID          string
	Name        string
	Type        string
	RoomNumber  string
	Floor       string
	Coordinates *Coordinates
	Images      []string
}

// Path is one active walkable segment between two landmarks, as read from the data source.
type Path struct {
	ID                  string
	From                string
	To                  string
	Distance            float64
	Instructions        string
	ReverseInstructions string
	Difficulty          Difficulty
	Accessibility       *Accessibility
	Bidirectional       bool
	EstimatedTime       float64 // seconds
	Images              []string
}
