package datastructure

// LandmarkRef display data of the landmark a route step arrives at.
type LandmarkRef struct {
	ID          string
	Name        string
	Type        string
	RoomNumber  string
	Floor       string
	Coordinates *Coordinates
}

func NewLandmarkRef(n *Node) LandmarkRef {
	return LandmarkRef{
		ID:          n.GetID(),
		Name:        n.GetName(),
		Type:        n.GetType(),
		RoomNumber:  n.GetRoomNumber(),
		Floor:       n.GetFloor(),
		Coordinates: n.GetCoordinates(),
	}
}

type RouteStep struct {
	StepNumber    int
	Landmark      LandmarkRef
	Instructions  string
	Distance      float64
	EstimatedTime float64
	Difficulty    Difficulty
	Accessibility *Accessibility
	Images        []string
}

type Route struct {
	Steps         []RouteStep
	TotalDistance float64
	TotalTime     float64
	Algorithm     string
	Polyline      string
	FloorsVisited []string
}

// PathStep one element of a reconstructed path. Edge is nil for the origin.
type PathStep struct {
	Node *Node
	Edge *Edge
}

func NewPathStep(node *Node, edge *Edge) PathStep {
	return PathStep{Node: node, Edge: edge}
}
