package guidance

import (
	"math"

	"github.com/lintang-b-s/Wayfindx/pkg"
	"github.com/lintang-b-s/Wayfindx/pkg/datastructure"
	"github.com/lintang-b-s/Wayfindx/pkg/geo"
	"github.com/lintang-b-s/Wayfindx/pkg/util"
)

// RouteBuilder turns a reconstructed path into the step-by-step route shown to visitors.
type RouteBuilder struct {
	algorithm            string
	steps                []datastructure.RouteStep
	points               []geo.Point
	floors               []string
	seenFloors           map[string]struct{}
	missingCoordinates   bool
	cumulativeDistance   float64
	cumulativeTravelTime float64
}

func NewRouteBuilder(algorithm string) *RouteBuilder {
	return &RouteBuilder{
		algorithm:  algorithm,
		steps:      make([]datastructure.RouteStep, 0),
		points:     make([]geo.Point, 0),
		floors:     make([]string, 0),
		seenFloors: make(map[string]struct{}),
	}
}

// BuildRoute path[0] is the origin and has no edge, every later step is reached through its edge.
// totalDistance is rounded to a whole unit, totalTime to two decimals.
func (rb *RouteBuilder) BuildRoute(path []datastructure.PathStep) *datastructure.Route {
	for i, ps := range path {
		if i == 0 || ps.Edge == nil {
			rb.buildStartStep(ps.Node)
			continue
		}
		rb.buildStep(ps)
	}

	return rb.finish()
}

// AlreadyAtDestination single step, zero distance route for a query whose origin is its destination.
func (rb *RouteBuilder) AlreadyAtDestination(node *datastructure.Node) *datastructure.Route {
	rb.addStep(datastructure.RouteStep{
		Landmark:     datastructure.NewLandmarkRef(node),
		Instructions: pkg.ALREADY_AT_DESTINATION,
		Images:       node.GetImages(),
	}, node)
	return rb.finish()
}

func (rb *RouteBuilder) buildStartStep(origin *datastructure.Node) {
	name := origin.GetName()
	if name == "" {
		name = origin.GetID()
	}
	rb.addStep(datastructure.RouteStep{
		Landmark:     datastructure.NewLandmarkRef(origin),
		Instructions: pkg.START_INSTRUCTION_PREFIX + name,
		Images:       origin.GetImages(),
	}, origin)
}

func (rb *RouteBuilder) buildStep(ps datastructure.PathStep) {
	edge := ps.Edge
	rb.cumulativeDistance += edge.GetWeight()
	rb.cumulativeTravelTime += edge.GetEstimatedTime()

	rb.addStep(datastructure.RouteStep{
		Landmark:      datastructure.NewLandmarkRef(ps.Node),
		Instructions:  edge.GetInstructions(),
		Distance:      edge.GetWeight(),
		EstimatedTime: edge.GetEstimatedTime(),
		Difficulty:    edge.GetDifficulty(),
		Accessibility: edge.GetAccessibility(),
		Images:        edge.GetImages(),
	}, ps.Node)
}

func (rb *RouteBuilder) addStep(step datastructure.RouteStep, node *datastructure.Node) {
	step.StepNumber = len(rb.steps) + 1
	rb.steps = append(rb.steps, step)

	if _, ok := rb.seenFloors[node.GetFloor()]; !ok {
		rb.seenFloors[node.GetFloor()] = struct{}{}
		rb.floors = append(rb.floors, node.GetFloor())
	}

	if !node.HasCoordinates() {
		rb.missingCoordinates = true
		return
	}
	c := node.GetCoordinates()
	rb.points = append(rb.points, geo.NewPoint(c.X, c.Y))
}

func (rb *RouteBuilder) finish() *datastructure.Route {
	polyline := ""
	if !rb.missingCoordinates {
		polyline = geo.PolylineFromPoints(rb.points)
	}

	return &datastructure.Route{
		Steps:         rb.steps,
		TotalDistance: math.Round(rb.cumulativeDistance),
		TotalTime:     util.RoundFloat(rb.cumulativeTravelTime, 2),
		Algorithm:     rb.algorithm,
		Polyline:      polyline,
		FloorsVisited: rb.floors,
	}
}
