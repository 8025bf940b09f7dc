package datastructure

import (
	"github.com/lintang-b-s/Wayfindx/pkg"
	"github.com/lintang-b-s/Wayfindx/pkg/util"
)

type Node struct {
	id          string
	floor       string
	coordinates *Coordinates

	// display attributes, carried for the route builder only
	name       string
	nodeType   string
	roomNumber string
	images     []string
}

func NewNode(id, floor string, coordinates *Coordinates, name, nodeType, roomNumber string, images []string) Node {
	return Node{
		id:          id,
		floor:       floor,
		coordinates: coordinates,
		name:        name,
		nodeType:    nodeType,
		roomNumber:  roomNumber,
		images:      images,
	}
}

func NewNodeFromLandmark(l Landmark) Node {
	return NewNode(l.ID, l.Floor, l.Coordinates, l.Name, l.Type, l.RoomNumber, l.Images)
}

func (n *Node) GetID() string {
	return n.id
}

func (n *Node) GetFloor() string {
	return n.floor
}

func (n *Node) GetCoordinates() *Coordinates {
	return n.coordinates
}

func (n *Node) HasCoordinates() bool {
	return n.coordinates != nil
}

func (n *Node) GetName() string {
	return n.name
}

func (n *Node) GetType() string {
	return n.nodeType
}

func (n *Node) GetRoomNumber() string {
	return n.roomNumber
}

func (n *Node) GetImages() []string {
	return n.images
}

// EdgeData attributes of a path besides its endpoints and weight.
type EdgeData struct {
	PathID              string
	Instructions        string
	ReverseInstructions string
	Difficulty          Difficulty
	Accessibility       *Accessibility
	Bidirectional       bool
	EstimatedTime       float64
	Images              []string
}

type Edge struct {
	from, to      string
	weight        float64
	pathID        string
	instructions  string
	difficulty    Difficulty
	accessibility *Accessibility
	bidirectional bool
	estimatedTime float64
	images        []string
	reversed      bool // synthesized from a bidirectional path, traversed to->from
}

func (e *Edge) GetFrom() string {
	return e.from
}

func (e *Edge) GetTo() string {
	return e.to
}

func (e *Edge) GetWeight() float64 {
	return e.weight
}

func (e *Edge) GetPathID() string {
	return e.pathID
}

func (e *Edge) GetInstructions() string {
	return e.instructions
}

func (e *Edge) GetDifficulty() Difficulty {
	return e.difficulty
}

func (e *Edge) GetAccessibility() *Accessibility {
	return e.accessibility
}

func (e *Edge) IsBidirectional() bool {
	return e.bidirectional
}

func (e *Edge) GetEstimatedTime() float64 {
	return e.estimatedTime
}

func (e *Edge) GetImages() []string {
	return e.images
}

func (e *Edge) IsReversed() bool {
	return e.reversed
}

// Graph adjacency list of one building, keyed by landmark id.
// a Graph is built per query and must not be shared between goroutines while it is being built.
type Graph struct {
	nodes    map[string]*Node
	outEdges map[string][]*Edge
	numEdges int
}

func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outEdges: make(map[string][]*Edge),
	}
}

func NewGraphWithSize(numberOfNodes int) *Graph {
	return &Graph{
		nodes:    make(map[string]*Node, numberOfNodes),
		outEdges: make(map[string][]*Edge, numberOfNodes),
	}
}

// AddNode insert or overwrite node id. the adjacency list of id is kept if it already exists.
func (g *Graph) AddNode(id string, node Node) {
	node.id = id
	g.nodes[id] = &node
	if _, ok := g.outEdges[id]; !ok {
		g.outEdges[id] = make([]*Edge, 0)
	}
}

// AddEdge append the edge from->to. it is a no-op returning false when either endpoint is unknown
// or the weight is negative. a bidirectional edge also gets a synthesized to->from edge whose
// instructions come from data.ReverseInstructions, or "Return via: <instructions>" when that is empty.
func (g *Graph) AddEdge(from, to string, weight float64, data EdgeData) bool {
	if _, ok := g.nodes[from]; !ok {
		return false
	}
	if _, ok := g.nodes[to]; !ok {
		return false
	}
	if weight < 0 {
		return false
	}

	g.outEdges[from] = append(g.outEdges[from], &Edge{
		from:          from,
		to:            to,
		weight:        weight,
		pathID:        data.PathID,
		instructions:  data.Instructions,
		difficulty:    data.Difficulty,
		accessibility: data.Accessibility,
		bidirectional: data.Bidirectional,
		estimatedTime: data.EstimatedTime,
		images:        data.Images,
	})
	g.numEdges++

	if !data.Bidirectional {
		return true
	}

	reverseInstructions := data.ReverseInstructions
	if reverseInstructions == "" {
		reverseInstructions = pkg.REVERSE_INSTRUCTION_PREFIX + data.Instructions
	}

	g.outEdges[to] = append(g.outEdges[to], &Edge{
		from:          to,
		to:            from,
		weight:        weight,
		pathID:        data.PathID,
		instructions:  reverseInstructions,
		difficulty:    data.Difficulty,
		accessibility: data.Accessibility,
		bidirectional: true,
		estimatedTime: data.EstimatedTime,
		images:        util.ReverseG(data.Images),
		reversed:      true,
	})
	g.numEdges++
	return true
}

func (g *Graph) GetNode(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *Graph) GetOutEdges(id string) []*Edge {
	return g.outEdges[id]
}

func (g *Graph) ForOutEdgesOf(id string, handle func(e *Edge)) {
	for _, e := range g.outEdges[id] {
		handle(e)
	}
}

func (g *Graph) NumberOfVertices() int {
	return len(g.nodes)
}

func (g *Graph) NumberOfEdges() int {
	return g.numEdges
}
