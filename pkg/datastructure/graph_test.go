package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGraph(ids ...string) *Graph {
	g := NewGraph()
	for _, id := range ids {
		g.AddNode(id, NewNode(id, "1", nil, "Room "+id, "room", "", nil))
	}
	return g
}

func TestAddEdgeBidirectional(t *testing.T) {
	testCases := []struct {
		name                  string
		data                  EdgeData
		wantReverseInstructon string
	}{
		{
			name: "explicit reverse instructions",
			data: EdgeData{
				PathID:              "p1",
				Instructions:        "Walk down the hall",
				ReverseInstructions: "Walk back up the hall",
				Bidirectional:       true,
				Images:              []string{"a.jpg", "b.jpg"},
			},
			wantReverseInstructon: "Walk back up the hall",
		},
		{
			name: "reverse instructions fall back to the forward text",
			data: EdgeData{
				PathID:        "p1",
				Instructions:  "Take the stairs up",
				Bidirectional: true,
				Images:        []string{"a.jpg", "b.jpg"},
			},
			wantReverseInstructon: "Return via: Take the stairs up",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGraph("A", "B")
			require.True(t, g.AddEdge("A", "B", 12.5, tt.data))

			assert.Equal(t, 2, g.NumberOfEdges())
			require.Len(t, g.GetOutEdges("A"), 1)
			require.Len(t, g.GetOutEdges("B"), 1)

			forward := g.GetOutEdges("A")[0]
			assert.Equal(t, "B", forward.GetTo())
			assert.Equal(t, tt.data.Instructions, forward.GetInstructions())
			assert.False(t, forward.IsReversed())

			reverse := g.GetOutEdges("B")[0]
			assert.Equal(t, "B", reverse.GetFrom())
			assert.Equal(t, "A", reverse.GetTo())
			assert.Equal(t, 12.5, reverse.GetWeight())
			assert.Equal(t, "p1", reverse.GetPathID())
			assert.Equal(t, tt.wantReverseInstructon, reverse.GetInstructions())
			assert.Equal(t, []string{"b.jpg", "a.jpg"}, reverse.GetImages())
			assert.True(t, reverse.IsReversed())

			// forward images untouched by the reversal
			assert.Equal(t, []string{"a.jpg", "b.jpg"}, forward.GetImages())
		})
	}
}

func TestAddEdgeOneWay(t *testing.T) {
	g := newTestGraph("A", "B")
	require.True(t, g.AddEdge("A", "B", 3, EdgeData{PathID: "escalator", Instructions: "Ride the escalator"}))

	assert.Equal(t, 1, g.NumberOfEdges())
	assert.Len(t, g.GetOutEdges("A"), 1)
	assert.Empty(t, g.GetOutEdges("B"))
}

func TestAddEdgeRejected(t *testing.T) {
	testCases := []struct {
		name     string
		from, to string
		weight   float64
	}{
		{name: "unknown origin", from: "X", to: "B", weight: 1},
		{name: "unknown destination", from: "A", to: "X", weight: 1},
		{name: "negative weight", from: "A", to: "B", weight: -1},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGraph("A", "B")
			assert.False(t, g.AddEdge(tt.from, tt.to, tt.weight, EdgeData{Bidirectional: true}))
			assert.Equal(t, 0, g.NumberOfEdges())
			assert.Empty(t, g.GetOutEdges("A"))
			assert.Empty(t, g.GetOutEdges("B"))
		})
	}
}

func TestAddNodeKeepsAdjacency(t *testing.T) {
	g := newTestGraph("A", "B")
	require.True(t, g.AddEdge("A", "B", 1, EdgeData{}))

	g.AddNode("A", NewNode("A", "2", NewCoordinates(1, 2), "Lobby", "hall", "", nil))

	node, ok := g.GetNode("A")
	require.True(t, ok)
	assert.Equal(t, "2", node.GetFloor())
	assert.True(t, node.HasCoordinates())
	assert.Len(t, g.GetOutEdges("A"), 1)
	assert.Equal(t, 2, g.NumberOfVertices())
}

func TestStronglyConnectedComponents(t *testing.T) {
	testCases := []struct {
		name  string
		nodes []string
		edges [][2]string
		bidir bool
		want  [][]string
	}{
		{
			name:  "bidirectional corridor is one component",
			nodes: []string{"A", "B", "C"},
			edges: [][2]string{{"A", "B"}, {"B", "C"}},
			bidir: true,
			want:  [][]string{{"A", "B", "C"}},
		},
		{
			name:  "one-way chain splits into singletons",
			nodes: []string{"A", "B", "C"},
			edges: [][2]string{{"A", "B"}, {"B", "C"}},
			want:  [][]string{{"A"}, {"B"}, {"C"}},
		},
		{
			name:  "one-way cycle plus isolated room",
			nodes: []string{"A", "B", "C", "D"},
			edges: [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}},
			want:  [][]string{{"A", "B", "C"}, {"D"}},
		},
		{
			name: "empty graph",
			want: [][]string{},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGraph(tt.nodes...)
			for _, e := range tt.edges {
				require.True(t, g.AddEdge(e[0], e[1], 1, EdgeData{Bidirectional: tt.bidir}))
			}
			assert.Equal(t, tt.want, g.StronglyConnectedComponents())
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	testCases := []struct {
		label  string
		want   Difficulty
		wantOk bool
	}{
		{label: "easy", want: EASY, wantOk: true},
		{label: "Medium", want: MEDIUM, wantOk: true},
		{label: " HARD ", want: HARD, wantOk: true},
		{label: "extreme", want: DIFFICULTY_UNSPECIFIED, wantOk: false},
		{label: "", want: DIFFICULTY_UNSPECIFIED, wantOk: false},
	}

	for _, tt := range testCases {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseDifficulty(tt.label)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOk, ok)
		})
	}

	assert.True(t, EASY < MEDIUM && MEDIUM < HARD)
	assert.Equal(t, "medium", MEDIUM.String())
}
