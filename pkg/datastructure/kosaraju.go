package datastructure

import (
	"sort"

	"github.com/lintang-b-s/Wayfindx/pkg/util"
)

// StronglyConnectedComponents runs kosaraju's algorithm over the directed edges of the graph.
// components are ordered by their smallest node id and each component is sorted.
func (g *Graph) StronglyConnectedComponents() [][]string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	inEdges := make(map[string][]string, len(g.nodes))
	for _, from := range ids {
		for _, e := range g.outEdges[from] {
			inEdges[e.to] = append(inEdges[e.to], from)
		}
	}

	order := make([]string, 0, len(ids))
	visited := make(map[string]bool, len(ids))
	for _, v := range ids {
		if !visited[v] {
			g.dfs(v, &order, visited, nil)
		}
	}

	order = util.ReverseG(order)

	// reset visited
	visited = make(map[string]bool, len(ids))
	components := make([][]string, 0, 1)
	for _, v := range order {
		if !visited[v] {
			component := make([]string, 0, 10)
			g.dfs(v, &component, visited, inEdges)
			sort.Strings(component)
			components = append(components, component)
		}
	}

	sort.Slice(components, func(i, j int) bool {
		return components[i][0] < components[j][0]
	})
	return components
}

// dfs forward over out edges when inEdges is nil, otherwise backward over inEdges.
func (g *Graph) dfs(v string, output *[]string, visited map[string]bool, inEdges map[string][]string) {
	visited[v] = true

	if inEdges == nil {
		for _, e := range g.outEdges[v] {
			if !visited[e.to] {
				g.dfs(e.to, output, visited, inEdges)
			}
		}
	} else {
		for _, u := range inEdges[v] {
			if !visited[u] {
				g.dfs(u, output, visited, inEdges)
			}
		}
	}

	*output = append(*output, v)
}
