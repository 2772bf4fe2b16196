package flowgraph

import (
	"fmt"
	"sort"
	"testing"

	"github.com/rakeshgangwar/flowgraph/pkg/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// printAdjacencyMap renders each edge as "FROM -> TO" so tests can
// assert on the shape of the built graph.
func printAdjacencyMap(t *testing.T, g *Graph) []string {
	adj, err := g.G.AdjacencyMap()
	require.NoError(t, err)

	var result []string
	for _, edges := range adj {
		for _, e := range edges {
			result = append(result, fmt.Sprintf("%s -> %s", e.Source, e.Target))
		}
	}

	sort.Strings(result)
	return result
}

func TestNewGraph(t *testing.T) {
	nodes := []node.Node{
		{ID: "1", Name: "Start", Type: "manualTrigger"},
		{ID: "2", Name: "Branch", Type: "if"},
		{ID: "3", Name: "Left", Type: "set"},
		{ID: "4", Name: "Right", Type: "set"},
	}
	connections := node.ConnectionMap{
		"Start": {Main: [][]node.Connection{
			{{Node: "Branch", Type: "main", Index: 0}},
		}},
		"Branch": {Main: [][]node.Connection{
			{{Node: "Left", Type: "true", Index: 0}},
			{{Node: "Right", Type: "false", Index: 0}},
		}},
	}

	g, err := NewGraph(nodes, connections)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Branch -> Left",
		"Branch -> Right",
		"Start -> Branch",
	}, printAdjacencyMap(t, g))
}

func TestNewGraph_SkipsUnknownTargets(t *testing.T) {
	nodes := []node.Node{
		{ID: "1", Name: "A", Type: "manualTrigger"},
	}
	connections := node.ConnectionMap{
		"A": {Main: [][]node.Connection{
			{{Node: "ghost", Type: "main", Index: 0}},
		}},
	}

	g, err := NewGraph(nodes, connections)
	require.NoError(t, err)

	assert.Empty(t, printAdjacencyMap(t, g))
}
