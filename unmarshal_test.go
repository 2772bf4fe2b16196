package flowgraph

import (
	"testing"

	"github.com/rakeshgangwar/flowgraph/pkg/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal_JSON(t *testing.T) {
	give := `{
  "name": "my workflow",
  "nodes": [
    {"id": "1", "name": "Start", "type": "manualTrigger", "position": [10, 20], "parameters": {"label": "Start"}},
    {"id": "2", "name": "Hit", "type": "httpRequest", "position": [200, 20], "disabled": true}
  ],
  "connections": {
    "Start": {"main": [[{"node": "Hit", "type": "main", "index": 0}]]}
  }
}`

	doc, err := Unmarshal([]byte(give))
	require.NoError(t, err)

	assert.Equal(t, "my workflow", doc.Name)
	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, "Start", doc.Nodes[0].Name)
	assert.Equal(t, []float64{10, 20}, doc.Nodes[0].Position)
	assert.Equal(t, map[string]any{"label": "Start"}, doc.Nodes[0].Parameters)
	assert.True(t, doc.Nodes[1].Disabled)

	assert.Equal(t, node.ConnectionMap{
		"Start": {Main: [][]node.Connection{
			{{Node: "Hit", Type: "main", Index: 0}},
		}},
	}, doc.Connections)
}

func TestUnmarshal_YAML(t *testing.T) {
	give := `
name: my workflow
nodes:
  - id: "1"
    name: Start
    type: manualTrigger
    position: [0, 0]
  - id: "2"
    name: Hit
    type: httpRequest
    position: [200, 0]
connections:
  Start:
    main:
      - - node: Hit
          type: main
          index: 0
`

	doc, err := Unmarshal([]byte(give))
	require.NoError(t, err)

	assert.Equal(t, "my workflow", doc.Name)
	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, "manualTrigger", doc.Nodes[0].Type)
	assert.Equal(t, node.ConnectionMap{
		"Start": {Main: [][]node.Connection{
			{{Node: "Hit", Type: "main", Index: 0}},
		}},
	}, doc.Connections)
}

func TestUnmarshal_Invalid(t *testing.T) {
	_, err := Unmarshal([]byte(`{"nodes": "not a list"}`))
	assert.Error(t, err)
}

func TestUnmarshalEditor(t *testing.T) {
	give := `{
  "nodes": [
    {"id": "1", "type": "manualTrigger", "position": {"x": 10, "y": 20}, "data": {"label": "Start"}},
    {"id": "2", "type": "if", "position": {"x": 200, "y": 20}, "data": {"label": "Branch", "condition": "input.ok"}}
  ],
  "edges": [
    {"id": "e1", "source": "1", "target": "2", "sourceHandle": "true"}
  ]
}`

	doc, err := UnmarshalEditor([]byte(give))
	require.NoError(t, err)

	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, 10.0, doc.Nodes[0].Position.X)
	assert.Equal(t, "Start", doc.Nodes[0].Data["label"])

	require.Len(t, doc.Edges, 1)
	assert.Equal(t, "true", doc.Edges[0].SourceHandle)
}
