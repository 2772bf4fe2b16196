package flowgraph

import (
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/rakeshgangwar/flowgraph/pkg/editor"
	"github.com/rakeshgangwar/flowgraph/pkg/node"
)

// Document is a stored workflow definition: the execution graph plus
// the workflow's own display name.
type Document struct {
	Name        string             `json:"name" yaml:"name"`
	Nodes       []node.Node        `json:"nodes" yaml:"nodes"`
	Connections node.ConnectionMap `json:"connections" yaml:"connections"`
}

// EditorDocument is an editor graph export: nodes with canvas
// positions and a flat edge list.
type EditorDocument struct {
	Name  string        `json:"name,omitempty" yaml:"name,omitempty"`
	Nodes []editor.Node `json:"nodes" yaml:"nodes"`
	Edges []editor.Edge `json:"edges" yaml:"edges"`
}

// Unmarshal parses a workflow document. Both YAML and JSON input are
// accepted, since YAML is a superset of JSON.
func Unmarshal(data []byte) (*Document, error) {
	var d Document
	err := yaml.Unmarshal(data, &d)
	if err != nil {
		return nil, errors.Wrap(err, "parsing workflow document")
	}
	return &d, nil
}

// UnmarshalEditor parses an editor graph export. Both YAML and JSON
// input are accepted.
func UnmarshalEditor(data []byte) (*EditorDocument, error) {
	var d EditorDocument
	err := yaml.Unmarshal(data, &d)
	if err != nil {
		return nil, errors.Wrap(err, "parsing editor document")
	}
	return &d, nil
}
