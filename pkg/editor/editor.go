// Package editor defines the editor graph data model: the spatial,
// UI-facing node and edge representation used by the visual workflow
// designer.
package editor

// Position is a 2D coordinate on the editor canvas.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Node is a node as authored in the visual editor.
type Node struct {
	ID       string   `json:"id" yaml:"id"`
	Type     string   `json:"type" yaml:"type"`
	Position Position `json:"position" yaml:"position"`

	// Data is the node's display data: an optional "label" plus
	// arbitrary node type specific parameters.
	Data map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
}

// Edge is a directed edge between two editor nodes, referencing them
// by node ID.
type Edge struct {
	ID     string `json:"id" yaml:"id"`
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`

	// Type is an optional edge type label set by the editor.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// SourceHandle names the output port the edge leaves from.
	// Empty for the default port.
	SourceHandle string `json:"sourceHandle,omitempty" yaml:"sourceHandle,omitempty"`
}
