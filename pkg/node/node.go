// Package node defines the execution graph data model: name-addressed
// workflow nodes and their port-grouped outgoing connections.
package node

// DefaultPort is the port a connection falls under when the editor
// edge carries no handle label.
const DefaultPort = "main"

// Node is a single step in a workflow.
type Node struct {
	// ID is an opaque unique identifier, assigned by the editor
	// and stable across edits.
	ID string `json:"id" yaml:"id"`

	// Name is the human-chosen display name. Connections address
	// nodes by name, not by ID.
	Name string `json:"name" yaml:"name"`

	// Type is a tag drawn from the node type catalog,
	// e.g. "manualTrigger" or "httpRequest".
	Type string `json:"type" yaml:"type"`

	// Position is the [x, y] coordinate of the node in the editor.
	// It has no execution meaning.
	Position []float64 `json:"position" yaml:"position"`

	// Parameters is the node's free-form configuration bag.
	// The editor display label is folded into it under "label".
	Parameters map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`

	// Disabled nodes are kept in the graph but will not execute.
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Connection is a directed edge from a named output port on a source
// node to a target node, addressed by the target's name.
type Connection struct {
	// Node is the name of the target node.
	Node string `json:"node" yaml:"node"`

	// Type is the port identifier on the source side,
	// e.g. "main", or "true"/"false" for conditional branches.
	Type string `json:"type" yaml:"type"`

	// Index is the zero-based position of this connection within its
	// port group. It is derived data, recomputed on every conversion.
	Index int `json:"index" yaml:"index"`
}

// Connections holds a source node's outgoing connections.
//
// Main contains one group per output port, in the order the ports were
// first encountered. Every connection within a group shares the same
// port identifier.
type Connections struct {
	Main [][]Connection `json:"main" yaml:"main"`
}

// ConnectionMap maps source node names to their outgoing connections.
// Together with a node list it forms the execution graph.
type ConnectionMap map[string]Connections
