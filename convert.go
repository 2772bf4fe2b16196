package flowgraph

import (
	"fmt"

	"github.com/rakeshgangwar/flowgraph/pkg/editor"
	"github.com/rakeshgangwar/flowgraph/pkg/node"
)

// ToExecutionGraph converts an editor graph into the name-addressed
// execution graph consumed by the workflow runner.
//
// Node names are taken from the editor node's "label" data field,
// falling back to the node ID when no label is set. Edges whose source
// or target ID does not resolve to a node are skipped silently: the
// editor may transiently hold dangling edges during interactive
// editing, and conversion is deliberately best-effort.
//
// Every connection in the result references a name present in the
// returned node list. Uniqueness of IDs and names is not enforced
// here; that is the validator's job.
func ToExecutionGraph(editorNodes []editor.Node, editorEdges []editor.Edge) ([]node.Node, node.ConnectionMap) {
	nodes := make([]node.Node, 0, len(editorNodes))
	for _, en := range editorNodes {
		name := en.ID
		if label, ok := en.Data["label"].(string); ok && label != "" {
			name = label
		}

		// fold the label back into the parameter bag so the
		// reverse conversion is lossless.
		params := make(map[string]any, len(en.Data)+1)
		for k, v := range en.Data {
			params[k] = v
		}
		params["label"] = name

		n := node.Node{
			ID:         en.ID,
			Name:       name,
			Type:       en.Type,
			Position:   []float64{en.Position.X, en.Position.Y},
			Parameters: params,
		}
		if disabled, ok := en.Data["disabled"].(bool); ok {
			n.Disabled = disabled
		}
		nodes = append(nodes, n)
	}

	nameByID := make(map[string]string, len(nodes))
	for _, n := range nodes {
		nameByID[n.ID] = n.Name
	}

	connections := node.ConnectionMap{}
	for _, e := range editorEdges {
		sourceName, ok := nameByID[e.Source]
		if !ok {
			continue
		}
		targetName, ok := nameByID[e.Target]
		if !ok {
			continue
		}

		port := e.SourceHandle
		if port == "" {
			port = e.Type
		}
		if port == "" {
			port = node.DefaultPort
		}

		nc := connections[sourceName]

		// locate the port group for this edge. Groups are created in
		// the order ports are first encountered.
		group := -1
		for i, g := range nc.Main {
			if len(g) > 0 && g[0].Type == port {
				group = i
				break
			}
		}

		c := node.Connection{Node: targetName, Type: port}
		if group == -1 {
			nc.Main = append(nc.Main, []node.Connection{c})
		} else {
			c.Index = len(nc.Main[group])
			nc.Main[group] = append(nc.Main[group], c)
		}
		connections[sourceName] = nc
	}

	return nodes, connections
}

// ToEditorGraph converts an execution graph back into the editor
// representation, for loading a stored workflow into the visual
// designer.
//
// Edge IDs are synthesized as "e-<sourceID>-<targetID>-<sequence>"
// using a counter local to this call, so repeated conversions are
// independent. Connections are walked in node list order so the output
// is deterministic across runs. Connections targeting a name absent
// from the node list are skipped silently, mirroring the forward
// direction's dangling-edge policy.
func ToEditorGraph(nodes []node.Node, connections node.ConnectionMap) ([]editor.Node, []editor.Edge) {
	editorNodes := make([]editor.Node, 0, len(nodes))
	idByName := make(map[string]string, len(nodes))

	for _, n := range nodes {
		idByName[n.Name] = n.ID

		data := make(map[string]any, len(n.Parameters)+1)
		for k, v := range n.Parameters {
			data[k] = v
		}
		// the editor displays the node name, not the raw ID.
		data["label"] = n.Name
		if n.Disabled {
			data["disabled"] = true
		}

		var pos editor.Position
		if len(n.Position) >= 2 {
			pos = editor.Position{X: n.Position[0], Y: n.Position[1]}
		}

		editorNodes = append(editorNodes, editor.Node{
			ID:       n.ID,
			Type:     n.Type,
			Position: pos,
			Data:     data,
		})
	}

	var edges []editor.Edge
	var seq int
	for _, n := range nodes {
		nc, ok := connections[n.Name]
		if !ok {
			continue
		}
		for _, group := range nc.Main {
			for _, c := range group {
				targetID, ok := idByName[c.Node]
				if !ok {
					continue
				}
				seq++
				e := editor.Edge{
					ID:     fmt.Sprintf("e-%s-%s-%d", n.ID, targetID, seq),
					Source: n.ID,
					Target: targetID,
				}
				// only non-default ports carry a handle label, to keep
				// the common case free of handle clutter.
				if c.Type != node.DefaultPort {
					e.SourceHandle = c.Type
				}
				edges = append(edges, e)
			}
		}
	}

	return editorNodes, edges
}
