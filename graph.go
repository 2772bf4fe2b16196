package flowgraph

import (
	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"github.com/rakeshgangwar/flowgraph/pkg/catalog"
	"github.com/rakeshgangwar/flowgraph/pkg/node"
)

// Graph wraps an execution graph in a traversable directed graph
// structure, keyed by node name. It is used for DOT export and for
// downstream consumers that want standard graph operations rather
// than the wire shape.
type Graph struct {
	// G is the underlying graph data structure.
	G graph.Graph[string, node.Node]
}

// NewGraph builds a Graph from an execution graph.
//
// Connections referencing unknown node names are skipped rather than
// failing the build: rendering is best-effort and referential problems
// are the validator's to report. Trigger nodes are tagged with a
// distinct shape attribute for DOT output.
func NewGraph(nodes []node.Node, connections node.ConnectionMap) (*Graph, error) {
	cat := catalog.Default()
	g := graph.New(func(n node.Node) string { return n.Name }, graph.Directed())

	for _, n := range nodes {
		attrs := []func(*graph.VertexProperties){
			graph.VertexAttribute("label", n.Name),
		}
		if cat.IsTrigger(n.Type) {
			attrs = append(attrs, graph.VertexAttribute("shape", "Mdiamond"))
		}

		err := g.AddVertex(n, attrs...)
		// duplicate names collapse into a single vertex; the validator
		// reports them separately.
		if err != nil && err != graph.ErrVertexAlreadyExists {
			return nil, errors.Wrapf(err, "adding vertex %s", n.Name)
		}
	}

	for _, n := range nodes {
		for _, group := range connections[n.Name].Main {
			for _, c := range group {
				var opts []func(*graph.EdgeProperties)
				if c.Type != node.DefaultPort {
					opts = append(opts, graph.EdgeAttribute("label", c.Type))
				}

				err := g.AddEdge(n.Name, c.Node, opts...)
				if err == graph.ErrVertexNotFound || err == graph.ErrEdgeAlreadyExists {
					continue
				}
				if err != nil {
					return nil, errors.Wrapf(err, "adding edge %s -> %s", n.Name, c.Node)
				}
			}
		}
	}

	return &Graph{G: g}, nil
}
