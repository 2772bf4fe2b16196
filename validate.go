package flowgraph

import (
	"sort"
	"strings"

	"github.com/rakeshgangwar/flowgraph/pkg/catalog"
	"github.com/rakeshgangwar/flowgraph/pkg/issue"
	"github.com/rakeshgangwar/flowgraph/pkg/node"
)

// Result is the outcome of validating a workflow.
// Warnings never affect Valid.
type Result struct {
	Valid    bool          `json:"valid"`
	Errors   []issue.Issue `json:"errors"`
	Warnings []issue.Issue `json:"warnings"`
}

// Validator runs the static structural checks on an execution graph.
type Validator struct {
	// Catalog classifies node types. Defaults to catalog.Default()
	// if not provided.
	Catalog catalog.Catalog
}

// Validate runs all checks with the default catalog.
func Validate(name string, nodes []node.Node, connections node.ConnectionMap) Result {
	v := Validator{}
	return v.Validate(name, nodes, connections)
}

// Validate statically checks an execution graph before execution is
// permitted. All checks always run; none short-circuits another.
// Malformed graph content is reported as issues, never as a panic.
func (v *Validator) Validate(name string, nodes []node.Node, connections node.ConnectionMap) Result {
	// set a default catalog if it isn't provided.
	if v.Catalog == nil {
		v.Catalog = catalog.Default()
	}

	var errs, warns []issue.Issue

	if strings.TrimSpace(name) == "" {
		errs = append(errs, issue.Errorf("", "workflow name is required"))
	}

	if len(nodes) == 0 {
		errs = append(errs, issue.Errorf("", "workflow must contain at least one node"))
	}

	// only meaningful on a non-empty graph; the empty case is already
	// reported above.
	if len(nodes) > 0 && !v.hasTrigger(nodes) {
		errs = append(errs, issue.Errorf("", "workflow must contain at least one trigger node"))
	}

	nodeErrs, nodeWarns := v.checkNodes(nodes)
	errs = append(errs, nodeErrs...)
	warns = append(warns, nodeWarns...)

	errs = append(errs, v.checkConnections(nodes, connections)...)
	warns = append(warns, v.checkReachability(nodes, connections)...)
	warns = append(warns, v.checkCycles(nodes, connections)...)

	return Result{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
	}
}

func (v *Validator) hasTrigger(nodes []node.Node) bool {
	for _, n := range nodes {
		if v.Catalog.IsTrigger(n.Type) {
			return true
		}
	}
	return false
}

// checkNodes verifies that every node has a non-empty, unique ID and a
// non-empty, unique name. IDs and names are tracked independently.
// Disabled nodes produce a warning.
func (v *Validator) checkNodes(nodes []node.Node) (errs, warns []issue.Issue) {
	idCount := make(map[string]int, len(nodes))
	nameCount := make(map[string]int, len(nodes))
	for _, n := range nodes {
		idCount[n.ID]++
		nameCount[n.Name]++
	}

	for _, n := range nodes {
		if n.ID == "" {
			errs = append(errs, issue.Errorf("", "node %q has an empty id", n.Name))
		} else if idCount[n.ID] > 1 {
			errs = append(errs, issue.Errorf(n.ID, "duplicate node id %q", n.ID))
		}

		if n.Name == "" {
			errs = append(errs, issue.Errorf(n.ID, "node %q has an empty name", n.ID))
		} else if nameCount[n.Name] > 1 {
			errs = append(errs, issue.Errorf(n.ID, "duplicate node name %q", n.Name))
		}

		if n.Disabled {
			warns = append(warns, issue.Warnf(n.ID, "node %q is disabled and will not execute", n.Name))
		}
	}

	return errs, warns
}

// checkConnections verifies referential integrity of the connection
// map: every source key and every connection target must name an
// existing node, and no connection may target its own source.
//
// Known sources are visited in node list order, then unknown sources
// in sorted order, so issue ordering is stable across runs.
func (v *Validator) checkConnections(nodes []node.Node, connections node.ConnectionMap) []issue.Issue {
	known := make(map[string]node.Node, len(nodes))
	for _, n := range nodes {
		known[n.Name] = n
	}

	var errs []issue.Issue

	checkSource := func(sourceName string) {
		source := known[sourceName]
		for _, group := range connections[sourceName].Main {
			for _, c := range group {
				if _, ok := known[c.Node]; !ok {
					errs = append(errs, issue.Errorf(source.ID, "connection from %q targets unknown node %q", sourceName, c.Node))
				} else if c.Node == sourceName {
					errs = append(errs, issue.Errorf(source.ID, "node %q must not connect to itself", sourceName))
				}
			}
		}
	}

	seen := make(map[string]bool, len(connections))
	for _, n := range nodes {
		if _, ok := connections[n.Name]; !ok || seen[n.Name] {
			continue
		}
		seen[n.Name] = true
		checkSource(n.Name)
	}

	var unknown []string
	for sourceName := range connections {
		if _, ok := known[sourceName]; !ok {
			unknown = append(unknown, sourceName)
		}
	}
	sort.Strings(unknown)
	for _, sourceName := range unknown {
		// don't inspect the orphaned source's groups; there is no
		// point validating structure that cannot execute.
		errs = append(errs, issue.Errorf("", "connections reference unknown node %q", sourceName))
	}

	return errs
}

// checkReachability warns about nodes that cannot be reached by
// forward traversal from any trigger node. Unreachable nodes are not
// fatal: a disconnected node might be intentionally parked mid-edit.
//
// If the workflow has no trigger nodes at all, every node is reported
// unreachable.
func (v *Validator) checkReachability(nodes []node.Node, connections node.ConnectionMap) []issue.Issue {
	if len(nodes) == 0 {
		return nil
	}

	var triggers []node.Node
	for _, n := range nodes {
		if v.Catalog.IsTrigger(n.Type) {
			triggers = append(triggers, n)
		}
	}

	idByName := make(map[string]string, len(nodes))
	for _, n := range nodes {
		idByName[n.Name] = n.ID
	}

	// visited node IDs, seeded with every trigger.
	visited := make(map[string]bool, len(nodes))
	for _, t := range triggers {
		visited[t.ID] = true
	}

	// depth-first walk forward from each trigger, with an explicit
	// stack so pathologically deep chains cannot exhaust the call
	// stack. Disabled state is ignored for reachability.
	var stack []string
	for _, t := range triggers {
		stack = append(stack[:0], t.Name)
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, group := range connections[current].Main {
				for _, c := range group {
					targetID, ok := idByName[c.Node]
					if !ok || visited[targetID] {
						continue
					}
					visited[targetID] = true
					stack = append(stack, c.Node)
				}
			}
		}
	}

	var warns []issue.Issue
	for _, n := range nodes {
		if !visited[n.ID] {
			warns = append(warns, issue.Warnf(n.ID, "node %q is not reachable from any trigger node", n.Name))
		}
	}
	return warns
}

// cycleFrame is one node on the explicit DFS stack used by
// checkCycles, tracking how many of its outgoing targets have been
// explored so far.
type cycleFrame struct {
	name string
	next int
}

// checkCycles runs DFS-based cycle detection over node names and warns
// once per discovered cycle, rendering the full closed path. Cycles
// are advisory only: some workflow semantics tolerate bounded loops.
//
// A cycle reachable from multiple DFS entry points before any of its
// members has been visited can be reported more than once; warnings
// are not deduplicated.
func (v *Validator) checkCycles(nodes []node.Node, connections node.ConnectionMap) []issue.Issue {
	// flatten each source's outgoing targets once, preserving port
	// group order.
	adjacency := make(map[string][]string, len(connections))
	for sourceName, nc := range connections {
		var targets []string
		for _, group := range nc.Main {
			for _, c := range group {
				targets = append(targets, c.Node)
			}
		}
		adjacency[sourceName] = targets
	}

	idByName := make(map[string]string, len(nodes))
	for _, n := range nodes {
		idByName[n.Name] = n.ID
	}

	visited := map[string]bool{}
	onStack := map[string]bool{}
	var path []string
	var warns []issue.Issue

	// DFS with an explicit frame stack rather than recursion, so the
	// walk is bounded regardless of graph depth. The path list mirrors
	// the current DFS branch for cycle reconstruction.
	for _, n := range nodes {
		if visited[n.Name] {
			continue
		}

		visited[n.Name] = true
		onStack[n.Name] = true
		path = append(path, n.Name)
		stack := []*cycleFrame{{name: n.Name}}

		for len(stack) > 0 {
			f := stack[len(stack)-1]
			targets := adjacency[f.name]

			if f.next >= len(targets) {
				// all outgoing edges explored; retreat. The node stays
				// visited but leaves the recursion stack.
				stack = stack[:len(stack)-1]
				onStack[f.name] = false
				path = path[:len(path)-1]
				continue
			}

			target := targets[f.next]
			f.next++

			if !visited[target] {
				visited[target] = true
				onStack[target] = true
				path = append(path, target)
				stack = append(stack, &cycleFrame{name: target})
				continue
			}

			if onStack[target] {
				// back edge: the cycle runs from the first occurrence
				// of the target on the current branch to here.
				start := 0
				for i, name := range path {
					if name == target {
						start = i
						break
					}
				}
				cycle := make([]string, 0, len(path)-start+1)
				cycle = append(cycle, path[start:]...)
				cycle = append(cycle, target)
				warns = append(warns, issue.Warnf(idByName[target], "cycle detected: %s", strings.Join(cycle, " -> ")))
			}
		}
	}

	return warns
}
