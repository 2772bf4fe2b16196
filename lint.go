package flowgraph

import (
	"github.com/google/cel-go/cel"
	"github.com/rakeshgangwar/flowgraph/pkg/catalog"
	"github.com/rakeshgangwar/flowgraph/pkg/issue"
	"github.com/rakeshgangwar/flowgraph/pkg/node"
	"github.com/rakeshgangwar/flowgraph/pkg/paramcel"
)

// Linter statically checks node parameters: condition expressions on
// "if" and "switch" nodes are compiled as CEL against the declared
// input shape, and trigger parameters are checked for obvious
// omissions.
//
// Lint findings are advisory warnings, separate from Validate: they
// never block execution, and linting enforces no runtime semantics.
type Linter struct {
	// Catalog classifies node types. Defaults to catalog.Default()
	// if not provided.
	Catalog catalog.Catalog

	// InputSchema types the 'input' object available to condition
	// expressions. If nil, conditions may only reference literals.
	InputSchema *paramcel.Schema
}

// Lint checks every node's parameters and returns the findings.
// The returned error reports construction failures of the CEL
// environment only, never problems with workflow content.
func (l *Linter) Lint(nodes []node.Node) ([]issue.Issue, error) {
	if l.Catalog == nil {
		l.Catalog = catalog.Default()
	}

	// set up the type for the 'input' object, based on the provided
	// JSON schema.
	p := paramcel.NewProvider("input", l.InputSchema)

	env, err := cel.NewEnv(
		cel.CustomTypeProvider(p),
		cel.Variable("input", cel.ObjectType("input")),
	)
	if err != nil {
		return nil, err
	}

	var issues []issue.Issue
	for _, n := range nodes {
		switch n.Type {
		case catalog.TypeIf, catalog.TypeSwitch:
			issues = append(issues, lintCondition(env, n)...)
		case catalog.TypeScheduleTrigger:
			var params catalog.ScheduleParameters
			if err := catalog.DecodeParameters(n.Parameters, &params); err != nil {
				issues = append(issues, issue.Warnf(n.ID, "node %q has malformed parameters: %s", n.Name, err))
				continue
			}
			if params.Cron == "" {
				issues = append(issues, issue.Warnf(n.ID, "schedule trigger %q has no cron expression", n.Name))
			}
		case catalog.TypeWebhookTrigger:
			var params catalog.WebhookParameters
			if err := catalog.DecodeParameters(n.Parameters, &params); err != nil {
				issues = append(issues, issue.Warnf(n.ID, "node %q has malformed parameters: %s", n.Name, err))
				continue
			}
			if params.Path == "" {
				issues = append(issues, issue.Warnf(n.ID, "webhook trigger %q has no path", n.Name))
			}
		}
	}

	return issues, nil
}

func lintCondition(env *cel.Env, n node.Node) []issue.Issue {
	var params catalog.ConditionParameters
	if err := catalog.DecodeParameters(n.Parameters, &params); err != nil {
		return []issue.Issue{issue.Warnf(n.ID, "node %q has malformed parameters: %s", n.Name, err)}
	}
	if params.Condition == "" {
		return []issue.Issue{issue.Warnf(n.ID, "node %q has no condition expression", n.Name)}
	}

	ast, issues := env.Compile(params.Condition)
	if issues != nil && issues.Err() != nil {
		return []issue.Issue{issue.Warnf(n.ID, "node %q condition does not compile: %s", n.Name, issues.Err())}
	}
	if ast.OutputType() != cel.BoolType {
		return []issue.Issue{issue.Warnf(n.ID, "node %q condition must return a boolean (returned %s instead)", n.Name, ast.OutputType())}
	}
	return nil
}
