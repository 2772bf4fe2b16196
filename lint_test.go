package flowgraph

import (
	"testing"

	"github.com/rakeshgangwar/flowgraph/pkg/node"
	"github.com/rakeshgangwar/flowgraph/pkg/paramcel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLint(t *testing.T) {
	schema := &paramcel.Schema{
		Properties: map[string]*paramcel.Schema{
			"name": {Type: paramcel.String},
			"ok":   {Type: paramcel.Boolean},
		},
	}

	tests := []struct {
		name   string
		give   []node.Node
		schema *paramcel.Schema
		want   []string
	}{
		{
			name:   "ok",
			schema: schema,
			give: []node.Node{
				{ID: "1", Name: "Branch", Type: "if", Parameters: map[string]any{"condition": `input.name == "test"`}},
			},
		},
		{
			name: "condition does not compile",
			give: []node.Node{
				{ID: "1", Name: "Branch", Type: "if", Parameters: map[string]any{"condition": "aaaa"}},
			},
			want: []string{`node "Branch" condition does not compile`},
		},
		{
			name: "condition must return a boolean",
			give: []node.Node{
				{ID: "1", Name: "Branch", Type: "if", Parameters: map[string]any{"condition": `"hello"`}},
			},
			want: []string{`node "Branch" condition must return a boolean`},
		},
		{
			name: "missing condition",
			give: []node.Node{
				{ID: "1", Name: "Branch", Type: "switch"},
			},
			want: []string{`node "Branch" has no condition expression`},
		},
		{
			name: "schedule trigger without cron",
			give: []node.Node{
				{ID: "1", Name: "Every day", Type: "scheduleTrigger"},
			},
			want: []string{`schedule trigger "Every day" has no cron expression`},
		},
		{
			name: "webhook trigger with path",
			give: []node.Node{
				{ID: "1", Name: "In", Type: "webhookTrigger", Parameters: map[string]any{"path": "/hooks/in"}},
			},
		},
		{
			name: "non-expression nodes are ignored",
			give: []node.Node{
				{ID: "1", Name: "Fetch", Type: "httpRequest", Parameters: map[string]any{"url": "https://example.com"}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Linter{InputSchema: tt.schema}
			got, err := l.Lint(tt.give)
			require.NoError(t, err)

			require.Len(t, got, len(tt.want))
			for i, want := range tt.want {
				assert.Contains(t, got[i].Message, want)
			}
		})
	}
}
