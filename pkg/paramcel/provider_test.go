package paramcel

import (
	"testing"

	"github.com/google/cel-go/cel"
)

func newTestEnv(t *testing.T, schema *Schema) *cel.Env {
	t.Helper()

	p := NewProvider("input", schema)
	env, err := cel.NewEnv(
		cel.CustomTypeProvider(p),
		cel.Variable("input", cel.ObjectType("input")),
	)
	if err != nil {
		t.Fatal(err)
	}
	return env
}

func TestProvider(t *testing.T) {
	env := newTestEnv(t, &Schema{
		Properties: map[string]*Schema{
			"name": {
				Type: String,
			},
			"group": {
				Type: Object,
				Properties: map[string]*Schema{
					"id": {
						Type: String,
					},
				},
			},
		},
	})

	_, issues := env.Compile(`input.group.id == "world"`)
	if issues != nil && issues.Err() != nil {
		t.Fatal(issues.Err())
	}
}

func TestProvider_UnknownField(t *testing.T) {
	env := newTestEnv(t, &Schema{
		Properties: map[string]*Schema{
			"name": {Type: String},
		},
	})

	_, issues := env.Compile(`input.missing == "world"`)
	if issues == nil || issues.Err() == nil {
		t.Fatal("expected a compile error for an undeclared field")
	}
}

func TestProvider_AdditionalProperties(t *testing.T) {
	env := newTestEnv(t, &Schema{
		Properties: map[string]*Schema{
			"tags": {
				Type:                 Object,
				AdditionalProperties: true,
			},
		},
	})

	// selections into an open object cannot be checked, so any key is
	// accepted.
	_, issues := env.Compile(`input.tags.prod == true`)
	if issues != nil && issues.Err() != nil {
		t.Fatal(issues.Err())
	}
}
