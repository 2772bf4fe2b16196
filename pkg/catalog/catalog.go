// Package catalog defines the closed set of node types a workflow may
// use, and classifies which of them are triggers.
//
// The validator only consults the trigger classification; the typed
// parameter structs are used by the expression linter.
package catalog

import "github.com/mitchellh/mapstructure"

// The built-in node type tags.
const (
	TypeManualTrigger   = "manualTrigger"
	TypeWebhookTrigger  = "webhookTrigger"
	TypeScheduleTrigger = "scheduleTrigger"
	TypeEventTrigger    = "eventTrigger"
	TypeHTTPRequest     = "httpRequest"
	TypeIf              = "if"
	TypeSwitch          = "switch"
	TypeCode            = "code"
	TypeSet             = "set"
	TypeMerge           = "merge"
	TypeNoOp            = "noOp"
)

// Definition describes a single node type.
type Definition struct {
	// Type is the unique node type tag, e.g. "webhookTrigger".
	Type string

	// Name is a friendly display name for the node type.
	Name string

	// Trigger marks types that are permitted to initiate
	// a workflow run.
	Trigger bool
}

// Catalog is the set of node types known to the system,
// keyed by type tag.
type Catalog map[string]Definition

// Default returns the built-in node type catalog.
func Default() Catalog {
	return Catalog{
		TypeManualTrigger:   {Type: TypeManualTrigger, Name: "Manual Trigger", Trigger: true},
		TypeWebhookTrigger:  {Type: TypeWebhookTrigger, Name: "Webhook Trigger", Trigger: true},
		TypeScheduleTrigger: {Type: TypeScheduleTrigger, Name: "Schedule Trigger", Trigger: true},
		TypeEventTrigger:    {Type: TypeEventTrigger, Name: "Event Trigger", Trigger: true},
		TypeHTTPRequest:     {Type: TypeHTTPRequest, Name: "HTTP Request"},
		TypeIf:              {Type: TypeIf, Name: "If"},
		TypeSwitch:          {Type: TypeSwitch, Name: "Switch"},
		TypeCode:            {Type: TypeCode, Name: "Code"},
		TypeSet:             {Type: TypeSet, Name: "Set"},
		TypeMerge:           {Type: TypeMerge, Name: "Merge"},
		TypeNoOp:            {Type: TypeNoOp, Name: "No Operation"},
	}
}

// IsTrigger reports whether the given node type is permitted
// to initiate a workflow run. Unknown types are never triggers.
func (c Catalog) IsTrigger(nodeType string) bool {
	d, ok := c[nodeType]
	return ok && d.Trigger
}

// ConditionParameters are the parameters of "if" and "switch" nodes.
type ConditionParameters struct {
	// Condition is a boolean CEL expression over the workflow input.
	Condition string `mapstructure:"condition"`
}

// ScheduleParameters are the parameters of a schedule trigger.
type ScheduleParameters struct {
	Cron string `mapstructure:"cron"`
}

// WebhookParameters are the parameters of a webhook trigger.
type WebhookParameters struct {
	Path   string `mapstructure:"path"`
	Method string `mapstructure:"method"`
}

// DecodeParameters decodes a node's free-form parameter bag into a
// typed parameter struct.
func DecodeParameters(params map[string]any, out any) error {
	return mapstructure.Decode(params, out)
}
