// Package issue contains the structured issue definition
// reported by workflow validation and linting.
package issue

import "fmt"

// Severity partitions issues into blocking errors and advisory warnings.
type Severity string

const (
	Error   Severity = "error"
	Warning Severity = "warning"
)

// Issue is a single validation finding. Malformed graph content is
// always reported as an Issue, never as a Go error.
type Issue struct {
	// NodeID identifies the node the issue relates to.
	// Empty for workflow-level issues.
	NodeID string `json:"nodeId,omitempty" yaml:"nodeId,omitempty"`

	Message  string   `json:"message" yaml:"message"`
	Severity Severity `json:"severity" yaml:"severity"`
}

func (i Issue) String() string {
	if i.NodeID == "" {
		return fmt.Sprintf("%s: %s", i.Severity, i.Message)
	}
	return fmt.Sprintf("%s: %s (node %s)", i.Severity, i.Message, i.NodeID)
}

// Errorf creates a blocking error issue. nodeID may be empty
// for workflow-level issues.
func Errorf(nodeID string, format string, args ...any) Issue {
	return Issue{
		NodeID:   nodeID,
		Message:  fmt.Sprintf(format, args...),
		Severity: Error,
	}
}

// Warnf creates an advisory warning issue.
func Warnf(nodeID string, format string, args ...any) Issue {
	return Issue{
		NodeID:   nodeID,
		Message:  fmt.Sprintf(format, args...),
		Severity: Warning,
	}
}
