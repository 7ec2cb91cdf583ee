package domain

// AlertKind classifies a transient user notification
type AlertKind string

const (
	AlertNone         AlertKind = ""
	AlertError        AlertKind = "error"
	AlertSuccess      AlertKind = "success"
	AlertNetworkError AlertKind = "network_error"
)

// AlertState is the single-slot transient message shown to the guest.
type AlertState struct {
	Message string
	Kind    AlertKind
}

// IsEmpty returns true if no alert is pending
func (a AlertState) IsEmpty() bool {
	return a.Kind == AlertNone && a.Message == ""
}

// WorkflowState is the booking workflow's state after a submission.
type WorkflowState string

const (
	StateIdle         WorkflowState = "idle"
	StateValidating   WorkflowState = "validating"
	StateInputError   WorkflowState = "input_error"
	StateConflict     WorkflowState = "conflict"
	StateSubmitting   WorkflowState = "submitting"
	StateSuccess      WorkflowState = "success"
	StateNetworkError WorkflowState = "network_error"
)
