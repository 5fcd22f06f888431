package domain

import "strings"

// OperationKind distinguishes the independent async operations a resource
// controller runs. Each kind has its own state and error channel.
type OperationKind string

const (
	OpList   OperationKind = "list"
	OpCreate OperationKind = "create"
	OpUpdate OperationKind = "update"
	OpDelete OperationKind = "delete"
)

// ParseOperationKind converts a string into an OperationKind.
func ParseOperationKind(s string) (OperationKind, bool) {
	switch OperationKind(strings.ToLower(strings.TrimSpace(s))) {
	case OpList:
		return OpList, true
	case OpCreate:
		return OpCreate, true
	case OpUpdate:
		return OpUpdate, true
	case OpDelete:
		return OpDelete, true
	}
	return "", false
}

// OperationStatus is the per-kind state machine:
// Idle -> Pending -> (Succeeded | Failed) -> Idle. A new request from any
// state resets to Pending, clearing only that kind's previous error.
type OperationStatus string

const (
	OpIdle      OperationStatus = "idle"
	OpPending   OperationStatus = "pending"
	OpSucceeded OperationStatus = "succeeded"
	OpFailed    OperationStatus = "failed"
)

// OperationState pairs the status of one operation kind with its last
// normalized error message ("" when none).
type OperationState struct {
	Status OperationStatus `json:"status"`
	Error  string          `json:"error,omitempty"`
}
