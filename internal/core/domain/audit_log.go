package domain

// FieldChange is one changed field inside a raw audit entry. Old and new
// values arrive as arbitrary JSON scalars; the adapter stringifies them,
// leaving "" for null/absent values.
type FieldChange struct {
	Field            string `json:"field"`
	FieldDescription string `json:"fieldDescription"`
	OldValue         string `json:"oldValue"`
	NewValue         string `json:"newValue"`
}

// AuditLogEntry is one raw per-model audit entry from the backend.
type AuditLogEntry struct {
	ID           string        `json:"id"`
	User         string        `json:"user"`
	Date         string        `json:"date"`
	RecordID     string        `json:"recordId"`
	FieldChanges []FieldChange `json:"fieldChanges"`
}

// AuditModelLog groups the raw entries of a single model. The backend
// sends the audit payload keyed by model name; the adapter preserves the
// key order it was sent in, which is why this is a slice and not a map.
type AuditModelLog struct {
	Model   string          `json:"model"`
	Entries []AuditLogEntry `json:"entries"`
}

// ChangeRecord is one flattened, human-readable line of the change feed.
type ChangeRecord struct {
	Key        string `json:"key"`
	Time       string `json:"time"`
	ActorName  string `json:"actorName"`
	ModelName  string `json:"modelName"`
	RecordID   string `json:"recordId,omitempty"`
	FieldLabel string `json:"fieldLabel,omitempty"`
	OldValue   string `json:"oldValue,omitempty"`
	NewValue   string `json:"newValue,omitempty"`
	Sentence   string `json:"sentence"`
}
