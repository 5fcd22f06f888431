package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/harbourline/freight_console_app/internal/core/ports/repositories"
)

// AuditLogRepository fetches raw audit pages from the backend.
type AuditLogRepository struct {
	client *Client
}

func NewAuditLogRepository(client *Client) repositories.AuditLogRepositoryFacade {
	return &AuditLogRepository{client: client}
}

type fieldChangeWire struct {
	Field            string          `json:"field"`
	FieldDescription string          `json:"field_description"`
	OldValue         json.RawMessage `json:"old_value"`
	NewValue         json.RawMessage `json:"new_value"`
}

type auditEntryWire struct {
	ID           flexID            `json:"id"`
	User         string            `json:"user"`
	Date         string            `json:"date"`
	RecordID     flexID            `json:"record_id"`
	FieldChanges []fieldChangeWire `json:"field_changes"`
}

func (w auditEntryWire) toDomain() domain.AuditLogEntry {
	entry := domain.AuditLogEntry{
		ID:       w.ID.String(),
		User:     w.User,
		Date:     w.Date,
		RecordID: w.RecordID.String(),
	}
	for _, c := range w.FieldChanges {
		entry.FieldChanges = append(entry.FieldChanges, domain.FieldChange{
			Field:            c.Field,
			FieldDescription: c.FieldDescription,
			OldValue:         scalarString(c.OldValue),
			NewValue:         scalarString(c.NewValue),
		})
	}
	return entry
}

// FetchLogs requests one page of audit history. The offset is passed to
// the backend exactly as given; the page-to-offset mapping is the
// service's concern.
func (r *AuditLogRepository) FetchLogs(ctx context.Context, currentUser string, limit, offset int) ([]domain.AuditModelLog, error) {
	payload := struct {
		CurrentUser string `json:"current_user"`
		Limit       int    `json:"limit"`
		Offset      int    `json:"offset"`
	}{CurrentUser: currentUser, Limit: limit, Offset: offset}

	var body struct {
		Logs json.RawMessage `json:"logs"`
	}
	if err := r.client.call(ctx, http.MethodPost, "/audit-logs", payload, &body); err != nil {
		return nil, err
	}
	return decodeModelLogs(body.Logs)
}

// decodeModelLogs decodes the `{model: entries[]}` audit object while
// preserving the key order the backend sent it in. A plain map decode
// would randomize model order, so the object is walked token by token.
func decodeModelLogs(raw json.RawMessage) ([]domain.AuditModelLog, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to decode audit logs: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("audit logs payload is not an object (got %v)", tok)
	}

	var logs []domain.AuditModelLog
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to decode audit logs: %w", err)
		}
		model, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected audit log key %v", keyTok)
		}

		var entries []auditEntryWire
		if err := dec.Decode(&entries); err != nil {
			return nil, fmt.Errorf("failed to decode audit entries for model %s: %w", model, err)
		}

		modelLog := domain.AuditModelLog{Model: model}
		for _, e := range entries {
			modelLog.Entries = append(modelLog.Entries, e.toDomain())
		}
		logs = append(logs, modelLog)
	}
	return logs, nil
}

// scalarString renders an arbitrary JSON scalar as its display string.
// null and absent values come back as "", which downstream rendering
// shows as the "empty" token.
func scalarString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}
