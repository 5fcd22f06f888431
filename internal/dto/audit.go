package dto

import "github.com/harbourline/freight_console_app/internal/core/domain"

// ChangeRecordResponse is one line of the rendered change feed.
type ChangeRecordResponse struct {
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

// ListChangesResponse is one page of the change feed.
type ListChangesResponse struct {
	Page    int                    `json:"page"`
	Changes []ChangeRecordResponse `json:"changes"`
}

// ToListChangesResponse converts normalized change records into the
// page DTO.
func ToListChangesResponse(page int, changes []domain.ChangeRecord) ListChangesResponse {
	res := ListChangesResponse{
		Page:    page,
		Changes: make([]ChangeRecordResponse, len(changes)),
	}
	for i, c := range changes {
		res.Changes[i] = ChangeRecordResponse{
			Key:        c.Key,
			Time:       c.Time,
			ActorName:  c.ActorName,
			ModelName:  c.ModelName,
			RecordID:   c.RecordID,
			FieldLabel: c.FieldLabel,
			OldValue:   c.OldValue,
			NewValue:   c.NewValue,
			Sentence:   c.Sentence,
		}
	}
	return res
}
