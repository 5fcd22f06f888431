package services

import (
	"context"
	"fmt"

	"github.com/harbourline/freight_console_app/internal/apperrors"
	"github.com/harbourline/freight_console_app/internal/core/domain"
	portsrepo "github.com/harbourline/freight_console_app/internal/core/ports/repositories"
	portssvc "github.com/harbourline/freight_console_app/internal/core/ports/services"
)

// emptyValueToken is what null/absent old and new values render as
// inside a change sentence.
const emptyValueToken = "empty"

// auditService fetches raw audit pages and flattens them into the
// change feed.
type auditService struct {
	BaseService
	repo portsrepo.AuditLogRepositoryFacade
}

// NewAuditService creates the audit history service.
func NewAuditService(repo portsrepo.AuditLogRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{repo: repo}
}

// ListChanges fetches one page of audit history and normalizes it.
//
// The backend's pagination is offset-as-page-number: page 1 maps to
// offset 0, but page N (N>1) maps to offset N, not (N-1)*pageSize. This
// matches the backend contract verbatim and must not be "fixed" to the
// usual formula without a coordinated backend change.
func (s *auditService) ListChanges(ctx context.Context, currentUser string, page, pageSize int) ([]domain.ChangeRecord, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1", apperrors.ErrValidation)
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("%w: page size must be >= 1", apperrors.ErrValidation)
	}

	offset := 0
	if page > 1 {
		offset = page
	}

	payload, err := s.repo.FetchLogs(ctx, currentUser, pageSize, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch audit logs")
		return nil, err
	}
	return NormalizeAuditLogs(payload), nil
}

// NormalizeAuditLogs flattens the per-model audit payload into a single
// change feed. It is pure and deterministic: model order and the order
// of entries and field changes within each entry are preserved exactly
// as supplied; chronological sorting is the caller's concern.
//
// An entry with N field changes yields exactly N records; an entry with
// none yields exactly one generic "updated" record.
func NormalizeAuditLogs(payload []domain.AuditModelLog) []domain.ChangeRecord {
	var records []domain.ChangeRecord
	for _, modelLog := range payload {
		for _, entry := range modelLog.Entries {
			if len(entry.FieldChanges) == 0 {
				records = append(records, domain.ChangeRecord{
					Key:       fmt.Sprintf("%s-%s-0", modelLog.Model, entry.ID),
					Time:      entry.Date,
					ActorName: entry.User,
					ModelName: modelLog.Model,
					RecordID:  entry.RecordID,
					Sentence:  genericSentence(entry.User, modelLog.Model, entry.RecordID),
				})
				continue
			}
			for i, change := range entry.FieldChanges {
				label := change.FieldDescription
				if label == "" {
					label = change.Field
				}
				records = append(records, domain.ChangeRecord{
					Key:        fmt.Sprintf("%s-%s-%d", modelLog.Model, entry.ID, i),
					Time:       entry.Date,
					ActorName:  entry.User,
					ModelName:  modelLog.Model,
					RecordID:   entry.RecordID,
					FieldLabel: label,
					OldValue:   change.OldValue,
					NewValue:   change.NewValue,
					Sentence:   changeSentence(entry.User, label, modelLog.Model, entry.RecordID, change.OldValue, change.NewValue),
				})
			}
		}
	}
	return records
}

func changeSentence(actor, fieldLabel, model, recordID, oldValue, newValue string) string {
	return fmt.Sprintf("%s changed %s on %s%s from %q to %q.",
		actorOrUnknown(actor), fieldLabel, model, recordSuffix(recordID),
		valueOrEmptyToken(oldValue), valueOrEmptyToken(newValue),
	)
}

func genericSentence(actor, model, recordID string) string {
	return fmt.Sprintf("%s updated %s%s.", actorOrUnknown(actor), model, recordSuffix(recordID))
}

func recordSuffix(recordID string) string {
	if recordID == "" {
		return ""
	}
	return fmt.Sprintf(" (record %s)", recordID)
}

func valueOrEmptyToken(v string) string {
	if v == "" {
		return emptyValueToken
	}
	return v
}

func actorOrUnknown(actor string) string {
	if actor == "" {
		return "Someone"
	}
	return actor
}
