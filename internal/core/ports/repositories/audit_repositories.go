package repositories

import "context"
import "github.com/harbourline/freight_console_app/internal/core/domain"

// AuditLogRepositoryFacade fetches one page of the raw per-model audit
// payload. The returned slice preserves the model order the backend sent.
type AuditLogRepositoryFacade interface {
	FetchLogs(ctx context.Context, currentUser string, limit, offset int) ([]domain.AuditModelLog, error)
}
