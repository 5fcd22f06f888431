package repositories

import (
	"context"

	"github.com/harbourline/freight_console_app/internal/core/domain"
)

// ReferenceRepositoryFacade resolves foreign-key ids to display names.
type ReferenceRepositoryFacade interface {
	// LookupNames resolves a batch of ids for one entity kind. Ids the
	// backend does not know are simply absent from the returned map.
	LookupNames(ctx context.Context, kind domain.EntityKind, ids []string) (map[string]string, error)
}
