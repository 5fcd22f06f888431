package services

import (
	"context"

	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/harbourline/freight_console_app/internal/core/listquery"
)

// ReferenceSvcFacade is the process-wide id-to-name resolution cache.
// Resolution failures never surface to callers; they degrade to the
// synthesized fallback name.
type ReferenceSvcFacade interface {
	// ResolveOne resolves a single reference, returning the cached name
	// when available and otherwise triggering (at most) one shared
	// in-flight lookup for that (kind, id) pair.
	ResolveOne(ctx context.Context, kind domain.EntityKind, id string) string

	// ResolveMany resolves a batch; ids already resolved are excluded
	// from the outgoing lookup.
	ResolveMany(ctx context.Context, kind domain.EntityKind, ids []string) map[string]string

	// ReadCached reads the cache without triggering resolution: "N/A"
	// for an absent id, "Loading..." until the entry settles.
	ReadCached(kind domain.EntityKind, id string) string

	// Snapshot returns a point-in-time, synchronous view for filtering
	// and sorting. Reading a snapshot never causes lookups.
	Snapshot() listquery.Snapshot
}
