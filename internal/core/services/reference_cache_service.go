package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/harbourline/freight_console_app/internal/core/listquery"
	portsrepo "github.com/harbourline/freight_console_app/internal/core/ports/repositories"
)

const (
	resolveBatchCap = 100
	resolveWait     = 2 * time.Millisecond
)

// ReferenceCacheService is the process-wide id-to-name cache. Concurrent
// resolutions for the same (kind, id) pair share a single in-flight
// lookup via the per-kind dataloader; settled names merge additively into
// the resolved map, which backs the synchronous reads and snapshots.
// Entries never regress: a resolved name stays for the life of the cache.
type ReferenceCacheService struct {
	BaseService
	repo    portsrepo.ReferenceRepositoryFacade
	loaders map[domain.EntityKind]*dataloader.Loader[string, string]

	mu       sync.RWMutex
	resolved map[domain.EntityKind]map[string]domain.EntityReference
}

// NewReferenceCacheService builds the cache with one batched loader per
// entity kind.
func NewReferenceCacheService(repo portsrepo.ReferenceRepositoryFacade) *ReferenceCacheService {
	s := &ReferenceCacheService{
		repo:     repo,
		loaders:  make(map[domain.EntityKind]*dataloader.Loader[string, string], len(domain.EntityKinds)),
		resolved: make(map[domain.EntityKind]map[string]domain.EntityReference, len(domain.EntityKinds)),
	}
	for _, kind := range domain.EntityKinds {
		s.resolved[kind] = make(map[string]domain.EntityReference)
		s.loaders[kind] = dataloader.NewBatchedLoader(
			s.newLookupBatchFn(kind),
			dataloader.WithWait[string, string](resolveWait),
			dataloader.WithBatchCapacity[string, string](resolveBatchCap),
		)
	}
	return s
}

// newLookupBatchFn resolves one batch of ids for a kind. Lookup failures
// are logged and degraded to fallback names; they are never returned as
// errors, so a failed lookup cannot block rendering of the record that
// referenced it.
func (s *ReferenceCacheService) newLookupBatchFn(kind domain.EntityKind) dataloader.BatchFunc[string, string] {
	return func(ctx context.Context, ids []string) []*dataloader.Result[string] {
		results := make([]*dataloader.Result[string], len(ids))

		names, err := s.repo.LookupNames(ctx, kind, ids)
		if err != nil {
			s.GetLogger(ctx).Warn("Reference lookup failed, degrading to fallback names",
				slog.String("kind", string(kind)),
				slog.Int("ids", len(ids)),
				slog.String("error", err.Error()),
			)
		}
		for i, id := range ids {
			name, ok := names[id]
			if err != nil || !ok {
				fb := domain.FallbackName(kind, id)
				s.merge(kind, id, fb, domain.RefFallback)
				results[i] = &dataloader.Result[string]{Data: fb}
				continue
			}
			s.merge(kind, id, name, domain.RefResolved)
			results[i] = &dataloader.Result[string]{Data: name}
		}
		return results
	}
}

// merge is additive: it fills empty slots and upgrades Fallback entries
// to Resolved, but never downgrades a Resolved entry.
func (s *ReferenceCacheService) merge(kind domain.EntityKind, id, name string, state domain.RefState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.resolved[kind][id]
	if ok && existing.State == domain.RefResolved && state != domain.RefResolved {
		return
	}
	s.resolved[kind][id] = domain.EntityReference{Kind: kind, ID: id, Name: name, State: state}
}

func (s *ReferenceCacheService) lookup(kind domain.EntityKind, id string) (domain.EntityReference, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ref, ok := s.resolved[kind][id]
	return ref, ok
}

// ResolveOne returns the display name for one reference, triggering at
// most one shared lookup when the entry is not yet settled.
func (s *ReferenceCacheService) ResolveOne(ctx context.Context, kind domain.EntityKind, id string) string {
	if id == "" {
		return domain.NamePlaceholderMissing
	}
	if ref, ok := s.lookup(kind, id); ok {
		return ref.Name
	}
	loader, ok := s.loaders[kind]
	if !ok {
		return domain.FallbackName(kind, id)
	}
	name, err := loader.Load(ctx, id)()
	if err != nil {
		// The batch fn reports failures as fallback data, so this only
		// fires on loader-internal cancellation.
		fb := domain.FallbackName(kind, id)
		s.merge(kind, id, fb, domain.RefFallback)
		return fb
	}
	return name
}

// ResolveMany resolves a batch of ids, excluding the already-settled ones
// from the outgoing lookup.
func (s *ReferenceCacheService) ResolveMany(ctx context.Context, kind domain.EntityKind, ids []string) map[string]string {
	out := make(map[string]string, len(ids))
	var missing []string
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if ref, ok := s.lookup(kind, id); ok {
			out[id] = ref.Name
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return out
	}
	loader, ok := s.loaders[kind]
	if !ok {
		for _, id := range missing {
			out[id] = domain.FallbackName(kind, id)
		}
		return out
	}
	names, errs := loader.LoadMany(ctx, missing)()
	for i, id := range missing {
		if i < len(errs) && errs[i] != nil || i >= len(names) {
			fb := domain.FallbackName(kind, id)
			s.merge(kind, id, fb, domain.RefFallback)
			out[id] = fb
			continue
		}
		out[id] = names[i]
	}
	return out
}

// ReadCached reads the cache without triggering resolution. Render paths
// use this so reading never causes side effects.
func (s *ReferenceCacheService) ReadCached(kind domain.EntityKind, id string) string {
	if id == "" {
		return domain.NamePlaceholderMissing
	}
	if ref, ok := s.lookup(kind, id); ok {
		return ref.Name
	}
	return domain.NamePlaceholderLoading
}

// Snapshot copies the settled entries into an immutable view for
// filtering and sorting. Reading the snapshot never triggers lookups;
// unresolved ids read as their fallback placeholder.
func (s *ReferenceCacheService) Snapshot() listquery.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := cacheSnapshot{names: make(map[domain.EntityKind]map[string]string, len(s.resolved))}
	for kind, entries := range s.resolved {
		kindNames := make(map[string]string, len(entries))
		for id, ref := range entries {
			kindNames[id] = ref.Name
		}
		snap.names[kind] = kindNames
	}
	return snap
}

type cacheSnapshot struct {
	names map[domain.EntityKind]map[string]string
}

func (c cacheSnapshot) Name(kind domain.EntityKind, id string) string {
	if name, ok := c.names[kind][id]; ok {
		return name
	}
	return domain.FallbackName(kind, id)
}
