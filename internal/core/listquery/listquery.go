// Package listquery turns a raw record collection, a filter spec, and a
// sort spec into an ordered view. It is pure: given the same records,
// specs, and cache snapshot it always produces the same output, and it
// never triggers reference resolution itself.
package listquery

import (
	"sort"
	"strconv"
	"strings"

	"github.com/harbourline/freight_console_app/internal/core/domain"
)

// Matcher selects how a filter value is compared against a field.
type Matcher string

const (
	// MatchContains is case-insensitive substring containment on the raw
	// field value.
	MatchContains Matcher = "contains"
	// MatchEquals is exact equality on the raw field value.
	MatchEquals Matcher = "equals"
	// MatchResolvedContains is case-insensitive substring containment on
	// the cache-resolved display name of a foreign-key field.
	MatchResolvedContains Matcher = "resolved_contains"
)

// ParseMatcher converts a string into a Matcher, defaulting to contains.
func ParseMatcher(s string) (Matcher, bool) {
	switch Matcher(strings.ToLower(strings.TrimSpace(s))) {
	case MatchContains, "":
		return MatchContains, true
	case MatchEquals:
		return MatchEquals, true
	case MatchResolvedContains:
		return MatchResolvedContains, true
	}
	return "", false
}

// FilterClause is one (field, matcher, value) predicate.
type FilterClause struct {
	Field string
	Match Matcher
	Value string
}

// FilterSpec is an ordered list of conjunctive (AND) predicates.
type FilterSpec []FilterClause

// SortSpec orders the view by one field. Foreign-key fields compare by
// resolved display name, not by raw id.
type SortSpec struct {
	Field      string
	Descending bool
}

// Snapshot is a point-in-time, synchronous view of the reference cache.
// Name must never trigger resolution; unresolved ids get the synthesized
// fallback placeholder.
type Snapshot interface {
	Name(kind domain.EntityKind, id string) string
}

// Row is the record surface the engine operates on. Field returns the
// scalar string form of a named field; Ref maps foreign-key fields to
// the entity they reference.
type Row interface {
	Field(name string) (string, bool)
	Ref(name string) (kind domain.EntityKind, id string, ok bool)
}

// Apply filters rows by spec (AND), then stable-sorts them. The input
// slice is never mutated; ties keep their original relative order.
func Apply[T Row](rows []T, filters FilterSpec, sortSpec *SortSpec, snap Snapshot) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if matchesAll(r, filters, snap) {
			out = append(out, r)
		}
	}
	if sortSpec != nil && strings.TrimSpace(sortSpec.Field) != "" {
		sortRows(out, *sortSpec, snap)
	}
	return out
}

func matchesAll[T Row](r T, filters FilterSpec, snap Snapshot) bool {
	for _, f := range filters {
		value := strings.TrimSpace(f.Value)
		if value == "" {
			// Blank filter values mean "predicate absent", not
			// "match empty string".
			continue
		}
		if !matches(r, f.Field, f.Match, value, snap) {
			return false
		}
	}
	return true
}

func matches[T Row](r T, field string, m Matcher, value string, snap Snapshot) bool {
	switch m {
	case MatchEquals:
		got, ok := r.Field(field)
		return ok && got == value
	case MatchResolvedContains:
		kind, id, ok := r.Ref(field)
		if !ok {
			return false
		}
		name := domain.FallbackName(kind, id)
		if snap != nil {
			name = snap.Name(kind, id)
		}
		return strings.Contains(strings.ToLower(name), strings.ToLower(value))
	default: // MatchContains
		got, ok := r.Field(field)
		return ok && strings.Contains(strings.ToLower(got), strings.ToLower(value))
	}
}

func sortRows[T Row](rows []T, spec SortSpec, snap Snapshot) {
	keys := make([]string, len(rows))
	for i, r := range rows {
		keys[i] = sortKey(r, spec.Field, snap)
	}
	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		less := compareKeys(keys[idx[a]], keys[idx[b]])
		if spec.Descending {
			return less > 0
		}
		return less < 0
	})
	sorted := make([]T, len(rows))
	for i, j := range idx {
		sorted[i] = rows[j]
	}
	copy(rows, sorted)
}

// sortKey reads foreign-key fields through the snapshot so sorting by a
// reference column orders by display name.
func sortKey[T Row](r T, field string, snap Snapshot) string {
	if kind, id, ok := r.Ref(field); ok {
		if snap != nil {
			return snap.Name(kind, id)
		}
		return domain.FallbackName(kind, id)
	}
	v, _ := r.Field(field)
	return v
}

// compareKeys orders numerically when both keys parse as numbers, else
// case-insensitively.
func compareKeys(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
