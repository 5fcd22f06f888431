package domain

import (
	"fmt"
	"strings"
)

// EntityKind identifies a category of referenced records whose display
// names are resolved through the reference cache.
type EntityKind string

const (
	KindCustomer    EntityKind = "customer"
	KindVessel      EntityKind = "vessel"
	KindVendor      EntityKind = "vendor"
	KindDestination EntityKind = "destination"
	KindCurrency    EntityKind = "currency"
	KindLocation    EntityKind = "location"
	KindUser        EntityKind = "user"
)

// EntityKinds lists every kind the cache may be asked to resolve.
var EntityKinds = []EntityKind{
	KindCustomer,
	KindVessel,
	KindVendor,
	KindDestination,
	KindCurrency,
	KindLocation,
	KindUser,
}

// ParseEntityKind converts a string into an EntityKind.
// Returns false when the string names no known kind.
func ParseEntityKind(s string) (EntityKind, bool) {
	k := EntityKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range EntityKinds {
		if k == known {
			return k, true
		}
	}
	return "", false
}

// RefState describes the lifecycle of a cache entry. An entry never moves
// backwards: once Resolved it stays Resolved for the life of the cache.
type RefState string

const (
	RefUnresolved RefState = "unresolved"
	RefPending    RefState = "pending"
	RefResolved   RefState = "resolved"
	RefFallback   RefState = "fallback"
)

// EntityReference is one cached id-to-name resolution.
type EntityReference struct {
	Kind  EntityKind `json:"kind"`
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	State RefState   `json:"state"`
}

// FallbackName synthesizes the placeholder shown when a reference cannot
// be (or has not yet been) resolved, e.g. "Customer 42".
func FallbackName(kind EntityKind, id string) string {
	k := string(kind)
	if k == "" {
		return fmt.Sprintf("Record %s", id)
	}
	return fmt.Sprintf("%s %s", strings.ToUpper(k[:1])+k[1:], id)
}

// Placeholder values returned by non-triggering cache reads.
const (
	NamePlaceholderLoading = "Loading..."
	NamePlaceholderMissing = "N/A"
)
