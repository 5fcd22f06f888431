package dto

// ResolveReferencesResponse maps requested ids to display names for one
// entity kind. Ids that failed to resolve carry their fallback name.
type ResolveReferencesResponse struct {
	Kind  string            `json:"kind"`
	Names map[string]string `json:"names"`
}
