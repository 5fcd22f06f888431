package upstream

import (
	"context"
	"net/http"

	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/harbourline/freight_console_app/internal/core/ports/repositories"
)

// ReferenceRepository resolves foreign-key ids to display names via the
// backend's per-kind lookup endpoint.
type ReferenceRepository struct {
	client *Client
}

func NewReferenceRepository(client *Client) repositories.ReferenceRepositoryFacade {
	return &ReferenceRepository{client: client}
}

type referenceWire struct {
	ID   flexID `json:"id"`
	Name string `json:"name"`
}

// LookupNames resolves a batch of ids for one entity kind. Ids the
// backend does not know are absent from the returned map; the caller
// decides what placeholder to use for them.
func (r *ReferenceRepository) LookupNames(ctx context.Context, kind domain.EntityKind, ids []string) (map[string]string, error) {
	payload := struct {
		IDs []string `json:"ids"`
	}{IDs: ids}

	var body struct {
		ReferenceList []referenceWire `json:"reference_list"`
	}
	if err := r.client.call(ctx, http.MethodPost, "/references/"+string(kind)+"/lookup", payload, &body); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(body.ReferenceList))
	for _, w := range body.ReferenceList {
		if w.ID == "" || w.Name == "" {
			continue
		}
		names[w.ID.String()] = w.Name
	}
	return names, nil
}
