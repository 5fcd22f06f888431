package services

import (
	"context"

	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/harbourline/freight_console_app/internal/core/listquery"
	"github.com/harbourline/freight_console_app/internal/dto"
)

// VesselSvcFacade exposes the read-only fleet view.
type VesselSvcFacade interface {
	ListView(ctx context.Context, filters listquery.FilterSpec, sortSpec *listquery.SortSpec) ([]domain.Vessel, int, error)
}

// RateSvcFacade exposes the read-only rate-list view.
type RateSvcFacade interface {
	ListView(ctx context.Context, filters listquery.FilterSpec, sortSpec *listquery.SortSpec) ([]domain.FreightRate, int, error)
}

// CustomerSvcFacade covers customer sub-resource mutations.
type CustomerSvcFacade interface {
	// BulkCreateContacts creates the given persons sequentially and
	// aborts on the first failure, leaving later persons untried.
	BulkCreateContacts(ctx context.Context, customerID string, req dto.BulkCreateContactsRequest) (domain.BulkBatch, error)
}

// AuditSvcFacade exposes the flattened change feed.
type AuditSvcFacade interface {
	// ListChanges fetches and normalizes one page of audit history for
	// the acting user.
	ListChanges(ctx context.Context, currentUser string, page, pageSize int) ([]domain.ChangeRecord, error)
}
