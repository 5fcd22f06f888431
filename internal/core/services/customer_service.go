package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/harbourline/freight_console_app/internal/apperrors"
	"github.com/harbourline/freight_console_app/internal/core/bulk"
	"github.com/harbourline/freight_console_app/internal/core/domain"
	portsrepo "github.com/harbourline/freight_console_app/internal/core/ports/repositories"
	portssvc "github.com/harbourline/freight_console_app/internal/core/ports/services"
	"github.com/harbourline/freight_console_app/internal/dto"
)

// customerService covers customer sub-resource mutations.
type customerService struct {
	BaseService
	repo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates the customer service.
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{repo: repo}
}

// BulkCreateContacts creates the persons one by one and aborts on the
// first failure, leaving later persons untried. Sequential-abort is the
// deliberate policy for this call site, unlike the all-settled stock
// bulk operations.
func (s *customerService) BulkCreateContacts(ctx context.Context, customerID string, req dto.BulkCreateContactsRequest) (domain.BulkBatch, error) {
	if customerID == "" {
		return domain.BulkBatch{}, fmt.Errorf("%w: customer id is required", apperrors.ErrValidation)
	}

	batch, err := bulk.Run(ctx, req.Persons,
		func(p dto.ContactPersonRequest) string { return p.Name },
		func(ctx context.Context, p dto.ContactPersonRequest) error {
			_, err := s.repo.CreateContactPerson(ctx, customerID, p.ToContactPerson(customerID))
			return err
		},
		bulk.Abort,
	)
	if err != nil {
		return batch, err
	}

	s.LogInfo(ctx, "Bulk contact creation finished",
		slog.String("customer_id", customerID),
		slog.Int("succeeded", batch.SuccessCount),
		slog.Int("failed", batch.FailureCount),
	)
	return batch, nil
}
