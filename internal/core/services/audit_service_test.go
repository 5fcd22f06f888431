package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/harbourline/freight_console_app/internal/apperrors"
	"github.com/harbourline/freight_console_app/internal/core/domain"
	portssvc "github.com/harbourline/freight_console_app/internal/core/ports/services"
	"github.com/harbourline/freight_console_app/internal/core/services"
)

// --- Mock AuditLogRepository ---
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) FetchLogs(ctx context.Context, currentUser string, limit, offset int) ([]domain.AuditModelLog, error) {
	args := m.Called(ctx, currentUser, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditModelLog), args.Error(1)
}

// --- Test Suite ---
type AuditServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAuditLogRepository
	service  portssvc.AuditSvcFacade
}

func (suite *AuditServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAuditLogRepository)
	suite.service = services.NewAuditService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AuditServiceTestSuite) TestListChanges_PageOneIsOffsetZero() {
	suite.mockRepo.On("FetchLogs", mock.Anything, "jane", 50, 0).
		Return([]domain.AuditModelLog{}, nil).Once()

	_, err := suite.service.ListChanges(context.Background(), "jane", 1, 50)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestListChanges_LaterPagesPassPageAsOffset() {
	// The backend contract maps page N (N>1) to offset N, not (N-1)*size.
	suite.mockRepo.On("FetchLogs", mock.Anything, "jane", 50, 3).
		Return([]domain.AuditModelLog{}, nil).Once()

	_, err := suite.service.ListChanges(context.Background(), "jane", 3, 50)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuditServiceTestSuite) TestListChanges_RejectsBadPaging() {
	_, err := suite.service.ListChanges(context.Background(), "jane", 0, 50)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ListChanges(context.Background(), "jane", 1, 0)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "FetchLogs")
}

func (suite *AuditServiceTestSuite) TestNormalize_CardinalityPerFieldChange() {
	payload := []domain.AuditModelLog{
		{
			Model: "stock",
			Entries: []domain.AuditLogEntry{
				{
					ID: "e1", User: "jane", RecordID: "42",
					FieldChanges: []domain.FieldChange{
						{Field: "status", OldValue: "stored", NewValue: "shipped"},
						{Field: "quantity", OldValue: "5", NewValue: "7"},
						{Field: "vessel_id", OldValue: "v1", NewValue: "v2"},
					},
				},
			},
		},
	}

	records := services.NormalizeAuditLogs(payload)

	suite.Require().Len(records, 3)
	suite.Equal("stock-e1-0", records[0].Key)
	suite.Equal("stock-e1-1", records[1].Key)
	suite.Equal("stock-e1-2", records[2].Key)
}

func (suite *AuditServiceTestSuite) TestNormalize_EntryWithoutChangesGetsOneGenericRecord() {
	payload := []domain.AuditModelLog{
		{
			Model: "stock",
			Entries: []domain.AuditLogEntry{
				{ID: "e1", User: "jane", RecordID: "42"},
			},
		},
	}

	records := services.NormalizeAuditLogs(payload)

	suite.Require().Len(records, 1)
	suite.Equal("jane updated stock (record 42).", records[0].Sentence)
	suite.Empty(records[0].FieldLabel)
}

func (suite *AuditServiceTestSuite) TestNormalize_SentenceRendering() {
	payload := []domain.AuditModelLog{
		{
			Model: "stock",
			Entries: []domain.AuditLogEntry{
				{
					ID: "e1", User: "Jane", RecordID: "42",
					FieldChanges: []domain.FieldChange{
						{Field: "status", OldValue: "", NewValue: "shipped"},
					},
				},
			},
		},
	}

	records := services.NormalizeAuditLogs(payload)

	suite.Require().Len(records, 1)
	suite.Equal(`Jane changed status on stock (record 42) from "empty" to "shipped".`, records[0].Sentence)
}

func (suite *AuditServiceTestSuite) TestNormalize_FieldDescriptionPreferred() {
	payload := []domain.AuditModelLog{
		{
			Model: "shipping_order",
			Entries: []domain.AuditLogEntry{
				{
					ID: "e1", User: "Jane", RecordID: "7",
					FieldChanges: []domain.FieldChange{
						{Field: "vessel_id", FieldDescription: "Vessel", OldValue: "v1", NewValue: "v2"},
					},
				},
			},
		},
	}

	records := services.NormalizeAuditLogs(payload)

	suite.Require().Len(records, 1)
	suite.Equal("Vessel", records[0].FieldLabel)
	suite.Equal(`Jane changed Vessel on shipping_order (record 7) from "v1" to "v2".`, records[0].Sentence)
}

func (suite *AuditServiceTestSuite) TestNormalize_PreservesModelAndEntryOrder() {
	payload := []domain.AuditModelLog{
		{
			Model: "shipping_order",
			Entries: []domain.AuditLogEntry{
				{ID: "o1", User: "jane", RecordID: "1"},
				{ID: "o2", User: "jane", RecordID: "2"},
			},
		},
		{
			Model: "stock",
			Entries: []domain.AuditLogEntry{
				{ID: "s1", User: "jane", RecordID: "3"},
			},
		},
	}

	records := services.NormalizeAuditLogs(payload)

	suite.Require().Len(records, 3)
	suite.Equal("shipping_order-o1-0", records[0].Key)
	suite.Equal("shipping_order-o2-0", records[1].Key)
	suite.Equal("stock-s1-0", records[2].Key)
}

// --- Run Suite ---
func TestAuditService(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}
