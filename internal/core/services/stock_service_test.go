package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/harbourline/freight_console_app/internal/apperrors"
	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/harbourline/freight_console_app/internal/core/listquery"
	portssvc "github.com/harbourline/freight_console_app/internal/core/ports/services"
	"github.com/harbourline/freight_console_app/internal/core/services"
	"github.com/harbourline/freight_console_app/internal/dto"
)

// --- Mock StockRepository ---
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) ListStockItems(ctx context.Context) ([]domain.StockItem, int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.StockItem), args.Int(1), args.Error(2)
}

func (m *MockStockRepository) CreateStockItem(ctx context.Context, item domain.StockItem) (*domain.StockItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockItem), args.Error(1)
}

func (m *MockStockRepository) UpdateStockItem(ctx context.Context, stockID string, item domain.StockItem) (*domain.StockItem, error) {
	args := m.Called(ctx, stockID, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockItem), args.Error(1)
}

func (m *MockStockRepository) DeleteStockItem(ctx context.Context, stockID string) error {
	args := m.Called(ctx, stockID)
	return args.Error(0)
}

// stubSnapshot satisfies listquery.Snapshot with fixed names.
type stubSnapshot map[string]string

func (s stubSnapshot) Name(kind domain.EntityKind, id string) string {
	if name, ok := s[string(kind)+"/"+id]; ok {
		return name
	}
	return domain.FallbackName(kind, id)
}

// stubReferenceService is a no-op cache for tests that only need the
// service wiring, not resolution behavior.
type stubReferenceService struct {
	snap stubSnapshot
}

func (s *stubReferenceService) ResolveOne(ctx context.Context, kind domain.EntityKind, id string) string {
	return s.snap.Name(kind, id)
}

func (s *stubReferenceService) ResolveMany(ctx context.Context, kind domain.EntityKind, ids []string) map[string]string {
	out := make(map[string]string, len(ids))
	for _, id := range ids {
		out[id] = s.snap.Name(kind, id)
	}
	return out
}

func (s *stubReferenceService) ReadCached(kind domain.EntityKind, id string) string {
	return s.snap.Name(kind, id)
}

func (s *stubReferenceService) Snapshot() listquery.Snapshot {
	return s.snap
}

// --- Test Suite ---
type StockServiceTestSuite struct {
	suite.Suite
	mockRepo *MockStockRepository
	refs     *stubReferenceService
	service  portssvc.StockSvcFacade
}

func (suite *StockServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockStockRepository)
	suite.refs = &stubReferenceService{snap: stubSnapshot{}}
	suite.service = services.NewStockService(suite.mockRepo, suite.refs)
}

func (suite *StockServiceTestSuite) seedCollection(items []domain.StockItem) {
	suite.mockRepo.On("ListStockItems", mock.Anything).
		Return(items, len(items), nil).Once()
	_, _, err := suite.service.ListView(context.Background(), nil, nil)
	suite.Require().NoError(err)
}

// --- Test Cases ---

func (suite *StockServiceTestSuite) TestListView_ReplacesCollection() {
	items := []domain.StockItem{
		{StockID: "s1", ItemName: "Steel coils"},
		{StockID: "s2", ItemName: "Grain"},
	}
	suite.mockRepo.On("ListStockItems", mock.Anything).Return(items, 2, nil).Once()

	view, count, err := suite.service.ListView(context.Background(), nil, nil)

	suite.Require().NoError(err)
	suite.Equal(2, count)
	suite.Len(view, 2)
	suite.Equal(domain.OpSucceeded, suite.service.OperationState(domain.OpList).Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestListView_FailurePreservesLastKnownGood() {
	suite.seedCollection([]domain.StockItem{{StockID: "s1", ItemName: "Steel coils"}})

	suite.mockRepo.On("ListStockItems", mock.Anything).
		Return(nil, 0, apperrors.NewUpstreamError("backend down")).Once()

	_, _, err := suite.service.ListView(context.Background(), nil, nil)
	suite.Require().Error(err)

	// Error recorded on the list kind, collection untouched.
	state := suite.service.OperationState(domain.OpList)
	suite.Equal(domain.OpFailed, state.Status)
	suite.Equal("backend down", state.Error)

	view, count := suite.service.CachedView(nil, nil)
	suite.Len(view, 1)
	suite.Equal(1, count)
	suite.Equal("s1", view[0].StockID)
}

func (suite *StockServiceTestSuite) TestCreate_PrependsOptimistically() {
	suite.seedCollection([]domain.StockItem{{StockID: "s1", ItemName: "Steel coils"}})

	created := &domain.StockItem{StockID: "s2", ItemName: "Grain", Quantity: 10}
	suite.mockRepo.On("CreateStockItem", mock.Anything, mock.Anything).Return(created, nil).Once()

	got, err := suite.service.CreateStockItem(context.Background(), dto.CreateStockItemRequest{
		ItemName: "Grain",
		ClientID: "c1",
		Quantity: 10,
	})

	suite.Require().NoError(err)
	suite.Equal("s2", got.StockID)

	// Merged without a refetch: new record first, count bumped.
	view, count := suite.service.CachedView(nil, nil)
	suite.Equal(2, count)
	suite.Require().Len(view, 2)
	suite.Equal("s2", view[0].StockID)
	suite.Equal("s1", view[1].StockID)
	suite.Equal(domain.OpSucceeded, suite.service.OperationState(domain.OpCreate).Status)
}

func (suite *StockServiceTestSuite) TestCreate_ValidationShortCircuits() {
	_, err := suite.service.CreateStockItem(context.Background(), dto.CreateStockItemRequest{
		ItemName: "Grain",
		ClientID: "c1",
		Quantity: 0,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	// No request issued, no pending state entered.
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateStockItem")
	suite.Equal(domain.OpIdle, suite.service.OperationState(domain.OpCreate).Status)
}

func (suite *StockServiceTestSuite) TestUpdate_ReplacesInPlace() {
	suite.seedCollection([]domain.StockItem{
		{StockID: "s1", ItemName: "Steel coils", Status: "stored"},
		{StockID: "s2", ItemName: "Grain", Status: "stored"},
	})

	updated := &domain.StockItem{StockID: "s2", ItemName: "Grain", Status: "shipped", Quantity: 5}
	suite.mockRepo.On("UpdateStockItem", mock.Anything, "s2", mock.Anything).Return(updated, nil).Once()

	_, err := suite.service.UpdateStockItem(context.Background(), "s2", dto.UpdateStockItemRequest{
		ItemName: "Grain",
		ClientID: "c1",
		Quantity: 5,
		Status:   "shipped",
	})

	suite.Require().NoError(err)
	view, count := suite.service.CachedView(nil, nil)
	suite.Equal(2, count)
	suite.Equal("stored", view[0].Status)
	suite.Equal("shipped", view[1].Status)
}

func (suite *StockServiceTestSuite) TestDelete_FiltersOut() {
	suite.seedCollection([]domain.StockItem{
		{StockID: "s1"}, {StockID: "s2"}, {StockID: "s3"},
	})

	suite.mockRepo.On("DeleteStockItem", mock.Anything, "s2").Return(nil).Once()

	err := suite.service.DeleteStockItem(context.Background(), "s2")

	suite.Require().NoError(err)
	view, count := suite.service.CachedView(nil, nil)
	suite.Equal(2, count)
	suite.Require().Len(view, 2)
	suite.Equal("s1", view[0].StockID)
	suite.Equal("s3", view[1].StockID)
}

func (suite *StockServiceTestSuite) TestOperationKindsAreIndependent() {
	suite.seedCollection([]domain.StockItem{{StockID: "s1"}})

	suite.mockRepo.On("DeleteStockItem", mock.Anything, "s1").
		Return(apperrors.NewUpstreamError("record is locked")).Once()
	err := suite.service.DeleteStockItem(context.Background(), "s1")
	suite.Require().Error(err)

	// A later create must not clear the delete kind's error.
	created := &domain.StockItem{StockID: "s2", Quantity: 1}
	suite.mockRepo.On("CreateStockItem", mock.Anything, mock.Anything).Return(created, nil).Once()
	_, err = suite.service.CreateStockItem(context.Background(), dto.CreateStockItemRequest{
		ItemName: "Grain", ClientID: "c1", Quantity: 1,
	})
	suite.Require().NoError(err)

	deleteState := suite.service.OperationState(domain.OpDelete)
	suite.Equal(domain.OpFailed, deleteState.Status)
	suite.Equal("record is locked", deleteState.Error)

	// Clearing is explicit and touches only the asked-for kind.
	suite.service.ClearOperationError(domain.OpDelete)
	suite.Equal(domain.OpIdle, suite.service.OperationState(domain.OpDelete).Status)
	suite.Equal(domain.OpSucceeded, suite.service.OperationState(domain.OpCreate).Status)
}

func (suite *StockServiceTestSuite) TestBulkUpdate_AllSettled() {
	suite.seedCollection([]domain.StockItem{
		{StockID: "s1", ItemName: "A", ClientID: "c1", Quantity: 1},
		{StockID: "s2", ItemName: "B", ClientID: "c1", Quantity: 1},
		{StockID: "s3", ItemName: "C", ClientID: "c1", Quantity: 1},
	})

	shipped := "shipped"
	suite.mockRepo.On("UpdateStockItem", mock.Anything, "s1", mock.Anything).
		Return(&domain.StockItem{StockID: "s1", Status: shipped}, nil).Once()
	suite.mockRepo.On("UpdateStockItem", mock.Anything, "s2", mock.Anything).
		Return(nil, apperrors.NewUpstreamError("record is locked")).Once()
	suite.mockRepo.On("UpdateStockItem", mock.Anything, "s3", mock.Anything).
		Return(&domain.StockItem{StockID: "s3", Status: shipped}, nil).Once()

	batch, err := suite.service.BulkUpdateStockItems(context.Background(), dto.BulkUpdateStockRequest{
		IDs:   []string{"s1", "s2", "s3"},
		Patch: dto.StockItemPatch{Status: &shipped},
	})

	suite.Require().NoError(err)
	suite.Equal(2, batch.SuccessCount)
	suite.Equal(1, batch.FailureCount)
	suite.Require().Len(batch.Failures, 1)
	suite.Equal("s2", batch.Failures[0].ID)
	suite.Equal("record is locked", batch.Failures[0].Error)
	// Every id was attempted despite the failure in the middle.
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestBulkUpdate_UnknownIDFailsWithoutRequest() {
	suite.seedCollection([]domain.StockItem{{StockID: "s1", ClientID: "c1", Quantity: 1}})

	shipped := "shipped"
	batch, err := suite.service.BulkUpdateStockItems(context.Background(), dto.BulkUpdateStockRequest{
		IDs:   []string{"ghost"},
		Patch: dto.StockItemPatch{Status: &shipped},
	})

	suite.Require().NoError(err)
	suite.Equal(0, batch.SuccessCount)
	suite.Equal(1, batch.FailureCount)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateStockItem")
}

func (suite *StockServiceTestSuite) TestBulkDelete_EmptySelectionRejected() {
	_, err := suite.service.BulkDeleteStockItems(context.Background(), nil)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Run Suite ---
func TestStockService(t *testing.T) {
	suite.Run(t, new(StockServiceTestSuite))
}
