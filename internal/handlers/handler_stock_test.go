package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/harbourline/freight_console_app/internal/apperrors"
	"github.com/harbourline/freight_console_app/internal/core/domain"
	"github.com/harbourline/freight_console_app/internal/core/listquery"
	portssvc "github.com/harbourline/freight_console_app/internal/core/ports/services"
	"github.com/harbourline/freight_console_app/internal/dto"
	"github.com/harbourline/freight_console_app/internal/handlers"
	"github.com/harbourline/freight_console_app/internal/middleware"
)

// --- Mock StockService ---
type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) ListView(ctx context.Context, filters listquery.FilterSpec, sortSpec *listquery.SortSpec) ([]domain.StockItem, int, error) {
	args := m.Called(ctx, filters, sortSpec)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.StockItem), args.Int(1), args.Error(2)
}

func (m *MockStockService) CachedView(filters listquery.FilterSpec, sortSpec *listquery.SortSpec) ([]domain.StockItem, int) {
	args := m.Called(filters, sortSpec)
	return args.Get(0).([]domain.StockItem), args.Int(1)
}

func (m *MockStockService) OperationState(kind domain.OperationKind) domain.OperationState {
	args := m.Called(kind)
	return args.Get(0).(domain.OperationState)
}

func (m *MockStockService) CreateStockItem(ctx context.Context, req dto.CreateStockItemRequest) (*domain.StockItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockItem), args.Error(1)
}

func (m *MockStockService) UpdateStockItem(ctx context.Context, stockID string, req dto.UpdateStockItemRequest) (*domain.StockItem, error) {
	args := m.Called(ctx, stockID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockItem), args.Error(1)
}

func (m *MockStockService) DeleteStockItem(ctx context.Context, stockID string) error {
	args := m.Called(ctx, stockID)
	return args.Error(0)
}

func (m *MockStockService) BulkUpdateStockItems(ctx context.Context, req dto.BulkUpdateStockRequest) (domain.BulkBatch, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.BulkBatch), args.Error(1)
}

func (m *MockStockService) BulkDeleteStockItems(ctx context.Context, ids []string) (domain.BulkBatch, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(domain.BulkBatch), args.Error(1)
}

func (m *MockStockService) ClearOperationError(kind domain.OperationKind) {
	m.Called(kind)
}

// Ensure mock implements the interface
var _ portssvc.StockSvcFacade = (*MockStockService)(nil)

// --- Mock ReferenceService ---
type MockReferenceService struct {
	mock.Mock
}

func (m *MockReferenceService) ResolveOne(ctx context.Context, kind domain.EntityKind, id string) string {
	args := m.Called(ctx, kind, id)
	return args.String(0)
}

func (m *MockReferenceService) ResolveMany(ctx context.Context, kind domain.EntityKind, ids []string) map[string]string {
	args := m.Called(ctx, kind, ids)
	return args.Get(0).(map[string]string)
}

func (m *MockReferenceService) ReadCached(kind domain.EntityKind, id string) string {
	if id == "" {
		return domain.NamePlaceholderMissing
	}
	return domain.FallbackName(kind, id)
}

func (m *MockReferenceService) Snapshot() listquery.Snapshot {
	args := m.Called()
	return args.Get(0).(listquery.Snapshot)
}

var _ portssvc.ReferenceSvcFacade = (*MockReferenceService)(nil)

// --- Test Suite ---
type StockHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockStockService
	mockRefs    *MockReferenceService
	jwtSecret   string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *StockHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fca-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *StockHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockStockService)
	suite.mockRefs = new(MockReferenceService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterStockRoutes(v1, suite.mockService, suite.mockRefs)
}

func (suite *StockHandlerTestSuite) doRequest(method, url, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("user-1"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *StockHandlerTestSuite) TestListStock_Success() {
	items := []domain.StockItem{{StockID: "s1", ItemName: "Steel coils", ClientID: "c1"}}
	suite.mockService.On("ListView", mock.Anything, mock.Anything, mock.Anything).
		Return(items, 1, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/stock", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListStockItemsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.Count)
	suite.Require().Len(resp.Items, 1)
	suite.Equal("s1", resp.Items[0].StockID)
	// Foreign keys arrive resolved through the cache reader.
	suite.Equal("Customer c1", resp.Items[0].ClientName)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *StockHandlerTestSuite) TestListStock_PassesFilterAndSort() {
	suite.mockService.On("ListView", mock.Anything,
		mock.MatchedBy(func(f listquery.FilterSpec) bool {
			return len(f) == 1 && f[0].Field == "status" &&
				f[0].Match == listquery.MatchEquals && f[0].Value == "stored"
		}),
		mock.MatchedBy(func(s *listquery.SortSpec) bool {
			return s != nil && s.Field == "client_id" && s.Descending
		}),
	).Return([]domain.StockItem{}, 0, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/stock?filter=status:equals:stored&sort=client_id&order=desc", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *StockHandlerTestSuite) TestListStock_BadFilterRejected() {
	w := suite.doRequest(http.MethodGet, "/api/v1/stock?filter=status:fuzzy:x", "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListView")
}

func (suite *StockHandlerTestSuite) TestListStock_UpstreamErrorSurfacesMessage() {
	suite.mockService.On("ListView", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, 0, apperrors.NewUpstreamError("Quota exceeded")).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/stock", "")

	suite.Equal(http.StatusBadGateway, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Quota exceeded", resp["error"])
}

func (suite *StockHandlerTestSuite) TestCreateStock_ValidationErrorIs400() {
	suite.mockService.On("CreateStockItem", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/stock",
		`{"itemName":"Grain","clientId":"c1","quantity":5}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *StockHandlerTestSuite) TestCreateStock_MissingFieldsRejectedBeforeService() {
	w := suite.doRequest(http.MethodPost, "/api/v1/stock", `{"quantity":5}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateStockItem")
}

func (suite *StockHandlerTestSuite) TestBulkDelete_PartialOutcomeIs200() {
	batch := domain.BulkBatch{
		SuccessCount: 2,
		FailureCount: 1,
		Failures:     []domain.BulkFailure{{ID: "s3", Error: "record is locked"}},
	}
	suite.mockService.On("BulkDeleteStockItems", mock.Anything, []string{"s1", "s2", "s3"}).
		Return(batch, nil).Once()
	// A batch with successes triggers a list resync.
	suite.mockService.On("ListView", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StockItem{}, 0, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/stock/bulk-delete", `{"ids":["s1","s2","s3"]}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BulkBatchResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2, resp.SuccessCount)
	suite.Equal(1, resp.FailureCount)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *StockHandlerTestSuite) TestBulkDelete_NoSuccessesSkipsResync() {
	batch := domain.BulkBatch{
		FailureCount: 1,
		Failures:     []domain.BulkFailure{{ID: "s1", Error: "record is locked"}},
	}
	suite.mockService.On("BulkDeleteStockItems", mock.Anything, []string{"s1"}).
		Return(batch, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/stock/bulk-delete", `{"ids":["s1"]}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListView")
}

func (suite *StockHandlerTestSuite) TestOperationState() {
	suite.mockService.On("OperationState", domain.OpDelete).
		Return(domain.OperationState{Status: domain.OpFailed, Error: "record is locked"}).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/stock/operations/delete", "")

	suite.Equal(http.StatusOK, w.Code)
	var state domain.OperationState
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &state))
	suite.Equal(domain.OpFailed, state.Status)
	suite.Equal("record is locked", state.Error)
}

func (suite *StockHandlerTestSuite) TestClearOperationError() {
	suite.mockService.On("ClearOperationError", domain.OpDelete).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/stock/operations/delete/error", "")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *StockHandlerTestSuite) TestUnknownOperationKindRejected() {
	w := suite.doRequest(http.MethodGet, "/api/v1/stock/operations/reticulate", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *StockHandlerTestSuite) TestMissingTokenRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/stock", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListView")
}

// --- Run Suite ---
func TestStockHandler(t *testing.T) {
	suite.Run(t, new(StockHandlerTestSuite))
}
