package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbourline/freight_console_app/internal/apperrors"
	"github.com/harbourline/freight_console_app/internal/middleware"
)

func TestClientForwardsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"stock_list": []any{}, "count": 0})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	ctx := middleware.ContextWithAuthToken(context.Background(), "tok-123")

	_, _, err := NewStockRepository(client).ListStockItems(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientNormalizesTransportError(t *testing.T) {
	// Point at a closed server to force a connection failure.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, nil)
	_, _, err := NewStockRepository(client).ListStockItems(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestStockRepositoryUnwrapsEnvelopedList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/stock", r.URL.Path)
		_, _ = w.Write([]byte(`{"result":{"status":"success","stock_list":[{"stock_id":1,"item_name":"Steel coils","client":7}],"count":1}}`))
	}))
	defer srv.Close()

	items, count, err := NewStockRepository(NewClient(srv.URL, nil)).ListStockItems(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].StockID)
	assert.Equal(t, "Steel coils", items[0].ItemName)
	assert.Equal(t, "7", items[0].ClientID)
}

func TestStockRepositorySurfacesEnvelopeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"result":{"status":"error","message":"Quota exceeded"}}`))
	}))
	defer srv.Close()

	err := NewStockRepository(NewClient(srv.URL, nil)).DeleteStockItem(context.Background(), "s1")

	require.Error(t, err)
	assert.Equal(t, "Quota exceeded", err.Error())
}

func TestAuditRepositorySendsPagingPayload(t *testing.T) {
	var got struct {
		CurrentUser string `json:"current_user"`
		Limit       int    `json:"limit"`
		Offset      int    `json:"offset"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"logs":{"stock":[]}}`))
	}))
	defer srv.Close()

	_, err := NewAuditLogRepository(NewClient(srv.URL, nil)).FetchLogs(context.Background(), "jane", 50, 3)

	require.NoError(t, err)
	assert.Equal(t, "jane", got.CurrentUser)
	assert.Equal(t, 50, got.Limit)
	assert.Equal(t, 3, got.Offset)
}

func TestReferenceRepositorySkipsUnknownIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/references/customer/lookup", r.URL.Path)
		_, _ = w.Write([]byte(`{"reference_list":[{"id":1,"name":"Acme Shipping"},{"id":2,"name":""}]}`))
	}))
	defer srv.Close()

	names, err := NewReferenceRepository(NewClient(srv.URL, nil)).LookupNames(context.Background(), "customer", []string{"1", "2"})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"1": "Acme Shipping"}, names)
}
