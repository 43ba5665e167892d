package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) (*Gateway, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGateway(srv.URL, 2*time.Second, zap.NewNop()), srv
}

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})
	gw.SetToken("my-token")

	err := gw.Do(context.Background(), http.MethodGet, "/cart", nil, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "Bearer my-token", gotAuth)
}

func TestDo_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	require.NoError(t, gw.Do(context.Background(), http.MethodGet, "/cart", nil, nil, nil))
	assert.Empty(t, gotAuth)
}

func TestDo_EncodesBodyAndQuery(t *testing.T) {
	type payload struct {
		ProductID int64 `json:"product_id"`
		Quantity  int   `json:"quantity"`
	}
	var gotBody payload
	var gotQuery url.Values
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{}`))
	})

	query := url.Values{}
	query.Set("page", "2")
	err := gw.Do(context.Background(), http.MethodPost, "/cart/add", query, payload{ProductID: 3, Quantity: 2}, nil)

	require.NoError(t, err)
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, int64(3), gotBody.ProductID)
	assert.Equal(t, 2, gotBody.Quantity)
}

func TestDo_DecodesSuccessPayload(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"Added to cart"}`))
	})

	var out struct {
		Message string `json:"message"`
	}
	require.NoError(t, gw.Do(context.Background(), http.MethodPost, "/cart/add", nil, nil, &out))
	assert.Equal(t, "Added to cart", out.Message)
}

func TestDo_ServerErrorMessageVerbatim(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"Quantity not available","errors":{"quantity":"exceeds stock"}}`))
	})

	err := gw.Do(context.Background(), http.MethodPut, "/cart/item/1", nil, nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "Quantity not available", apiErr.Message)
	assert.JSONEq(t, `{"quantity":"exceeds stock"}`, string(apiErr.Errors))
}

func TestDo_UnparseableErrorBodyGetsFallbackMessage(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>nope</html>`))
	})

	err := gw.Do(context.Background(), http.MethodGet, "/cart", nil, nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "An error occurred", apiErr.Message)
}

func TestDo_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	gw := NewGateway(srv.URL, 2*time.Second, zap.NewNop())
	srv.Close()

	err := gw.Do(context.Background(), http.MethodGet, "/cart", nil, nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "Network error - please check your connection", apiErr.Message)
}

func TestDo_UnauthorizedInvalidatesSession(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Token expired"}`))
	})
	gw.SetToken("stale-token")

	hookFired := false
	gw.SetOnUnauthorized(func() { hookFired = true })

	err := gw.Do(context.Background(), http.MethodGet, "/cart", nil, nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Empty(t, gw.Token())
	assert.True(t, hookFired)
}

func TestDo_ForbiddenDoesNotInvalidateSession(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Access denied"}`))
	})
	gw.SetToken("still-good")

	hookFired := false
	gw.SetOnUnauthorized(func() { hookFired = true })

	err := gw.Do(context.Background(), http.MethodGet, "/cart/admin/all", nil, nil, nil)

	require.Error(t, err)
	assert.Equal(t, "still-good", gw.Token())
	assert.False(t, hookFired)
}

func TestDo_CapturesTokenFromResponse(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"id":1},"token":"fresh-token"}`))
	})

	require.NoError(t, gw.Do(context.Background(), http.MethodPost, "/auth/login", nil, nil, nil))
	assert.Equal(t, "fresh-token", gw.Token())
}
