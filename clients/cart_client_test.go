package clients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"admin-panel-client/gateway"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	body   []byte
}

// newRecordingClient spins up a backend that records every request and always
// answers with the given JSON body.
func newRecordingClient(t *testing.T, responseBody string) (*CartClient, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.body, _ = io.ReadAll(r.Body)
		w.Write([]byte(responseBody))
	}))
	t.Cleanup(srv.Close)
	gw := gateway.NewGateway(srv.URL, 2*time.Second, zap.NewNop())
	return NewCartClient(gw), rec
}

func TestGetCart(t *testing.T) {
	client, rec := newRecordingClient(t, `{"cart":{"id":7,"user_id":1,"items":[],"totalItems":0,"totalAmount":"0.00"}}`)

	cart, err := client.GetCart(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/cart", rec.path)
	assert.Equal(t, int64(7), cart.ID)
	assert.Equal(t, "0.00", cart.TotalAmount)
}

func TestAddToCart(t *testing.T) {
	client, rec := newRecordingClient(t, `{"cartItem":{"id":4,"quantity":2},"message":"Added to cart"}`)

	resp, err := client.AddToCart(context.Background(), 3, 2)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/cart/add", rec.path)
	assert.JSONEq(t, `{"product_id":3,"quantity":2}`, string(rec.body))
	assert.Equal(t, "Added to cart", resp.Message)
	assert.Equal(t, int64(4), resp.CartItem.ID)
}

func TestUpdateCartItem(t *testing.T) {
	client, rec := newRecordingClient(t, `{"message":"Cart updated"}`)

	msg, err := client.UpdateCartItem(context.Background(), 4, 5)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/cart/item/4", rec.path)
	assert.JSONEq(t, `{"quantity":5}`, string(rec.body))
	assert.Equal(t, "Cart updated", msg)
}

func TestRemoveCartItem(t *testing.T) {
	client, rec := newRecordingClient(t, `{"message":"Item removed"}`)

	msg, err := client.RemoveCartItem(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/cart/item/4", rec.path)
	assert.Equal(t, "Item removed", msg)
}

func TestClearCart(t *testing.T) {
	client, rec := newRecordingClient(t, `{"message":"Cart cleared"}`)

	msg, err := client.ClearCart(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/cart/clear", rec.path)
	assert.Equal(t, "Cart cleared", msg)
}

func TestGetAllCarts(t *testing.T) {
	client, rec := newRecordingClient(t, `{"carts":[{"id":1},{"id":2}],"pagination":{"page":2,"limit":10,"total":12,"totalPages":2}}`)

	resp, err := client.GetAllCarts(context.Background(), 2, 10)

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/cart/admin/all", rec.path)
	assert.Contains(t, rec.query, "page=2")
	assert.Contains(t, rec.query, "limit=10")
	assert.Len(t, resp.Carts, 2)
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, 12, resp.Pagination.Total)
}

func TestErrorPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Cart item not found"}`))
	}))
	t.Cleanup(srv.Close)
	client := NewCartClient(gateway.NewGateway(srv.URL, 2*time.Second, zap.NewNop()))

	_, err := client.RemoveCartItem(context.Background(), 99)

	var apiErr *gateway.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Cart item not found", apiErr.Message)
}
