package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, New(Options{BaseURL: srv.URL})
}

func TestItemsDecodesBareArray(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/items", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":7,"item_name":"TMT Bar 12mm","gst_rate":18}]`))
	})

	list, err := c.Items(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "TMT Bar 12mm", list[0].ItemName)
	assert.Equal(t, 18.0, list[0].GSTRate)
}

func TestOrderWithItemsUnwrapsEnvelope(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/with-items/9", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":9,"order_number":"ORD-009","items":[{"item_id":7,"qty_mt":2,"rate":100,"amount":200}]}}`))
	})

	order, err := c.OrderWithItems(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "ORD-009", order.OrderNumber)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 200.0, order.Items[0].Amount)
}

func TestCreateOrderSendsPayload(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders/bulk", r.URL.Path)

		var payload SubmitPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ORD-001", payload.OrderHeader.OrderNumber)
		require.Len(t, payload.OrderItems, 1)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":12},"message":"Order created successfully"}`))
	})

	id, err := c.CreateOrder(context.Background(), SubmitPayload{
		OrderHeader: HeaderInput{OrderNumber: "ORD-001", LedgerID: 4, OrderDate: "2025-08-14"},
		OrderItems:  []LineInput{{ItemID: 7, QtyMT: 2, Rate: 100, Amount: 200}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
}

func TestWriteErrorSurfacesBackendMessage(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"Order number is required"}`))
	})

	err := c.UpdateOrder(context.Background(), 5, SubmitPayload{})
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "Order number is required", netErr.Message)
	assert.Equal(t, "Order number is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, netErr.Status)
}

func TestUpdatePaymentReturnsOrder(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/orders/5/payment", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":5,"payment_status":"Partial","balance_due":600},"message":"Payment updated successfully"}`))
	})

	order, err := c.UpdatePayment(context.Background(), 5, PaymentRequest{PaidAmount: 400})
	require.NoError(t, err)
	assert.Equal(t, "Partial", order.PaymentStatus)
	assert.Equal(t, 600.0, order.BalanceDue)
}

func TestUnreachableBackend(t *testing.T) {
	srv, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := c.Orders(context.Background())
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Zero(t, netErr.Status)
}

func TestReadErrorSurfacesProblemDetail(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"title":"Internal Error","status":500,"detail":"failed to load orders"}`))
	})

	_, err := c.Orders(context.Background())
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "failed to load orders", netErr.Message)
}
