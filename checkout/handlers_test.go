package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"puntogo/cartstore"
	"puntogo/config"
	"puntogo/kv"
	"puntogo/models"
	"puntogo/orders"
	"puntogo/pricing"
	"puntogo/ventify"
)

var testTiers = pricing.Tiers{MinimumOrder: 20, FlatFee: 5, FreeShippingAt: 150}

type fixture struct {
	handler *Handler
	carts   *cartstore.Store
	orders  *orders.Store
}

func newFixture(t *testing.T, ventifyURL string) fixture {
	t.Helper()
	store := kv.NewMemory()
	carts := cartstore.New(store)
	orderStore := orders.NewStore(store)
	cfg := config.Ventify{BaseURL: ventifyURL, APIKey: "k", AccountID: "acct"}
	if ventifyURL == "" {
		cfg = config.Ventify{}
	}
	client := ventify.New(cfg)
	return fixture{
		handler: NewHandler(carts, orderStore, client, testTiers),
		carts:   carts,
		orders:  orderStore,
	}
}

func fillCart(t *testing.T, f fixture, sessionID string, price float64, qty int) {
	t.Helper()
	product := models.Product{ID: "p1", Title: "Whisky", Price: price, Stock: 10}
	if _, err := f.carts.Add(context.Background(), sessionID, product, qty); err != nil {
		t.Fatal(err)
	}
}

func placeOrder(f fixture, sessionID string, body map[string]any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(data))
	req.Header.Set("X-Session-ID", sessionID)
	w := httptest.NewRecorder()
	f.handler.PlaceOrder(w, req, nil)
	return w
}

func validOrderBody() map[string]any {
	return map[string]any{
		"name":          "Maria Lopez",
		"phone":         "912345678",
		"address":       "Av. Lima 42",
		"paymentMethod": models.PaymentCashOnDelivery,
	}
}

func TestPlaceOrderRemoteFailureStillCompletes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]any{"message": "upstream down"})
	}))
	defer ts.Close()

	f := newFixture(t, ts.URL)
	fillCart(t, f, "s1", 100, 1)

	w := placeOrder(f, "s1", validOrderBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	// local snapshot survives with the placeholder id
	order, err := f.orders.Last(context.Background(), "s1")
	if err != nil {
		t.Fatalf("last order missing: %v", err)
	}
	if !strings.HasPrefix(order.ID, "B001-") {
		t.Errorf("expected placeholder id, got %q", order.ID)
	}
	if order.Total != 105 {
		t.Errorf("total = %v, want 105", order.Total)
	}

	// cart cleared regardless of remote outcome
	lines, _ := f.carts.Lines(context.Background(), "s1")
	if len(lines) != 0 {
		t.Errorf("cart not cleared, %d lines left", len(lines))
	}
}

func TestPlaceOrderRemoteSuccessOverwritesID(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "order_id": "SR-1001"})
	}))
	defer ts.Close()

	f := newFixture(t, ts.URL)
	fillCart(t, f, "s1", 200, 1)

	w := placeOrder(f, "s1", validOrderBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	order, err := f.orders.Last(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}
	if order.ID != "SR-1001" {
		t.Errorf("stored id = %q, want authoritative SR-1001", order.ID)
	}
	// 200 >= free shipping threshold
	if order.ShippingCost != 0 || order.Total != 200 {
		t.Errorf("free shipping not applied: %+v", order)
	}
}

func TestPlaceOrderUnconfiguredVentify(t *testing.T) {
	f := newFixture(t, "")
	fillCart(t, f, "s1", 50, 1)

	w := placeOrder(f, "s1", validOrderBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("missing credentials must not block checkout, status = %d", w.Code)
	}
	if _, err := f.orders.Last(context.Background(), "s1"); err != nil {
		t.Fatalf("last order missing: %v", err)
	}
}

func TestPlaceOrderBelowMinimum(t *testing.T) {
	f := newFixture(t, "")
	fillCart(t, f, "s1", 15, 1) // S/15 < S/20 minimum

	w := placeOrder(f, "s1", validOrderBody())
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	if !strings.Contains(w.Body.String(), "minimum order") {
		t.Errorf("expected minimum-order message, got %s", w.Body.String())
	}
	// order must not exist and cart must survive
	if _, err := f.orders.Last(context.Background(), "s1"); err == nil {
		t.Error("no order should be recorded below the minimum")
	}
	lines, _ := f.carts.Lines(context.Background(), "s1")
	if len(lines) != 1 {
		t.Error("cart should be untouched after a validation failure")
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newFixture(t, "")
	w := placeOrder(f, "s1", validOrderBody())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestPlaceOrderMissingSession(t *testing.T) {
	f := newFixture(t, "")
	w := placeOrder(f, "", validOrderBody())
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestQuote(t *testing.T) {
	f := newFixture(t, "")
	fillCart(t, f, "s1", 100, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/checkout/quote", nil)
	req.Header.Set("X-Session-ID", "s1")
	w := httptest.NewRecorder()
	f.handler.Quote(w, req, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var quote pricing.Quote
	if err := json.Unmarshal(w.Body.Bytes(), &quote); err != nil {
		t.Fatal(err)
	}
	if quote.ShippingCost != 5 || quote.Total != 105 || !quote.MinimumMet {
		t.Errorf("unexpected quote %+v", quote)
	}
}
