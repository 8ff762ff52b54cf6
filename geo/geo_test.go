package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReverseSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"display_name": "Av. Larco 123, Miraflores, Lima, Peru",
		})
	}))
	defer ts.Close()

	c := New(ts.URL)
	got := c.Reverse(context.Background(), -12.119, -77.029)
	if got != "Av. Larco 123, Miraflores, Lima, Peru" {
		t.Errorf("Reverse = %q", got)
	}
}

func TestReverseFallsBackToCoordinates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := New(ts.URL)
	got := c.Reverse(context.Background(), -12.119, -77.029)
	if got != "-12.119000, -77.029000" {
		t.Errorf("fallback = %q", got)
	}
}

func TestReverseGeocodeHandler(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"display_name": "Somewhere in Lima"})
	}))
	defer ts.Close()

	h := NewHandler(New(ts.URL))

	req := httptest.NewRequest(http.MethodGet, "/api/geo/reverse?lat=-12.1&lon=-77.0", nil)
	w := httptest.NewRecorder()
	h.ReverseGeocode(w, req, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var out map[string]string
	json.Unmarshal(w.Body.Bytes(), &out)
	if out["address"] != "Somewhere in Lima" {
		t.Errorf("address = %q", out["address"])
	}

	req = httptest.NewRequest(http.MethodGet, "/api/geo/reverse?lat=abc", nil)
	w = httptest.NewRecorder()
	h.ReverseGeocode(w, req, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for bad coords", w.Code)
	}
}
