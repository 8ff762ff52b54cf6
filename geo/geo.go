package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"puntogo/utils"

	"github.com/julienschmidt/httprouter"
)

const requestTimeout = 5 * time.Second

// Client resolves coordinates to a display address through a public
// Nominatim-style geocoder. It is only an address-prefill convenience:
// every failure falls back to the raw coordinates.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: requestTimeout},
	}
}

// Reverse returns a human-readable address for lat/lon, or the formatted
// coordinates when the geocoder is unreachable or answers nonsense.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) string {
	fallback := fmt.Sprintf("%.6f, %.6f", lat, lon)

	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', 6, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return fallback
	}
	req.Header.Set("User-Agent", "puntogo-storefront")

	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Println("geo: reverse lookup failed:", err)
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Println("geo: geocoder responded", resp.StatusCode)
		return fallback
	}

	var out struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.DisplayName == "" {
		return fallback
	}
	return out.DisplayName
}

type Handler struct {
	geo *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{geo: client}
}

// ReverseGeocode prefills the delivery-address field from device coordinates.
func (h *Handler) ReverseGeocode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if errLat != nil || errLon != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "lat and lon are required")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"address": h.geo.Reverse(r.Context(), lat, lon),
	})
}
