package ventify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"puntogo/config"
)

const requestTimeout = 10 * time.Second

// Client is the thin REST client for the Ventify commerce backend. Every call
// checks credentials first; a missing credential is reported immediately
// without touching the network.
type Client struct {
	baseURL   string
	apiKey    string
	accountID string
	httpc     *http.Client
}

func New(cfg config.Ventify) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		accountID: cfg.AccountID,
		httpc:     &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) configured() bool {
	return c.baseURL != "" && c.apiKey != "" && c.accountID != ""
}

// OrderItem is one line of the sale request as Ventify expects it.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type OrderPayload struct {
	CustomerName           string      `json:"customerName"`
	CustomerEmail          string      `json:"customerEmail"`
	CustomerPhone          string      `json:"customerPhone"`
	Items                  []OrderItem `json:"items"`
	Total                  float64     `json:"total"`
	PreferredPaymentMethod string      `json:"preferredPaymentMethod"`
	Notes                  string      `json:"notes,omitempty"`
}

// SubmitResult reports the outcome of a sale request. Callers treat a failed
// submission as a logged non-event: the local order snapshot is the source of
// truth for the confirmation screen either way.
type SubmitResult struct {
	OK      bool
	OrderID string
	Message string
}

// CreateSaleRequest posts the order to Ventify. It never returns an error;
// all failure modes collapse into a SubmitResult the caller can log and move
// past. No retry, no backoff: a failed submission is simply dropped.
func (c *Client) CreateSaleRequest(ctx context.Context, payload OrderPayload) SubmitResult {
	if !c.configured() {
		log.Println("ventify: credentials incomplete, skipping sale request")
		return SubmitResult{Message: "ventify configuration incomplete"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Println("ventify: marshal sale request:", err)
		return SubmitResult{Message: err.Error()}
	}

	url := fmt.Sprintf("%s/api/public/stores/%s/sale-requests", c.baseURL, c.accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Println("ventify: build sale request:", err)
		return SubmitResult{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Println("ventify: sale request failed:", err)
		return SubmitResult{Message: err.Error()}
	}
	defer resp.Body.Close()

	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Println("ventify: decode sale response:", err)
		return SubmitResult{Message: "invalid response from ventify"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("ventify responded %d", resp.StatusCode)
		if m, ok := data["message"].(string); ok && m != "" {
			msg = m
		}
		log.Println("ventify: sale request rejected:", msg)
		return SubmitResult{Message: msg}
	}

	return SubmitResult{OK: true, OrderID: extractOrderID(data)}
}

// The response field carrying the order id is not contractually fixed, so
// several plausible names are checked in order.
var orderIDFields = []string{"order_id", "orderId", "external_id", "id", "saleRequestId"}

func extractOrderID(data map[string]any) string {
	for _, field := range orderIDFields {
		switch v := data[field].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}
