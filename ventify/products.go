package ventify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"puntogo/models"
)

// ErrNotConfigured means the Ventify credentials are incomplete; callers fall
// back to the seed catalog.
var ErrNotConfigured = errors.New("ventify: credentials incomplete")

type remoteProduct struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Rating        int     `json:"rating"`
	Stock         int     `json:"stock"`
	ReservedStock int     `json:"reservedStock"`
}

// FetchProducts loads the active catalog from Ventify. Available stock is the
// physical stock minus reservations, floored at 0.
func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	if !c.configured() {
		return nil, ErrNotConfigured
	}

	url := fmt.Sprintf("%s/api/public/stores/%s/products?active=true", c.baseURL, c.accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("ventify responded %d", resp.StatusCode)
	}

	var wrapper struct {
		Data []remoteProduct `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(wrapper.Data))
	for _, p := range wrapper.Data {
		available := p.Stock - p.ReservedStock
		if available < 0 {
			available = 0
		}
		products = append(products, models.Product{
			ID:            p.ID,
			Title:         p.Name,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Rating:        p.Rating,
			Image:         p.Image,
			Category:      p.Category,
			Description:   p.Description,
			Stock:         available,
		})
	}
	return products, nil
}
