package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"puntogo/kv"
	"puntogo/models"
)

// Carts live only for the browsing session; stale ones age out.
const cartTTL = 7 * 24 * time.Hour

// Store owns every cart line for the lifetime of a session. All mutation goes
// through its API; views only read derived state.
type Store struct {
	kv kv.Store
}

func New(store kv.Store) *Store {
	return &Store{kv: store}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Lines returns the cart in insertion order. A missing cart is an empty cart.
func (s *Store) Lines(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	raw, err := s.kv.Get(ctx, cartKey(sessionID))
	if errors.Is(err, kv.ErrNotFound) {
		return []models.CartLine{}, nil
	}
	if err != nil {
		return nil, err
	}
	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *Store) save(ctx context.Context, sessionID string, lines []models.CartLine) error {
	if len(lines) == 0 {
		return s.kv.Del(ctx, cartKey(sessionID))
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, cartKey(sessionID), string(data), cartTTL)
}

// Add puts quantity units of product in the cart, merging with an existing
// line for the same product.
func (s *Store) Add(ctx context.Context, sessionID string, product models.Product, quantity int) ([]models.CartLine, error) {
	if quantity < 1 {
		return nil, errors.New("quantity must be at least 1")
	}
	lines, err := s.Lines(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	merged := false
	for i := range lines {
		if lines[i].Product.ID == product.ID {
			lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, models.CartLine{Product: product, Quantity: quantity})
	}
	if err := s.save(ctx, sessionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// SetQuantity sets the quantity of an existing line. Zero or less removes the
// line; zero-quantity lines are never kept.
func (s *Store) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) ([]models.CartLine, error) {
	lines, err := s.Lines(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := lines[:0]
	for _, line := range lines {
		if line.Product.ID == productID {
			if quantity <= 0 {
				continue
			}
			line.Quantity = quantity
		}
		out = append(out, line)
	}
	if err := s.save(ctx, sessionID, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Remove drops the line for productID if present.
func (s *Store) Remove(ctx context.Context, sessionID, productID string) ([]models.CartLine, error) {
	return s.SetQuantity(ctx, sessionID, productID, 0)
}

// Clear destroys the cart, e.g. on checkout completion.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.kv.Del(ctx, cartKey(sessionID))
}

// Subtotal is the sum of unit price times quantity over all lines.
func Subtotal(lines []models.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}
