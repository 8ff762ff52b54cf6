package orders

import (
	"context"
	"encoding/json"
	"time"

	"puntogo/kv"
	"puntogo/models"
)

// Only the most recent order is kept per session, overwritten each checkout.
// It backs the confirmation page even when the remote submission failed.
const lastOrderTTL = 30 * 24 * time.Hour

type Store struct {
	kv kv.Store
}

func NewStore(store kv.Store) *Store {
	return &Store{kv: store}
}

func lastKey(sessionID string) string {
	return "order:last:" + sessionID
}

// SaveLast overwrites the last-order snapshot for the session.
func (s *Store) SaveLast(ctx context.Context, sessionID string, order models.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, lastKey(sessionID), string(data), lastOrderTTL)
}

// Last returns the stored snapshot, or kv.ErrNotFound if the session has not
// checked out yet.
func (s *Store) Last(ctx context.Context, sessionID string) (models.Order, error) {
	raw, err := s.kv.Get(ctx, lastKey(sessionID))
	if err != nil {
		return models.Order{}, err
	}
	var order models.Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}
