package pricing

// Tiers is the shipping rule set: a minimum order below which delivery is not
// possible, a flat delivery fee, and a free-shipping cutoff. The numbers are
// business configuration and change over time, so they are never hardcoded
// outside the config defaults.
type Tiers struct {
	MinimumOrder   float64
	FlatFee        float64
	FreeShippingAt float64
}

// Quote is the derived pricing of a cart. Recomputed on every cart change.
type Quote struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shippingCost"`
	Total        float64 `json:"total"`
	MinimumMet   bool    `json:"isMinimumMet"`
	FreeShipping bool    `json:"isFreeShipping"`
}

// Compute applies the three shipping tiers in order: below the minimum order
// there is no delivery (shipping stays 0 and checkout is blocked elsewhere),
// at or above the free-shipping cutoff shipping is free, anything in between
// pays the flat fee. Total = Subtotal + ShippingCost in every case.
func Compute(subtotal float64, t Tiers) Quote {
	q := Quote{Subtotal: subtotal}
	switch {
	case subtotal < t.MinimumOrder:
		// no delivery possible; MinimumMet stays false
	case subtotal >= t.FreeShippingAt:
		q.MinimumMet = true
		q.FreeShipping = true
	default:
		q.MinimumMet = true
		q.ShippingCost = t.FlatFee
	}
	q.Total = subtotal + q.ShippingCost
	return q
}
