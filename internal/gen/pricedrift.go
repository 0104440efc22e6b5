package gen

import (
	"context"
	"fmt"
	"time"

	"seedgen/internal/models"
)

// PriceDriftEngine occasionally perturbs a product's current price to give
// a change-capture consumer ordinary-looking update traffic. Drift is
// bounded and the price is floored so it can never reach zero.
type PriceDriftEngine struct {
	sink Sink

	Probability float64 // chance of one drift per simulated day
	MaxDriftPct float64 // bound on the relative adjustment
	Floor       float64 // minimum price in currency units
}

func NewPriceDriftEngine(sink Sink) *PriceDriftEngine {
	return &PriceDriftEngine{
		sink:        sink,
		Probability: 0.30,
		MaxDriftPct: 0.10,
		Floor:       5.00,
	}
}

// DriftPrice applies one bounded random adjustment to a price.
func (e *PriceDriftEngine) DriftPrice(rng *Rand, price float64) float64 {
	drifted := Round2(price * (1 + rng.FloatBetween(-e.MaxDriftPct, e.MaxDriftPct)))
	if drifted < e.Floor {
		drifted = e.Floor
	}
	return drifted
}

// MaybeDrift rolls the daily probability and, when it fires, adjusts one
// random product in place and persists it. Returns the adjusted product or
// nil when nothing fired.
func (e *PriceDriftEngine) MaybeDrift(ctx context.Context, rng *Rand, products []models.Product, at time.Time) (*models.Product, error) {
	if len(products) == 0 || !rng.Chance(e.Probability) {
		return nil, nil
	}

	p := &products[rng.Index(len(products))]
	p.CurrentPrice = e.DriftPrice(rng, p.CurrentPrice)
	p.UpdatedAt = at

	key := map[string]interface{}{"product_id": p.ProductID}
	if err := e.sink.UpsertByKey(ctx, CollProducts, key, *p); err != nil {
		return nil, fmt.Errorf("failed to persist price drift for %s: %w", p.ProductID, err)
	}
	return p, nil
}
