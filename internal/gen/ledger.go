package gen

import (
	"context"
	"fmt"
	"time"

	"seedgen/internal/models"
)

type invKey struct {
	productID  string
	locationID string
}

// InventoryLedger owns the working copy of inventory state for one
// generation run. The store stays the system of record; the ledger mutates
// in memory and flushes dirty records before the next simulated day, because
// later days depend on current stock levels.
type InventoryLedger struct {
	sink      Sink
	records   map[invKey]*models.InventoryRecord
	keys      []invKey // stable iteration order
	byProduct map[string][]invKey
	dirty     map[invKey]bool
}

func NewInventoryLedger(sink Sink, records []models.InventoryRecord) *InventoryLedger {
	l := &InventoryLedger{
		sink:      sink,
		records:   make(map[invKey]*models.InventoryRecord, len(records)),
		byProduct: make(map[string][]invKey),
		dirty:     make(map[invKey]bool),
	}
	for i := range records {
		rec := records[i]
		k := invKey{productID: rec.ProductID, locationID: rec.LocationID}
		l.records[k] = &rec
		l.keys = append(l.keys, k)
		l.byProduct[rec.ProductID] = append(l.byProduct[rec.ProductID], k)
	}
	return l
}

// Deplete removes qty units of a product from its locations. Stock floors
// at zero and never goes negative, even when demand exceeds what is on
// hand; the shortfall is dropped on purpose.
func (l *InventoryLedger) Deplete(productID string, qty int, at time.Time) {
	for _, k := range l.byProduct[productID] {
		if qty <= 0 {
			break
		}
		rec := l.records[k]
		take := qty
		if take > rec.OnHandQty {
			take = rec.OnHandQty
		}
		rec.OnHandQty -= take
		rec.AvailableQty = rec.OnHandQty - rec.ReservedQty
		rec.UpdatedAt = at
		l.dirty[k] = true
		qty -= take
	}
}

// MaybeRestock replenishes every record that fell below its reorder level,
// bringing on-hand stock to a random point in [reorder_level, 2*reorder_level].
// The trigger is deterministic; only the magnitude is random. Returns the
// number of records restocked.
func (l *InventoryLedger) MaybeRestock(rng *Rand, at time.Time) int {
	restocked := 0
	for _, k := range l.keys {
		rec := l.records[k]
		if rec.OnHandQty >= rec.ReorderLevel {
			continue
		}
		rec.OnHandQty = rng.IntBetween(rec.ReorderLevel, 2*rec.ReorderLevel)
		rec.AvailableQty = rec.OnHandQty - rec.ReservedQty
		rec.LastRestockedAt = at
		rec.UpdatedAt = at
		l.dirty[k] = true
		restocked++
	}
	return restocked
}

// Touch updates last_counted_at on each record with probability p. It is
// background change noise: a downstream change-capture consumer must see
// these as no-ops on value fields. Returns the number of records touched.
func (l *InventoryLedger) Touch(rng *Rand, p float64, at time.Time) int {
	touched := 0
	for _, k := range l.keys {
		if !rng.Chance(p) {
			continue
		}
		rec := l.records[k]
		rec.LastCountedAt = at
		rec.UpdatedAt = at
		l.dirty[k] = true
		touched++
	}
	return touched
}

// Flush writes all dirty records through to the store and marks them clean.
// Must be called before the next simulated day begins.
func (l *InventoryLedger) Flush(ctx context.Context) (int, error) {
	flushed := 0
	for _, k := range l.keys {
		if !l.dirty[k] {
			continue
		}
		key := map[string]interface{}{
			"product_id":  k.productID,
			"location_id": k.locationID,
		}
		if err := l.sink.UpsertByKey(ctx, CollInventory, key, *l.records[k]); err != nil {
			return flushed, fmt.Errorf("failed to flush inventory %s/%s: %w", k.productID, k.locationID, err)
		}
		delete(l.dirty, k)
		flushed++
	}
	return flushed, nil
}

// Record returns a copy of the ledger entry for a (product, location) pair.
func (l *InventoryLedger) Record(productID, locationID string) (models.InventoryRecord, bool) {
	rec, ok := l.records[invKey{productID: productID, locationID: locationID}]
	if !ok {
		return models.InventoryRecord{}, false
	}
	return *rec, true
}

// Records returns copies of all ledger entries in stable order.
func (l *InventoryLedger) Records() []models.InventoryRecord {
	out := make([]models.InventoryRecord, 0, len(l.keys))
	for _, k := range l.keys {
		out = append(out, *l.records[k])
	}
	return out
}
