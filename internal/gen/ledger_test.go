package gen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedgen/internal/models"
)

func testInventory(productID string, onHand, reserved, reorderLevel int) models.InventoryRecord {
	return models.InventoryRecord{
		ProductID:    productID,
		LocationID:   PrimaryLocation,
		LocationType: "warehouse",
		OnHandQty:    onHand,
		ReservedQty:  reserved,
		AvailableQty: onHand - reserved,
		ReorderLevel: reorderLevel,
		SafetyStock:  25,
	}
}

func TestDepleteRecomputesAvailable(t *testing.T) {
	ledger := NewInventoryLedger(newMemSink(), []models.InventoryRecord{
		testInventory("P1001", 100, 15, 50),
	})

	ledger.Deplete("P1001", 30, time.Now())

	rec, ok := ledger.Record("P1001", PrimaryLocation)
	require.True(t, ok)
	assert.Equal(t, 70, rec.OnHandQty)
	assert.Equal(t, rec.OnHandQty-rec.ReservedQty, rec.AvailableQty)
}

func TestDepleteFloorsAtZero(t *testing.T) {
	ledger := NewInventoryLedger(newMemSink(), []models.InventoryRecord{
		testInventory("P1001", 10, 0, 50),
	})

	// demand exceeds supply: stock floors at zero instead of going negative
	ledger.Deplete("P1001", 999, time.Now())

	rec, _ := ledger.Record("P1001", PrimaryLocation)
	assert.Equal(t, 0, rec.OnHandQty)
	assert.Equal(t, 0, rec.AvailableQty)
	assert.GreaterOrEqual(t, rec.OnHandQty, 0)
}

func TestDepleteUnknownProductIsNoop(t *testing.T) {
	ledger := NewInventoryLedger(newMemSink(), []models.InventoryRecord{
		testInventory("P1001", 10, 0, 50),
	})

	ledger.Deplete("P9999", 5, time.Now())

	rec, _ := ledger.Record("P1001", PrimaryLocation)
	assert.Equal(t, 10, rec.OnHandQty)
}

func TestMaybeRestockBringsStockIntoReorderBand(t *testing.T) {
	rng := NewRand(42)
	at := time.Now()

	for i := 0; i < 200; i++ {
		ledger := NewInventoryLedger(newMemSink(), []models.InventoryRecord{
			testInventory("P1001", 40, 0, 50),
		})

		restocked := ledger.MaybeRestock(rng, at)
		require.Equal(t, 1, restocked)

		rec, _ := ledger.Record("P1001", PrimaryLocation)
		assert.GreaterOrEqual(t, rec.OnHandQty, 50)
		assert.LessOrEqual(t, rec.OnHandQty, 100)
		assert.Equal(t, rec.OnHandQty-rec.ReservedQty, rec.AvailableQty)
		assert.Equal(t, at, rec.LastRestockedAt)
	}
}

func TestMaybeRestockSkipsHealthyStock(t *testing.T) {
	ledger := NewInventoryLedger(newMemSink(), []models.InventoryRecord{
		testInventory("P1001", 50, 0, 50),
		testInventory("P1002", 300, 10, 50),
	})

	assert.Equal(t, 0, ledger.MaybeRestock(NewRand(1), time.Now()))
}

func TestTouchOnlyMovesCountTimestamp(t *testing.T) {
	ledger := NewInventoryLedger(newMemSink(), []models.InventoryRecord{
		testInventory("P1001", 120, 15, 50),
	})
	at := time.Now()

	// p=1 so the touch always fires
	touched := ledger.Touch(NewRand(3), 1.0, at)
	require.Equal(t, 1, touched)

	rec, _ := ledger.Record("P1001", PrimaryLocation)
	assert.Equal(t, 120, rec.OnHandQty)
	assert.Equal(t, 15, rec.ReservedQty)
	assert.Equal(t, 105, rec.AvailableQty)
	assert.Equal(t, at, rec.LastCountedAt)
}

func TestFlushWritesDirtyRecordsOnce(t *testing.T) {
	sink := newMemSink()
	ledger := NewInventoryLedger(sink, []models.InventoryRecord{
		testInventory("P1001", 100, 0, 50),
		testInventory("P1002", 100, 0, 50),
	})
	ctx := context.Background()

	ledger.Deplete("P1001", 5, time.Now())

	flushed, err := ledger.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, flushed)
	require.Len(t, sink.upserts[CollInventory], 1)
	assert.Equal(t, "P1001", sink.upserts[CollInventory][0].key["product_id"])

	// clean ledger flushes nothing
	flushed, err = ledger.Flush(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, flushed)
}

func TestFlushPropagatesSinkFailure(t *testing.T) {
	sink := newMemSink()
	sink.failWith = errSinkDown
	ledger := NewInventoryLedger(sink, []models.InventoryRecord{
		testInventory("P1001", 100, 0, 50),
	})

	ledger.Deplete("P1001", 1, time.Now())

	_, err := ledger.Flush(context.Background())
	assert.ErrorIs(t, err, errSinkDown)
}

func TestAvailableInvariantHoldsAfterMixedOperations(t *testing.T) {
	rng := NewRand(99)
	ledger := NewInventoryLedger(newMemSink(), []models.InventoryRecord{
		testInventory("P1001", 200, 20, 50),
		testInventory("P1002", 80, 5, 50),
		testInventory("P1003", 45, 0, 50),
	})

	for i := 0; i < 500; i++ {
		switch rng.Index(3) {
		case 0:
			ledger.Deplete([]string{"P1001", "P1002", "P1003"}[rng.Index(3)], rng.IntBetween(1, 20), time.Now())
		case 1:
			ledger.MaybeRestock(rng, time.Now())
		case 2:
			ledger.Touch(rng, 0.5, time.Now())
		}

		for _, rec := range ledger.Records() {
			assert.GreaterOrEqual(t, rec.OnHandQty, 0)
			assert.Equal(t, rec.OnHandQty-rec.ReservedQty, rec.AvailableQty)
		}
	}
}
