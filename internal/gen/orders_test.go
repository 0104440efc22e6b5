package gen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seedgen/internal/models"
)

// newTestGenerator wires a full generator stack against an in-memory sink
// and returns it together with the sink for inspection.
func newTestGenerator(t *testing.T, seed int64, cfg OrderGeneratorConfig) (*OrderGenerator, *memSink) {
	t.Helper()

	sink := newMemSink()
	rng := NewRand(seed)
	catalog := NewReferenceCatalog(sink, rng)
	_, err := catalog.Ensure(context.Background())
	require.NoError(t, err)

	ledger := NewInventoryLedger(sink, catalog.Inventory)
	drift := NewPriceDriftEngine(sink)
	return NewOrderGenerator(sink, rng, catalog, ledger, drift, cfg), sink
}

func generatedOrders(t *testing.T, sink *memSink) []models.Order {
	t.Helper()
	docs := sink.inserts[CollOrders]
	orders := make([]models.Order, 0, len(docs))
	for _, doc := range docs {
		order, ok := doc.(models.Order)
		require.True(t, ok, "orders collection received a non-order document")
		orders = append(orders, order)
	}
	return orders
}

func TestRunFailsFastOnEmptyCatalog(t *testing.T) {
	sink := newMemSink()
	rng := NewRand(1)
	catalog := NewReferenceCatalog(sink, rng) // never ensured: all catalogs empty
	ledger := NewInventoryLedger(sink, nil)
	g := NewOrderGenerator(sink, rng, catalog, ledger, NewPriceDriftEngine(sink), OrderGeneratorConfig{DaysBack: 1, WeekdayBaseOrders: 40, WeekendBaseOrders: 20})

	_, err := g.Run(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCatalog)
	assert.Empty(t, sink.inserts[CollOrders], "no partial output on precondition failure")
}

func TestRunClearsExistingOrdersFirst(t *testing.T) {
	g, sink := newTestGenerator(t, 7, OrderGeneratorConfig{DaysBack: 1, WeekdayBaseOrders: 40, WeekendBaseOrders: 20})

	_, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sink.deletes[CollOrders])
}

func TestDayOrderCountScenario(t *testing.T) {
	// weekday baseline 40, noise [-10, 25], floor 20 -> count in [30, 65]
	g, _ := newTestGenerator(t, 11, OrderGeneratorConfig{DaysBack: 1, WeekdayBaseOrders: 40, WeekendBaseOrders: 20})
	wednesday := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		count := g.DayOrderCount(wednesday)
		assert.GreaterOrEqual(t, count, 30)
		assert.LessOrEqual(t, count, 65)
	}
}

func TestDayOrderCountUsesWeekendBaseline(t *testing.T) {
	g, _ := newTestGenerator(t, 11, OrderGeneratorConfig{DaysBack: 1, WeekdayBaseOrders: 200, WeekendBaseOrders: 50})
	saturday := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		count := g.DayOrderCount(saturday)
		assert.LessOrEqual(t, count, 75, "weekend count drew from the weekday baseline")
	}
}

func TestDayOrderCountFloorsAtMinimum(t *testing.T) {
	g, _ := newTestGenerator(t, 3, OrderGeneratorConfig{DaysBack: 1, WeekdayBaseOrders: 1, WeekendBaseOrders: 1})
	wednesday := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 200; i++ {
		assert.GreaterOrEqual(t, g.DayOrderCount(wednesday), minOrdersPerDay)
	}
}

func TestGeneratedOrdersHoldMoneyInvariants(t *testing.T) {
	g, sink := newTestGenerator(t, 42, OrderGeneratorConfig{DaysBack: 14, WeekdayBaseOrders: 40, WeekendBaseOrders: 20})

	_, err := g.Run(context.Background())
	require.NoError(t, err)

	orders := generatedOrders(t, sink)
	require.NotEmpty(t, orders)

	for _, order := range orders {
		var subtotal, discount, tax float64
		for _, li := range order.LineItems {
			assert.GreaterOrEqual(t, li.Quantity, 1)
			assert.LessOrEqual(t, li.Quantity, maxQtyPerLine)
			assert.GreaterOrEqual(t, li.DiscountAmount, 0.0)
			assert.GreaterOrEqual(t, li.TaxAmount, 0.0)

			expected := Round2(li.UnitPrice*float64(li.Quantity) - li.DiscountAmount + li.TaxAmount)
			assert.InDelta(t, expected, li.ExtendedPrice, 0.005,
				"order %s line %d extended price", order.OrderID, li.LineNo)

			subtotal = Round2(subtotal + Round2(li.UnitPrice*float64(li.Quantity)))
			discount = Round2(discount + li.DiscountAmount)
			tax = Round2(tax + li.TaxAmount)
		}

		assert.InDelta(t, subtotal, order.Totals.Subtotal, 0.005, "order %s subtotal", order.OrderID)
		assert.InDelta(t, discount, order.Totals.Discount, 0.005, "order %s discount", order.OrderID)
		assert.InDelta(t, tax, order.Totals.Tax, 0.005, "order %s tax", order.OrderID)

		expectedGrand := Round2(order.Totals.Subtotal - order.Totals.Discount + order.Totals.Tax + order.Totals.Shipping)
		assert.InDelta(t, expectedGrand, order.Totals.GrandTotal, 0.005, "order %s grand total", order.OrderID)
	}
}

func TestGeneratedOrdersHaveValidStatusHistory(t *testing.T) {
	g, sink := newTestGenerator(t, 17, OrderGeneratorConfig{DaysBack: 14, WeekdayBaseOrders: 40, WeekendBaseOrders: 20})

	_, err := g.Run(context.Background())
	require.NoError(t, err)

	seenStatuses := make(map[string]bool)
	for _, order := range generatedOrders(t, sink) {
		require.NotEmpty(t, order.StatusHistory, "order %s has no history", order.OrderID)

		assert.Equal(t, models.OrderStatusNew, order.StatusHistory[0].Status)
		for i := 1; i < len(order.StatusHistory); i++ {
			assert.False(t, order.StatusHistory[i].At.Before(order.StatusHistory[i-1].At),
				"order %s history timestamps go backwards", order.OrderID)
		}

		last := order.StatusHistory[len(order.StatusHistory)-1]
		assert.Equal(t, order.Status, last.Status)
		assert.Equal(t, order.UpdatedAt, last.At, "order %s updated_at must equal last history entry", order.OrderID)

		if order.Status == models.OrderStatusCanceled {
			require.Len(t, order.StatusHistory, 3)
			assert.Equal(t, models.OrderStatusPaid, order.StatusHistory[1].Status,
				"cancellation must branch after payment")
			assert.NotEmpty(t, last.Reason)
		}
		seenStatuses[order.Status] = true
	}

	// a two-week window is plenty to see the whole lifecycle
	for _, status := range []string{
		models.OrderStatusNew, models.OrderStatusPaid,
		models.OrderStatusShipped, models.OrderStatusCanceled,
	} {
		assert.True(t, seenStatuses[status], "status %s never generated", status)
	}
}

func TestOrderIDsAreUniqueWithinRun(t *testing.T) {
	g, sink := newTestGenerator(t, 23, OrderGeneratorConfig{DaysBack: 10, WeekdayBaseOrders: 40, WeekendBaseOrders: 20})

	_, err := g.Run(context.Background())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, order := range generatedOrders(t, sink) {
		assert.False(t, seen[order.OrderID], "duplicate order id %s", order.OrderID)
		seen[order.OrderID] = true
	}
}

func TestOrderDatesAscendAcrossDays(t *testing.T) {
	g, sink := newTestGenerator(t, 5, OrderGeneratorConfig{DaysBack: 5, WeekdayBaseOrders: 40, WeekendBaseOrders: 20})

	_, err := g.Run(context.Background())
	require.NoError(t, err)

	var lastDay time.Time
	for _, order := range generatedOrders(t, sink) {
		day := order.OrderDate.Truncate(24 * time.Hour)
		assert.False(t, day.Before(lastDay), "order %s generated out of day order", order.OrderID)
		if day.After(lastDay) {
			lastDay = day
		}
	}
}

func TestRunKeepsLedgerConsistentAndFlushed(t *testing.T) {
	g, sink := newTestGenerator(t, 31, OrderGeneratorConfig{DaysBack: 7, WeekdayBaseOrders: 40, WeekendBaseOrders: 20})

	summary, err := g.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, summary.Days)
	assert.Greater(t, summary.Orders, 0)

	for _, rec := range g.ledger.Records() {
		assert.GreaterOrEqual(t, rec.OnHandQty, 0)
		assert.Equal(t, rec.OnHandQty-rec.ReservedQty, rec.AvailableQty)
	}

	// week of 20+ orders a day against 5 products guarantees ledger writes
	assert.NotEmpty(t, sink.upserts[CollInventory])
}

func TestLineItemsDrawDistinctProductsBestEffort(t *testing.T) {
	g, sink := newTestGenerator(t, 13, OrderGeneratorConfig{DaysBack: 7, WeekdayBaseOrders: 40, WeekendBaseOrders: 20})

	_, err := g.Run(context.Background())
	require.NoError(t, err)

	for _, order := range generatedOrders(t, sink) {
		require.GreaterOrEqual(t, len(order.LineItems), 1)
		require.LessOrEqual(t, len(order.LineItems), maxItemsPerOrder)

		for i, li := range order.LineItems {
			assert.Equal(t, i+1, li.LineNo)
			assert.NotEmpty(t, li.ProductID)
			assert.NotEmpty(t, li.VendorID)
		}
	}
}

func TestSubRecordsMatchLifecycle(t *testing.T) {
	g, sink := newTestGenerator(t, 19, OrderGeneratorConfig{DaysBack: 14, WeekdayBaseOrders: 40, WeekendBaseOrders: 20})

	_, err := g.Run(context.Background())
	require.NoError(t, err)

	for _, order := range generatedOrders(t, sink) {
		switch order.Status {
		case models.OrderStatusNew:
			assert.Nil(t, order.Payment, "order %s is NEW but has a payment", order.OrderID)
			assert.Nil(t, order.Shipment)
		case models.OrderStatusPaid, models.OrderStatusCanceled:
			require.NotNil(t, order.Payment, "order %s reached %s without payment", order.OrderID, order.Status)
			assert.Nil(t, order.Shipment)
		case models.OrderStatusShipped:
			require.NotNil(t, order.Payment)
			require.NotNil(t, order.Shipment)
			assert.False(t, order.Shipment.ShippedAt.Before(order.Payment.PaidAt))
		}
	}
}

func TestRunAbortsOnPersistenceFailure(t *testing.T) {
	g, sink := newTestGenerator(t, 3, OrderGeneratorConfig{DaysBack: 3, WeekdayBaseOrders: 40, WeekendBaseOrders: 20})
	sink.failWith = errSinkDown

	_, err := g.Run(context.Background())
	assert.ErrorIs(t, err, errSinkDown)
}
