package gen

import (
	"context"
	"fmt"
	"time"

	"seedgen/internal/models"
)

// Order generation knobs that stay fixed across runs. The per-day noise and
// floor are part of the workload's shape, not configuration.
const (
	dayNoiseMin     = -10
	dayNoiseMax     = 25
	minOrdersPerDay = 20

	maxItemsPerOrder    = 5
	maxQtyPerLine       = 5
	distinctDrawRetries = 5

	unitPriceDriftPct = 0.05
	discountChance    = 0.25
	maxDiscountPct    = 0.15
	taxRate           = 0.0875

	touchChance = 0.05
)

var (
	paymentMethods = []string{"visa", "mastercard", "amex", "paypal"}
	salesChannels  = []string{"web", "mobile", "phone", "store"}
	shippingRates  = []float64{0, 4.99, 7.99, 12.99}
	carriers       = []string{"UPS", "FedEx", "USPS"}
	serviceLevels  = []string{"GROUND", "2DAY", "EXPRESS"}
	cancelReasons  = []string{"customer_request", "payment_reversed", "out_of_stock"}
)

// OrderGeneratorConfig holds the per-run workload shape.
type OrderGeneratorConfig struct {
	DaysBack          int
	WeekdayBaseOrders int
	WeekendBaseOrders int
}

// RunSummary reports what a generation run produced.
type RunSummary struct {
	Days        int
	Orders      int
	Restocks    int
	Touches     int
	PriceDrifts int
}

// OrderGenerator produces the historical order workload. Days are generated
// oldest-first and each day's ledger mutations are flushed before the next
// day starts, so stock state flows forward consistently. A day's orders are
// built fully in memory before any write for that day is issued.
type OrderGenerator struct {
	sink    Sink
	rng     *Rand
	catalog *ReferenceCatalog
	ledger  *InventoryLedger
	drift   *PriceDriftEngine
	cfg     OrderGeneratorConfig

	seq int // per-run order sequence, makes order_id unique within a run
}

func NewOrderGenerator(sink Sink, rng *Rand, catalog *ReferenceCatalog, ledger *InventoryLedger, drift *PriceDriftEngine, cfg OrderGeneratorConfig) *OrderGenerator {
	return &OrderGenerator{
		sink:    sink,
		rng:     rng,
		catalog: catalog,
		ledger:  ledger,
		drift:   drift,
		cfg:     cfg,
	}
}

// Run generates the whole historical window. Existing orders are cleared
// first, so a re-run against the same store can never hit the order_id
// uniqueness constraint.
func (g *OrderGenerator) Run(ctx context.Context) (*RunSummary, error) {
	if len(g.catalog.Customers) == 0 || len(g.catalog.Vendors) == 0 || len(g.catalog.Products) == 0 {
		return nil, fmt.Errorf("need customers, vendors and products before generating orders: %w", ErrEmptyCatalog)
	}

	if err := g.sink.DeleteMatching(ctx, CollOrders, map[string]interface{}{}); err != nil {
		return nil, fmt.Errorf("failed to clear existing orders: %w", err)
	}

	now := time.Now().UTC()
	start := now.AddDate(0, 0, -g.cfg.DaysBack).Truncate(24 * time.Hour)

	summary := &RunSummary{Days: g.cfg.DaysBack}
	for d := 0; d < g.cfg.DaysBack; d++ {
		day := start.AddDate(0, 0, d)
		if err := g.generateDay(ctx, day, summary); err != nil {
			return summary, fmt.Errorf("failed to generate orders for %s: %w", day.Format("2006-01-02"), err)
		}
	}
	return summary, nil
}

// generateDay builds and persists one day's batch, then settles the ledger
// and lets the price drift engine fire.
func (g *OrderGenerator) generateDay(ctx context.Context, day time.Time, summary *RunSummary) error {
	count := g.DayOrderCount(day)

	orders := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		g.seq++
		orders = append(orders, g.buildOrder(day, g.seq))
	}

	if err := g.sink.InsertMany(ctx, CollOrders, orders); err != nil {
		return fmt.Errorf("failed to insert order batch: %w", err)
	}
	summary.Orders += count

	endOfDay := day.Add(24*time.Hour - time.Second)
	summary.Restocks += g.ledger.MaybeRestock(g.rng, endOfDay)
	summary.Touches += g.ledger.Touch(g.rng, touchChance, endOfDay)
	if _, err := g.ledger.Flush(ctx); err != nil {
		return err
	}

	drifted, err := g.drift.MaybeDrift(ctx, g.rng, g.catalog.Products, endOfDay)
	if err != nil {
		return err
	}
	if drifted != nil {
		summary.PriceDrifts++
	}
	return nil
}

// DayOrderCount draws the order volume for one day: weekday or weekend
// baseline plus uniform noise, floored so no day is empty.
func (g *OrderGenerator) DayOrderCount(day time.Time) int {
	base := g.cfg.WeekdayBaseOrders
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		base = g.cfg.WeekendBaseOrders
	}
	count := base + g.rng.IntBetween(dayNoiseMin, dayNoiseMax)
	if count < minOrdersPerDay {
		count = minOrdersPerDay
	}
	return count
}

func (g *OrderGenerator) buildOrder(day time.Time, seq int) models.Order {
	customer := g.catalog.Customers[g.rng.Index(len(g.catalog.Customers))]
	orderDate := g.rng.TimeInDay(day)

	lineItems, totals := g.buildLineItems(orderDate)

	status, history := g.rollStatus(orderDate)
	updatedAt := history[len(history)-1].At

	addr := shippingAddressFor(customer)

	order := models.Order{
		OrderID:         fmt.Sprintf("SO-%08d", seq),
		CustomerID:      customer.CustomerID,
		OrderDate:       orderDate,
		Status:          status,
		StatusHistory:   history,
		LineItems:       lineItems,
		Totals:          totals,
		Currency:        "USD",
		PaymentMethod:   g.rng.Choice(paymentMethods),
		SalesChannel:    g.rng.Choice(salesChannels),
		ShippingAddress: addr,
		BillingAddress:  addr,
		CreatedAt:       orderDate,
		UpdatedAt:       updatedAt,
	}

	// Payment and shipment sub-records exist only once the lifecycle
	// reached them.
	if status != models.OrderStatusNew {
		order.Payment = g.buildPayment(history)
	}
	if status == models.OrderStatusShipped {
		order.Shipment = g.buildShipment(history)
	}
	return order
}

// buildLineItems draws 1-5 best-effort-distinct products, prices each line
// and depletes the ledger immediately, before totals are finalized.
func (g *OrderGenerator) buildLineItems(orderDate time.Time) ([]models.LineItem, models.Totals) {
	numItems := g.rng.IntBetween(1, maxItemsPerOrder)
	used := make(map[string]bool, numItems)

	items := make([]models.LineItem, 0, numItems)
	var totals models.Totals

	for j := 0; j < numItems; j++ {
		var product models.Product
		for attempts := 0; attempts < distinctDrawRetries; attempts++ {
			product = g.catalog.Products[g.rng.Index(len(g.catalog.Products))]
			if !used[product.ProductID] {
				break
			}
		}
		used[product.ProductID] = true

		qty := g.rng.IntBetween(1, maxQtyPerLine)
		unitPrice := Round2(product.CurrentPrice * (1 + g.rng.FloatBetween(-unitPriceDriftPct, unitPriceDriftPct)))
		lineSubtotal := Round2(unitPrice * float64(qty))

		var discount float64
		if g.rng.Chance(discountChance) {
			discount = Round2(lineSubtotal * g.rng.FloatBetween(0.05, maxDiscountPct))
		}
		tax := Round2((lineSubtotal - discount) * taxRate)
		extended := Round2(unitPrice*float64(qty) - discount + tax)

		g.ledger.Deplete(product.ProductID, qty, orderDate)

		items = append(items, models.LineItem{
			LineNo:         j + 1,
			ProductID:      product.ProductID,
			VendorID:       product.VendorID,
			Quantity:       qty,
			UnitPrice:      unitPrice,
			DiscountAmount: discount,
			TaxAmount:      tax,
			ExtendedPrice:  extended,
		})

		totals.Subtotal = Round2(totals.Subtotal + lineSubtotal)
		totals.Discount = Round2(totals.Discount + discount)
		totals.Tax = Round2(totals.Tax + tax)
	}

	totals.Shipping = shippingRates[g.rng.Index(len(shippingRates))]
	totals.GrandTotal = Round2(totals.Subtotal - totals.Discount + totals.Tax + totals.Shipping)
	return items, totals
}

// rollStatus picks the final order status with a weighted single roll, then
// synthesizes the history along the NEW -> PAID -> {SHIPPED|CANCELED}
// lifecycle. Timestamps only move forward and the last entry is the order's
// updated_at.
func (g *OrderGenerator) rollStatus(orderDate time.Time) (string, []models.StatusChange) {
	roll := g.rng.IntBetween(1, 100)

	history := []models.StatusChange{{Status: models.OrderStatusNew, At: orderDate}}
	if roll <= 40 {
		return models.OrderStatusNew, history
	}

	paidAt := orderDate.Add(time.Duration(g.rng.IntBetween(5, 720)) * time.Minute)
	history = append(history, models.StatusChange{Status: models.OrderStatusPaid, At: paidAt})

	switch {
	case roll > 90:
		canceledAt := paidAt.Add(time.Duration(g.rng.IntBetween(1, 48)) * time.Hour)
		history = append(history, models.StatusChange{
			Status: models.OrderStatusCanceled,
			At:     canceledAt,
			Reason: g.rng.Choice(cancelReasons),
		})
		return models.OrderStatusCanceled, history
	case roll > 70:
		shippedAt := paidAt.Add(time.Duration(g.rng.IntBetween(1, 72)) * time.Hour)
		history = append(history, models.StatusChange{Status: models.OrderStatusShipped, At: shippedAt})
		return models.OrderStatusShipped, history
	default:
		return models.OrderStatusPaid, history
	}
}

func (g *OrderGenerator) buildPayment(history []models.StatusChange) *models.Payment {
	var paidAt time.Time
	for _, h := range history {
		if h.Status == models.OrderStatusPaid {
			paidAt = h.At
		}
	}
	return &models.Payment{
		Method:        "card",
		Provider:      g.rng.Choice([]string{"VISA", "MASTERCARD", "AMEX"}),
		Last4:         fmt.Sprintf("%04d", g.rng.IntBetween(0, 9999)),
		TransactionID: fmt.Sprintf("TX-%09d", g.rng.IntBetween(100000000, 999999999)),
		PaidAt:        paidAt,
	}
}

func (g *OrderGenerator) buildShipment(history []models.StatusChange) *models.Shipment {
	var shippedAt time.Time
	for _, h := range history {
		if h.Status == models.OrderStatusShipped {
			shippedAt = h.At
		}
	}
	return &models.Shipment{
		Carrier:        g.rng.Choice(carriers),
		ServiceLevel:   g.rng.Choice(serviceLevels),
		TrackingNumber: fmt.Sprintf("1Z999%012d", g.rng.IntBetween(0, 999999999)),
		ShippedAt:      shippedAt,
	}
}

func shippingAddressFor(customer models.Customer) models.Address {
	if len(customer.Addresses) == 0 {
		return models.Address{
			AddressID: "ADDR-DEFAULT", Type: "shipping", Line1: "Unknown",
			City: "Unknown", State: "NA", PostalCode: "00000", Country: "US",
			IsDefault: true,
		}
	}
	for _, a := range customer.Addresses {
		if a.IsDefault {
			addr := a
			addr.Name = customer.FirstName + " " + customer.LastName
			return addr
		}
	}
	addr := customer.Addresses[0]
	addr.Name = customer.FirstName + " " + customer.LastName
	return addr
}
