package gen

import (
	"context"
	"fmt"
	"time"

	"seedgen/internal/models"
)

// ReferenceCatalog materializes the baseline customers, vendors, products
// and inventory once per run and keeps them in memory for the generators.
// Ensure is idempotent: records are upserted by natural key, updated_at is
// touched on every call and created_at is set only on first insert. Nothing
// is ever deleted.
type ReferenceCatalog struct {
	sink Sink
	rng  *Rand

	Customers []models.Customer
	Vendors   []models.Vendor
	Products  []models.Product
	Inventory []models.InventoryRecord
}

func NewReferenceCatalog(sink Sink, rng *Rand) *ReferenceCatalog {
	return &ReferenceCatalog{sink: sink, rng: rng}
}

// Ensure upserts all baseline records and loads the in-memory catalogs.
// It returns the number of records persisted.
func (c *ReferenceCatalog) Ensure(ctx context.Context) (int, error) {
	persisted := 0

	n, err := c.ensureCustomers(ctx)
	if err != nil {
		return persisted, fmt.Errorf("failed to ensure customers: %w", err)
	}
	persisted += n

	n, err = c.ensureVendors(ctx)
	if err != nil {
		return persisted, fmt.Errorf("failed to ensure vendors: %w", err)
	}
	persisted += n

	n, err = c.ensureProductsAndInventory(ctx)
	if err != nil {
		return persisted, fmt.Errorf("failed to ensure products: %w", err)
	}
	persisted += n

	return persisted, nil
}

func (c *ReferenceCatalog) ensureCustomers(ctx context.Context) (int, error) {
	now := time.Now()
	customers := baseCustomers()
	for i := range customers {
		customers[i].UpdatedAt = now
		key := map[string]interface{}{"customer_id": customers[i].CustomerID}
		if err := c.sink.UpsertByKey(ctx, CollCustomers, key, customers[i]); err != nil {
			return 0, err
		}
	}
	c.Customers = customers
	return len(customers), nil
}

func (c *ReferenceCatalog) ensureVendors(ctx context.Context) (int, error) {
	now := time.Now()
	vendors := baseVendors()
	for i := range vendors {
		vendors[i].UpdatedAt = now
		key := map[string]interface{}{"vendor_id": vendors[i].VendorID}
		if err := c.sink.UpsertByKey(ctx, CollVendors, key, vendors[i]); err != nil {
			return 0, err
		}
	}
	c.Vendors = vendors
	return len(vendors), nil
}

func (c *ReferenceCatalog) ensureProductsAndInventory(ctx context.Context) (int, error) {
	now := time.Now()
	products := baseProducts()
	inventory := make([]models.InventoryRecord, 0, len(products))

	for i := range products {
		products[i].UpdatedAt = now
		key := map[string]interface{}{"product_id": products[i].ProductID}
		if err := c.sink.UpsertByKey(ctx, CollProducts, key, products[i]); err != nil {
			return 0, err
		}

		// One primary warehouse record per product.
		onHand := c.rng.IntBetween(100, 500)
		reserved := c.rng.IntBetween(0, 40)
		rec := models.InventoryRecord{
			ProductID:       products[i].ProductID,
			LocationID:      PrimaryLocation,
			LocationType:    "warehouse",
			OnHandQty:       onHand,
			ReservedQty:     reserved,
			AvailableQty:    onHand - reserved,
			ReorderLevel:    50,
			SafetyStock:     25,
			LastRestockedAt: now,
			LastCountedAt:   now,
			LastRestock: models.RestockSource{
				VendorID:        products[i].VendorID,
				PurchaseOrderID: fmt.Sprintf("PO-9%04d", i+1),
			},
			UpdatedAt: now,
		}
		invKey := map[string]interface{}{
			"product_id":  rec.ProductID,
			"location_id": rec.LocationID,
		}
		if err := c.sink.UpsertByKey(ctx, CollInventory, invKey, rec); err != nil {
			return 0, err
		}
		inventory = append(inventory, rec)
	}

	c.Products = products
	c.Inventory = inventory
	return len(products) + len(inventory), nil
}

// ExpandCustomers appends n synthetic customers to the population. IDs are
// sequential from the store's current customer count, so repeat seeding
// runs continue the sequence instead of colliding with the unique
// customer_id and email indexes. Existing records are never modified.
func (c *ReferenceCatalog) ExpandCustomers(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}

	cities := []string{"Chicago", "New York", "Los Angeles", "Dallas"}
	states := []string{"IL", "NY", "CA", "TX"}
	levels := []string{
		models.LoyaltyBronze, models.LoyaltySilver,
		models.LoyaltyGold, models.LoyaltyPlatinum,
	}

	stored, err := c.sink.Count(ctx, CollCustomers)
	if err != nil {
		return fmt.Errorf("failed to count customers: %w", err)
	}

	now := time.Now()
	base := int(stored)
	batch := make([]models.Customer, 0, n)
	docs := make([]interface{}, 0, n)

	for i := 0; i < n; i++ {
		seq := base + i + 1
		ci := c.rng.Index(len(cities))
		cust := models.Customer{
			CustomerID: fmt.Sprintf("C%d", 100000+seq),
			FirstName:  fmt.Sprintf("Cust%d", seq),
			LastName:   "Demo",
			Email:      fmt.Sprintf("customer%d@example.com", seq),
			Phone:      fmt.Sprintf("+1-555-000-%04d", seq),
			Addresses: []models.Address{{
				AddressID:  fmt.Sprintf("ADDR-%d", seq),
				Type:       "shipping",
				Line1:      fmt.Sprintf("%d Demo St", 100+seq%900),
				City:       cities[ci],
				State:      states[ci],
				PostalCode: "60601",
				Country:    "US",
				IsDefault:  true,
			}},
			Status:         "active",
			LoyaltyLevel:   levels[c.rng.Index(len(levels))],
			MarketingOptIn: c.rng.Chance(0.60),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		batch = append(batch, cust)
		docs = append(docs, cust)
	}

	if err := c.sink.InsertMany(ctx, CollCustomers, docs); err != nil {
		return fmt.Errorf("failed to insert synthetic customers: %w", err)
	}
	c.Customers = append(c.Customers, batch...)
	return nil
}
