package gen

import (
	"context"
)

// Sink is the narrow persistence surface the generators depend on. The
// store implements it against MongoDB; tests implement it in memory.
// Uniqueness constraints are declared by the schema bootstrap on the store
// side; the generators only rely on them holding. Generators never assume
// multi-document transactional semantics.
type Sink interface {
	// InsertMany appends documents to a collection.
	InsertMany(ctx context.Context, collection string, docs []interface{}) error

	// Count returns the number of documents currently in a collection.
	Count(ctx context.Context, collection string) (int64, error)

	// UpsertByKey replaces the matched document's fields with doc, creating
	// it if absent. The sink sets created_at only on insert; doc carries
	// updated_at.
	UpsertByKey(ctx context.Context, collection string, key map[string]interface{}, doc interface{}) error

	// DeleteMatching removes all documents matching the filter. An empty
	// filter clears the collection.
	DeleteMatching(ctx context.Context, collection string, filter map[string]interface{}) error
}

// Collection names shared by the generators and the schema bootstrap.
const (
	CollCustomers  = "customers"
	CollVendors    = "vendors"
	CollProducts   = "products"
	CollInventory  = "inventory"
	CollOrders     = "orders"
	CollReportRuns = "report_runs"
)
