package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"seedgen/internal/gen"
)

// ResetMode controls how destructive schema bootstrap is.
type ResetMode string

const (
	ResetNone    ResetMode = "none"       // leave existing data alone
	ResetDropAll ResetMode = "drop-all"   // drop collections, schema and data
	ResetClear   ResetMode = "clear-data" // delete documents, keep schema
)

// ParseResetMode validates a reset mode string.
func ParseResetMode(s string) (ResetMode, error) {
	switch ResetMode(s) {
	case ResetNone, ResetDropAll, ResetClear:
		return ResetMode(s), nil
	default:
		return "", fmt.Errorf("unknown reset mode %q (want none|drop-all|clear-data)", s)
	}
}

var salesCollections = []string{
	gen.CollCustomers, gen.CollVendors, gen.CollProducts,
	gen.CollInventory, gen.CollOrders,
}

// EnsureSalesSchema bootstraps the sales collections, validators and
// indexes. It is idempotent: re-running against an initialized database is
// a no-op apart from the requested reset mode.
func (s *Store) EnsureSalesSchema(ctx context.Context, mode ResetMode) error {
	if err := s.applyReset(ctx, s.sales, salesCollections, mode); err != nil {
		return err
	}

	if err := createCollection(ctx, s.sales, gen.CollCustomers,
		options.CreateCollection().SetValidator(customerValidator())); err != nil {
		return err
	}
	for _, name := range salesCollections[1:] {
		if err := createCollection(ctx, s.sales, name, nil); err != nil {
			return err
		}
	}

	indexSets := map[string][]mongo.IndexModel{
		gen.CollCustomers: {
			{Keys: bson.D{{Key: "customer_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		gen.CollVendors: {
			{Keys: bson.D{{Key: "vendor_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		gen.CollProducts: {
			{Keys: bson.D{{Key: "product_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		gen.CollInventory: {
			{Keys: bson.D{{Key: "product_id", Value: 1}, {Key: "location_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		gen.CollOrders: {
			{Keys: bson.D{{Key: "order_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "order_date", Value: -1}}},
			{Keys: bson.D{{Key: "line_items.product_id", Value: 1}}},
		},
	}
	for name, models := range indexSets {
		if _, err := s.sales.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}

// EnsureReportsSchema bootstraps the report_runs collection. The schema is
// deliberately permissive (validator cleared) and the indexes are rebuilt
// from scratch; they are all non-unique lookup indexes.
func (s *Store) EnsureReportsSchema(ctx context.Context, mode ResetMode) (bool, error) {
	if err := s.applyReset(ctx, s.reports, []string{gen.CollReportRuns}, mode); err != nil {
		return false, err
	}

	if err := createCollection(ctx, s.reports, gen.CollReportRuns, nil); err != nil {
		return false, err
	}

	// Clear any validator left behind by earlier bootstraps.
	cmd := bson.D{
		{Key: "collMod", Value: gen.CollReportRuns},
		{Key: "validator", Value: bson.M{}},
		{Key: "validationLevel", Value: "off"},
	}
	if err := s.reports.RunCommand(ctx, cmd).Err(); err != nil {
		return false, fmt.Errorf("failed to clear report_runs validator: %w", err)
	}

	dropped, err := resetIndexes(ctx, s.reports.Collection(gen.CollReportRuns))
	if err != nil {
		return dropped, err
	}

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "run_id", Value: 1}}, Options: options.Index().SetName("ix_run_id")},
		{Keys: bson.D{{Key: "subscriber_id", Value: 1}, {Key: "requested_at", Value: -1}}, Options: options.Index().SetName("ix_subscriber_requested_at")},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "requested_at", Value: -1}}, Options: options.Index().SetName("ix_status_requested_at")},
		{Keys: bson.D{{Key: "report_type", Value: 1}, {Key: "requested_at", Value: -1}}, Options: options.Index().SetName("ix_report_type_requested_at")},
	}
	if _, err := s.reports.Collection(gen.CollReportRuns).Indexes().CreateMany(ctx, indexes); err != nil {
		return dropped, fmt.Errorf("failed to create report_runs indexes: %w", err)
	}
	return dropped, nil
}

func (s *Store) applyReset(ctx context.Context, db *mongo.Database, collections []string, mode ResetMode) error {
	switch mode {
	case ResetDropAll:
		for _, name := range collections {
			if err := db.Collection(name).Drop(ctx); err != nil {
				return fmt.Errorf("failed to drop %s: %w", name, err)
			}
		}
	case ResetClear:
		for _, name := range collections {
			if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
				return fmt.Errorf("failed to clear %s: %w", name, err)
			}
		}
	}
	return nil
}

// createCollection creates a collection and treats "already exists" as a
// clean no-op so bootstrap stays idempotent.
func createCollection(ctx context.Context, db *mongo.Database, name string, opts *options.CreateCollectionOptions) error {
	var err error
	if opts != nil {
		err = db.CreateCollection(ctx, name, opts)
	} else {
		err = db.CreateCollection(ctx, name)
	}
	if err == nil || isNamespaceExists(err) {
		return nil
	}
	return fmt.Errorf("failed to create collection %s: %w", name, err)
}

// resetIndexes drops all non-_id indexes. A missing namespace is not an
// error: the collection simply has no indexes yet. Returns whether anything
// was actually dropped so callers can report what happened.
func resetIndexes(ctx context.Context, coll *mongo.Collection) (bool, error) {
	if _, err := coll.Indexes().DropAll(ctx); err != nil {
		if isNamespaceNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to drop indexes on %s: %w", coll.Name(), err)
	}
	return true, nil
}

func isNamespaceExists(err error) bool {
	var cmdErr mongo.CommandError
	return errors.As(err, &cmdErr) && cmdErr.Name == "NamespaceExists"
}

func isNamespaceNotFound(err error) bool {
	var cmdErr mongo.CommandError
	return errors.As(err, &cmdErr) && cmdErr.Name == "NamespaceNotFound"
}

func customerValidator() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"customer_id", "first_name", "last_name", "email", "created_at"},
			"properties": bson.M{
				"customer_id": bson.M{"bsonType": "string"},
				"email":       bson.M{"bsonType": "string"},
				"created_at":  bson.M{"bsonType": "date"},
				"updated_at":  bson.M{"bsonType": "date"},
			},
		},
	}
}
