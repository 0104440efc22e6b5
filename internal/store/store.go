package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"seedgen/internal/config"
	"seedgen/internal/gen"
)

// Store wraps the MongoDB client and the two logical databases. It
// implements gen.Sink; the generators never see the driver directly.
type Store struct {
	client  *mongo.Client
	sales   *mongo.Database
	reports *mongo.Database
}

// Connect opens and pings a MongoDB connection using the provided config.
func Connect(ctx context.Context, cfg *config.MongoConfig) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{
		client:  client,
		sales:   client.Database(cfg.SalesDB),
		reports: client.Database(cfg.ReportsDB),
	}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// HealthCheck pings the server.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// collection routes a logical collection name to its database. Telemetry
// lives in the reports database; everything else is sales.
func (s *Store) collection(name string) *mongo.Collection {
	if name == gen.CollReportRuns {
		return s.reports.Collection(name)
	}
	return s.sales.Collection(name)
}

// InsertMany implements gen.Sink.
func (s *Store) InsertMany(ctx context.Context, collection string, docs []interface{}) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := s.collection(collection).InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("insert into %s failed: %w", collection, err)
	}
	return nil
}

// UpsertByKey implements gen.Sink. The document's fields replace the match
// via $set; created_at is written only when the document is first inserted.
func (s *Store) UpsertByKey(ctx context.Context, collection string, key map[string]interface{}, doc interface{}) error {
	update := bson.M{
		"$set":         doc,
		"$setOnInsert": bson.M{"created_at": time.Now()},
	}
	_, err := s.collection(collection).UpdateOne(ctx, bson.M(key), update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert into %s failed: %w", collection, err)
	}
	return nil
}

// Count implements gen.Sink.
func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	n, err := s.collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count of %s failed: %w", collection, err)
	}
	return n, nil
}

// DeleteMatching implements gen.Sink.
func (s *Store) DeleteMatching(ctx context.Context, collection string, filter map[string]interface{}) error {
	_, err := s.collection(collection).DeleteMany(ctx, bson.M(filter))
	if err != nil {
		return fmt.Errorf("delete from %s failed: %w", collection, err)
	}
	return nil
}

// Counts returns the document count per seeded collection.
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	collections := []string{
		gen.CollCustomers, gen.CollVendors, gen.CollProducts,
		gen.CollInventory, gen.CollOrders, gen.CollReportRuns,
	}
	counts := make(map[string]int64, len(collections))
	for _, name := range collections {
		n, err := s.Count(ctx, name)
		if err != nil {
			return nil, err
		}
		counts[name] = n
	}
	return counts, nil
}
