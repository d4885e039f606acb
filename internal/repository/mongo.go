package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/laciaimperator/Online-store/internal/config"
)

const (
	productsCollection  = "products"
	customersCollection = "customers"
	ordersCollection    = "orders"
)

// Store wraps the MongoDB client and the three collections the service owns.
type Store struct {
	client *mongo.Client
	db     *mongo.Database

	Products  *ProductRepository
	Customers *CustomerRepository
	Orders    *OrderRepository
}

// Connect dials MongoDB, verifies the connection with a ping and prepares
// the collection handles.
func Connect(ctx context.Context, cfg config.Config) (*Store, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(cfg.MongoTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}

	db := client.Database(cfg.MongoDatabase)
	store := &Store{
		client:    client,
		db:        db,
		Products:  NewProductRepository(db.Collection(productsCollection)),
		Customers: NewCustomerRepository(db.Collection(customersCollection)),
		Orders:    NewOrderRepository(db.Collection(ordersCollection)),
	}

	log.Info().Str("database", cfg.MongoDatabase).Msg("MongoDB connection successful")
	return store, nil
}

// EnsureIndexes creates the unique business-id indexes. Safe to call on
// every startup; MongoDB treats existing identical indexes as a no-op.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	for _, idx := range []struct {
		collection string
		field      string
	}{
		{productsCollection, "product_id"},
		{customersCollection, "customer_id"},
		{ordersCollection, "order_id"},
	} {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: idx.field, Value: 1}},
			Options: options.Index().SetUnique(true),
		}
		if _, err := s.db.Collection(idx.collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s.%s: %w", idx.collection, idx.field, err)
		}
	}
	return nil
}

// Disconnect closes the underlying client.
func (s *Store) Disconnect(ctx context.Context) error {
	log.Info().Msg("Closing MongoDB connection")
	return s.client.Disconnect(ctx)
}
