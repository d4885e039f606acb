package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/laciaimperator/Online-store/internal/domain"
)

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(coll *mongo.Collection) *OrderRepository {
	return &OrderRepository{coll: coll}
}

func (r *OrderRepository) Exists(ctx context.Context, orderID string) (bool, error) {
	err := r.coll.FindOne(ctx, bson.M{"order_id": orderID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("order lookup error: %w", err)
	}
	return true, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	err := r.coll.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.NewError(domain.CodeNotFound, "no order with order_id %s", orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("order lookup error: %w", err)
	}
	return &order, nil
}

func (r *OrderRepository) Insert(ctx context.Context, order *domain.Order) error {
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("order insert error: %w", err)
	}
	return nil
}

// FindByCustomer returns every order referencing the customer, newest first.
// No orders is an empty result, not an error.
func (r *OrderRepository) FindByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"customer_id": customerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("orders retrieval error: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("order decode error: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) Delete(ctx context.Context, orderID string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"order_id": orderID})
	if err != nil {
		return fmt.Errorf("order delete error: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.NewError(domain.CodeNotFound, "no order with order_id %s", orderID)
	}
	return nil
}

// OrdersPerCustomer groups orders by customer and sorts by count descending.
func (r *OrderRepository) OrdersPerCustomer(ctx context.Context) ([]domain.CustomerOrderCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$customer_id"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("orders-per-customer aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []domain.CustomerOrderCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("orders-per-customer decode error: %w", err)
	}
	return counts, nil
}

// TotalSpentPerCustomer sums order totals per customer, highest spender
// first.
func (r *OrderRepository) TotalSpentPerCustomer(ctx context.Context) ([]domain.CustomerSpend, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$customer_id"},
			{Key: "total_spent", Value: bson.D{{Key: "$sum", Value: "$total_price"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "total_spent", Value: -1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("total-spent aggregation error: %w", err)
	}
	defer cursor.Close(ctx)

	var totals []domain.CustomerSpend
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, fmt.Errorf("total-spent decode error: %w", err)
	}
	return totals, nil
}
