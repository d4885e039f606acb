package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/laciaimperator/Online-store/internal/domain"
)

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(coll *mongo.Collection) *ProductRepository {
	return &ProductRepository{coll: coll}
}

func (r *ProductRepository) Exists(ctx context.Context, productID string) (bool, error) {
	err := r.coll.FindOne(ctx, bson.M{"product_id": productID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("product lookup error: %w", err)
	}
	return true, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, productID string) (*domain.Product, error) {
	var product domain.Product
	err := r.coll.FindOne(ctx, bson.M{"product_id": productID}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.NewError(domain.CodeNotFound, "no product with product_id %s", productID)
	}
	if err != nil {
		return nil, fmt.Errorf("product lookup error: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) Insert(ctx context.Context, product domain.Product) error {
	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("product insert error: %w", err)
	}
	return nil
}

// Update applies a partial $set and reports whether any field actually
// changed.
func (r *ProductRepository) Update(ctx context.Context, productID string, fields map[string]interface{}) (bool, error) {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"product_id": productID},
		bson.M{"$set": fields},
	)
	if err != nil {
		return false, fmt.Errorf("product update error: %w", err)
	}
	if result.MatchedCount == 0 {
		return false, domain.NewError(domain.CodeNotFound, "no product with product_id %s", productID)
	}
	return result.ModifiedCount > 0, nil
}

func (r *ProductRepository) Delete(ctx context.Context, productID string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"product_id": productID})
	if err != nil {
		return fmt.Errorf("product delete error: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.NewError(domain.CodeNotFound, "no product with product_id %s", productID)
	}
	return nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("product list error: %w", err)
	}
	defer cursor.Close(ctx)

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("product decode error: %w", err)
	}
	return products, nil
}

// DecrementStock is a single conditional check-and-decrement: the filter
// only matches while stock covers the quantity, so the stock check and the
// $inc cannot be split by a concurrent placement.
func (r *ProductRepository) DecrementStock(ctx context.Context, productID string, quantity int) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"product_id": productID, "stock": bson.M{"$gte": quantity}},
		bson.M{"$inc": bson.M{"stock": -quantity}},
	)
	if err != nil {
		return fmt.Errorf("stock decrement error: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.NewError(domain.CodeInsufficientStock, "insufficient stock for product %s", productID)
	}
	return nil
}

// IncrementStock returns previously decremented units when a multi-item
// placement fails partway through its decrement phase.
func (r *ProductRepository) IncrementStock(ctx context.Context, productID string, quantity int) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"product_id": productID},
		bson.M{"$inc": bson.M{"stock": quantity}},
	)
	if err != nil {
		return fmt.Errorf("stock increment error: %w", err)
	}
	return nil
}
