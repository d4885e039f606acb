package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/laciaimperator/Online-store/internal/domain"
)

type CustomerRepository struct {
	coll *mongo.Collection
}

func NewCustomerRepository(coll *mongo.Collection) *CustomerRepository {
	return &CustomerRepository{coll: coll}
}

func (r *CustomerRepository) Exists(ctx context.Context, customerID string) (bool, error) {
	err := r.coll.FindOne(ctx, bson.M{"customer_id": customerID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("customer lookup error: %w", err)
	}
	return true, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.coll.FindOne(ctx, bson.M{"customer_id": customerID}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.NewError(domain.CodeNotFound, "no customer with customer_id %s", customerID)
	}
	if err != nil {
		return nil, fmt.Errorf("customer lookup error: %w", err)
	}
	return &customer, nil
}

func (r *CustomerRepository) Insert(ctx context.Context, customer domain.Customer) error {
	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("customer insert error: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, customerID string, fields map[string]interface{}) (bool, error) {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"customer_id": customerID},
		bson.M{"$set": fields},
	)
	if err != nil {
		return false, fmt.Errorf("customer update error: %w", err)
	}
	if result.MatchedCount == 0 {
		return false, domain.NewError(domain.CodeNotFound, "no customer with customer_id %s", customerID)
	}
	return result.ModifiedCount > 0, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"customer_id": customerID})
	if err != nil {
		return fmt.Errorf("customer delete error: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.NewError(domain.CodeNotFound, "no customer with customer_id %s", customerID)
	}
	return nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("customer list error: %w", err)
	}
	defer cursor.Close(ctx)

	var customers []domain.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("customer decode error: %w", err)
	}
	return customers, nil
}
