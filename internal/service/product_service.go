package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/laciaimperator/Online-store/internal/domain"
	"github.com/laciaimperator/Online-store/internal/validation"
)

var productSchema = validation.Schema{
	"product_id": validation.String,
	"name":       validation.String,
	"price":      validation.Number,
	"stock":      validation.Integer,
	"category":   validation.String,
}

// ProductService owns the product catalog.
type ProductService struct {
	products ProductStore
}

func NewProductService(products ProductStore) *ProductService {
	return &ProductService{products: products}
}

// Add creates a product from decoded request values after uniqueness, type
// and non-empty checks.
func (s *ProductService) Add(ctx context.Context, values map[string]interface{}) (*domain.Product, error) {
	fields, err := requireFields(values, domain.ProductFields)
	if err != nil {
		return nil, err
	}

	productID := fields["product_id"]
	if id, ok := productID.(string); ok {
		exists, err := s.products.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.NewError(domain.CodeDuplicateID, "product_id %s already exists", id)
		}
	}

	if err := validation.Types(fields, productSchema); err != nil {
		return nil, err
	}
	if err := validation.NonEmpty(fields); err != nil {
		return nil, err
	}

	product := productFromValues(fields)
	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}

	log.Info().Str("product_id", product.ProductID).Msg("Product added")
	return &product, nil
}

// Update applies a partial update and reports whether any field changed.
func (s *ProductService) Update(ctx context.Context, productID string, updates map[string]interface{}) (bool, error) {
	exists, err := s.products.Exists(ctx, productID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, domain.NewError(domain.CodeNotFound, "no product with product_id %s", productID)
	}

	if len(updates) == 0 {
		return false, domain.NewError(domain.CodeInvalidInput, "no fields supplied for update")
	}
	for field := range updates {
		if !domain.ProductUpdatable[field] {
			return false, domain.NewError(domain.CodeInvalidField, "field %s is not a valid field for update", field)
		}
	}
	if err := validation.Types(updates, productSchema); err != nil {
		return false, err
	}
	if err := validation.NonEmpty(updates); err != nil {
		return false, err
	}

	modified, err := s.products.Update(ctx, productID, updates)
	if err != nil {
		return false, err
	}

	if modified {
		log.Info().Str("product_id", productID).Msg("Product updated")
	} else {
		log.Info().Str("product_id", productID).Msg("No changes made to product")
	}
	return modified, nil
}

func (s *ProductService) Find(ctx context.Context, productID string) (*domain.Product, error) {
	return s.products.FindByID(ctx, productID)
}

func (s *ProductService) Delete(ctx context.Context, productID string) error {
	if err := s.products.Delete(ctx, productID); err != nil {
		return err
	}
	log.Info().Str("product_id", productID).Msg("Product deleted")
	return nil
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// productFromValues assumes values passed schema validation.
func productFromValues(values map[string]interface{}) domain.Product {
	price, _ := validation.AsFloat(values["price"])
	stock, _ := validation.AsInt(values["stock"])
	return domain.Product{
		ProductID: values["product_id"].(string),
		Name:      values["name"].(string),
		Price:     price,
		Stock:     stock,
		Category:  values["category"].(string),
	}
}

// requireFields narrows the raw request values to the known entity fields
// and rejects requests missing any of them.
func requireFields(values map[string]interface{}, fields []string) (map[string]interface{}, error) {
	narrowed := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		value, ok := values[field]
		if !ok {
			return nil, domain.NewError(domain.CodeInvalidInput, "missing field %s", field)
		}
		narrowed[field] = value
	}
	return narrowed, nil
}
