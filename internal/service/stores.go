package service

import (
	"context"

	"github.com/laciaimperator/Online-store/internal/domain"
	"github.com/laciaimperator/Online-store/internal/messaging"
)

// Store interfaces the services depend on. The MongoDB repositories satisfy
// them in production; tests plug in in-memory fakes.

type ProductStore interface {
	Exists(ctx context.Context, productID string) (bool, error)
	FindByID(ctx context.Context, productID string) (*domain.Product, error)
	Insert(ctx context.Context, product domain.Product) error
	Update(ctx context.Context, productID string, fields map[string]interface{}) (bool, error)
	Delete(ctx context.Context, productID string) error
	List(ctx context.Context) ([]domain.Product, error)
	DecrementStock(ctx context.Context, productID string, quantity int) error
	IncrementStock(ctx context.Context, productID string, quantity int) error
}

type CustomerStore interface {
	Exists(ctx context.Context, customerID string) (bool, error)
	FindByID(ctx context.Context, customerID string) (*domain.Customer, error)
	Insert(ctx context.Context, customer domain.Customer) error
	Update(ctx context.Context, customerID string, fields map[string]interface{}) (bool, error)
	Delete(ctx context.Context, customerID string) error
	List(ctx context.Context) ([]domain.Customer, error)
}

type OrderStore interface {
	Exists(ctx context.Context, orderID string) (bool, error)
	FindByID(ctx context.Context, orderID string) (*domain.Order, error)
	Insert(ctx context.Context, order *domain.Order) error
	FindByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	Delete(ctx context.Context, orderID string) error
	OrdersPerCustomer(ctx context.Context) ([]domain.CustomerOrderCount, error)
	TotalSpentPerCustomer(ctx context.Context) ([]domain.CustomerSpend, error)
}

// EventPublisher pushes order lifecycle events to the broker. A nil
// publisher disables publishing.
type EventPublisher interface {
	PublishWithRetry(event messaging.StoreEvent, maxRetries int) error
}
