package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/laciaimperator/Online-store/internal/domain"
	"github.com/laciaimperator/Online-store/internal/messaging"
	"github.com/laciaimperator/Online-store/internal/validation"
)

// OrderService runs the order-placement workflow: referential checks against
// the customer directory and product catalog, stock sufficiency, snapshot
// pricing and the stock decrement.
type OrderService struct {
	orders         OrderStore
	customers      CustomerStore
	products       ProductStore
	publisher      EventPublisher
	publishRetries int
}

func NewOrderService(orders OrderStore, customers CustomerStore, products ProductStore, publisher EventPublisher, publishRetries int) *OrderService {
	if publishRetries < 1 {
		publishRetries = 1
	}
	return &OrderService{
		orders:         orders,
		customers:      customers,
		products:       products,
		publisher:      publisher,
		publishRetries: publishRetries,
	}
}

// PlaceOrder validates every line item before touching any stock. The
// decrement itself is a conditional check-and-decrement per product; when
// one line misses (a concurrent placement drained the stock), units already
// taken for earlier lines are returned, so a rejected order never leaves a
// partial decrement behind.
func (s *OrderService) PlaceOrder(ctx context.Context, orderID, customerID string, items []map[string]interface{}) (*domain.Order, error) {
	exists, err := s.orders.Exists(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewError(domain.CodeDuplicateID, "order_id %s already exists", orderID)
	}

	customerExists, err := s.customers.Exists(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !customerExists {
		return nil, domain.NewError(domain.CodeNotFound, "customer %s doesn't exist", customerID)
	}

	if len(items) == 0 {
		return nil, domain.NewError(domain.CodeInvalidInput, "items must be a non-empty list")
	}

	for _, value := range []string{orderID, customerID} {
		if len(strings.TrimSpace(value)) < 1 {
			return nil, domain.NewError(domain.CodeEmptyField, "all order values must be at least 1 character")
		}
	}
	for _, item := range items {
		for _, value := range item {
			text, ok := value.(string)
			if !ok {
				continue
			}
			if len(strings.TrimSpace(text)) < 1 {
				return nil, domain.NewError(domain.CodeEmptyField, "all values in items must be at least 1 character")
			}
		}
	}

	lineItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		productID, ok := item["product_id"].(string)
		if !ok {
			return nil, domain.NewError(domain.CodeInvalidInput, "invalid product_id type")
		}
		quantity, ok := validation.AsInt(item["quantity"])
		if !ok {
			return nil, domain.NewError(domain.CodeInvalidInput, "invalid quantity type")
		}
		if quantity <= 0 {
			return nil, domain.NewError(domain.CodeInvalidInput, "quantity must be a positive integer")
		}

		product, err := s.products.FindByID(ctx, productID)
		if err != nil {
			return nil, err
		}
		if product.Stock < quantity {
			return nil, domain.NewError(domain.CodeInsufficientStock, "insufficient stock for product %s", productID)
		}

		// Snapshot price: later catalog price changes don't affect this
		// order.
		lineItems = append(lineItems, domain.OrderItem{
			ProductID: productID,
			Quantity:  quantity,
			Price:     product.Price,
		})
	}

	for i, item := range lineItems {
		if err := s.products.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			s.compensateStock(ctx, lineItems[:i])
			return nil, err
		}
	}

	order := domain.NewOrder(orderID, customerID, lineItems)
	if err := s.orders.Insert(ctx, order); err != nil {
		s.compensateStock(ctx, lineItems)
		return nil, err
	}

	log.Info().Str("order_id", orderID).Str("customer_id", customerID).
		Float64("total_price", order.TotalPrice).Msg("Order placed")

	s.publishOrderEvent(messaging.OrderPlacedEvent, order)
	return order, nil
}

// compensateStock returns units taken before a placement failed.
func (s *OrderService) compensateStock(ctx context.Context, decremented []domain.OrderItem) {
	for _, item := range decremented {
		if err := s.products.IncrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			log.Error().Err(err).Str("product_id", item.ProductID).Int("quantity", item.Quantity).
				Msg("Stock compensation failed")
		}
	}
}

func (s *OrderService) Find(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orders.FindByID(ctx, orderID)
}

// FindByCustomer returns the customer's orders; no orders is an empty
// result.
func (s *OrderService) FindByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	return s.orders.FindByCustomer(ctx, customerID)
}

func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, orderID); err != nil {
		return err
	}

	log.Info().Str("order_id", orderID).Msg("Order deleted")
	s.publishOrderEvent(messaging.OrderDeletedEvent, order)
	return nil
}

// publishOrderEvent is best effort: the placement stands even when the
// broker is unreachable.
func (s *OrderService) publishOrderEvent(eventType messaging.EventType, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	event := messaging.StoreEvent{
		EventType:  eventType,
		OrderID:    order.OrderID,
		CustomerID: order.CustomerID,
		Payload:    order,
	}
	if err := s.publisher.PublishWithRetry(event, s.publishRetries); err != nil {
		log.Warn().Err(err).Str("order_id", order.OrderID).
			Str("event_type", string(eventType)).Msg("Order event publish failed")
	}
}
