package service

import (
	"context"
	"sort"

	"github.com/laciaimperator/Online-store/internal/domain"
	"github.com/laciaimperator/Online-store/internal/messaging"
	"github.com/laciaimperator/Online-store/internal/validation"
)

// In-memory stands-ins for the MongoDB repositories.

type fakeProductStore struct {
	products map[string]domain.Product
	// failDecrement forces the conditional decrement to miss for a product,
	// simulating a concurrent placement draining the stock between the
	// validation read and the decrement.
	failDecrement map[string]bool
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{
		products:      make(map[string]domain.Product),
		failDecrement: make(map[string]bool),
	}
}

func (f *fakeProductStore) Exists(_ context.Context, productID string) (bool, error) {
	_, ok := f.products[productID]
	return ok, nil
}

func (f *fakeProductStore) FindByID(_ context.Context, productID string) (*domain.Product, error) {
	product, ok := f.products[productID]
	if !ok {
		return nil, domain.NewError(domain.CodeNotFound, "no product with product_id %s", productID)
	}
	return &product, nil
}

func (f *fakeProductStore) Insert(_ context.Context, product domain.Product) error {
	f.products[product.ProductID] = product
	return nil
}

func (f *fakeProductStore) Update(_ context.Context, productID string, fields map[string]interface{}) (bool, error) {
	product, ok := f.products[productID]
	if !ok {
		return false, domain.NewError(domain.CodeNotFound, "no product with product_id %s", productID)
	}

	modified := false
	for field, value := range fields {
		switch field {
		case "name":
			if s := value.(string); product.Name != s {
				product.Name = s
				modified = true
			}
		case "price":
			if price, _ := validation.AsFloat(value); product.Price != price {
				product.Price = price
				modified = true
			}
		case "stock":
			if stock, _ := validation.AsInt(value); product.Stock != stock {
				product.Stock = stock
				modified = true
			}
		case "category":
			if s := value.(string); product.Category != s {
				product.Category = s
				modified = true
			}
		}
	}
	f.products[productID] = product
	return modified, nil
}

func (f *fakeProductStore) Delete(_ context.Context, productID string) error {
	if _, ok := f.products[productID]; !ok {
		return domain.NewError(domain.CodeNotFound, "no product with product_id %s", productID)
	}
	delete(f.products, productID)
	return nil
}

func (f *fakeProductStore) List(_ context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(f.products))
	for _, product := range f.products {
		products = append(products, product)
	}
	return products, nil
}

func (f *fakeProductStore) DecrementStock(_ context.Context, productID string, quantity int) error {
	product, ok := f.products[productID]
	if !ok || product.Stock < quantity || f.failDecrement[productID] {
		return domain.NewError(domain.CodeInsufficientStock, "insufficient stock for product %s", productID)
	}
	product.Stock -= quantity
	f.products[productID] = product
	return nil
}

func (f *fakeProductStore) IncrementStock(_ context.Context, productID string, quantity int) error {
	product, ok := f.products[productID]
	if !ok {
		return domain.NewError(domain.CodeNotFound, "no product with product_id %s", productID)
	}
	product.Stock += quantity
	f.products[productID] = product
	return nil
}

type fakeCustomerStore struct {
	customers map[string]domain.Customer
}

func newFakeCustomerStore() *fakeCustomerStore {
	return &fakeCustomerStore{customers: make(map[string]domain.Customer)}
}

func (f *fakeCustomerStore) Exists(_ context.Context, customerID string) (bool, error) {
	_, ok := f.customers[customerID]
	return ok, nil
}

func (f *fakeCustomerStore) FindByID(_ context.Context, customerID string) (*domain.Customer, error) {
	customer, ok := f.customers[customerID]
	if !ok {
		return nil, domain.NewError(domain.CodeNotFound, "no customer with customer_id %s", customerID)
	}
	return &customer, nil
}

func (f *fakeCustomerStore) Insert(_ context.Context, customer domain.Customer) error {
	f.customers[customer.CustomerID] = customer
	return nil
}

func (f *fakeCustomerStore) Update(_ context.Context, customerID string, fields map[string]interface{}) (bool, error) {
	customer, ok := f.customers[customerID]
	if !ok {
		return false, domain.NewError(domain.CodeNotFound, "no customer with customer_id %s", customerID)
	}

	modified := false
	apply := func(target *string, value interface{}) {
		if s := value.(string); *target != s {
			*target = s
			modified = true
		}
	}
	for field, value := range fields {
		switch field {
		case "name":
			apply(&customer.Name, value)
		case "email":
			apply(&customer.Email, value)
		case "phone":
			apply(&customer.Phone, value)
		case "address":
			apply(&customer.Address, value)
		}
	}
	f.customers[customerID] = customer
	return modified, nil
}

func (f *fakeCustomerStore) Delete(_ context.Context, customerID string) error {
	if _, ok := f.customers[customerID]; !ok {
		return domain.NewError(domain.CodeNotFound, "no customer with customer_id %s", customerID)
	}
	delete(f.customers, customerID)
	return nil
}

func (f *fakeCustomerStore) List(_ context.Context) ([]domain.Customer, error) {
	customers := make([]domain.Customer, 0, len(f.customers))
	for _, customer := range f.customers {
		customers = append(customers, customer)
	}
	return customers, nil
}

type fakeOrderStore struct {
	orders map[string]domain.Order
	seq    []string
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[string]domain.Order)}
}

func (f *fakeOrderStore) Exists(_ context.Context, orderID string) (bool, error) {
	_, ok := f.orders[orderID]
	return ok, nil
}

func (f *fakeOrderStore) FindByID(_ context.Context, orderID string) (*domain.Order, error) {
	order, ok := f.orders[orderID]
	if !ok {
		return nil, domain.NewError(domain.CodeNotFound, "no order with order_id %s", orderID)
	}
	return &order, nil
}

func (f *fakeOrderStore) Insert(_ context.Context, order *domain.Order) error {
	f.orders[order.OrderID] = *order
	f.seq = append(f.seq, order.OrderID)
	return nil
}

func (f *fakeOrderStore) FindByCustomer(_ context.Context, customerID string) ([]domain.Order, error) {
	var orders []domain.Order
	for _, orderID := range f.seq {
		order, ok := f.orders[orderID]
		if ok && order.CustomerID == customerID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (f *fakeOrderStore) Delete(_ context.Context, orderID string) error {
	if _, ok := f.orders[orderID]; !ok {
		return domain.NewError(domain.CodeNotFound, "no order with order_id %s", orderID)
	}
	delete(f.orders, orderID)
	return nil
}

func (f *fakeOrderStore) OrdersPerCustomer(_ context.Context) ([]domain.CustomerOrderCount, error) {
	byCustomer := make(map[string]int)
	for _, order := range f.orders {
		byCustomer[order.CustomerID]++
	}

	counts := make([]domain.CustomerOrderCount, 0, len(byCustomer))
	for customerID, count := range byCustomer {
		counts = append(counts, domain.CustomerOrderCount{CustomerID: customerID, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts, nil
}

func (f *fakeOrderStore) TotalSpentPerCustomer(_ context.Context) ([]domain.CustomerSpend, error) {
	byCustomer := make(map[string]float64)
	for _, order := range f.orders {
		byCustomer[order.CustomerID] += order.TotalPrice
	}

	totals := make([]domain.CustomerSpend, 0, len(byCustomer))
	for customerID, total := range byCustomer {
		totals = append(totals, domain.CustomerSpend{CustomerID: customerID, TotalSpent: total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].TotalSpent > totals[j].TotalSpent })
	return totals, nil
}

type recordingPublisher struct {
	events  []messaging.StoreEvent
	retries []int
}

func (p *recordingPublisher) PublishWithRetry(event messaging.StoreEvent, maxRetries int) error {
	p.events = append(p.events, event)
	p.retries = append(p.retries, maxRetries)
	return nil
}
