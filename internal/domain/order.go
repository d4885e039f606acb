package domain

import "time"

// OrderItem is one line of an order. Price is the product price snapshotted
// at placement time and stays fixed when the catalog price changes later.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Price     float64 `json:"price" bson:"price"`
}

// Order references a customer and a non-empty list of line items. Orders are
// created once and never updated in place.
type Order struct {
	OrderID    string      `json:"order_id" bson:"order_id"`
	CustomerID string      `json:"customer_id" bson:"customer_id"`
	Items      []OrderItem `json:"items" bson:"items"`
	TotalPrice float64     `json:"total_price" bson:"total_price"`
	CreatedAt  time.Time   `json:"created_at" bson:"created_at"`
}

// NewOrder assembles an order and derives its total from the snapshot
// prices.
func NewOrder(orderID, customerID string, items []OrderItem) *Order {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	return &Order{
		OrderID:    orderID,
		CustomerID: customerID,
		Items:      items,
		TotalPrice: total,
		CreatedAt:  time.Now(),
	}
}

// CustomerOrderCount is one row of the orders-per-customer report.
type CustomerOrderCount struct {
	CustomerID string `json:"customer_id" bson:"_id"`
	Count      int    `json:"count" bson:"count"`
}

// CustomerSpend is one row of the total-spent-per-customer report.
type CustomerSpend struct {
	CustomerID string  `json:"customer_id" bson:"_id"`
	TotalSpent float64 `json:"total_spent" bson:"total_spent"`
}
