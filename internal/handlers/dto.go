package handlers

import (
	"fmt"

	"github.com/laciaimperator/Online-store/internal/domain"
)

// placeOrderRequest keeps items as raw maps so the ledger can run its own
// type checks on product_id and quantity.
type placeOrderRequest struct {
	OrderID    string                   `json:"order_id"`
	CustomerID string                   `json:"customer_id"`
	Items      []map[string]interface{} `json:"items"`
}

type updateResponse struct {
	Modified bool `json:"modified"`
}

type customerSpendResponse struct {
	CustomerID string  `json:"customer_id"`
	TotalSpent float64 `json:"total_spent"`
	// Formatted to two decimals for display.
	TotalSpentDisplay string `json:"total_spent_display"`
}

func mapCustomerSpend(totals []domain.CustomerSpend) []customerSpendResponse {
	responses := make([]customerSpendResponse, len(totals))
	for i, t := range totals {
		responses[i] = customerSpendResponse{
			CustomerID:        t.CustomerID,
			TotalSpent:        t.TotalSpent,
			TotalSpentDisplay: fmt.Sprintf("%.2f", t.TotalSpent),
		}
	}
	return responses
}
