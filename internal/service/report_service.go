package service

import (
	"context"

	"github.com/laciaimperator/Online-store/internal/domain"
)

// ReportService exposes the read-only aggregations over the order ledger.
type ReportService struct {
	orders OrderStore
}

func NewReportService(orders OrderStore) *ReportService {
	return &ReportService{orders: orders}
}

// OrdersPerCustomer returns (customer, order count) pairs, highest count
// first.
func (s *ReportService) OrdersPerCustomer(ctx context.Context) ([]domain.CustomerOrderCount, error) {
	return s.orders.OrdersPerCustomer(ctx)
}

// TotalSpentPerCustomer returns (customer, total spend) pairs, highest spend
// first.
func (s *ReportService) TotalSpentPerCustomer(ctx context.Context) ([]domain.CustomerSpend, error) {
	return s.orders.TotalSpentPerCustomer(ctx)
}
