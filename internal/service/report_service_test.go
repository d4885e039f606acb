package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laciaimperator/Online-store/internal/domain"
)

func seedOrders(t *testing.T, f *orderFixture) {
	t.Helper()
	ctx := context.Background()

	f.customers.customers["C02"] = domain.Customer{CustomerID: "C02", Name: "Joanna", Email: "joanna@email.com", Phone: "234567891", Address: "adres2"}
	f.customers.customers["C03"] = domain.Customer{CustomerID: "C03", Name: "Zuzanna", Email: "zuzanna@email.com", Phone: "345678912", Address: "adres3"}
	f.products.products["P1"] = domain.Product{ProductID: "P1", Name: "Keyboard", Price: 100, Stock: 100, Category: "Peripherals"}
	f.products.products["P2"] = domain.Product{ProductID: "P2", Name: "Mouse", Price: 50, Stock: 100, Category: "Peripherals"}

	// C01: three orders, C02: two, C03: one.
	for _, o := range []struct {
		orderID    string
		customerID string
		productID  string
		quantity   int
	}{
		{"o1", "C01", "P1", 1}, // 100
		{"o2", "C01", "P2", 1}, // 50
		{"o3", "C01", "P2", 1}, // 50
		{"o4", "C02", "P1", 3}, // 300
		{"o5", "C02", "P2", 1}, // 50
		{"o6", "C03", "P1", 1}, // 100
	} {
		_, err := f.svc.PlaceOrder(ctx, o.orderID, o.customerID, []map[string]interface{}{item(o.productID, o.quantity)})
		require.NoError(t, err)
	}
}

func TestOrdersPerCustomer(t *testing.T) {
	f := newOrderFixture()
	seedOrders(t, f)
	reports := NewReportService(f.orders)

	counts, err := reports.OrdersPerCustomer(context.Background())
	require.NoError(t, err)

	require.Len(t, counts, 3)
	assert.Equal(t, domain.CustomerOrderCount{CustomerID: "C01", Count: 3}, counts[0])
	assert.Equal(t, domain.CustomerOrderCount{CustomerID: "C02", Count: 2}, counts[1])
	assert.Equal(t, domain.CustomerOrderCount{CustomerID: "C03", Count: 1}, counts[2])
}

func TestTotalSpentPerCustomer(t *testing.T) {
	f := newOrderFixture()
	seedOrders(t, f)
	reports := NewReportService(f.orders)

	totals, err := reports.TotalSpentPerCustomer(context.Background())
	require.NoError(t, err)

	require.Len(t, totals, 3)
	assert.Equal(t, domain.CustomerSpend{CustomerID: "C02", TotalSpent: 350}, totals[0])
	assert.Equal(t, domain.CustomerSpend{CustomerID: "C01", TotalSpent: 200}, totals[1])
	assert.Equal(t, domain.CustomerSpend{CustomerID: "C03", TotalSpent: 100}, totals[2])
}

func TestReportsOnEmptyLedger(t *testing.T) {
	f := newOrderFixture()
	reports := NewReportService(f.orders)

	counts, err := reports.OrdersPerCustomer(context.Background())
	require.NoError(t, err)
	assert.Empty(t, counts)

	totals, err := reports.TotalSpentPerCustomer(context.Background())
	require.NoError(t, err)
	assert.Empty(t, totals)
}
