package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderTotal(t *testing.T) {
	order := NewOrder("o1", "C01", []OrderItem{
		{ProductID: "P1", Quantity: 2, Price: 100},
		{ProductID: "P2", Quantity: 1, Price: 75},
	})

	assert.Equal(t, 275.0, order.TotalPrice)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestNewOrderSingleItem(t *testing.T) {
	order := NewOrder("o2", "C02", []OrderItem{
		{ProductID: "P1", Quantity: 3, Price: 100},
	})
	assert.Equal(t, 300.0, order.TotalPrice)
}
