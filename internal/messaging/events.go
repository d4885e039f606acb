package messaging

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	OrderPlacedEvent  EventType = "order.placed"
	OrderDeletedEvent EventType = "order.deleted"
)

// StoreEvent is the envelope published for order lifecycle changes.
// Downstream consumers (fulfilment, notifications) bind on the routing key
// store.<service>.<event_type>.
type StoreEvent struct {
	ID            uuid.UUID   `json:"id"`
	EventType     EventType   `json:"event_type"`
	OrderID       string      `json:"order_id"`
	CustomerID    string      `json:"customer_id"`
	Payload       interface{} `json:"payload,omitempty"`
	Timestamp     time.Time   `json:"timestamp"`
	Service       string      `json:"service"`
	CorrelationID uuid.UUID   `json:"correlation_id"`
}
