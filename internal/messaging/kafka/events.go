package kafka

import "time"

// EventType определяет тип события
type EventType string

const (
	// События жизненного цикла заказа
	EventTypeOrderPlaced EventType = "order.placed"

	// События каталога
	EventTypeStockDecremented EventType = "stock.decremented"
)

// Topics для Kafka
const (
	TopicOrderEvents = "storefront.order.events"
)

// OrderPlacedLine — позиция заказа в событии с зафиксированной ценой.
type OrderPlacedLine struct {
	ProductID  string `json:"product_id"`
	PriceMinor int64  `json:"price_minor"`
	Qty        int32  `json:"qty"`
}

// OrderPlacedEvent публикуется после успешного оформления заказа.
type OrderPlacedEvent struct {
	EventType   EventType         `json:"event_type"`
	OrderID     string            `json:"order_id"`
	CustomerID  string            `json:"customer_id"`
	AmountMinor int64             `json:"amount_minor"`
	Lines       []OrderPlacedLine `json:"lines"`
	Timestamp   time.Time         `json:"timestamp"`
}

// NewOrderPlacedEvent создает событие оформленного заказа.
func NewOrderPlacedEvent(orderID, customerID string, amountMinor int64, lines []OrderPlacedLine) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		EventType:   EventTypeOrderPlaced,
		OrderID:     orderID,
		CustomerID:  customerID,
		AmountMinor: amountMinor,
		Lines:       lines,
		Timestamp:   time.Now(),
	}
}
