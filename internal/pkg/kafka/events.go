package kafka

import "time"

// OrderCompletedEvent сообщение о доставке заказа, ключ сообщения это order_id.
type OrderCompletedEvent struct {
	OrderID      int64     `json:"order_id"`
	CourierID    int64     `json:"courier_id"`
	CompleteTime time.Time `json:"complete_time"`
}
