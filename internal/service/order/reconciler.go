package order

import (
	"lavka/internal/entities"
)

// reconcile проверяет запросы на завершение по порядку и меняет заказы в orders.
// Первая же ошибка останавливает обработку, изменения откатывает транзакция вызывающего.
// Повтор одного заказа в пачке дает конфликт: после первого запроса заказ уже завершен.
func reconcile(requests []entities.OrderComplete, orders map[int64]*entities.Order) ([]entities.Order, error) {
	completed := make([]entities.Order, 0, len(requests))

	for _, req := range requests {
		o, ok := orders[req.OrderID]
		if !ok {
			return nil, notFound(req.OrderID)
		}

		if o.IsCompleted() || req.CompleteTime.IsZero() {
			return nil, conflict(req.OrderID)
		}

		assignment := o.AssignmentOn(req.CompleteTime)
		if assignment == nil || assignment.CourierID != req.CourierID {
			return nil, conflict(req.OrderID)
		}

		completeTime := req.CompleteTime
		courierID := req.CourierID
		o.CompletedTime = &completeTime
		o.CourierID = &courierID

		completed = append(completed, *o)
	}

	return completed, nil
}

func uniqueOrderIDs(requests []entities.OrderComplete) []int64 {
	seen := make(map[int64]struct{}, len(requests))
	ids := make([]int64, 0, len(requests))
	for _, req := range requests {
		if _, ok := seen[req.OrderID]; ok {
			continue
		}
		seen[req.OrderID] = struct{}{}
		ids = append(ids, req.OrderID)
	}
	return ids
}
