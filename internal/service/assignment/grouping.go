package assignment

import (
	"lavka/internal/entities"
)

// GroupAssignedOrders раскладывает заказы по курьеру назначения, затем по group_order_id.
// Корзины идут в порядке первого появления, внутри корзины порядок входа сохраняется.
// Заказ без group_order_id становится отдельной группой.
func GroupAssignedOrders(orders []entities.AssignedOrder) []entities.CourierGroupOrders {
	result := make([]entities.CourierGroupOrders, 0)

	courierIdx := make(map[int64]int)
	groupIdx := make(map[int64]map[int64]int)

	for _, ao := range orders {
		ci, ok := courierIdx[ao.AssignmentCourierID]
		if !ok {
			ci = len(result)
			courierIdx[ao.AssignmentCourierID] = ci
			groupIdx[ao.AssignmentCourierID] = make(map[int64]int)
			result = append(result, entities.CourierGroupOrders{
				CourierID: ao.AssignmentCourierID,
				Groups:    []entities.GroupOrders{},
			})
		}
		bucket := &result[ci]

		if ao.GroupOrderID == nil {
			bucket.Groups = append(bucket.Groups, entities.GroupOrders{
				Orders: []entities.Order{ao.Order},
			})
			continue
		}

		groups := groupIdx[ao.AssignmentCourierID]
		gi, ok := groups[*ao.GroupOrderID]
		if !ok {
			gi = len(bucket.Groups)
			groups[*ao.GroupOrderID] = gi
			groupID := *ao.GroupOrderID
			bucket.Groups = append(bucket.Groups, entities.GroupOrders{
				GroupOrderID: &groupID,
				Orders:       []entities.Order{},
			})
		}
		bucket.Groups[gi].Orders = append(bucket.Groups[gi].Orders, ao.Order)
	}

	return result
}
