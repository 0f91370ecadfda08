package assignment

import (
	"fmt"
	"time"

	"lavka/internal/entities"
	"lavka/pkg/hours"
)

func ToDomain(a *AssignmentDB) *entities.Assignment {
	if a == nil {
		return nil
	}

	return &entities.Assignment{
		ID:        a.ID,
		Date:      a.AssignmentDate,
		CourierID: a.CourierID,
	}
}

func AssignedOrderToDomain(o *AssignedOrderDB) (*entities.AssignedOrder, error) {
	deliveryHours, err := hours.Parse(o.DeliveryHours)
	if err != nil {
		return nil, fmt.Errorf("order %d stored delivery hours: %w", o.ID, err)
	}

	return &entities.AssignedOrder{
		Order: entities.Order{
			ID:            o.ID,
			Weight:        o.Weight,
			Region:        o.Region,
			DeliveryHours: deliveryHours,
			Cost:          o.Cost,
			CompletedTime: o.CompletedTime,
			CourierID:     o.CourierID,
			GroupOrderID:  o.GroupOrderID,
		},
		AssignmentCourierID: o.AssignmentCourierID,
	}, nil
}

func AssignedOrderToDomainList(ordersDB []AssignedOrderDB) ([]entities.AssignedOrder, error) {
	if len(ordersDB) == 0 {
		return []entities.AssignedOrder{}, nil
	}

	result := make([]entities.AssignedOrder, len(ordersDB))
	for i := range ordersDB {
		o, err := AssignedOrderToDomain(&ordersDB[i])
		if err != nil {
			return nil, err
		}
		result[i] = *o
	}
	return result, nil
}

// toDate календарная дата как полночь UTC, в таком виде она уходит в колонку DATE.
func toDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
