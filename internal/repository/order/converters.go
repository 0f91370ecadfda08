package order

import (
	"fmt"

	"lavka/internal/entities"
	"lavka/pkg/hours"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	deliveryHours, err := hours.Parse(o.DeliveryHours)
	if err != nil {
		return nil, fmt.Errorf("order %d stored delivery hours: %w", o.ID, err)
	}

	return &entities.Order{
		ID:            o.ID,
		Weight:        o.Weight,
		Region:        o.Region,
		DeliveryHours: deliveryHours,
		Cost:          o.Cost,
		CompletedTime: o.CompletedTime,
		CourierID:     o.CourierID,
		GroupOrderID:  o.GroupOrderID,
	}, nil
}

func FromDomain(o *entities.Order) *OrderDB {
	if o == nil {
		return nil
	}

	return &OrderDB{
		ID:            o.ID,
		Weight:        o.Weight,
		Region:        o.Region,
		DeliveryHours: o.DeliveryHours.Strings(),
		Cost:          o.Cost,
		CompletedTime: o.CompletedTime,
		CourierID:     o.CourierID,
		GroupOrderID:  o.GroupOrderID,
	}
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	if len(ordersDB) == 0 {
		return []entities.Order{}, nil
	}

	result := make([]entities.Order, len(ordersDB))
	for i := range ordersDB {
		o, err := ToDomain(&ordersDB[i])
		if err != nil {
			return nil, err
		}
		result[i] = *o
	}
	return result, nil
}

func linkToAssignment(l *AssignmentLinkDB) entities.Assignment {
	return entities.Assignment{
		ID:        l.AssignmentID,
		Date:      l.AssignmentDate,
		CourierID: l.CourierID,
	}
}
