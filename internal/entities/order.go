package entities

import (
	"time"

	"lavka/pkg/hours"
)

type Order struct {
	ID            int64
	Weight        float64
	Region        int32
	DeliveryHours hours.List
	Cost          int32
	CompletedTime *time.Time
	CourierID     *int64
	GroupOrderID  *int64
	Assignments   []Assignment
}

func (o *Order) IsCompleted() bool {
	return o.CompletedTime != nil
}

// AssignmentOn ищет назначение заказа на календарную дату t в ее собственной зоне.
func (o *Order) AssignmentOn(t time.Time) *Assignment {
	year, month, day := t.Date()
	for i := range o.Assignments {
		y, m, d := o.Assignments[i].Date.Date()
		if y == year && m == month && d == day {
			return &o.Assignments[i]
		}
	}
	return nil
}

type OrderCreate struct {
	Weight        float64
	Region        int32
	DeliveryHours []string
	Cost          int32
}

// OrderComplete запрос на завершение заказа курьером. Нулевое CompleteTime означает отсутствие времени.
type OrderComplete struct {
	OrderID      int64
	CourierID    int64
	CompleteTime time.Time
}
