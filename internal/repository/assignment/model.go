package assignment

import "time"

type AssignmentDB struct {
	ID             int64
	AssignmentDate time.Time
	CourierID      int64
}

// AssignedOrderDB строка выборки заказов дня вместе с курьером назначения.
type AssignedOrderDB struct {
	ID                  int64
	Weight              float64
	Region              int32
	DeliveryHours       []string
	Cost                int32
	CompletedTime       *time.Time
	CourierID           *int64
	GroupOrderID        *int64
	AssignmentCourierID int64
}
