package order

import "time"

type OrderDB struct {
	ID            int64
	Weight        float64
	Region        int32
	DeliveryHours []string
	Cost          int32
	CompletedTime *time.Time
	CourierID     *int64
	GroupOrderID  *int64
}

// AssignmentLinkDB строка assignment_orders вместе с самим назначением.
type AssignmentLinkDB struct {
	OrderID        int64
	AssignmentID   int64
	AssignmentDate time.Time
	CourierID      int64
}
