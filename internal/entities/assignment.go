package entities

import "time"

type Assignment struct {
	ID        int64
	Date      time.Time
	CourierID int64
}

// AssignmentCreate назначение курьера на день с группами заказов.
// Каждая группа получает свой group_order_id.
type AssignmentCreate struct {
	Date      time.Time
	CourierID int64
	Groups    [][]int64
}

// AssignedOrder заказ вместе с курьером из назначения, через которое он выбран.
type AssignedOrder struct {
	Order
	AssignmentCourierID int64
}

type GroupOrders struct {
	GroupOrderID *int64
	Orders       []Order
}

type CourierGroupOrders struct {
	CourierID int64
	Groups    []GroupOrders
}
