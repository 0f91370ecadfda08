package response

import (
	"lavka/internal/entities"
	"lavka/internal/generated/dto"
)

func Courier(c *entities.Courier) dto.CourierDto {
	return dto.CourierDto{
		CourierId:    c.ID,
		CourierType:  dto.CourierType(c.Type),
		Regions:      nonNil(c.Regions),
		WorkingHours: nonNil(c.WorkingHours.Strings()),
	}
}

func Couriers(couriers []entities.Courier) []dto.CourierDto {
	res := make([]dto.CourierDto, len(couriers))
	for i := range couriers {
		res[i] = Courier(&couriers[i])
	}
	return res
}

func Order(o *entities.Order) dto.OrderDto {
	return dto.OrderDto{
		OrderId:       o.ID,
		Weight:        o.Weight,
		Regions:       o.Region,
		DeliveryHours: nonNil(o.DeliveryHours.Strings()),
		Cost:          o.Cost,
		CompletedTime: o.CompletedTime,
	}
}

func Orders(orders []entities.Order) []dto.OrderDto {
	res := make([]dto.OrderDto, len(orders))
	for i := range orders {
		res[i] = Order(&orders[i])
	}
	return res
}

// nonNil пустой список сериализуется как [], а не null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
