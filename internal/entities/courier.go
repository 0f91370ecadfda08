package entities

import (
	"lavka/pkg/hours"
)

type Courier struct {
	ID           int64
	Type         CourierType
	Regions      []int32
	WorkingHours hours.List
}

type CourierType string

const (
	Foot CourierType = "FOOT"
	Bike CourierType = "BIKE"
	Auto CourierType = "AUTO"
)

func (t CourierType) String() string {
	return string(t)
}

func (t CourierType) Valid() bool {
	switch t {
	case Foot, Bike, Auto:
		return true
	default:
		return false
	}
}

// CourierCreate сырые данные для регистрации курьера, часы еще не провалидированы.
type CourierCreate struct {
	Type         CourierType
	Regions      []int32
	WorkingHours []string
}

// CourierMetaInfo курьер с рейтингом и заработком за период.
// Если за период нет выполненных заказов, оба поля nil.
type CourierMetaInfo struct {
	Courier
	Rating   *int32
	Earnings *int32
}
