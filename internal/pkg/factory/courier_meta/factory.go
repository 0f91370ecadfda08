package courier_meta

import (
	"math"

	"lavka/internal/entities"
)

var earningsCoefficient = map[entities.CourierType]int64{
	entities.Foot: 2,
	entities.Bike: 3,
	entities.Auto: 4,
}

var ratingCoefficient = map[entities.CourierType]int64{
	entities.Foot: 3,
	entities.Bike: 2,
	entities.Auto: 1,
}

type MetaInfoFactory struct{}

func New() *MetaInfoFactory {
	return &MetaInfoFactory{}
}

// Calculate считает рейтинг и заработок курьера по заказам, выполненным в окне.
// Без заказов оба значения nil. Окно короче часа считается за один час.
func (f *MetaInfoFactory) Calculate(
	courierType entities.CourierType,
	orders []entities.Order,
	window entities.TimeWindow,
) (rating, earnings *int32) {
	if len(orders) == 0 {
		return nil, nil
	}

	var costSum int64
	for i := range orders {
		costSum += int64(orders[i].Cost)
	}

	hours := max(window.Hours(), 1)

	e := clampInt32(costSum * earningsCoefficient[courierType])
	r := clampInt32(int64(math.RoundToEven(
		float64(len(orders)) / float64(hours) * float64(ratingCoefficient[courierType]),
	)))

	return &r, &e
}

func clampInt32(v int64) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	default:
		return int32(v)
	}
}
