package order

import (
	"errors"
	"math"

	"lavka/internal/apperr"
	"lavka/internal/entities"
	"lavka/pkg/hours"
)

// validateOrder дописывает в verr все нарушения заказа с индексом idx.
func validateOrder(idx int, o *entities.OrderCreate, verr *apperr.ValidationError) hours.List {
	if math.IsNaN(o.Weight) || math.IsInf(o.Weight, 0) || o.Weight < 0 {
		verr.Addf("orders[%d].weight: must be a non-negative number, got %v", idx, o.Weight)
	}
	if o.Region <= 0 {
		verr.Addf("orders[%d].regions: must be positive, got %d", idx, o.Region)
	}
	if o.Cost <= 0 {
		verr.Addf("orders[%d].cost: must be positive, got %d", idx, o.Cost)
	}

	deliveryHours, err := hours.Parse(o.DeliveryHours)
	if err != nil {
		var hoursErr *hours.ValidationError
		if !errors.As(err, &hoursErr) {
			verr.Addf("orders[%d].delivery_hours: %v", idx, err)
			return nil
		}
		for _, v := range hoursErr.Violations() {
			verr.Addf("orders[%d].delivery_hours: %s", idx, v)
		}
	}

	return deliveryHours
}

func validateCompletion(idx int, c *entities.OrderComplete, verr *apperr.ValidationError) {
	if c.CourierID <= 0 {
		verr.Addf("complete_info[%d].courier_id: must be positive, got %d", idx, c.CourierID)
	}
}

func isValidPagination(offset, limit int) bool {
	return offset >= 0 && limit >= 1
}
