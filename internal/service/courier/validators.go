package courier

import (
	"errors"

	"lavka/internal/apperr"
	"lavka/internal/entities"
	"lavka/pkg/hours"
)

// validateCourier дописывает в verr все нарушения курьера с индексом idx.
func validateCourier(idx int, c *entities.CourierCreate, verr *apperr.ValidationError) hours.List {
	if !c.Type.Valid() {
		verr.Addf("couriers[%d].courier_type: must be one of FOOT, BIKE, AUTO, got %q", idx, c.Type)
	}

	if len(c.Regions) == 0 {
		verr.Addf("couriers[%d].regions: must not be empty", idx)
	}
	for j, region := range c.Regions {
		if region <= 0 {
			verr.Addf("couriers[%d].regions[%d]: must be positive, got %d", idx, j, region)
		}
	}

	workingHours, err := hours.Parse(c.WorkingHours)
	if err != nil {
		var hoursErr *hours.ValidationError
		if !errors.As(err, &hoursErr) {
			verr.Addf("couriers[%d].working_hours: %v", idx, err)
			return nil
		}
		for _, v := range hoursErr.Violations() {
			verr.Addf("couriers[%d].working_hours: %s", idx, v)
		}
	}

	return workingHours
}

func isValidPagination(offset, limit int) bool {
	return offset >= 0 && limit >= 1
}
