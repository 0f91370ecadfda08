package assignment

import (
	"lavka/internal/apperr"
	"lavka/internal/entities"
)

func validateCreate(create *entities.AssignmentCreate) error {
	verr := apperr.NewValidationError()

	if create.Date.IsZero() {
		verr.Add("date: is required")
	}
	if create.CourierID <= 0 {
		verr.Addf("courier_id: must be positive, got %d", create.CourierID)
	}
	if len(create.Groups) == 0 {
		verr.Add("groups: must not be empty")
	}

	seen := make(map[int64]struct{})
	for i, group := range create.Groups {
		if len(group) == 0 {
			verr.Addf("groups[%d]: must not be empty", i)
		}
		for _, id := range group {
			if id <= 0 {
				verr.Addf("groups[%d]: order id must be positive, got %d", i, id)
				continue
			}
			if _, ok := seen[id]; ok {
				verr.Addf("groups[%d]: order %d is listed twice", i, id)
				continue
			}
			seen[id] = struct{}{}
		}
	}

	return verr.OrNil()
}

func orderIDs(groups [][]int64) []int64 {
	var ids []int64
	for _, group := range groups {
		ids = append(ids, group...)
	}
	return ids
}
