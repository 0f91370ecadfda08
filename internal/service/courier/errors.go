package courier

import (
	"errors"
	"fmt"

	"lavka/internal/apperr"
)

var (
	ErrCourierNotFound = fmt.Errorf("courier %w", apperr.ErrNotFound)

	ErrEmptyBatch        = apperr.Wrap(apperr.ErrInvalid, "couriers list is empty")
	ErrInvalidPagination = apperr.Wrap(apperr.ErrInvalid, "offset must be >= 0 and limit must be >= 1")
	ErrInvalidTimeWindow = apperr.Wrap(apperr.ErrInvalid, "endDate must be after startDate")
)

func notFound(err error, id int64) error {
	if errors.Is(err, ErrCourierNotFound) {
		return apperr.Wrap(err, "Courier %d not found in database", id)
	}
	return err
}
