package order

import (
	"fmt"

	"lavka/internal/apperr"
)

var (
	ErrOrderNotFound = fmt.Errorf("order %w", apperr.ErrNotFound)
	ErrOrderConflict = fmt.Errorf("order %w", apperr.ErrConflict)

	ErrEmptyBatch        = apperr.Wrap(apperr.ErrInvalid, "orders list is empty")
	ErrInvalidPagination = apperr.Wrap(apperr.ErrInvalid, "offset must be >= 0 and limit must be >= 1")
)

func notFound(id int64) error {
	return apperr.Wrap(ErrOrderNotFound, "Order %d not found in database", id)
}

func conflict(id int64) error {
	return apperr.Wrap(ErrOrderConflict, "Order %d is conflicting with database", id)
}
