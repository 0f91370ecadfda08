package assignment

import (
	"fmt"

	"lavka/internal/apperr"
)

var (
	ErrCourierNotFound    = fmt.Errorf("courier %w", apperr.ErrNotFound)
	ErrOrderNotFound      = fmt.Errorf("order %w", apperr.ErrNotFound)
	ErrAssignmentConflict = fmt.Errorf("assignment %w", apperr.ErrConflict)
)
