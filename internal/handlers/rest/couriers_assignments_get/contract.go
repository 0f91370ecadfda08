//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=couriers_assignments_get_test
package couriers_assignments_get

import (
	"context"
	"time"

	"lavka/internal/entities"
	"lavka/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListAssignments(ctx context.Context, date time.Time, courierID *int64) ([]entities.CourierGroupOrders, error)
}
