//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_completed_test
package order_completed

import (
	"context"

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
	CompleteOrders(ctx context.Context, requests []entities.OrderComplete) ([]entities.Order, error)
}
