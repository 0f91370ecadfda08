//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_complete_post_test
package orders_complete_post

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
