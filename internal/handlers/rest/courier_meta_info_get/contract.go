//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_meta_info_get_test
package courier_meta_info_get

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
	GetCourierMetaInfo(ctx context.Context, id int64, window entities.TimeWindow) (*entities.CourierMetaInfo, error)
}
