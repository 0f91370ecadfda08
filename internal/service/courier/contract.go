//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"lavka/internal/entities"
)

type Repository interface {
	CreateBatch(ctx context.Context, couriers []entities.Courier) ([]entities.Courier, error)
	GetByID(ctx context.Context, id int64) (*entities.Courier, error)
	GetPage(ctx context.Context, offset uint64, limit uint64) ([]entities.Courier, error)
}

type OrderRepository interface {
	GetCompletedByCourier(ctx context.Context, courierID int64, window entities.TimeWindow) ([]entities.Order, error)
}

type MetaInfoFactory interface {
	Calculate(courierType entities.CourierType, orders []entities.Order, window entities.TimeWindow) (*int32, *int32)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
