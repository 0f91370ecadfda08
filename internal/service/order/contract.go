//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"lavka/internal/entities"
)

type Repository interface {
	CreateBatch(ctx context.Context, orders []entities.Order) ([]entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetPage(ctx context.Context, offset uint64, limit uint64) ([]entities.Order, error)
	GetByIDsForUpdate(ctx context.Context, ids []int64) ([]entities.Order, error)
	Complete(ctx context.Context, order entities.Order) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
