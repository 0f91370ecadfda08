//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"
	"time"

	"lavka/internal/entities"
)

type Repository interface {
	ListUncompleted(ctx context.Context, date time.Time, courierID *int64) ([]entities.AssignedOrder, error)
	Create(ctx context.Context, create entities.AssignmentCreate) (*entities.Assignment, error)
	CountUncompleted(ctx context.Context, date time.Time) (int64, error)
}

type OrderRepository interface {
	GetByIDsForUpdate(ctx context.Context, ids []int64) ([]entities.Order, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
