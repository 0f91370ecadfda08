package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lavka/internal/apperr"
	"lavka/internal/entities"
)

type Assignment struct {
	repository      Repository
	orderRepository OrderRepository
	txManager       TxManager
	retrier         Retrier
}

func New(
	repository Repository,
	orderRepository OrderRepository,
	txManager TxManager,
	retrier Retrier,
) *Assignment {
	return &Assignment{
		repository:      repository,
		orderRepository: orderRepository,
		txManager:       txManager,
		retrier:         retrier,
	}
}

// ListAssignments незавершенные заказы из назначений на дату, сгруппированные по курьерам.
func (s *Assignment) ListAssignments(
	ctx context.Context,
	date time.Time,
	courierID *int64,
) ([]entities.CourierGroupOrders, error) {
	if courierID != nil && *courierID <= 0 {
		return nil, apperr.NewValidationError(
			fmt.Sprintf("courier_id: must be positive, got %d", *courierID),
		)
	}

	orders, err := s.repository.ListUncompleted(ctx, date, courierID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	return GroupAssignedOrders(orders), nil
}

// CreateAssignment назначает курьеру группы заказов на день. Заказы должны существовать,
// быть незавершенными и еще не стоять в назначении на эту дату.
func (s *Assignment) CreateAssignment(
	ctx context.Context,
	create entities.AssignmentCreate,
) (*entities.Assignment, error) {
	if err := validateCreate(&create); err != nil {
		return nil, err
	}

	var created *entities.Assignment
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			ids := orderIDs(create.Groups)
			orders, err := s.orderRepository.GetByIDsForUpdate(ctx, ids)
			if err != nil {
				return fmt.Errorf("fetch orders: %w", err)
			}

			byID := make(map[int64]*entities.Order, len(orders))
			for i := range orders {
				byID[orders[i].ID] = &orders[i]
			}
			for _, id := range ids {
				o, ok := byID[id]
				if !ok {
					return apperr.Wrap(ErrOrderNotFound, "Order %d not found in database", id)
				}
				if o.IsCompleted() || o.AssignmentOn(create.Date) != nil {
					return apperr.Wrap(ErrAssignmentConflict, "Order %d is conflicting with database", id)
				}
			}

			created, err = s.repository.Create(ctx, create)
			if err != nil {
				if errors.Is(err, ErrCourierNotFound) {
					return apperr.Wrap(err, "Courier %d not found in database", create.CourierID)
				}
				return fmt.Errorf("create assignment: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return created, nil
}

// CountBacklog сколько заказов из назначений на дату еще не завершено.
func (s *Assignment) CountBacklog(ctx context.Context, date time.Time) (int64, error) {
	count, err := s.repository.CountUncompleted(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("failed to count backlog: %w", err)
	}
	return count, nil
}
