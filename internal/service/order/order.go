package order

import (
	"context"
	"errors"
	"fmt"

	"lavka/internal/apperr"
	"lavka/internal/entities"
)

type Order struct {
	repository Repository
	txManager  TxManager
	retrier    Retrier
}

func New(repository Repository, txManager TxManager, retrier Retrier) *Order {
	return &Order{
		repository: repository,
		txManager:  txManager,
		retrier:    retrier,
	}
}

func (s *Order) CreateOrders(ctx context.Context, creates []entities.OrderCreate) ([]entities.Order, error) {
	if len(creates) == 0 {
		return nil, ErrEmptyBatch
	}

	verr := apperr.NewValidationError()
	orders := make([]entities.Order, len(creates))
	for i := range creates {
		orders[i] = entities.Order{
			Weight:        creates[i].Weight,
			Region:        creates[i].Region,
			DeliveryHours: validateOrder(i, &creates[i], verr),
			Cost:          creates[i].Cost,
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	var created []entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.CreateBatch(ctx, orders)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create orders: %w", err)
	}

	return created, nil
}

func (s *Order) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

func (s *Order) GetOrders(ctx context.Context, offset, limit int) ([]entities.Order, error) {
	if !isValidPagination(offset, limit) {
		return nil, ErrInvalidPagination
	}

	orders, err := s.repository.GetPage(ctx, uint64(offset), uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

// CompleteOrders завершает заказы пачкой: либо все, либо ни одного.
// Конфликт serializable транзакций повторяется через retrier.
func (s *Order) CompleteOrders(ctx context.Context, requests []entities.OrderComplete) ([]entities.Order, error) {
	if len(requests) == 0 {
		return nil, ErrEmptyBatch
	}

	verr := apperr.NewValidationError()
	for i := range requests {
		validateCompletion(i, &requests[i], verr)
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	var completed []entities.Order
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			found, err := s.repository.GetByIDsForUpdate(ctx, uniqueOrderIDs(requests))
			if err != nil {
				return fmt.Errorf("fetch orders: %w", err)
			}

			byID := make(map[int64]*entities.Order, len(found))
			for i := range found {
				byID[found[i].ID] = &found[i]
			}

			result, err := reconcile(requests, byID)
			if err != nil {
				return err
			}

			for i := range result {
				if err := s.repository.Complete(ctx, result[i]); err != nil {
					if errors.Is(err, ErrOrderConflict) {
						return conflict(result[i].ID)
					}
					return fmt.Errorf("complete order %d: %w", result[i].ID, err)
				}
			}

			completed = result
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("complete orders: %w", err)
	}

	OrdersCompletedTotal.Add(float64(len(completed)))

	return completed, nil
}
