package courier

import (
	"context"
	"fmt"

	"lavka/internal/apperr"
	"lavka/internal/entities"
)

type Courier struct {
	repository      Repository
	orderRepository OrderRepository
	metaFactory     MetaInfoFactory
	txManager       TxManager
}

func New(
	repository Repository,
	orderRepository OrderRepository,
	metaFactory MetaInfoFactory,
	txManager TxManager,
) *Courier {
	return &Courier{
		repository:      repository,
		orderRepository: orderRepository,
		metaFactory:     metaFactory,
		txManager:       txManager,
	}
}

// CreateCouriers сначала проверяет весь список и возвращает все нарушения разом,
// затем сохраняет курьеров в одной транзакции.
func (s *Courier) CreateCouriers(ctx context.Context, creates []entities.CourierCreate) ([]entities.Courier, error) {
	if len(creates) == 0 {
		return nil, ErrEmptyBatch
	}

	verr := apperr.NewValidationError()
	couriers := make([]entities.Courier, len(creates))
	for i := range creates {
		couriers[i] = entities.Courier{
			Type:         creates[i].Type,
			Regions:      creates[i].Regions,
			WorkingHours: validateCourier(i, &creates[i], verr),
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	var created []entities.Courier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.CreateBatch(ctx, couriers)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create couriers: %w", err)
	}

	return created, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", notFound(err, id))
	}

	return courier, nil
}

func (s *Courier) GetCouriers(ctx context.Context, offset, limit int) ([]entities.Courier, error) {
	if !isValidPagination(offset, limit) {
		return nil, ErrInvalidPagination
	}

	couriers, err := s.repository.GetPage(ctx, uint64(offset), uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}

// GetCourierMetaInfo рейтинг и заработок по заказам, завершенным в [window.Start, window.End).
func (s *Courier) GetCourierMetaInfo(
	ctx context.Context,
	id int64,
	window entities.TimeWindow,
) (*entities.CourierMetaInfo, error) {
	if !window.Valid() {
		return nil, ErrInvalidTimeWindow
	}

	var (
		courier *entities.Courier
		orders  []entities.Order
	)
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		courier, err = s.repository.GetByID(ctx, id)
		if err != nil {
			return notFound(err, id)
		}

		orders, err = s.orderRepository.GetCompletedByCourier(ctx, id, window)
		if err != nil {
			return fmt.Errorf("completed orders: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get courier meta info: %w", err)
	}

	rating, earnings := s.metaFactory.Calculate(courier.Type, orders, window)

	return &entities.CourierMetaInfo{
		Courier:  *courier,
		Rating:   rating,
		Earnings: earnings,
	}, nil
}
