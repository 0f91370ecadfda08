package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"lavka/internal/entities"
	"lavka/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var courierColumns = []string{"id", "courier_type", "regions", "working_hours"}

// limit приходит от клиента, не аллоцируем под него сразу
const pageCapHint = 64

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// CreateBatch вставляет курьеров одним INSERT, id проставляются в порядке входа.
func (r *Repository) CreateBatch(ctx context.Context, couriers []entities.Courier) ([]entities.Courier, error) {
	if len(couriers) == 0 {
		return []entities.Courier{}, nil
	}

	builder := qb.
		Insert("couriers").
		Columns("courier_type", "regions", "working_hours")
	for i := range couriers {
		model := FromDomain(&couriers[i])
		builder = builder.Values(model.CourierType, model.Regions, model.WorkingHours)
	}
	builder = builder.Suffix("RETURNING id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository createbatch error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository createbatch error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.Courier, 0, len(couriers))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected courier repository createbatch error: %w", err)
		}
		created := couriers[len(result)]
		created.ID = id
		result = append(result, created)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository createbatch error: %w", err)
	}

	return result, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query, args, err := qb.
		Select(courierColumns...).
		From("couriers").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	var courierModel CourierDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&courierModel.ID,
			&courierModel.CourierType,
			&courierModel.Regions,
			&courierModel.WorkingHours,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(&courierModel)
}

func (r *Repository) GetPage(ctx context.Context, offset, limit uint64) ([]entities.Courier, error) {
	query, args, err := qb.
		Select(courierColumns...).
		From("couriers").
		OrderBy("id").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getpage error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getpage error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, min(limit, pageCapHint))
	for rows.Next() {
		var courierModel CourierDB
		err := rows.Scan(
			&courierModel.ID,
			&courierModel.CourierType,
			&courierModel.Regions,
			&courierModel.WorkingHours,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository getpage error: %w", err)
		}
		courierModels = append(courierModels, courierModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository getpage error: %w", err)
	}

	return ToDomainList(courierModels)
}
