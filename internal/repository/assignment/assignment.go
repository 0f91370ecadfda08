package assignment

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"lavka/internal/entities"
	"lavka/internal/repository"
	"lavka/internal/service/assignment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// ListUncompleted незавершенные заказы из назначений на дату, по порядку назначений и id заказов.
func (r *Repository) ListUncompleted(
	ctx context.Context,
	date time.Time,
	courierID *int64,
) ([]entities.AssignedOrder, error) {
	builder := qb.
		Select(
			"o.id", "o.weight", "o.region", "o.delivery_hours", "o.cost",
			"o.completed_time", "o.courier_id", "ao.group_order_id", "a.courier_id",
		).
		From("assignment_orders ao").
		Join("assignments a ON a.id = ao.assignment_id").
		Join("orders o ON o.id = ao.order_id").
		Where(sq.Eq{"a.assignment_date": toDate(date)}).
		Where(sq.Eq{"o.completed_time": nil})
	if courierID != nil {
		builder = builder.Where(sq.Eq{"a.courier_id": *courierID})
	}
	builder = builder.OrderBy("a.id", "o.id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository listuncompleted error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository listuncompleted error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]AssignedOrderDB, 0, 16)
	for rows.Next() {
		var m AssignedOrderDB
		err := rows.Scan(
			&m.ID,
			&m.Weight,
			&m.Region,
			&m.DeliveryHours,
			&m.Cost,
			&m.CompletedTime,
			&m.CourierID,
			&m.GroupOrderID,
			&m.AssignmentCourierID,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected assignment repository listuncompleted error: %w", err)
		}
		orderModels = append(orderModels, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected assignment repository listuncompleted error: %w", err)
	}

	return AssignedOrderToDomainList(orderModels)
}

// Create заводит (или переиспользует) назначение курьера на день, выдает группам
// из двух и более заказов новый group_order_id и привязывает заказы к назначению.
// Группа хранится в связи с назначением, в orders.group_order_id остается последняя выданная.
func (r *Repository) Create(ctx context.Context, create entities.AssignmentCreate) (*entities.Assignment, error) {
	query := `INSERT INTO assignments (assignment_date, courier_id)
		VALUES ($1, $2)
		ON CONFLICT (courier_id, assignment_date) DO UPDATE SET courier_id = EXCLUDED.courier_id
		RETURNING id, assignment_date, courier_id`

	var assignmentModel AssignmentDB
	err := r.querier.QueryRow(ctx, query, toDate(create.Date), create.CourierID).
		Scan(
			&assignmentModel.ID,
			&assignmentModel.AssignmentDate,
			&assignmentModel.CourierID,
		)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, assignment.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	links := make([][]any, 0, len(create.Groups))
	for _, group := range create.Groups {
		var groupOrderID *int64
		if len(group) > 1 {
			id, err := r.setGroupOrderID(ctx, group)
			if err != nil {
				return nil, err
			}
			groupOrderID = &id
		}
		for _, orderID := range group {
			links = append(links, []any{assignmentModel.ID, orderID, groupOrderID})
		}
	}

	_, err = r.querier.CopyFrom(
		ctx,
		pgx.Identifier{"assignment_orders"},
		[]string{"assignment_id", "order_id", "group_order_id"},
		pgx.CopyFromRows(links),
	)
	if err != nil {
		switch {
		case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
			return nil, assignment.ErrAssignmentConflict
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return nil, assignment.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	return ToDomain(&assignmentModel), nil
}

// CountUncompleted сколько заказов из назначений на дату еще не завершено.
func (r *Repository) CountUncompleted(ctx context.Context, date time.Time) (int64, error) {
	query, args, err := qb.
		Select("COUNT(*)").
		From("assignment_orders ao").
		Join("assignments a ON a.id = ao.assignment_id").
		Join("orders o ON o.id = ao.order_id").
		Where(sq.Eq{"a.assignment_date": toDate(date)}).
		Where(sq.Eq{"o.completed_time": nil}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository countuncompleted error: %w", err)
	}

	var count int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository countuncompleted error: %w", err)
	}

	return count, nil
}

func (r *Repository) setGroupOrderID(ctx context.Context, orderIDs []int64) (int64, error) {
	var groupOrderID int64
	err := r.querier.QueryRow(ctx, `SELECT nextval('group_order_id_seq')`).Scan(&groupOrderID)
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository nextgroup error: %w", err)
	}

	query, args, err := qb.
		Update("orders").
		Set("group_order_id", groupOrderID).
		Where(sq.Eq{"id": orderIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository setgroup error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("unexpected assignment repository setgroup error: %w", err)
	}
	return groupOrderID, nil
}
