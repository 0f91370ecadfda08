package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"lavka/internal/entities"
	"lavka/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"id", "weight", "region", "delivery_hours", "cost", "completed_time", "courier_id", "group_order_id",
}

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

// CreateBatch вставляет заказы одним INSERT, id проставляются в порядке входа.
func (r *Repository) CreateBatch(ctx context.Context, orders []entities.Order) ([]entities.Order, error) {
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	builder := qb.
		Insert("orders").
		Columns("weight", "region", "delivery_hours", "cost")
	for i := range orders {
		model := FromDomain(&orders[i])
		builder = builder.Values(model.Weight, model.Region, model.DeliveryHours, model.Cost)
	}
	builder = builder.Suffix("RETURNING id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository createbatch error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository createbatch error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.Order, 0, len(orders))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected order repository createbatch error: %w", err)
		}
		created := orders[len(result)]
		created.ID = id
		result = append(result, created)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository createbatch error: %w", err)
	}

	return result, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	var orderModel OrderDB
	err = scanOrder(r.querier.QueryRow(ctx, query, args...), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel)
}

func (r *Repository) GetPage(ctx context.Context, offset, limit uint64) ([]entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From("orders").
		OrderBy("id").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getpage error: %w", err)
	}

	orderModels, err := r.queryOrders(ctx, query, args, min(limit, pageCapHint))
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getpage error: %w", err)
	}

	return ToDomainList(orderModels)
}

// GetByIDsForUpdate блокирует найденные заказы до конца транзакции и подгружает их назначения.
// Отсутствующие id просто не попадают в результат.
func (r *Repository) GetByIDsForUpdate(ctx context.Context, ids []int64) ([]entities.Order, error) {
	if len(ids) == 0 {
		return []entities.Order{}, nil
	}

	query, args, err := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": ids}).
		OrderBy("id").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyidsforupdate error: %w", err)
	}

	orderModels, err := r.queryOrders(ctx, query, args, uint64(len(ids)))
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyidsforupdate error: %w", err)
	}

	orders, err := ToDomainList(orderModels)
	if err != nil {
		return nil, err
	}

	links, err := r.getAssignmentLinks(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]int, len(orders))
	for i := range orders {
		byID[orders[i].ID] = i
	}
	for i := range links {
		if idx, ok := byID[links[i].OrderID]; ok {
			orders[idx].Assignments = append(orders[idx].Assignments, linkToAssignment(&links[i]))
		}
	}

	return orders, nil
}

// Complete проставляет время завершения и курьера. Уже завершенный заказ не трогается.
func (r *Repository) Complete(ctx context.Context, o entities.Order) error {
	if o.CompletedTime == nil || o.CourierID == nil {
		return fmt.Errorf("order %d: completion time and courier are required", o.ID)
	}

	query, args, err := qb.
		Update("orders").
		Set("completed_time", *o.CompletedTime).
		Set("courier_id", *o.CourierID).
		Where(sq.Eq{"id": o.ID}).
		Where(sq.Eq{"completed_time": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository complete error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository complete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderConflict
	}

	return nil
}

// GetCompletedByCourier заказы курьера, завершенные в окне [Start, End).
func (r *Repository) GetCompletedByCourier(
	ctx context.Context,
	courierID int64,
	window entities.TimeWindow,
) ([]entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"courier_id": courierID}).
		Where(sq.GtOrEq{"completed_time": window.Start}).
		Where(sq.Lt{"completed_time": window.End}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getcompletedbycourier error: %w", err)
	}

	orderModels, err := r.queryOrders(ctx, query, args, pageCapHint)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getcompletedbycourier error: %w", err)
	}

	return ToDomainList(orderModels)
}

func (r *Repository) getAssignmentLinks(ctx context.Context, orderIDs []int64) ([]AssignmentLinkDB, error) {
	query, args, err := qb.
		Select("ao.order_id", "a.id", "a.assignment_date", "a.courier_id").
		From("assignment_orders ao").
		Join("assignments a ON a.id = ao.assignment_id").
		Where(sq.Eq{"ao.order_id": orderIDs}).
		OrderBy("a.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getassignmentlinks error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getassignmentlinks error: %w", err)
	}
	defer rows.Close()

	links := make([]AssignmentLinkDB, 0, len(orderIDs))
	for rows.Next() {
		var link AssignmentLinkDB
		err := rows.Scan(&link.OrderID, &link.AssignmentID, &link.AssignmentDate, &link.CourierID)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getassignmentlinks error: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository getassignmentlinks error: %w", err)
	}

	return links, nil
}

func (r *Repository) queryOrders(ctx context.Context, query string, args []any, capHint uint64) ([]OrderDB, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, capHint)
	for rows.Next() {
		var orderModel OrderDB
		if err := scanOrder(rows, &orderModel); err != nil {
			return nil, err
		}
		orderModels = append(orderModels, orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orderModels, nil
}

func scanOrder(row pgx.Row, o *OrderDB) error {
	return row.Scan(
		&o.ID,
		&o.Weight,
		&o.Region,
		&o.DeliveryHours,
		&o.Cost,
		&o.CompletedTime,
		&o.CourierID,
		&o.GroupOrderID,
	)
}
