package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
	"github.com/m04kA/SMC-OrderingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-OrderingService/pkg/psqlbuilder"
)

const table = "orders"

var columns = []string{
	"id",
	"customer_id",
	"order_type",
	"status",
	"items",
	"total",
	"delivery_address",
	"preorder_date",
	"preorder_time",
	"notes",
	"payment_proof_url",
	"denial_reason",
	"creation_time",
	"created_at",
	"updated_at",
}

// itemRecord формат позиции заказа в колонке items (jsonb)
type itemRecord struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// Repository репозиторий для работы с заказами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый заказ. ID и CreationTime назначает вызывающая сторона.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	items, err := encodeItems(order.Items)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns[:len(columns)-1]...).
		Values(
			order.ID,
			order.CustomerID,
			order.OrderType,
			order.Status,
			string(items),
			order.Total,
			order.DeliveryAddress,
			order.PreorderDate,
			order.PreorderTime,
			order.Notes,
			order.PaymentProofURL,
			order.DenialReason,
			order.CreationTime,
			order.CreatedAt,
		).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	order.UpdatedAt = updatedAt.Time

	return order, nil
}

// GetByID получает заказ по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	order, err := scanOrder(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan order: %v", ErrScanRow, err)
	}

	return order, nil
}

// List возвращает кандидатов по индексу (клиент, статус, нижняя граница времени создания).
// Точная фильтрация и сортировка выполняются в памяти пакетом orderfilter.
func (r *Repository) List(ctx context.Context, q domain.OrdersQuery) ([]*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(q).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan order: %v", ErrScanRow, err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return orders, nil
}

// UpdateStatus переводит заказ из статуса from в статус to.
// Условие по текущему статусу защищает от параллельного изменения.
func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to domain.OrderStatus, denialReason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update(table).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from})
	if denialReason != nil {
		builder = builder.Set("denial_reason", *denialReason)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

// Cancel отменяет заказ, пока он в статусе pending
func (r *Repository) Cancel(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCannotCancel
	}

	return nil
}

func buildListQuery(q domain.OrdersQuery) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).From(table)

	if q.CustomerID != nil {
		builder = builder.Where(squirrel.Eq{"customer_id": *q.CustomerID})
	}
	if q.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *q.Status})
	}
	if q.Since != nil {
		since := float64(q.Since.UnixMilli())
		builder = builder.Where(squirrel.Or{
			squirrel.GtOrEq{"creation_time": since},
			squirrel.And{
				squirrel.Or{squirrel.Eq{"creation_time": nil}, squirrel.Eq{"creation_time": 0}},
				squirrel.GtOrEq{"created_at": since},
			},
		})
	}

	return builder
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		order        domain.Order
		items        []byte
		creationTime sql.NullFloat64
		createdAt    sql.NullFloat64
		updatedAt    sql.NullTime
	)

	err := row.Scan(
		&order.ID,
		&order.CustomerID,
		&order.OrderType,
		&order.Status,
		&items,
		&order.Total,
		&order.DeliveryAddress,
		&order.PreorderDate,
		&order.PreorderTime,
		&order.Notes,
		&order.PaymentProofURL,
		&order.DenialReason,
		&creationTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	order.Items, err = decodeItems(items)
	if err != nil {
		return nil, err
	}
	if creationTime.Valid {
		order.CreationTime = &creationTime.Float64
	}
	if createdAt.Valid {
		order.CreatedAt = &createdAt.Float64
	}
	order.UpdatedAt = updatedAt.Time

	return &order, nil
}

func encodeItems(items []domain.OrderItem) ([]byte, error) {
	records := make([]itemRecord, len(items))
	for i, item := range items {
		records[i] = itemRecord{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
		}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeItems, err)
	}
	return data, nil
}

func decodeItems(data []byte) ([]domain.OrderItem, error) {
	if len(data) == 0 {
		return []domain.OrderItem{}, nil
	}

	var records []itemRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}

	items := make([]domain.OrderItem, len(records))
	for i, rec := range records {
		items[i] = domain.OrderItem{
			MenuItemID: rec.MenuItemID,
			Name:       rec.Name,
			Price:      rec.Price,
			Quantity:   rec.Quantity,
		}
	}
	return items, nil
}
