package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
	"github.com/m04kA/SMC-OrderingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-OrderingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-OrderingService/pkg/types"
)

const (
	settingsTable = "preorder_settings"
	datesTable    = "preorder_dates"

	// settingsRowID настройки предзаказов хранятся одной строкой
	settingsRowID = 1
)

// Repository репозиторий расписания предзаказов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает опубликованное расписание.
// Если владелец ещё ничего не сохранял, возвращается расписание без ограничений.
func (r *Repository) Get(ctx context.Context) (*domain.PreorderSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("restrictions_enabled", "updated_at").
		From(settingsTable).
		Where("id = ?", settingsRowID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build settings query: %v", ErrBuildQuery, err)
	}

	sched := &domain.PreorderSchedule{Dates: []domain.ScheduleWindow{}}
	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&sched.RestrictionsEnabled, &updatedAt)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}
	sched.UpdatedAt = updatedAt.Time

	query, args, err = psqlbuilder.Select("date", "start_time", "end_time").
		From(datesTable).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build dates query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - execute dates query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			date       time.Time
			start, end types.TimeString
		)
		if err := rows.Scan(&date, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: Get - scan date: %v", ErrScanRow, err)
		}
		sched.Dates = append(sched.Dates, domain.ScheduleWindow{
			Date:      date.Format(domain.DateFormat),
			StartTime: start.String(),
			EndTime:   end.String(),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Get - rows error: %v", ErrScanRow, err)
	}

	return sched, nil
}

// Replace полностью заменяет расписание.
// Выполняет несколько запросов, поэтому вызывать нужно внутри транзакции.
func (r *Repository) Replace(ctx context.Context, sched *domain.PreorderSchedule) (*domain.PreorderSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(settingsTable).
		Columns("id", "restrictions_enabled").
		Values(settingsRowID, sched.RestrictionsEnabled).
		Suffix("ON CONFLICT (id) DO UPDATE SET restrictions_enabled = EXCLUDED.restrictions_enabled, updated_at = NOW() RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - build settings upsert: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Replace - upsert settings: %v", ErrExecQuery, err)
	}

	query, args, err = psqlbuilder.Delete(datesTable).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Replace - delete dates: %v", ErrExecQuery, err)
	}

	if len(sched.Dates) > 0 {
		insert := psqlbuilder.Insert(datesTable).Columns("date", "start_time", "end_time")
		for _, w := range sched.Dates {
			insert = insert.Values(w.Date, types.TimeString(w.StartTime), types.TimeString(w.EndTime))
		}

		query, args, err = insert.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Replace - build dates insert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Replace - insert dates: %v", ErrExecQuery, err)
		}
	}

	sched.UpdatedAt = updatedAt.Time
	return sched, nil
}
