package schedule

import (
	"context"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания предзаказов
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.PreorderSchedule, error)
	Replace(ctx context.Context, sched *domain.PreorderSchedule) (*domain.PreorderSchedule, error)
}

// ScheduleCache интерфейс кеша расписания
type ScheduleCache interface {
	Get(ctx context.Context) (*domain.PreorderSchedule, error)
	Set(ctx context.Context, sched *domain.PreorderSchedule) error
	Invalidate(ctx context.Context) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// OwnerChecker определяет владельца ресторана по идентификатору пользователя
type OwnerChecker interface {
	IsOwner(userID string) bool
}

// Metrics счётчики обращений к кешу
type Metrics interface {
	IncScheduleCache(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
