package create_order

import (
	"context"
	"time"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

// ScheduleProvider источник опубликованного расписания предзаказов
type ScheduleProvider interface {
	Load(ctx context.Context) (*domain.PreorderSchedule, error)
}

// Metrics бизнес-метрики создания заказов
type Metrics interface {
	IncOrderCreated(orderType string)
	IncPreorderRejection(field string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
