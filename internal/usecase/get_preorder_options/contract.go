package get_preorder_options

import (
	"context"
	"time"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
)

// ScheduleProvider источник опубликованного расписания предзаказов
type ScheduleProvider interface {
	Load(ctx context.Context) (*domain.PreorderSchedule, error)
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
