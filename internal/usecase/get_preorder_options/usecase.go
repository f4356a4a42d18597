package get_preorder_options

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
	"github.com/m04kA/SMC-OrderingService/internal/schedule"
)

// UseCase варианты 12-часового пикера предзаказа для выбранной даты.
// Вызывается на каждое изменение даты, часа или периода в форме.
type UseCase struct {
	schedule     ScheduleProvider
	timeProvider TimeProvider
	loc          *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleProvider ScheduleProvider, loc *time.Location, logger Logger) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{
		schedule:     scheduleProvider,
		timeProvider: &RealTimeProvider{},
		loc:          loc,
		logger:       logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetPreorderOptions: validation failed: %v", err)
		return nil, err
	}

	sched, err := uc.schedule.Load(ctx)
	if err != nil {
		uc.logger.Error("GetPreorderOptions: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	date := schedule.ClampPreOrderDate(req.Date, uc.timeProvider.Now().In(uc.loc))
	opts := schedule.BuildOptions(date, req.Hour, req.Period, *sched)

	selected := ""
	hour := strings.TrimSpace(req.Hour)
	if hour != "" && hour != schedule.HourPlaceholder {
		minute := req.Minute
		if strings.TrimSpace(minute) == "" {
			minute = schedule.DefaultMinute
		}
		selected = schedule.To24HourString(hour, minute, opts.Period)
	}

	errs := schedule.ValidateSelection(domain.TimeSelection{Date: date, Time: selected}, *sched)

	return &Response{
		Date:                date,
		RestrictionsEnabled: sched.RestrictionsEnabled,
		Window:              opts.Window,
		WindowLabel:         opts.WindowLabel,
		AllowedHours:        opts.AllowedHours,
		Period:              opts.Period,
		AllowedMinutes:      opts.AllowedMinutes,
		SelectedTime:        selected,
		DateError:           errs.Date,
		TimeError:           errs.Time,
	}, nil
}
