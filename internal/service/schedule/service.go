package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
	scheduleCache "github.com/m04kA/SMC-OrderingService/internal/infra/cache/schedule"
	"github.com/m04kA/SMC-OrderingService/internal/service/schedule/models"
	"github.com/m04kA/SMC-OrderingService/pkg/types"
)

// Результаты обращения к кешу для метрик
const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

// Service сервис расписания предзаказов
type Service struct {
	repo    ScheduleRepository
	cache   ScheduleCache // nil, если Redis отключен
	txMgr   TxManager
	owners  OwnerChecker
	metrics Metrics
	logger  Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	repo ScheduleRepository,
	cache ScheduleCache,
	txMgr TxManager,
	owners OwnerChecker,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		repo:    repo,
		cache:   cache,
		txMgr:   txMgr,
		owners:  owners,
		metrics: metrics,
		logger:  logger,
	}
}

// Get возвращает опубликованное расписание
func (s *Service) Get(ctx context.Context) (*models.ScheduleResponse, error) {
	sched, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSchedule(sched), nil
}

// Load возвращает доменное расписание: сначала из кеша, затем из БД.
// Ошибки кеша не фатальны.
func (s *Service) Load(ctx context.Context) (*domain.PreorderSchedule, error) {
	if s.cache != nil {
		sched, err := s.cache.Get(ctx)
		switch {
		case err == nil:
			s.countCache(cacheHit)
			return sched, nil
		case errors.Is(err, scheduleCache.ErrCacheMiss):
			s.countCache(cacheMiss)
		default:
			s.countCache(cacheError)
			s.logger.Warn("Load: cache read failed: %v", err)
		}
	}

	sched, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Error("Load: repository error: %v", err)
		return nil, fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, sched); err != nil {
			s.logger.Warn("Load: cache write failed: %v", err)
		}
	}

	return sched, nil
}

// Update полностью заменяет расписание. Доступно только владельцу.
func (s *Service) Update(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: replacing schedule by user=%s (restrictions=%t, dates=%d)",
		req.UserID, req.RestrictionsEnabled, len(req.Dates))

	if !s.owners.IsOwner(req.UserID) {
		s.logger.Warn("Update: user=%s is not an owner", req.UserID)
		return nil, ErrAccessDenied
	}

	sched, err := buildSchedule(req)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// Сбрасываем кеш до записи, чтобы параллельные чтения шли в БД
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("Update: cache invalidation failed: %v", err)
		}
	}

	var saved *domain.PreorderSchedule
	err = s.txMgr.Do(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.repo.Replace(ctx, sched)
		return err
	})
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// Перезаписываем значение, которое могло попасть в кеш из БД до коммита
	if s.cache != nil {
		if err := s.cache.Set(ctx, saved); err != nil {
			s.logger.Warn("Update: cache write failed: %v", err)
		}
	}

	s.logger.Info("Update: schedule replaced, %d dates published", len(saved.Dates))
	return models.FromDomainSchedule(saved), nil
}

func (s *Service) countCache(result string) {
	if s.metrics != nil {
		s.metrics.IncScheduleCache(result)
	}
}

// buildSchedule проверяет и нормализует окна, сортирует их по дате
func buildSchedule(req *models.UpdateScheduleRequest) (*domain.PreorderSchedule, error) {
	if len(req.Dates) > domain.MaxScheduleDates {
		return nil, fmt.Errorf("%w: at most %d dates can be published", ErrInvalidInput, domain.MaxScheduleDates)
	}

	seen := make(map[string]struct{}, len(req.Dates))
	windows := make([]domain.ScheduleWindow, 0, len(req.Dates))

	for i, in := range req.Dates {
		if _, err := time.Parse(domain.DateFormat, in.Date); err != nil {
			return nil, fmt.Errorf("%w: dates[%d].date must be YYYY-MM-DD, got %q", ErrInvalidInput, i, in.Date)
		}
		if _, dup := seen[in.Date]; dup {
			return nil, fmt.Errorf("%w: date %s is listed twice", ErrInvalidInput, in.Date)
		}
		seen[in.Date] = struct{}{}

		start, err := types.NewTimeStringFromString(in.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: dates[%d].startTime: %v", ErrInvalidInput, i, err)
		}
		end, err := types.NewTimeStringFromString(in.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: dates[%d].endTime: %v", ErrInvalidInput, i, err)
		}

		windows = append(windows, domain.ScheduleWindow{
			Date:      in.Date,
			StartTime: start.String(),
			EndTime:   end.String(),
		})
	}

	sort.Slice(windows, func(i, j int) bool { return windows[i].Date < windows[j].Date })

	return &domain.PreorderSchedule{
		RestrictionsEnabled: req.RestrictionsEnabled,
		Dates:               windows,
	}, nil
}
