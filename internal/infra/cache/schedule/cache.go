package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
)

// Key ключ опубликованного расписания в Redis
const Key = "ordering:preorder:schedule"

type windowRecord struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type scheduleRecord struct {
	RestrictionsEnabled bool           `json:"restrictionsEnabled"`
	Dates               []windowRecord `json:"dates"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

// Cache read-through кеш расписания предзаказов
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кеш. ttl <= 0 отключает запись в кеш.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает расписание из кеша или ErrCacheMiss
func (c *Cache) Get(ctx context.Context) (*domain.PreorderSchedule, error) {
	val, err := c.client.Get(ctx, Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrCache, err)
	}

	var rec scheduleRecord
	if err := json.Unmarshal(val, &rec); err != nil {
		return nil, fmt.Errorf("%w: Get - decode: %v", ErrCache, err)
	}

	sched := &domain.PreorderSchedule{
		RestrictionsEnabled: rec.RestrictionsEnabled,
		Dates:               make([]domain.ScheduleWindow, len(rec.Dates)),
		UpdatedAt:           rec.UpdatedAt,
	}
	for i, w := range rec.Dates {
		sched.Dates[i] = domain.ScheduleWindow{Date: w.Date, StartTime: w.StartTime, EndTime: w.EndTime}
	}
	return sched, nil
}

// Set кладёт расписание в кеш на ttl
func (c *Cache) Set(ctx context.Context, sched *domain.PreorderSchedule) error {
	if c.ttl <= 0 {
		return nil
	}

	rec := scheduleRecord{
		RestrictionsEnabled: sched.RestrictionsEnabled,
		Dates:               make([]windowRecord, len(sched.Dates)),
		UpdatedAt:           sched.UpdatedAt,
	}
	for i, w := range sched.Dates {
		rec.Dates[i] = windowRecord{Date: w.Date, StartTime: w.StartTime, EndTime: w.EndTime}
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: Set - encode: %v", ErrCache, err)
	}
	if err := c.client.Set(ctx, Key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set: %v", ErrCache, err)
	}
	return nil
}

// Invalidate удаляет расписание из кеша
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, Key).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate: %v", ErrCache, err)
	}
	return nil
}
