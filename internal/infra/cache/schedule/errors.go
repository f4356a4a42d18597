package schedule

import "errors"

var (
	// ErrCacheMiss возвращается, когда расписания нет в кеше
	ErrCacheMiss = errors.New("schedule.cache: miss")

	// ErrCache возвращается при ошибках Redis или повреждённой записи
	ErrCache = errors.New("schedule.cache: redis error")
)
