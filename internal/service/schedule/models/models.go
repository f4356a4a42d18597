package models

import (
	"time"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
	"github.com/m04kA/SMC-OrderingService/internal/schedule"
)

// Request модели

// WindowInput окно предзаказа в запросе владельца
type WindowInput struct {
	Date      string `json:"date"`      // YYYY-MM-DD
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
}

// UpdateScheduleRequest полная замена расписания
type UpdateScheduleRequest struct {
	UserID              string        `json:"-"`
	RestrictionsEnabled bool          `json:"restrictionsEnabled"`
	Dates               []WindowInput `json:"dates"`
}

// Response модели

// WindowResponse окно с подписью для 12-часового пикера
type WindowResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Label     string `json:"label"` // "11:00 AM - 2:00 PM"
}

// ScheduleResponse опубликованное расписание
type ScheduleResponse struct {
	RestrictionsEnabled bool             `json:"restrictionsEnabled"`
	Dates               []WindowResponse `json:"dates"`
	UpdatedAt           *time.Time       `json:"updatedAt,omitempty"`
}

// FromDomainSchedule конвертирует доменное расписание в ответ
func FromDomainSchedule(s *domain.PreorderSchedule) *ScheduleResponse {
	resp := &ScheduleResponse{
		RestrictionsEnabled: s.RestrictionsEnabled,
		Dates:               make([]WindowResponse, len(s.Dates)),
	}
	for i, w := range s.Dates {
		resp.Dates[i] = WindowResponse{
			Date:      w.Date,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
			Label:     schedule.FormatTimeRange12h(w.StartTime, w.EndTime),
		}
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
