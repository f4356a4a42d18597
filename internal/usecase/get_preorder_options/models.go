package get_preorder_options

import (
	"github.com/m04kA/SMC-OrderingService/internal/domain"
	"github.com/m04kA/SMC-OrderingService/internal/schedule"
)

// Request текущее состояние 12-часового пикера
type Request struct {
	Date   string          // YYYY-MM-DD; пусто = сегодня
	Hour   string          // "01".."12", "--" или пусто
	Minute string          // "00".."59" или пусто
	Period schedule.Period // AM, PM или пусто (определяется по окну)
}

// Response варианты выбора и сообщения валидации для даты
type Response struct {
	Date                string
	RestrictionsEnabled bool
	Window              *domain.ScheduleWindow // nil, если на дату нет окна
	WindowLabel         string                 // "11:00 AM - 2:00 PM"
	AllowedHours        []string
	Period              schedule.Period
	AllowedMinutes      []string
	SelectedTime        string // HH:MM, пусто пока час не выбран
	DateError           string
	TimeError           string
}
