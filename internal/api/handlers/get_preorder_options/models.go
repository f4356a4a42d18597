package get_preorder_options

import (
	"net/url"
	"strings"

	"github.com/m04kA/SMC-OrderingService/internal/schedule"
	getPreorderOptions "github.com/m04kA/SMC-OrderingService/internal/usecase/get_preorder_options"
)

// WindowResponse окно предзаказа выбранной даты
type WindowResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Label     string `json:"label"`
}

// PreorderOptionsResponse HTTP response model
type PreorderOptionsResponse struct {
	Date                string          `json:"date"`
	RestrictionsEnabled bool            `json:"restrictionsEnabled"`
	Window              *WindowResponse `json:"window,omitempty"`
	AllowedHours        []string        `json:"allowedHours"`
	Period              string          `json:"period"`
	AllowedMinutes      []string        `json:"allowedMinutes"`
	SelectedTime        string          `json:"selectedTime,omitempty"`
	DateError           string          `json:"dateError,omitempty"`
	TimeError           string          `json:"timeError,omitempty"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(query url.Values) *getPreorderOptions.Request {
	return &getPreorderOptions.Request{
		Date:   strings.TrimSpace(query.Get("date")),
		Hour:   strings.TrimSpace(query.Get("hour")),
		Minute: strings.TrimSpace(query.Get("minute")),
		Period: schedule.Period(strings.ToUpper(strings.TrimSpace(query.Get("period")))),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getPreorderOptions.Response) *PreorderOptionsResponse {
	out := &PreorderOptionsResponse{
		Date:                resp.Date,
		RestrictionsEnabled: resp.RestrictionsEnabled,
		AllowedHours:        resp.AllowedHours,
		Period:              string(resp.Period),
		AllowedMinutes:      resp.AllowedMinutes,
		SelectedTime:        resp.SelectedTime,
		DateError:           resp.DateError,
		TimeError:           resp.TimeError,
	}

	if resp.Window != nil {
		out.Window = &WindowResponse{
			StartTime: resp.Window.StartTime,
			EndTime:   resp.Window.EndTime,
			Label:     resp.WindowLabel,
		}
	}

	return out
}
