package update_preorder_schedule

import (
	"github.com/m04kA/SMC-OrderingService/internal/service/schedule/models"
)

// WindowRequest окно предзаказа на одну дату
type WindowRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	RestrictionsEnabled bool            `json:"restrictionsEnabled"`
	Dates               []WindowRequest `json:"dates"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(userID string) *models.UpdateScheduleRequest {
	dates := make([]models.WindowInput, len(r.Dates))
	for i, d := range r.Dates {
		dates[i] = models.WindowInput{
			Date:      d.Date,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		}
	}

	return &models.UpdateScheduleRequest{
		UserID:              userID,
		RestrictionsEnabled: r.RestrictionsEnabled,
		Dates:               dates,
	}
}
