package get_preorder_options

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
	"github.com/m04kA/SMC-OrderingService/internal/schedule"
)

func validateRequest(req *Request) error {
	if req.Date != "" {
		if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}

	if req.Period != "" && !req.Period.IsValid() {
		return fmt.Errorf("%w: period must be AM or PM", ErrInvalidInput)
	}

	hour := strings.TrimSpace(req.Hour)
	if hour != "" && hour != schedule.HourPlaceholder {
		h, err := strconv.Atoi(hour)
		if err != nil || h < 1 || h > 12 {
			return fmt.Errorf("%w: hour must be in 01..12", ErrInvalidInput)
		}
	}

	minute := strings.TrimSpace(req.Minute)
	if minute != "" {
		m, err := strconv.Atoi(minute)
		if err != nil || m < 0 || m > 59 {
			return fmt.Errorf("%w: minute must be in 00..59", ErrInvalidInput)
		}
	}

	return nil
}
