package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
)

// Validation messages are shown to the customer verbatim.
// An empty string means the value is valid.
const (
	MsgNoPublishedDates    = "Owner has not published any pre-order dates."
	MsgChoosePublishedDate = "Please choose one of the published pre-order dates."
	MsgSelectTime          = "Please select a preferred time within the window."
	MsgChooseDateFirst     = "Choose an available date first."
	MsgInvalidTimeFormat   = "Invalid time format."

	msgTimeOutOfWindow = "Please choose a time between %s and %s."
)

// ValidatePreOrderDate checks a chosen date against the published schedule
func ValidatePreOrderDate(date string, restrictionsEnabled, hasConfiguredDates bool, scheduled []domain.ScheduleWindow) string {
	if strings.TrimSpace(date) == "" || !restrictionsEnabled {
		return ""
	}
	if !hasConfiguredDates {
		return MsgNoPublishedDates
	}
	if _, ok := FindWindow(date, scheduled); !ok {
		return MsgChoosePublishedDate
	}
	return ""
}

// ValidatePreOrderTime checks a chosen 24-hour time against the window of the
// chosen date. The check is a plain [start, end] range in minutes since
// midnight; midnight-spanning windows are not unwrapped here.
func ValidatePreOrderTime(time24, date string, restrictionsEnabled bool, scheduled []domain.ScheduleWindow) string {
	if !restrictionsEnabled {
		return ""
	}
	if strings.TrimSpace(time24) == "" {
		return MsgSelectTime
	}

	window, ok := FindWindow(date, scheduled)
	if !ok {
		return MsgChooseDateFirst
	}

	selected, errSelected := MinutesSinceMidnight(time24)
	start, errStart := MinutesSinceMidnight(window.StartTime)
	end, errEnd := MinutesSinceMidnight(window.EndTime)
	if errSelected != nil || errStart != nil || errEnd != nil {
		return MsgInvalidTimeFormat
	}

	if selected < start || selected > end {
		return fmt.Sprintf(msgTimeOutOfWindow, FormatTime12h(window.StartTime), FormatTime12h(window.EndTime))
	}
	return ""
}

// ClampPreOrderDate подставляет сегодняшнюю дату, если дата не выбрана
func ClampPreOrderDate(date string, now time.Time) string {
	if strings.TrimSpace(date) == "" {
		return now.Format(domain.DateFormat)
	}
	return date
}

// ClampPreOrderTime подставляет DefaultPreOrderTime, если время не выбрано
func ClampPreOrderTime(time24 string) string {
	if strings.TrimSpace(time24) == "" {
		return DefaultPreOrderTime
	}
	return time24
}

// FindWindow returns the published window for date
func FindWindow(date string, scheduled []domain.ScheduleWindow) (domain.ScheduleWindow, bool) {
	date = strings.TrimSpace(date)
	if date == "" {
		return domain.ScheduleWindow{}, false
	}
	for _, w := range scheduled {
		if w.Date == date {
			return w, true
		}
	}
	return domain.ScheduleWindow{}, false
}
