package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-OrderingService/pkg/types"
)

// To12HourParts splits a 24-hour "HH:MM" string for a 12-hour picker.
// Empty or unparseable input yields DefaultTimeParts.
func To12HourParts(time24 string) TimeParts {
	if strings.TrimSpace(time24) == "" {
		return DefaultTimeParts()
	}

	parts := strings.Split(strings.TrimSpace(time24), ":")
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return DefaultTimeParts()
	}

	period := AM
	if hour >= 12 {
		period = PM
	}

	minute := DefaultMinute
	if len(parts) > 1 && parts[1] != "" {
		minute = parts[1]
	}

	return TimeParts{
		Hour:   fmt.Sprintf("%02d", to12Hour(hour)),
		Minute: minute,
		Period: period,
	}
}

// To24HourString собирает "HH:MM" из значений пикера.
// Диапазоны не проверяются: пикер предлагает только допустимые значения.
func To24HourString(hour12, minute string, period Period) string {
	hour, _ := strconv.Atoi(strings.TrimSpace(hour12))
	return fmt.Sprintf("%02d:%s", to24Hour(hour, period), padMinute(minute))
}

// FormatTime12h renders "13:05" as "1:05 PM"; empty or malformed input renders as ""
func FormatTime12h(time24 string) string {
	hour, minute, err := ParseTime24(time24)
	if err != nil {
		return ""
	}
	period := AM
	if hour >= 12 {
		period = PM
	}
	return fmt.Sprintf("%d:%02d %s", to12Hour(hour), minute, period)
}

// FormatTimeRange12h renders "{start} - {end}", or "" if either side is missing or malformed
func FormatTimeRange12h(start, end string) string {
	from, to := FormatTime12h(start), FormatTime12h(end)
	if from == "" || to == "" {
		return ""
	}
	return from + " - " + to
}

// ParseTime24 returns hour and minute of a 24-hour "HH:MM" string
func ParseTime24(time24 string) (int, int, error) {
	ts, err := types.NewTimeStringFromString(time24)
	if err != nil {
		return 0, 0, err
	}
	return ts.Hour(), ts.Minute(), nil
}

// MinutesSinceMidnight converts "HH:MM" to minutes since 00:00
func MinutesSinceMidnight(time24 string) (int, error) {
	hour, minute, err := ParseTime24(time24)
	if err != nil {
		return 0, err
	}
	return hour*60 + minute, nil
}

// to12Hour: 0 -> 12, 13 -> 1
func to12Hour(hour24 int) int {
	h := hour24 % 12
	if h == 0 {
		return 12
	}
	return h
}

// to24Hour: 12 AM -> 0, 12 PM -> 12, 1 PM -> 13
func to24Hour(hour12 int, period Period) int {
	switch {
	case period == PM && hour12 != 12:
		return hour12 + 12
	case period == AM && hour12 == 12:
		return 0
	default:
		return hour12
	}
}

func padMinute(minute string) string {
	minute = strings.TrimSpace(minute)
	if len(minute) >= 2 {
		return minute
	}
	return strings.Repeat("0", 2-len(minute)) + minute
}
