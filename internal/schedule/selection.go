package schedule

import "github.com/m04kA/SMC-OrderingService/internal/domain"

// SelectionErrors holds per-field messages for a TimeSelection
type SelectionErrors struct {
	Date string
	Time string
}

// Valid returns true when neither field has a message
func (e SelectionErrors) Valid() bool {
	return e.Date == "" && e.Time == ""
}

// ValidateSelection runs both validators against a schedule
func ValidateSelection(sel domain.TimeSelection, sched domain.PreorderSchedule) SelectionErrors {
	return SelectionErrors{
		Date: ValidatePreOrderDate(sel.Date, sched.RestrictionsEnabled, sched.HasConfiguredDates(), sched.Dates),
		Time: ValidatePreOrderTime(sel.Time, sel.Date, sched.RestrictionsEnabled, sched.Dates),
	}
}

// Options is everything a 12-hour picker needs for one date
type Options struct {
	Window         *domain.ScheduleWindow
	WindowLabel    string
	AllowedHours   []string
	Period         Period
	AllowedMinutes []string
}

// BuildOptions computes picker options for a date and optional hour/period.
// An empty period is inferred from the window via DeterminePeriod.
func BuildOptions(date, hour12 string, period Period, sched domain.PreorderSchedule) Options {
	var start, end string
	opts := Options{}

	if sched.RestrictionsEnabled {
		if w, ok := FindWindow(date, sched.Dates); ok {
			opts.Window = &w
			start, end = w.StartTime, w.EndTime
			opts.WindowLabel = FormatTimeRange12h(start, end)
		}
	}

	if !period.IsValid() {
		if isPlaceholder(hour12) || opts.Window == nil {
			period = DefaultPeriod
		} else {
			period = DeterminePeriod(hour12, start, end)
		}
	}

	opts.Period = period
	opts.AllowedHours = AllowedHours(start, end)
	opts.AllowedMinutes = AllowedMinutes(start, end, hour12, period)
	return opts
}
