package schedule

// Period is the 12-hour clock half
type Period string

const (
	AM Period = "AM"
	PM Period = "PM"
)

// IsValid reports whether p is AM or PM
func (p Period) IsValid() bool {
	return p == AM || p == PM
}

// Defaults used when the input carries no usable value
const (
	DefaultPeriod       = PM
	DefaultHour12       = "12"
	DefaultMinute       = "00"
	DefaultPreOrderTime = "13:00"

	// HourPlaceholder is what the picker sends before an hour is chosen
	HourPlaceholder = "--"
)

// TimeParts is a time split for a 12-hour picker
type TimeParts struct {
	Hour   string // "01".."12"
	Minute string // "00".."59"
	Period Period
}

// DefaultTimeParts is 12:00 PM
func DefaultTimeParts() TimeParts {
	return TimeParts{Hour: DefaultHour12, Minute: DefaultMinute, Period: DefaultPeriod}
}
