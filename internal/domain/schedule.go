package domain

import "time"

// ScheduleWindow is one owner-published pre-order slot.
// EndTime earlier than StartTime means the window spans midnight.
type ScheduleWindow struct {
	Date      string // YYYY-MM-DD, unique within a schedule
	StartTime string // HH:MM, 24h
	EndTime   string // HH:MM, 24h
}

// PreorderSchedule is the restaurant-wide pre-order configuration.
// With RestrictionsEnabled=false any date and time is accepted.
type PreorderSchedule struct {
	RestrictionsEnabled bool
	Dates               []ScheduleWindow
	UpdatedAt           time.Time
}

// HasConfiguredDates returns true if the owner published at least one date
func (s *PreorderSchedule) HasConfiguredDates() bool {
	return len(s.Dates) > 0
}

// TimeSelection is the customer's pending choice during a checkout session
type TimeSelection struct {
	Date string // YYYY-MM-DD or empty
	Time string // HH:MM, 24h, or empty
}
