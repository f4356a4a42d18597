package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
)

var lunchWindow = []domain.ScheduleWindow{
	{Date: "2025-01-01", StartTime: "11:00", EndTime: "14:00"},
	{Date: "2025-01-02", StartTime: "22:00", EndTime: "02:00"},
	{Date: "2025-01-03", StartTime: "25:00", EndTime: "26:00"},
}

func TestValidatePreOrderDate(t *testing.T) {
	tests := []struct {
		name                string
		date                string
		restrictionsEnabled bool
		hasConfiguredDates  bool
		scheduled           []domain.ScheduleWindow
		expected            string
	}{
		{name: "empty date", date: "", restrictionsEnabled: true, hasConfiguredDates: true, scheduled: lunchWindow, expected: ""},
		{name: "restrictions off", date: "2030-05-05", restrictionsEnabled: false, hasConfiguredDates: true, scheduled: lunchWindow, expected: ""},
		{name: "nothing published", date: "2025-01-01", restrictionsEnabled: true, hasConfiguredDates: false, scheduled: nil, expected: MsgNoPublishedDates},
		{name: "unpublished date", date: "2025-01-09", restrictionsEnabled: true, hasConfiguredDates: true, scheduled: lunchWindow, expected: MsgChoosePublishedDate},
		{name: "published date", date: "2025-01-01", restrictionsEnabled: true, hasConfiguredDates: true, scheduled: lunchWindow, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePreOrderDate(tt.date, tt.restrictionsEnabled, tt.hasConfiguredDates, tt.scheduled)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestValidatePreOrderTime(t *testing.T) {
	tests := []struct {
		name                string
		time24              string
		date                string
		restrictionsEnabled bool
		expected            string
	}{
		{name: "restrictions off", time24: "", date: "", restrictionsEnabled: false, expected: ""},
		{name: "no time", time24: "", date: "2025-01-01", restrictionsEnabled: true, expected: MsgSelectTime},
		{name: "no window for date", time24: "12:00", date: "2025-01-09", restrictionsEnabled: true, expected: MsgChooseDateFirst},
		{name: "too early", time24: "10:30", date: "2025-01-01", restrictionsEnabled: true, expected: "Please choose a time between 11:00 AM and 2:00 PM."},
		{name: "too late", time24: "14:01", date: "2025-01-01", restrictionsEnabled: true, expected: "Please choose a time between 11:00 AM and 2:00 PM."},
		{name: "start inclusive", time24: "11:00", date: "2025-01-01", restrictionsEnabled: true, expected: ""},
		{name: "end inclusive", time24: "14:00", date: "2025-01-01", restrictionsEnabled: true, expected: ""},
		{name: "inside", time24: "12:45", date: "2025-01-01", restrictionsEnabled: true, expected: ""},
		{name: "malformed time", time24: "10:3", date: "2025-01-01", restrictionsEnabled: true, expected: MsgInvalidTimeFormat},
		{name: "seconds out of range", time24: "10:30:99", date: "2025-01-01", restrictionsEnabled: true, expected: MsgInvalidTimeFormat},
		{name: "non-numeric seconds", time24: "10:30:abc", date: "2025-01-01", restrictionsEnabled: true, expected: MsgInvalidTimeFormat},
		{name: "trailing colon", time24: "12:30:", date: "2025-01-01", restrictionsEnabled: true, expected: MsgInvalidTimeFormat},
		{name: "signed hour", time24: "+12:30", date: "2025-01-01", restrictionsEnabled: true, expected: MsgInvalidTimeFormat},
		{name: "malformed window", time24: "10:30", date: "2025-01-03", restrictionsEnabled: true, expected: MsgInvalidTimeFormat},
		{name: "midnight window is not unwrapped", time24: "23:00", date: "2025-01-02", restrictionsEnabled: true, expected: "Please choose a time between 10:00 PM and 2:00 AM."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidatePreOrderTime(tt.time24, tt.date, tt.restrictionsEnabled, lunchWindow))
		})
	}
}

func TestClampPreOrderDate(t *testing.T) {
	now := time.Date(2025, 3, 9, 18, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-03-09", ClampPreOrderDate("", now))
	assert.Equal(t, "2025-03-09", ClampPreOrderDate("   ", now))
	assert.Equal(t, "2025-04-01", ClampPreOrderDate("2025-04-01", now))
}

func TestClampPreOrderTime(t *testing.T) {
	assert.Equal(t, "13:00", ClampPreOrderTime(""))
	assert.Equal(t, "09:30", ClampPreOrderTime("09:30"))
}

func TestFindWindow(t *testing.T) {
	w, ok := FindWindow("2025-01-01", lunchWindow)
	assert.True(t, ok)
	assert.Equal(t, "11:00", w.StartTime)

	_, ok = FindWindow(" ", lunchWindow)
	assert.False(t, ok)

	_, ok = FindWindow("2025-01-01", nil)
	assert.False(t, ok)
}
