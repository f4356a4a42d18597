package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
)

func testSchedule(enabled bool) domain.PreorderSchedule {
	return domain.PreorderSchedule{
		RestrictionsEnabled: enabled,
		Dates: []domain.ScheduleWindow{
			{Date: "2025-01-01", StartTime: "11:00", EndTime: "14:00"},
		},
	}
}

func TestValidateSelection(t *testing.T) {
	sched := testSchedule(true)

	errs := ValidateSelection(domain.TimeSelection{Date: "2025-01-01", Time: "12:00"}, sched)
	assert.True(t, errs.Valid())

	errs = ValidateSelection(domain.TimeSelection{Date: "2025-01-05", Time: "12:00"}, sched)
	assert.False(t, errs.Valid())
	assert.Equal(t, MsgChoosePublishedDate, errs.Date)
	assert.Equal(t, MsgChooseDateFirst, errs.Time)

	errs = ValidateSelection(domain.TimeSelection{Date: "2025-01-05"}, testSchedule(false))
	assert.True(t, errs.Valid())
}

func TestBuildOptions_WithWindow(t *testing.T) {
	opts := BuildOptions("2025-01-01", "12", "", testSchedule(true))

	require.NotNil(t, opts.Window)
	assert.Equal(t, "11:00 AM - 2:00 PM", opts.WindowLabel)
	assert.Equal(t, []string{"01", "02", "11", "12"}, opts.AllowedHours)
	assert.Equal(t, PM, opts.Period)
	assert.Len(t, opts.AllowedMinutes, 60)
}

func TestBuildOptions_ExplicitPeriodIsKept(t *testing.T) {
	opts := BuildOptions("2025-01-01", "11", PM, testSchedule(true))

	assert.Equal(t, PM, opts.Period)
	assert.Empty(t, opts.AllowedMinutes)
}

func TestBuildOptions_NoWindow(t *testing.T) {
	opts := BuildOptions("2025-02-02", HourPlaceholder, "", testSchedule(true))

	assert.Nil(t, opts.Window)
	assert.Empty(t, opts.WindowLabel)
	assert.Equal(t, DefaultPeriod, opts.Period)
	assert.Len(t, opts.AllowedHours, 12)
	assert.Len(t, opts.AllowedMinutes, 60)
}

func TestBuildOptions_RestrictionsDisabled(t *testing.T) {
	opts := BuildOptions("2025-01-01", "09", "", testSchedule(false))

	assert.Nil(t, opts.Window)
	assert.Equal(t, DefaultPeriod, opts.Period)
	assert.Len(t, opts.AllowedHours, 12)
}
