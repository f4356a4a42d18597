package get_preorder_options

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OrderingService/internal/domain"
	"github.com/m04kA/SMC-OrderingService/internal/schedule"
	"github.com/m04kA/SMC-OrderingService/pkg/logger"
)

type mockSchedule struct {
	mock.Mock
}

func (m *mockSchedule) Load(ctx context.Context) (*domain.PreorderSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PreorderSchedule), args.Error(1)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newUseCase(sched *domain.PreorderSchedule, err error) *UseCase {
	m := &mockSchedule{}
	m.On("Load", mock.Anything).Return(sched, err)
	uc := NewUseCase(m, time.UTC, logger.NewNop())
	uc.timeProvider = fixedTime{t: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)}
	return uc
}

func eveningSchedule() *domain.PreorderSchedule {
	return &domain.PreorderSchedule{
		RestrictionsEnabled: true,
		Dates: []domain.ScheduleWindow{
			{Date: "2025-01-01", StartTime: "11:00", EndTime: "14:00"},
			{Date: "2025-01-02", StartTime: "22:30", EndTime: "02:15"},
		},
	}
}

func TestExecute_InfersPeriodAndMinutes(t *testing.T) {
	resp, err := newUseCase(eveningSchedule(), nil).Execute(context.Background(), &Request{
		Date: "2025-01-02",
		Hour: "10",
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Window)
	assert.Equal(t, "10:30 PM - 2:15 AM", resp.WindowLabel)
	assert.Equal(t, []string{"01", "02", "10", "11", "12"}, resp.AllowedHours)
	assert.Equal(t, schedule.PM, resp.Period)
	assert.Len(t, resp.AllowedMinutes, 30)
	assert.Equal(t, "22:00", resp.SelectedTime)
	assert.Empty(t, resp.DateError)
	// plain range check, no midnight wrap
	assert.Equal(t, "Please choose a time between 10:30 PM and 2:15 AM.", resp.TimeError)
}

func TestExecute_ValidSelection(t *testing.T) {
	resp, err := newUseCase(eveningSchedule(), nil).Execute(context.Background(), &Request{
		Date:   "2025-01-01",
		Hour:   "12",
		Minute: "30",
	})

	require.NoError(t, err)
	assert.Equal(t, schedule.PM, resp.Period)
	assert.Equal(t, "12:30", resp.SelectedTime)
	assert.Empty(t, resp.DateError)
	assert.Empty(t, resp.TimeError)
}

func TestExecute_DefaultsToToday(t *testing.T) {
	resp, err := newUseCase(eveningSchedule(), nil).Execute(context.Background(), &Request{Hour: "--"})

	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", resp.Date)
	assert.Equal(t, schedule.PM, resp.Period)
	assert.Empty(t, resp.SelectedTime)
	assert.Equal(t, schedule.MsgSelectTime, resp.TimeError)
}

func TestExecute_UnpublishedDate(t *testing.T) {
	resp, err := newUseCase(eveningSchedule(), nil).Execute(context.Background(), &Request{Date: "2025-03-01", Hour: "01", Period: schedule.AM})

	require.NoError(t, err)
	assert.Nil(t, resp.Window)
	assert.Len(t, resp.AllowedHours, 12)
	assert.Len(t, resp.AllowedMinutes, 60)
	assert.Equal(t, "01:00", resp.SelectedTime)
	assert.Equal(t, schedule.MsgChoosePublishedDate, resp.DateError)
	assert.Equal(t, schedule.MsgChooseDateFirst, resp.TimeError)
}

func TestExecute_RestrictionsDisabled(t *testing.T) {
	resp, err := newUseCase(&domain.PreorderSchedule{}, nil).Execute(context.Background(), &Request{Date: "2025-03-01"})

	require.NoError(t, err)
	assert.False(t, resp.RestrictionsEnabled)
	assert.Empty(t, resp.DateError)
	assert.Empty(t, resp.TimeError)
}

func TestExecute_Errors(t *testing.T) {
	invalid := []Request{
		{Date: "01/01/2025"},
		{Hour: "13"},
		{Hour: "ab"},
		{Minute: "60"},
		{Period: "XM"},
	}
	for _, req := range invalid {
		_, err := newUseCase(eveningSchedule(), nil).Execute(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidInput, "%+v", req)
	}

	_, err := newUseCase(nil, errors.New("db down")).Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
}
