package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamicio/SG-StudioService/internal/domain"
	"github.com/mamicio/SG-StudioService/internal/integrations/googlecalendar"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCalendar struct {
	busy []googlecalendar.BusyPeriod
	err  error
}

func (f *fakeCalendar) ListBusyPeriods(context.Context, time.Time) ([]googlecalendar.BusyPeriod, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.busy, nil
}

// futureDate retorna una fecha una semana adelante, suficiente para que
// nunca cuente como pasada
func futureDate() time.Time {
	return time.Now().In(domain.Location).AddDate(0, 0, 7)
}

func busyAt(date time.Time, startHour, endHour int) googlecalendar.BusyPeriod {
	return googlecalendar.BusyPeriod{
		Start: time.Date(date.Year(), date.Month(), date.Day(), startHour, 0, 0, 0, domain.Location),
		End:   time.Date(date.Year(), date.Month(), date.Day(), endHour, 0, 0, 0, domain.Location),
	}
}

func TestExecuteFlashExcludesOverlappingSlots(t *testing.T) {
	date := futureDate()
	uc := NewUseCase(&fakeCalendar{busy: []googlecalendar.BusyPeriod{busyAt(date, 10, 12)}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date, Plan: domain.PlanFlash})
	require.NoError(t, err)

	assert.Equal(t, []domain.Slot{
		{Start: "13:00", End: "15:00"},
		{Start: "15:00", End: "17:00"},
		{Start: "17:00", End: "19:00"},
	}, resp.Slots)
}

func TestExecutePlusNeedsEmptyDay(t *testing.T) {
	date := futureDate()

	t.Run("free day", func(t *testing.T) {
		uc := NewUseCase(&fakeCalendar{}, nopLogger{})
		resp, err := uc.Execute(context.Background(), &Request{Date: date, Plan: domain.PlanPlus})
		require.NoError(t, err)
		assert.Equal(t, []domain.Slot{domain.FullDaySlot}, resp.Slots)
	})

	t.Run("single busy period removes the day", func(t *testing.T) {
		uc := NewUseCase(&fakeCalendar{busy: []googlecalendar.BusyPeriod{busyAt(date, 18, 19)}}, nopLogger{})
		resp, err := uc.Execute(context.Background(), &Request{Date: date, Plan: domain.PlanPlus})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})
}

func TestExecuteRejectsPastDate(t *testing.T) {
	uc := NewUseCase(&fakeCalendar{}, nopLogger{})

	past := time.Date(2020, 1, 15, 0, 0, 0, 0, domain.Location)
	_, err := uc.Execute(context.Background(), &Request{Date: past, Plan: domain.PlanFlash})
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecuteRejectsInvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeCalendar{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Plan: domain.PlanFlash})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: futureDate(), Plan: "premium"})
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestExecuteCalendarUnavailable(t *testing.T) {
	uc := NewUseCase(&fakeCalendar{err: errors.New("timeout")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: futureDate(), Plan: domain.PlanFlash})
	assert.ErrorIs(t, err, ErrCalendarUnavailable)
}

func TestExecuteCalendarNotConfigured(t *testing.T) {
	uc := NewUseCase(&fakeCalendar{err: googlecalendar.ErrNotConfigured}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: futureDate(), Plan: domain.PlanFlash})
	assert.ErrorIs(t, err, ErrCalendarUnavailable)
}
