package create_booking

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
	busy      []googlecalendar.BusyPeriod
	listErr   error
	inserted  *googlecalendar.EventInput
	insertErr error
}

func (f *fakeCalendar) ListBusyPeriods(context.Context, time.Time) ([]googlecalendar.BusyPeriod, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.busy, nil
}

func (f *fakeCalendar) InsertEvent(_ context.Context, input googlecalendar.EventInput) (*googlecalendar.CreatedEvent, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = &input
	return &googlecalendar.CreatedEvent{
		ID:      "evt-1",
		Summary: input.Summary,
		Start:   input.Start,
		End:     input.End,
	}, nil
}

func futureDate() time.Time {
	return time.Now().In(domain.Location).AddDate(0, 0, 7)
}

func validRequest() *Request {
	return &Request{
		Name:        "Laura Gómez",
		Email:       "laura@example.com",
		Phone:       "3001234567",
		Date:        futureDate(),
		Slot:        domain.Slot{Start: "09:00", End: "11:00"},
		PlanType:    domain.PlanFlash,
		BookingType: domain.BookingClient,
		Notes:       "flash de catálogo",
	}
}

func TestExecuteCreatesEvent(t *testing.T) {
	calendar := &fakeCalendar{}
	uc := NewUseCase(calendar, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "evt-1", resp.ID)
	assert.Equal(t, "FLASH — Laura Gómez (Cliente)", resp.Summary)

	require.NotNil(t, calendar.inserted)
	input := calendar.inserted
	assert.Equal(t, "9", input.ColorID)
	assert.Equal(t, map[string]string{
		"bookingType":   "client",
		"planType":      "flash",
		"customerName":  "Laura Gómez",
		"customerEmail": "laura@example.com",
		"customerPhone": "3001234567",
	}, input.PrivateMetadata)
	assert.Contains(t, input.Description, "Plan: FLASH")
	assert.Contains(t, input.Description, "Notas: flash de catálogo")

	// El evento queda anclado al horario del slot en la zona del estudio
	assert.Equal(t, 9, input.Start.Hour())
	assert.Equal(t, 11, input.End.Hour())
}

func TestExecutePlusUsesPlusColor(t *testing.T) {
	calendar := &fakeCalendar{}
	uc := NewUseCase(calendar, nopLogger{})

	req := validRequest()
	req.PlanType = domain.PlanPlus
	req.Slot = domain.FullDaySlot
	req.BookingType = domain.BookingArtist

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "PLUS — Laura Gómez (Artista)", resp.Summary)
	assert.Equal(t, "5", calendar.inserted.ColorID)
}

func TestExecuteSlotNoLongerAvailable(t *testing.T) {
	date := futureDate()
	busy := googlecalendar.BusyPeriod{
		Start: time.Date(date.Year(), date.Month(), date.Day(), 10, 0, 0, 0, domain.Location),
		End:   time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, domain.Location),
	}
	calendar := &fakeCalendar{busy: []googlecalendar.BusyPeriod{busy}}
	uc := NewUseCase(calendar, nopLogger{})

	req := validRequest()
	req.Date = date

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, calendar.inserted, "no event must be inserted on conflict")
}

func TestExecutePlusRejectedWhenDayHasBookings(t *testing.T) {
	date := futureDate()
	busy := googlecalendar.BusyPeriod{
		Start: time.Date(date.Year(), date.Month(), date.Day(), 17, 0, 0, 0, domain.Location),
		End:   time.Date(date.Year(), date.Month(), date.Day(), 19, 0, 0, 0, domain.Location),
	}
	uc := NewUseCase(&fakeCalendar{busy: []googlecalendar.BusyPeriod{busy}}, nopLogger{})

	req := validRequest()
	req.Date = date
	req.PlanType = domain.PlanPlus
	req.Slot = domain.FullDaySlot

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecuteValidationMessages(t *testing.T) {
	uc := NewUseCase(&fakeCalendar{}, nopLogger{})

	req := &Request{
		Name:     "L",
		Email:    "no-es-email",
		Phone:    "123",
		Date:     time.Date(2020, 1, 15, 0, 0, 0, 0, domain.Location),
		PlanType: "premium",
	}

	_, err := uc.Execute(context.Background(), req)

	var verr *ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{
		"Nombre debe tener al menos 2 caracteres",
		"Email inválido",
		"Teléfono inválido",
		"No se puede reservar fechas pasadas",
		"Horario no seleccionado",
		"Tipo de plan inválido",
		"Tipo de reserva inválido",
	}, verr.Messages)
}

func TestExecuteCalendarUnavailable(t *testing.T) {
	uc := NewUseCase(&fakeCalendar{listErr: errors.New("timeout")}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCalendarUnavailable)
}

func TestExecuteInsertFails(t *testing.T) {
	uc := NewUseCase(&fakeCalendar{insertErr: errors.New("quota exceeded")}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCalendarUnavailable)
}
