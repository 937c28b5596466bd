package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamicio/SG-StudioService/internal/api/handlers"
	createBooking "github.com/mamicio/SG-StudioService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

const bookingBody = `{
	"name": "Laura Gómez",
	"email": "laura@example.com",
	"phone": "3001234567",
	"date": "2026-09-14",
	"slot": {"start": "09:00", "end": "11:00"},
	"planType": "flash",
	"bookingType": "client",
	"notes": ""
}`

func TestHandleCreatesBooking(t *testing.T) {
	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:      "evt-1",
		Summary: "FLASH — Laura Gómez (Cliente)",
		Start:   start,
		End:     start.Add(2 * time.Hour),
	}}
	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingBody))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "evt-1", resp.ID)
	assert.Equal(t, "FLASH — Laura Gómez (Cliente)", resp.Summary)

	// El handler parsea fecha y slot antes de llamar al use case
	require.NotNil(t, uc.got)
	assert.Equal(t, "2026-09-14", uc.got.Date.Format("2006-01-02"))
	assert.Equal(t, "09:00", uc.got.Slot.Start.String())
}

func TestHandleSlotConflict(t *testing.T) {
	handler := NewHandler(&fakeUseCase{err: createBooking.ErrSlotNotAvailable}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingBody))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "ya no está disponible")
}

func TestHandleValidationErrors(t *testing.T) {
	verr := &createBooking.ValidationErrors{Messages: []string{
		"Nombre debe tener al menos 2 caracteres",
		"Email inválido",
	}}
	handler := NewHandler(&fakeUseCase{err: verr}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingBody))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handlers.ValidationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, verr.Messages, resp.Errors)
}

func TestHandleInvalidBody(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader("{no es json"))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCalendarUnavailable(t *testing.T) {
	handler := NewHandler(&fakeUseCase{err: createBooking.ErrCalendarUnavailable}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingBody))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	// Falla de servicio de respaldo: 500 genérico, sin detalle en producción
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), handlers.MsgInternalError)
}
