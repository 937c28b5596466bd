package get_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamicio/SG-StudioService/internal/api/handlers"
	"github.com/mamicio/SG-StudioService/internal/domain"
	getAvailableSlots "github.com/mamicio/SG-StudioService/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(context.Context, *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestHandleReturnsSlots(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, domain.Location)
	handler := NewHandler(&fakeUseCase{resp: &getAvailableSlots.Response{
		Date: date,
		Plan: domain.PlanFlash,
		Slots: []domain.Slot{
			{Start: "13:00", End: "15:00"},
			{Start: "15:00", End: "17:00"},
		},
	}}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-09-14&plan=flash", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-14", resp.Date)
	assert.Equal(t, "flash", resp.Plan)
	assert.Equal(t, []AvailableSlot{
		{Start: "13:00", End: "15:00"},
		{Start: "15:00", End: "17:00"},
	}, resp.Slots)
}

func TestHandleMissingDate(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/availability?plan=flash", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fecha requerida")
}

func TestHandleInvalidDateFormat(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=14-09-2026&plan=flash", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePastDate(t *testing.T) {
	handler := NewHandler(&fakeUseCase{err: getAvailableSlots.ErrPastDate}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2020-01-15&plan=flash", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No se puede consultar fechas pasadas")
}

func TestHandleCalendarUnavailable(t *testing.T) {
	handler := NewHandler(&fakeUseCase{err: getAvailableSlots.ErrCalendarUnavailable}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-09-14&plan=flash", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	// Falla de servicio de respaldo: 500 genérico, sin detalle en producción
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), handlers.MsgInternalError)
}

func TestHandleCalendarUnavailableDevelopmentDetail(t *testing.T) {
	handlers.Development = true
	defer func() { handlers.Development = false }()

	handler := NewHandler(&fakeUseCase{err: getAvailableSlots.ErrCalendarUnavailable}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-09-14&plan=flash", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), getAvailableSlots.ErrCalendarUnavailable.Error())
}

func TestHandleUnexpectedError(t *testing.T) {
	handler := NewHandler(&fakeUseCase{err: errors.New("boom")}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-09-14&plan=flash", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
