package calendar

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	computeCalendar "github.com/m04kA/SMC-AvailabilityService/internal/usecase/compute_calendar"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type nopMetrics struct{}

func (nopMetrics) ObserveReport(string, int, int, int) {}

func newHandler() *Handler {
	uc := computeCalendar.NewUseCase(
		domain.CapacityPolicy{DefaultCapacity: 1, Mode: domain.ModePerTimeslotCapacity},
		31,
		nopMetrics{},
		nopLogger{},
	)
	return NewHandler(uc, nopLogger{})
}

func serve(t *testing.T, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/api/calendar", nil)
	} else {
		req = httptest.NewRequest(method, "/api/calendar", strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	newHandler().Handle(rec, req)
	return rec
}

func decodeReport(t *testing.T, rec *httptest.ResponseRecorder) domain.AvailabilityReport {
	t.Helper()
	var report domain.AvailabilityReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	return report
}

func TestHandle_Post(t *testing.T) {
	rec := serve(t, http.MethodPost, `{
		"timeslots": [{"timeslot_id": 1, "active": true, "capacity": 2}],
		"bookings": [{"timeslot_id": 1, "status": "CONFIRMED", "timestamp": "2026-01-01T10:00:00Z"}],
		"from": "2026-01-01",
		"to": "2026-01-02"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, []domain.DayAvailability{
		{Date: "2026-01-01", Available: true, RemainingSlots: 1},
		{Date: "2026-01-02", Available: true, RemainingSlots: 2},
	}, decodeReport(t, rec).AvailableDays)
}

func TestHandle_AliasesAndStringEncodedBody(t *testing.T) {
	inner := `{"offer_timeslot":[{"timeslot_id":"7","active":true}],"book":[{"timeslot_id":7,"status":"confirmed","timestamp":"2026-01-01"}],"from":"2026-01-01","to":"2026-01-01","default_capacity":3}`
	encoded, err := json.Marshal(inner)
	require.NoError(t, err)

	rec := serve(t, http.MethodPost, string(encoded))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []domain.DayAvailability{
		{Date: "2026-01-01", Available: true, RemainingSlots: 2},
	}, decodeReport(t, rec).AvailableDays)
}

func TestHandle_EmptyReportIsList(t *testing.T) {
	rec := serve(t, http.MethodPost, `{"timeslots":[],"bookings":[],"from":"2026-01-01","to":"2026-01-03"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"available_days":[]}`, rec.Body.String())
}

func TestHandle_Options(t *testing.T) {
	rec := serve(t, http.MethodOptions, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestHandle_MethodNotAllowed(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rec := serve(t, method, "")

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.JSONEq(t, `{"error":"Method Not Allowed"}`, rec.Body.String())
		})
	}
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "missing from", body: `{"timeslots":[],"to":"2026-01-01"}`, wantMsg: msgInvalidPayload},
		{name: "null to", body: `{"timeslots":[],"from":"2026-01-01","to":null}`, wantMsg: msgInvalidPayload},
		{name: "empty body", body: "", wantMsg: msgInvalidPayload},
		{name: "broken json", body: `{"from":`, wantMsg: msgInvalidBody},
		{name: "timeslots is not a list", body: `{"timeslots":{"timeslot_id":1},"from":"2026-01-01","to":"2026-01-01"}`, wantMsg: msgInvalidBody},
		{name: "range too long", body: `{"from":"2026-01-01","to":"2027-01-01"}`, wantMsg: msgRangeTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, http.MethodPost, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"`+tt.wantMsg+`"}`, rec.Body.String())
		})
	}
}

func TestHandle_BodyTooLarge(t *testing.T) {
	body := `{"timeslots":[],"from":"2026-01-01","to":"2026-01-01","pad":"` + strings.Repeat("x", 10<<20) + `"}`
	rec := serve(t, http.MethodPost, body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"error":"Request body too large"}`, rec.Body.String())
}
