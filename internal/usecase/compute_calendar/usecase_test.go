package compute_calendar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMetrics struct {
	reports int
	mode    string
	days    int
	dropped int
}

func (m *fakeMetrics) ObserveReport(mode string, days int, droppedTimeslots int, droppedBookings int) {
	m.reports++
	m.mode = mode
	m.days = days
	m.dropped = droppedTimeslots + droppedBookings
}

func newUseCase(m *fakeMetrics) *UseCase {
	return NewUseCase(
		domain.CapacityPolicy{DefaultCapacity: 1, Mode: domain.ModePerTimeslotCapacity},
		31,
		m,
		nopLogger{},
	)
}

func TestExecute_ComputesReport(t *testing.T) {
	m := &fakeMetrics{}
	uc := newUseCase(m)

	resp, err := uc.Execute(context.Background(), &Request{
		Timeslots: []availability.TimeslotInput{
			{TimeslotID: 1, Active: true, Capacity: 2},
			{TimeslotID: 2, Active: false, Capacity: 9},
		},
		Bookings: []availability.BookingInput{
			{TimeslotID: 1, Status: "CONFIRMED", Timestamp: "2026-01-01T10:00:00Z"},
		},
		From: "2026-01-01",
		To:   "2026-01-02",
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.DayAvailability{
		{Date: "2026-01-01", Available: true, RemainingSlots: 1},
		{Date: "2026-01-02", Available: true, RemainingSlots: 2},
	}, resp.Report.AvailableDays)

	assert.Equal(t, 1, m.reports)
	assert.Equal(t, string(domain.ModePerTimeslotCapacity), m.mode)
	assert.Equal(t, 2, m.days)
	assert.Equal(t, 1, m.dropped)
}

func TestExecute_RequestModeOverridesDefault(t *testing.T) {
	uc := newUseCase(&fakeMetrics{})

	resp, err := uc.Execute(context.Background(), &Request{
		Timeslots: []availability.TimeslotInput{
			{TimeslotID: 1, Active: true},
			{TimeslotID: 2, Active: true},
		},
		Bookings: []availability.BookingInput{
			{TimeslotID: 1, Status: "confirmed", Timestamp: "2026-01-01"},
		},
		From: "2026-01-01",
		To:   "2026-01-01",
		Mode: string(domain.ModeDayLevelLimit),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ModeDayLevelLimit, resp.Policy.Mode)
	assert.Equal(t, []domain.DayAvailability{
		{Date: "2026-01-01", Available: true, RemainingSlots: 1},
	}, resp.Report.AvailableDays)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "missing from", req: &Request{To: "2026-01-01"}, wantErr: ErrInvalidInput},
		{name: "blank to", req: &Request{From: "2026-01-01", To: "  "}, wantErr: ErrInvalidInput},
		{name: "range too long", req: &Request{From: "2026-01-01", To: "2026-03-01"}, wantErr: ErrRangeTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeMetrics{}
			_, err := newUseCase(m).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, m.reports)
		})
	}
}

func TestExecute_UnrecognizedRangeIsEmptyReport(t *testing.T) {
	resp, err := newUseCase(&fakeMetrics{}).Execute(context.Background(), &Request{
		Timeslots: []availability.TimeslotInput{{TimeslotID: 1, Active: true}},
		From:      "2026-04-01",
		To:        "2026-04-31",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Report.AvailableDays)
	assert.NotNil(t, resp.Report.AvailableDays)
}
