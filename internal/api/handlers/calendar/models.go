package calendar

import (
	"bytes"
	"encoding/json"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	computeCalendar "github.com/m04kA/SMC-AvailabilityService/internal/usecase/compute_calendar"
)

// CalendarRequest тело POST /api/calendar.
// book и offer_timeslot - альтернативные имена полей, которые присылают старые клиенты.
type CalendarRequest struct {
	Timeslots       []availability.TimeslotInput `json:"timeslots"`
	OfferTimeslot   []availability.TimeslotInput `json:"offer_timeslot"`
	Bookings        []availability.BookingInput  `json:"bookings"`
	Book            []availability.BookingInput  `json:"book"`
	From            interface{}                  `json:"from"`
	To              interface{}                  `json:"to"`
	DefaultCapacity interface{}                  `json:"default_capacity"`
	Mode            string                       `json:"mode"`
}

// OptionsResponse ответ на OPTIONS
type OptionsResponse struct {
	OK bool `json:"ok"`
}

// ParseCalendarRequest разбирает тело запроса.
// Тело может прийти JSON-строкой, внутри которой закодирован объект.
func ParseCalendarRequest(body []byte) (*CalendarRequest, error) {
	body = bytes.TrimSpace(body)

	if len(body) > 0 && body[0] == '"' {
		var inner string
		if err := json.Unmarshal(body, &inner); err != nil {
			return nil, err
		}
		body = []byte(inner)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var req CalendarRequest
	if err := dec.Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ToUseCaseRequest создает запрос use case
func (r *CalendarRequest) ToUseCaseRequest() *computeCalendar.Request {
	timeslots := r.Timeslots
	if timeslots == nil {
		timeslots = r.OfferTimeslot
	}
	bookings := r.Bookings
	if bookings == nil {
		bookings = r.Book
	}

	return &computeCalendar.Request{
		Timeslots:       timeslots,
		Bookings:        bookings,
		From:            r.From,
		To:              r.To,
		DefaultCapacity: r.DefaultCapacity,
		Mode:            r.Mode,
	}
}
