package offerstore

import (
	"encoding/json"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
)

// timeslotsEnvelope ответ вида {"timeslots": [...]}; сервис может отдавать и голый массив
type timeslotsEnvelope struct {
	Timeslots []availability.TimeslotInput `json:"timeslots"`
}

// bookingsEnvelope ответ вида {"bookings": [...]}
type bookingsEnvelope struct {
	Bookings []availability.BookingInput `json:"bookings"`
}

func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
