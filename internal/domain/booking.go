package domain

import (
	"strings"
	"time"
)

// BookingStatus represents the status of a booking as stored upstream
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus приводит статус к каноническому виду (без учёта регистра и пробелов)
func ParseBookingStatus(s string) BookingStatus {
	return BookingStatus(strings.ToLower(strings.TrimSpace(s)))
}

// IsConfirmed returns true if the booking consumes capacity
func (s BookingStatus) IsConfirmed() bool {
	return s == StatusConfirmed
}

// Booking represents a normalized booking record.
// Day is the UTC midnight of the booked calendar day.
type Booking struct {
	TimeslotID int64
	Status     BookingStatus
	Timestamp  time.Time
	Day        time.Time
}

// IsConfirmed returns true if the booking counts toward usage
func (b *Booking) IsConfirmed() bool {
	return b.Status.IsConfirmed()
}

// DayKey returns the canonical YYYY-MM-DD key of the booked day
func (b *Booking) DayKey() string {
	return b.Day.Format(DateFormat)
}
