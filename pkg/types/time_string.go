package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

// ErrInvalidTimeString возвращается, когда строка не является временем в формате HH:MM
var ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")

// TimeString время суток в формате HH:MM без даты и часового пояса
type TimeString struct {
	minutes int // минуты от начала суток
}

// NewTimeString создает TimeString из time.Time (учитываются только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString{minutes: t.Hour()*60 + t.Minute()}
}

// NewTimeStringFromString парсит строку формата HH:MM (допускается HH:MM:SS из PostgreSQL TIME)
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		t, err = time.Parse("15:04:05", s)
		if err != nil {
			return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}
	return NewTimeString(t), nil
}

// Hour возвращает час (0-23)
func (ts TimeString) Hour() int {
	return ts.minutes / 60
}

// Minute возвращает минуту часа (0-59)
func (ts TimeString) Minute() int {
	return ts.minutes % 60
}

// String возвращает время в формате HH:MM
func (ts TimeString) String() string {
	return fmt.Sprintf("%02d:%02d", ts.Hour(), ts.Minute())
}

// MarshalJSON сериализует время как строку HH:MM
func (ts TimeString) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ts.String() + `"`), nil
}

// Scan реализует sql.Scanner для колонок TIME и TEXT
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case []byte:
		return ts.Scan(string(v))
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}

// Value реализует driver.Valuer
func (ts TimeString) Value() (driver.Value, error) {
	return ts.String(), nil
}
