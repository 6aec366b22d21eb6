package availability

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// toInt64 приводит число, json.Number или числовую строку к целому.
// Дробные и нечисловые значения считаются отсутствующими.
func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint32:
		return int64(n), true
	case float32:
		return floatToInt64(float64(n))
	case float64:
		return floatToInt64(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	default:
		return 0, false
	}
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// toPositiveInt возвращает значение, только если это целое > 0.
// Значения больше math.MaxInt обрезаются до math.MaxInt.
func toPositiveInt(v interface{}) (int, bool) {
	n, ok := toInt64(v)
	if !ok || n <= 0 {
		return 0, false
	}
	if uint64(n) > math.MaxInt {
		return math.MaxInt, true
	}
	return int(n), true
}

// addCapacity складывает ёмкости без переполнения int
func addCapacity(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// toPositiveID идентификатор таймслота: целое > 0
func toPositiveID(v interface{}) (int64, bool) {
	n, ok := toInt64(v)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}

// isTrue строгая проверка флага: только булево true
func isTrue(v interface{}) bool {
	b, ok := v.(bool)
	return ok && b
}

// toStatus приводит статус к каноническому виду; не-строки дают пустой статус
func toStatus(v interface{}) domain.BookingStatus {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return domain.ParseBookingStatus(s)
}

// toTimeString парсит HH:MM; пустые и некорректные значения считаются отсутствующими
func toTimeString(v interface{}) *types.TimeString {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	ts, err := types.NewTimeStringFromString(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &ts
}

// ParseInstant приводит значение к моменту времени в UTC.
// Поддерживаются: epoch milliseconds (число или строка из цифр), YYYY-MM-DD, RFC 3339 и time.Time.
func ParseInstant(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if t.IsZero() {
			return time.Time{}, false
		}
		return t.UTC(), true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return ParseInstant(*t)
	case string:
		return parseInstantString(strings.TrimSpace(t))
	case float32, float64, json.Number:
		f, ok := toFloat(t)
		if !ok {
			return time.Time{}, false
		}
		return fromEpochMillis(f)
	default:
		ms, ok := toInt64(v)
		if !ok {
			return time.Time{}, false
		}
		return time.UnixMilli(ms).UTC(), true
	}
}

func parseInstantString(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	if isEpochDigits(s) {
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		return time.UnixMilli(ms).UTC(), true
	}

	if len(s) == len(domain.DateFormat) {
		return parseCalendarDate(s)
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// parseCalendarDate проверяет YYYY-MM-DD на обратимость:
// повторная сериализация должна дать ту же строку (отсекает 2026-04-31 и т.п.)
func parseCalendarDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(domain.DateFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	if t.Format(domain.DateFormat) != s {
		return time.Time{}, false
	}
	return t, true
}

func isEpochDigits(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// fromEpochMillis дробные миллисекунды отбрасываются
func fromEpochMillis(f float64) (time.Time, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, false
	}
	f = math.Floor(f)
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(f)).UTC(), true
}

// ParseDay приводит значение к UTC-полуночи календарного дня
func ParseDay(v interface{}) (time.Time, bool) {
	t, ok := ParseInstant(v)
	if !ok {
		return time.Time{}, false
	}
	return startOfDay(t), true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
