package compute_calendar

// Metrics интерфейс метрик движка доступности
type Metrics interface {
	ObserveReport(mode string, days int, droppedTimeslots int, droppedBookings int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
