package middleware

import (
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
)

// recoveryLogger адаптер Logger к handlers.RecoveryHandlerLogger
type recoveryLogger struct {
	logger Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error("panic recovered: %s", fmt.Sprint(v...))
}

// Recovery перехватывает панику в обработчиках и отвечает 500
func Recovery(logger Logger) func(http.Handler) http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{logger: logger}),
	)
}
