package calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	computeCalendar "github.com/m04kA/SMC-AvailabilityService/internal/usecase/compute_calendar"
)

const (
	msgInvalidPayload = "Invalid input payload"
	msgInvalidBody    = "Invalid JSON body"
	msgRangeTooLong   = "Date range is too long"
)

type Handler struct {
	useCase ComputeCalendarUseCase
	logger  Logger
}

func NewHandler(useCase ComputeCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle /api/calendar
// POST - расчёт по данным из тела, OPTIONS - {"ok":true}, остальные методы - 405
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		handlers.RespondJSON(w, http.StatusOK, OptionsResponse{OK: true})
		return
	case http.MethodPost:
	default:
		h.logger.Warn("%s /api/calendar - Method not allowed", r.Method)
		handlers.RespondMethodNotAllowed(w)
		return
	}

	// Читаем и разбираем тело
	body, err := handlers.ReadBody(r)
	if err != nil {
		h.logger.Warn("POST /api/calendar - Failed to read body: %v", err)
		if errors.Is(err, handlers.ErrBodyTooLarge) {
			handlers.RespondRequestEntityTooLarge(w)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	req, err := ParseCalendarRequest(body)
	if err != nil {
		h.logger.Warn("POST /api/calendar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, computeCalendar.ErrInvalidInput):
			h.logger.Warn("POST /api/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPayload)

		case errors.Is(err, computeCalendar.ErrRangeTooLong):
			h.logger.Warn("POST /api/calendar - %v", err)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		default:
			h.logger.Error("POST /api/calendar - Failed to compute calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/calendar - Calendar computed: available_days=%d", len(result.Report.AvailableDays))
	handlers.RespondJSON(w, http.StatusOK, result.Report)
}
