package get_available_days

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableDays "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_days"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

const (
	msgInvalidOfferID         = "некорректный ID оффера"
	msgInvalidDefaultCapacity = "некорректное значение default_capacity"
	msgInvalidInput           = "некорректные параметры from/to"
	msgRangeTooLong           = "слишком длинный диапазон дат"
	msgOfferNotFound          = "оффер не найден"
)

type Handler struct {
	useCase GetAvailableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/offers/{offerId}/available-days?from=YYYY-MM-DD&to=YYYY-MM-DD[&default_capacity=N]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем offerId из URL
	vars := mux.Vars(r)
	offerID, err := strconv.ParseInt(vars["offerId"], 10, 64)
	if err != nil || offerID <= 0 {
		h.logger.Warn("GET /offers/{id}/available-days - Invalid offer ID: %s", vars["offerId"])
		handlers.RespondBadRequest(w, msgInvalidOfferID)
		return
	}

	// Парсим query параметры
	query := r.URL.Query()
	req := &getAvailableDays.Request{
		OfferID: offerID,
		From:    query.Get("from"),
		To:      query.Get("to"),
	}

	if raw := query.Get("default_capacity"); raw != "" {
		capacity, err := strconv.Atoi(raw)
		if err != nil || capacity <= 0 {
			h.logger.Warn("GET /offers/{id}/available-days - Invalid default_capacity: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidDefaultCapacity)
			return
		}
		req.DefaultCapacity = ptr.Ptr(capacity)
	}

	// Вызываем use case
	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDays.ErrInvalidInput):
			h.logger.Warn("GET /offers/{id}/available-days - Invalid input: offer_id=%d, error=%v", offerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableDays.ErrRangeTooLong):
			h.logger.Warn("GET /offers/{id}/available-days - Range too long: offer_id=%d, from=%s, to=%s",
				offerID, req.From, req.To)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, getAvailableDays.ErrOfferNotFound):
			h.logger.Warn("GET /offers/{id}/available-days - Offer not found: offer_id=%d", offerID)
			handlers.RespondNotFound(w, msgOfferNotFound)

		case errors.Is(err, getAvailableDays.ErrUpstream):
			h.logger.Error("GET /offers/{id}/available-days - Upstream error: offer_id=%d, error=%v", offerID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("GET /offers/{id}/available-days - Failed to get available days: offer_id=%d, error=%v",
				offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	result := FromUseCaseResponse(resp)

	h.logger.Info("GET /offers/{id}/available-days - Success: offer_id=%d, days=%d, cached=%t",
		offerID, len(result.AvailableDays), result.Cached)
	handlers.RespondJSON(w, http.StatusOK, result)
}
