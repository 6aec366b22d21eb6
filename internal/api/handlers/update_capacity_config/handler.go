package update_capacity_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/capacity"
)

const (
	msgInvalidOfferID     = "некорректный ID оффера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные конфигурации"
)

type Handler struct {
	service CapacityConfigService
	logger  Logger
}

func NewHandler(service CapacityConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/offers/{offerId}/capacity-config и PUT /api/v1/capacity-config (глобальная)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var offerID *int64

	if raw, ok := mux.Vars(r)["offerId"]; ok {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("PUT /capacity-config - Invalid offer ID: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidOfferID)
			return
		}
		offerID = &id
	}

	// Декодируем body
	var req UpdateCapacityConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /capacity-config - Invalid request body: %v", err)
		if errors.Is(err, handlers.ErrBodyTooLarge) {
			handlers.RespondRequestEntityTooLarge(w)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), req.ToServiceRequest(offerID))
	if err != nil {
		if errors.Is(err, capacity.ErrInvalidInput) {
			h.logger.Warn("PUT /capacity-config - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}

		h.logger.Error("PUT /capacity-config - Failed to save config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /capacity-config - Config saved: config_id=%d, source=%s, mode=%s",
		result.ID, result.Source, result.Mode)
	handlers.RespondJSON(w, http.StatusOK, result)
}
