package delete_capacity_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/capacity"
)

const (
	msgInvalidOfferID = "некорректный ID оффера"
	msgNotFound       = "конфигурация не найдена"
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

// Handle DELETE /api/v1/offers/{offerId}/capacity-config и DELETE /api/v1/capacity-config (глобальная)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var offerID *int64

	if raw, ok := mux.Vars(r)["offerId"]; ok {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("DELETE /capacity-config - Invalid offer ID: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidOfferID)
			return
		}
		offerID = &id
	}

	if err := h.service.Delete(r.Context(), offerID); err != nil {
		switch {
		case errors.Is(err, capacity.ErrConfigNotFound):
			h.logger.Warn("DELETE /capacity-config - Config not found: %v", err)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, capacity.ErrInvalidInput):
			h.logger.Warn("DELETE /capacity-config - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOfferID)

		default:
			h.logger.Error("DELETE /capacity-config - Failed to delete config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /capacity-config - Config deleted")
	w.WriteHeader(http.StatusNoContent)
}
