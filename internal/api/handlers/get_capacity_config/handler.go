package get_capacity_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/capacity"
)

const msgInvalidOfferID = "некорректный ID оффера"

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

// Handle GET /api/v1/offers/{offerId}/capacity-config и GET /api/v1/capacity-config (глобальная)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var offerID *int64

	// offerId отсутствует в маршруте глобальной конфигурации
	if raw, ok := mux.Vars(r)["offerId"]; ok {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /capacity-config - Invalid offer ID: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidOfferID)
			return
		}
		offerID = &id
	}

	config, err := h.service.Get(r.Context(), offerID)
	if err != nil {
		if errors.Is(err, capacity.ErrInvalidInput) {
			h.logger.Warn("GET /capacity-config - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOfferID)
			return
		}

		h.logger.Error("GET /capacity-config - Failed to get config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /capacity-config - Config retrieved: source=%s, mode=%s", config.Source, config.Mode)
	handlers.RespondJSON(w, http.StatusOK, config)
}
