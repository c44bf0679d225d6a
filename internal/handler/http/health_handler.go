package http

import (
	"net/http"

	"product-catalog/internal/logger"
	"product-catalog/internal/service"

	"go.opentelemetry.io/otel"
)

type HealthHandler struct {
	service *service.HealthService
}

var HttpHealthHandlerTracer = otel.Tracer("HttpHealthHandler")

func NewHealthHandler(service *service.HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, span := HttpHealthHandlerTracer.Start(r.Context(), "HttpHealthHandler.Check")
	defer span.End()
	logger.Info(ctx, "HttpHealthHandler")

	status := h.service.Check(ctx)

	overall := "UP"
	httpStatus := http.StatusOK
	if status.Store == "DOWN" {
		overall = "DOWN"
		httpStatus = http.StatusInternalServerError
	}

	writeJSON(w, httpStatus, map[string]interface{}{
		"status": overall,
		"data": map[string]string{
			"driver": status.Driver,
			"store":  status.Store,
		},
	})
}
