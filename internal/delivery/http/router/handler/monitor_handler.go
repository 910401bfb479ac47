package handler

import (
	"log/slog"
	"net/http"

	"geotarget/internal/delivery/http/response"
	"geotarget/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MonitorHandlerParams holds dependencies for MonitorHandler, injected by Fx.
type MonitorHandlerParams struct {
	fx.In

	MonitorUC usecase.MonitorUsecase
	Logger    *slog.Logger
}

// MonitorHandler holds dependencies for monitoring-state handlers
type MonitorHandler struct {
	monitorUC usecase.MonitorUsecase
	logger    *slog.Logger
}

// NewMonitorHandler is the constructor for MonitorHandler
func NewMonitorHandler(params MonitorHandlerParams) *MonitorHandler {
	return &MonitorHandler{
		monitorUC: params.MonitorUC,
		logger:    params.Logger,
	}
}

// RegionResponse is the wire representation of a monitored region
type RegionResponse struct {
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius"`
}

// MonitoringResponse describes the current monitoring state
type MonitoringResponse struct {
	Authorization string           `json:"authorization"`
	Regions       []RegionResponse `json:"regions"`
}

// GetMonitoring handles reporting the authorization status and watched regions
func (h *MonitorHandler) GetMonitoring(c echo.Context) error {
	ctx := c.Request().Context()

	status := h.monitorUC.CheckAuthorization(ctx)
	regions := h.monitorUC.MonitoredRegions(ctx)

	resp := MonitoringResponse{
		Authorization: status.String(),
		Regions:       make([]RegionResponse, 0, len(regions)),
	}
	for _, r := range regions {
		resp.Regions = append(resp.Regions, RegionResponse{
			ID:        r.ID.String(),
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Radius:    r.Radius,
		})
	}

	return response.Success(c, http.StatusOK, resp, "Monitoring state retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
