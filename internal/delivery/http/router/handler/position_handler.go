package handler

import (
	"log/slog"
	"net/http"
	"time"

	"geotarget/internal/delivery/http/response"
	"geotarget/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PositionHandlerParams holds dependencies for PositionHandler, injected by Fx.
type PositionHandlerParams struct {
	fx.In

	Sink   service.PositionSink
	Logger *slog.Logger
}

// PositionHandler accepts raw device position fixes
type PositionHandler struct {
	sink   service.PositionSink
	logger *slog.Logger
}

// NewPositionHandler is the constructor for PositionHandler
func NewPositionHandler(params PositionHandlerParams) *PositionHandler {
	return &PositionHandler{
		sink:   params.Sink,
		logger: params.Logger,
	}
}

// UpdatePositionRequest represents one device fix
type UpdatePositionRequest struct {
	Latitude   float64    `json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64    `json:"longitude" validate:"min=-180,max=180"`
	RecordedAt *time.Time `json:"recorded_at,omitempty"`
}

// UpdatePosition handles feeding a device fix into the region watcher.
// Crossing events derived from the fix are processed asynchronously, so the
// response only acknowledges receipt.
func (h *PositionHandler) UpdatePosition(c echo.Context) error {
	var req UpdatePositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	at := time.Now()
	if req.RecordedAt != nil {
		at = *req.RecordedAt
	}

	h.sink.UpdatePosition(service.Coordinate{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}, at)

	return response.Success(c, http.StatusAccepted, map[string]string{"status": "accepted"}, "Position accepted")
}
