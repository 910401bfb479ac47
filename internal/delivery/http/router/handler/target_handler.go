package handler

import (
	"log/slog"
	"net/http"
	"time"

	"geotarget/internal/delivery/http/response"
	"geotarget/internal/domain/entity"
	domainerrors "geotarget/internal/domain/errors"
	"geotarget/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TargetHandlerParams holds dependencies for TargetHandler, injected by Fx.
type TargetHandlerParams struct {
	fx.In

	TargetUC usecase.TargetUsecase
	Logger   *slog.Logger
}

// TargetHandler holds dependencies for target-related handlers
type TargetHandler struct {
	targetUC usecase.TargetUsecase
	logger   *slog.Logger
}

// NewTargetHandler is the constructor for TargetHandler
func NewTargetHandler(params TargetHandlerParams) *TargetHandler {
	return &TargetHandler{
		targetUC: params.TargetUC,
		logger:   params.Logger,
	}
}

// CreateTargetRequest represents the request body for creating a target
type CreateTargetRequest struct {
	Title     string   `json:"title" validate:"required"`
	Latitude  float64  `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64  `json:"longitude" validate:"min=-180,max=180"`
	Radius    *float64 `json:"radius,omitempty" validate:"omitempty,gt=0"`
	Address   *string  `json:"address,omitempty"`
}

// UpdateTargetRequest represents the request body for updating a target
type UpdateTargetRequest struct {
	Title     *string  `json:"title,omitempty" validate:"omitempty,min=1"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Radius    *float64 `json:"radius,omitempty" validate:"omitempty,gt=0"`
	Address   *string  `json:"address,omitempty"`
}

// TargetResponse is the wire representation of a target
type TargetResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	Address      *string    `json:"address,omitempty"`
	Radius       *float64   `json:"radius,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	VisitCount   int        `json:"visit_count"`
	DwellSeconds float64    `json:"dwell_seconds"`
	EntryTime    *time.Time `json:"entry_time,omitempty"`
}

// DifferencesResponse is the wire representation of a reconciliation result.
// Baseline is the snapshot the changes were computed against so the consumer
// can reconcile incrementally.
type DifferencesResponse struct {
	Baseline []TargetResponse `json:"baseline"`
	Added    []TargetResponse `json:"added"`
	Removed  []TargetResponse `json:"removed"`
	Updated  []TargetResponse `json:"updated"`
}

func toTargetResponse(t *entity.Target) TargetResponse {
	return TargetResponse{
		ID:           t.ID.String(),
		Title:        t.Title,
		Latitude:     t.Latitude,
		Longitude:    t.Longitude,
		Address:      t.Address,
		Radius:       t.Radius,
		CreatedAt:    t.CreatedAt,
		VisitCount:   t.VisitCount,
		DwellSeconds: t.DwellTime.Seconds(),
		EntryTime:    t.EntryTime,
	}
}

func toTargetResponses(targets []*entity.Target) []TargetResponse {
	out := make([]TargetResponse, 0, len(targets))
	for _, t := range targets {
		out = append(out, toTargetResponse(t))
	}

	return out
}

// ListTargets handles retrieving all targets in creation order
func (h *TargetHandler) ListTargets(c echo.Context) error {
	targets := h.targetUC.Targets(c.Request().Context())

	return response.Success(c, http.StatusOK, toTargetResponses(targets), "Targets retrieved successfully")
}

// GetTarget handles retrieving a single target
func (h *TargetHandler) GetTarget(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid target ID")
	}

	target := h.targetUC.Target(c.Request().Context(), id)
	if target == nil {
		return h.handleAppError(c, domainerrors.ErrTargetNotFound)
	}

	return response.Success(c, http.StatusOK, toTargetResponse(target), "Target retrieved successfully")
}

// CreateTarget handles creating a new target
func (h *TargetHandler) CreateTarget(c echo.Context) error {
	var req CreateTargetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid target input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.AddTargetInput{
		Title:     req.Title,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Radius:    req.Radius,
		Address:   req.Address,
	}

	target, err := h.targetUC.AddTarget(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toTargetResponse(target), "Target created successfully")
}

// UpdateTarget handles updating an existing target
func (h *TargetHandler) UpdateTarget(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid target ID")
	}

	var req UpdateTargetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid target input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateTargetInput{
		Title:     req.Title,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Radius:    req.Radius,
		Address:   req.Address,
	}

	target, err := h.targetUC.UpdateTarget(c.Request().Context(), id, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTargetResponse(target), "Target updated successfully")
}

// DeleteTarget handles removing a target
func (h *TargetHandler) DeleteTarget(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid target ID")
	}

	if err := h.targetUC.RemoveTarget(c.Request().Context(), id); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, "Target deleted successfully")
}

// ResetAttendance handles clearing a target's visit statistics
func (h *TargetHandler) ResetAttendance(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid target ID")
	}

	target, err := h.targetUC.ResetAttendance(c.Request().Context(), id)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTargetResponse(target), "Target attendance reset successfully")
}

// GetChanges handles reporting the differences since the last reconciliation
func (h *TargetHandler) GetChanges(c echo.Context) error {
	diff := h.targetUC.ComputeDifferences(c.Request().Context())

	resp := DifferencesResponse{
		Baseline: toTargetResponses(diff.Before.Sorted()),
		Added:    toTargetResponses(diff.Added),
		Removed:  toTargetResponses(diff.Removed),
		Updated:  toTargetResponses(diff.Updated),
	}

	return response.Success(c, http.StatusOK, resp, "Target changes computed successfully")
}

// handleAppError handles application errors
func (h *TargetHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
