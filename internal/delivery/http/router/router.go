// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"geotarget/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TargetHandler   *handler.TargetHandler
	MonitorHandler  *handler.MonitorHandler
	PositionHandler *handler.PositionHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	targetHandler   *handler.TargetHandler
	monitorHandler  *handler.MonitorHandler
	positionHandler *handler.PositionHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		targetHandler:   params.TargetHandler,
		monitorHandler:  params.MonitorHandler,
		positionHandler: params.PositionHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/v1")
	{
		targets := v1.Group("/targets")
		{
			targets.GET("", r.targetHandler.ListTargets)
			targets.POST("", r.targetHandler.CreateTarget)
			// Reconciliation must come before the id routes so "changes" is
			// not parsed as a target id.
			targets.GET("/changes", r.targetHandler.GetChanges)
			targets.GET("/:id", r.targetHandler.GetTarget)
			targets.PUT("/:id", r.targetHandler.UpdateTarget)
			targets.DELETE("/:id", r.targetHandler.DeleteTarget)
			targets.POST("/:id/reset", r.targetHandler.ResetAttendance)
		}

		v1.GET("/monitoring", r.monitorHandler.GetMonitoring)
		v1.POST("/positions", r.positionHandler.UpdatePosition)
	}
}
