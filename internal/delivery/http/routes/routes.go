package routes

import (
	"employee-dashboard/internal/delivery/http/handler"
	v1 "employee-dashboard/internal/delivery/http/routes/v1"
	"employee-dashboard/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health    *handler.HealthHandler
	dashboard *handler.DashboardHandler
	ws        *ws.Handler
}

func NewRegistry(health *handler.HealthHandler, dashboard *handler.DashboardHandler, wsHandler *ws.Handler) *Registry {
	return &Registry{health: health, dashboard: dashboard, ws: wsHandler}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
	if r.dashboard != nil {
		r.dashboard.RegisterRoutes(app)
	}
	if r.ws != nil {
		r.ws.RegisterRoutes(app)
	}
	r.registerAPI(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.dashboard)
}
