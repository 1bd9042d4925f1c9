package v1

import (
	"employee-dashboard/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, dashboard *handler.DashboardHandler) {
	if r == nil || dashboard == nil {
		return
	}

	dashboard.RegisterAPIRoutes(r)
}
