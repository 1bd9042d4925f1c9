package handler

import (
	"context"
	"time"

	"employee-dashboard/internal/delivery/http/dto"
	"employee-dashboard/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type cachePinger interface {
	Enabled() bool
	Ping(ctx context.Context) error
}

type clientCounter interface {
	ClientCount() int
}

type HealthHandler struct {
	cache cachePinger
	hub   clientCounter
}

func NewHealthHandler(cache cachePinger, hub clientCounter) *HealthHandler {
	return &HealthHandler{cache: cache, hub: hub}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	out := dto.HealthResponse{Status: "ok", Cache: "disabled", ServerTime: time.Now().UTC()}

	if h.cache != nil && h.cache.Enabled() {
		ctx, cancel := context.WithTimeout(c.Context(), time.Second)
		defer cancel()
		out.Cache = "up"
		if err := h.cache.Ping(ctx); err != nil {
			out.Cache = "down"
		}
	}
	if h.hub != nil {
		out.WSClients = h.hub.ClientCount()
	}

	return response.Success(c, out)
}
