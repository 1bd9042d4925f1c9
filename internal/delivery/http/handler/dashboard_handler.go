package handler

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"employee-dashboard/internal/delivery/http/dto"
	"employee-dashboard/internal/delivery/http/middleware"
	"employee-dashboard/internal/delivery/http/view"
	"employee-dashboard/internal/domain/dashboard"
	"employee-dashboard/internal/pkg/response"
	"employee-dashboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

const downloadPath = "/download"

type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *zap.Logger
}

func NewDashboardHandler(uc usecase.DashboardUsecase, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{uc: uc, logger: logger}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Home)
	r.Get(downloadPath, h.Download)
}

// RegisterAPIRoutes mounts the JSON view under an API group.
func (h *DashboardHandler) RegisterAPIRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/dashboard", h.Latest)
}

func (h *DashboardHandler) Home(c fiber.Ctx) error {
	d, err := h.uc.Refresh(c.Context())
	if err != nil {
		return h.mapError(err)
	}

	page, err := view.RenderDashboard(d.Rows, downloadPath)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.HTML(c, fiber.StatusOK, page)
}

func (h *DashboardHandler) Download(c fiber.Ctx) error {
	path, err := h.uc.LatestFile(c.Context())
	if err != nil {
		return h.mapError(err)
	}

	// SendFile caches open files; stream so each request reads the published file.
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return h.mapError(fmt.Errorf("%w: %v", dashboard.ErrNotFound, err))
		}
		return h.mapError(err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return h.mapError(err)
	}

	c.Attachment(usecase.DashboardFile)
	return c.SendStream(f, int(info.Size()))
}

func (h *DashboardHandler) Latest(c fiber.Ctx) error {
	d, err := h.uc.Latest(c.Context())
	if err != nil {
		return h.mapError(err)
	}

	out := dto.DashboardResponse{
		RunID:       d.RunID,
		GeneratedAt: d.GeneratedAt,
		Columns:     dashboard.Columns,
		Rows:        make([]dto.DashboardRowResponse, 0, len(d.Rows)),
	}
	for _, r := range d.Rows {
		out.Rows = append(out.Rows, dto.DashboardRowResponse{
			EmployeeName: r.EmployeeName,
			JoinDate:     r.JoinDate,
			Role:         r.Role,
			Interviewer:  r.Interviewer,
		})
	}
	return response.Success(c, out)
}

// mapError maps usecase errors to AppErrors; everything but ErrNotFound is a 500.
func (h *DashboardHandler) mapError(err error) error {
	if err == nil {
		return nil
	}

	var mc *dashboard.MissingColumnError
	switch {
	case errors.Is(err, dashboard.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "dashboard has not been generated yet", nil, err)
	case errors.As(err, &mc):
		h.logger.Error("dataset missing column",
			zap.String("dataset", mc.Dataset),
			zap.String("column", mc.Column),
		)
	case errors.Is(err, dashboard.ErrNoMatchingRows):
		h.logger.Error("dashboard join produced no rows", zap.Error(err))
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
