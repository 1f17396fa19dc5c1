package handlers

import (
	"github.com/betoquiroga/edmoney-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type MetricsHandler struct {
	metricsService *service.MetricsService
	logger         *zap.Logger
}

func NewMetricsHandler(metricsService *service.MetricsService, logger *zap.Logger) *MetricsHandler {
	return &MetricsHandler{
		metricsService: metricsService,
		logger:         logger,
	}
}

// GetMetrics serves GET /metrics?period=week|month|quarter|year.
// Unknown periods silently fall back to month.
func (h *MetricsHandler) GetMetrics(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	period := c.Query("period", service.PeriodMonth)

	metrics, err := h.metricsService.GetDashboardMetrics(c.Context(), userID, period)
	if err != nil {
		h.logger.Error("Failed to compute dashboard metrics", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute metrics",
		})
	}

	return c.JSON(metrics)
}
