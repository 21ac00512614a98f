package handler

import (
	"grammologue/internal/service"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	service service.AssessmentService
}

func NewHealthHandler(service service.AssessmentService) *HealthHandler {
	return &HealthHandler{service: service}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Readiness handles GET /readyz. It answers 503 when either backend is unreachable.
func (h *HealthHandler) Readiness(c *fiber.Ctx) error {
	report := h.service.Readiness(c.UserContext())
	if !report.Ready {
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
