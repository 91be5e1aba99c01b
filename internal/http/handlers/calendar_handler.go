package handlers

import (
	applog "royalstudy/internal/log"
	"royalstudy/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CalendarHandler struct {
	Schedules *services.ScheduleService
}

// List never fails: a load error swaps in the fixed fallback pair.
func (h *CalendarHandler) List(c *fiber.Ctx) error {
	schedules, usedFallback := h.Schedules.List()
	if usedFallback {
		applog.Error(c, "calendar.load.fallback", nil, map[string]any{"count": len(schedules)})
	}
	return render(c, "calendar", fiber.Map{"Schedules": schedules, "Fallback": usedFallback})
}
