// file: internals/features/finance/reminders/controller/reminder_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "xclass_backend/internals/features/finance/reminders/service"
	helper "xclass_backend/internals/helpers"
)

type ReminderController struct {
	Service *service.ReminderService
}

func NewReminderController(db *gorm.DB) *ReminderController {
	return &ReminderController{Service: service.NewReminderService(db)}
}

// GET /finance/reminders?days_ahead=
func (h *ReminderController) GetReminders(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	daysAhead := c.QueryInt("days_ahead", service.DefaultDaysAhead)

	out, err := h.Service.GetReminders(c.UserContext(), schoolID, daysAhead)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "OK", out)
}
