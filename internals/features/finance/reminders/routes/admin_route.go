// file: internals/features/finance/reminders/routes/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reminderCtl "xclass_backend/internals/features/finance/reminders/controller"
)

func ReminderAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := reminderCtl.NewReminderController(db)

	r.Get("/reminders", ctl.GetReminders)
}
