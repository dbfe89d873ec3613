// file: internals/features/finance/savings/routes/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	savingsCtl "xclass_backend/internals/features/finance/savings/controller"
)

func SavingsAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := savingsCtl.NewSavingsController(db)

	sav := r.Group("/savings-transactions")

	sav.Post("/", ctl.Record)
	sav.Get("/", ctl.List)
	sav.Get("/balance/:student_id", ctl.GetBalance)
	sav.Patch("/:id", ctl.Update)
	sav.Delete("/:id", ctl.Delete)
}
