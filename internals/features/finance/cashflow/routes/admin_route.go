// file: internals/features/finance/cashflow/routes/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cashflowCtl "xclass_backend/internals/features/finance/cashflow/controller"
)

func CashflowAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := cashflowCtl.NewCashflowController(db)

	cf := r.Group("/cashflow-entries")

	cf.Post("/", ctl.Create)
	cf.Get("/", ctl.List)
	cf.Get("/summary", ctl.Summary)
	cf.Get("/:id", ctl.GetByID)
	cf.Patch("/:id", ctl.Update)
	cf.Delete("/:id", ctl.Delete)
}
