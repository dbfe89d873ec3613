// file: internals/features/finance/budgets/routes/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	budgetCtl "xclass_backend/internals/features/finance/budgets/controller"
)

func BudgetAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := budgetCtl.NewBudgetController(db)

	bud := r.Group("/budgets")

	bud.Post("/", ctl.Create)
	bud.Get("/", ctl.List)
	bud.Get("/summary", ctl.Summary)
	bud.Get("/:id", ctl.GetByID)
	bud.Patch("/:id", ctl.Update)
	bud.Post("/:id/approve", ctl.Approve)
	bud.Post("/:id/close", ctl.Close)
	bud.Post("/:id/recompute", ctl.Recompute)
	bud.Delete("/:id", ctl.Delete)
}
