// file: internals/features/finance/savings/routes/user_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	savingsCtl "xclass_backend/internals/features/finance/savings/controller"
)

func SavingsUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := savingsCtl.NewSavingsController(db)

	r.Get("/savings-transactions/me", ctl.Mine)
}
