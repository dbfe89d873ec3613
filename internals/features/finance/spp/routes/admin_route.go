// file: internals/features/finance/spp/routes/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sppCtl "xclass_backend/internals/features/finance/spp/controller"
)

func SppPaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := sppCtl.NewSppPaymentController(db)

	spp := r.Group("/spp-payments")

	spp.Post("/", ctl.Create)
	spp.Get("/", ctl.List)
	spp.Get("/overdue", ctl.Overdue)
	spp.Get("/statistics", ctl.Statistics)
	spp.Get("/:id", ctl.GetByID)
	spp.Patch("/:id", ctl.Update)
	spp.Post("/:id/mark-paid", ctl.MarkPaid)
	spp.Delete("/:id", ctl.Delete)
}
