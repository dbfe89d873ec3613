// file: internals/features/finance/spp/routes/user_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sppCtl "xclass_backend/internals/features/finance/spp/controller"
)

func SppPaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := sppCtl.NewSppPaymentController(db)

	r.Get("/spp-payments/me", ctl.ListMine)
}
