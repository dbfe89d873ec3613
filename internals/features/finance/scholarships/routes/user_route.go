// file: internals/features/finance/scholarships/routes/user_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scholarshipCtl "xclass_backend/internals/features/finance/scholarships/controller"
)

func ScholarshipUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := scholarshipCtl.NewScholarshipController(db)

	r.Get("/scholarships/me", ctl.Mine)
}
