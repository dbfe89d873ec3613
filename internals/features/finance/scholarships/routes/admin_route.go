// file: internals/features/finance/scholarships/routes/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scholarshipCtl "xclass_backend/internals/features/finance/scholarships/controller"
)

func ScholarshipAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := scholarshipCtl.NewScholarshipController(db)

	sch := r.Group("/scholarships")

	sch.Post("/", ctl.Create)
	sch.Get("/", ctl.List)
	sch.Get("/statistics", ctl.Statistics)
	sch.Get("/:id", ctl.GetByID)
	sch.Patch("/:id", ctl.Update)
	sch.Delete("/:id", ctl.Delete)
}
