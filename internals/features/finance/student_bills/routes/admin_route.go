// file: internals/features/finance/student_bills/routes/admin_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billCtl "xclass_backend/internals/features/finance/student_bills/controller"
)

func StudentBillAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := billCtl.NewStudentBillController(db)

	bills := r.Group("/student-bills")

	bills.Post("/", ctl.Create)
	bills.Get("/", ctl.List)
	bills.Get("/overdue", ctl.Overdue)
	bills.Get("/statistics", ctl.Statistics)
	bills.Get("/:id", ctl.GetByID)
	bills.Patch("/:id", ctl.Update)
	bills.Post("/:id/mark-paid", ctl.MarkPaid)
	bills.Delete("/:id", ctl.Delete)
}
